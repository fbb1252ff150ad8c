package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/deckstudy/internal/domain"
	"github.com/phrazzld/deckstudy/internal/platform/logger"
	"github.com/phrazzld/deckstudy/internal/store"
)

const cardColumns = `id, deck_id, front_content, back_content, tags,
	status, interval_days, ease_factor, review_date, created_at, updated_at`

// PostgresCardStore implements the store.CardStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCardStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCardStore creates a new PostgreSQL implementation of the CardStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresCardStore(db store.DBTX, logger *slog.Logger) *PostgresCardStore {
	if db == nil {
		panic("db cannot be nil") // ALLOW-PANIC
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCardStore{
		db:     db,
		logger: logger.With(slog.String("component", "card_store")),
	}
}

// Ensure PostgresCardStore implements store.CardStore interface
var _ store.CardStore = (*PostgresCardStore)(nil)

// CreateMultiple implements store.CardStore.CreateMultiple
func (s *PostgresCardStore) CreateMultiple(ctx context.Context, cards []*domain.Card) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if len(cards) == 0 {
		return nil
	}

	for i, card := range cards {
		if err := card.Validate(); err != nil {
			log.Warn("card validation failed during create",
				slog.Int("index", i),
				slog.String("error", err.Error()))
			return fmt.Errorf("%w: card %d: %w", store.ErrInvalidEntity, i, err)
		}
	}

	stmt, err := s.db.PrepareContext(ctx, `
		INSERT INTO cards (`+cardColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`)
	if err != nil {
		log.Error("failed to prepare card insert", slog.String("error", err.Error()))
		return MapError(err)
	}
	defer func() { _ = stmt.Close() }()

	for _, card := range cards {
		tags, err := json.Marshal(card.Tags)
		if err != nil {
			return fmt.Errorf("failed to encode tags for card %s: %w", card.ID, err)
		}

		_, err = stmt.ExecContext(ctx,
			card.ID,
			card.DeckID,
			card.Front,
			card.Back,
			tags,
			string(card.Status),
			card.Interval,
			card.EaseFactor,
			nullDate(card.ReviewDate),
			card.CreatedAt,
			card.UpdatedAt,
		)
		if err != nil {
			log.Error("failed to insert card",
				slog.String("error", err.Error()),
				slog.String("card_id", card.ID.String()),
				slog.String("deck_id", card.DeckID.String()))
			return MapError(err)
		}
	}

	log.Debug("cards created", slog.Int("count", len(cards)))
	return nil
}

// GetByID implements store.CardStore.GetByID
func (s *PostgresCardStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	row := s.db.QueryRowContext(ctx, `SELECT `+cardColumns+` FROM cards WHERE id = $1`, id)
	card, err := scanCard(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("card not found", slog.String("card_id", id.String()))
			return nil, store.ErrCardNotFound
		}
		log.Error("failed to get card by ID",
			slog.String("error", err.Error()),
			slog.String("card_id", id.String()))
		return nil, MapError(err)
	}

	return card, nil
}

// ListDue implements store.CardStore.ListDue
func (s *PostgresCardStore) ListDue(ctx context.Context, deckID uuid.UUID, now time.Time) ([]domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + cardColumns + `
		FROM cards
		WHERE deck_id = $1 AND (status = 'new' OR review_date <= $2)
		ORDER BY created_at, id
	`
	rows, err := s.db.QueryContext(ctx, query, deckID, domain.DateOf(now))
	if err != nil {
		log.Error("failed to list due cards",
			slog.String("error", err.Error()),
			slog.String("deck_id", deckID.String()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	cards := []domain.Card{}
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			log.Error("failed to scan card", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		cards = append(cards, *card)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating card rows", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	log.Debug("due cards listed",
		slog.String("deck_id", deckID.String()),
		slog.Int("count", len(cards)))
	return cards, nil
}

// UpdateSchedule implements store.CardStore.UpdateSchedule
func (s *PostgresCardStore) UpdateSchedule(ctx context.Context, id uuid.UUID, schedule domain.Schedule) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE cards
		SET status = $1, interval_days = $2, ease_factor = $3, review_date = $4, updated_at = $5
		WHERE id = $6
	`
	result, err := s.db.ExecContext(ctx, query,
		string(schedule.Status),
		schedule.Interval,
		schedule.EaseFactor,
		nullDate(schedule.ReviewDate),
		time.Now().UTC(),
		id,
	)
	if err != nil {
		log.Error("failed to update card schedule",
			slog.String("error", err.Error()),
			slog.String("card_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrCardNotFound); err != nil {
		return err
	}

	log.Debug("card schedule updated",
		slog.String("card_id", id.String()),
		slog.String("status", string(schedule.Status)),
		slog.Int("interval", schedule.Interval))
	return nil
}

// WithTx implements store.CardStore.WithTx
func (s *PostgresCardStore) WithTx(tx *sql.Tx) store.CardStore {
	return &PostgresCardStore{db: tx, logger: s.logger}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCard(row rowScanner) (*domain.Card, error) {
	var (
		card       domain.Card
		tags       []byte
		status     string
		reviewDate sql.NullTime
	)

	err := row.Scan(
		&card.ID,
		&card.DeckID,
		&card.Front,
		&card.Back,
		&tags,
		&status,
		&card.Interval,
		&card.EaseFactor,
		&reviewDate,
		&card.CreatedAt,
		&card.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	card.Tags = []string{}
	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &card.Tags); err != nil {
			return nil, fmt.Errorf("failed to decode tags for card %s: %w", card.ID, err)
		}
	}
	card.Status = domain.CardStatus(status)
	if reviewDate.Valid {
		d := domain.DateOf(reviewDate.Time)
		card.ReviewDate = &d
	}

	return &card, nil
}

func nullDate(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: domain.DateOf(*t), Valid: true}
}
