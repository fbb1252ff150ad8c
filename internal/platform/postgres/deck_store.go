package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/deckstudy/internal/domain"
	"github.com/phrazzld/deckstudy/internal/platform/logger"
	"github.com/phrazzld/deckstudy/internal/store"
)

// PostgresDeckStore implements the store.DeckStore interface
// using a PostgreSQL database as the storage backend.
type PostgresDeckStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresDeckStore creates a new PostgreSQL implementation of the DeckStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresDeckStore(db store.DBTX, logger *slog.Logger) *PostgresDeckStore {
	if db == nil {
		panic("db cannot be nil") // ALLOW-PANIC
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresDeckStore{
		db:     db,
		logger: logger.With(slog.String("component", "deck_store")),
	}
}

// Ensure PostgresDeckStore implements store.DeckStore interface
var _ store.DeckStore = (*PostgresDeckStore)(nil)

// List implements store.DeckStore.List
func (s *PostgresDeckStore) List(ctx context.Context, now time.Time) ([]domain.DeckSummary, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT d.id, d.name,
			COUNT(c.id) FILTER (WHERE c.status = 'new' OR c.review_date <= $1)
		FROM decks d
		LEFT JOIN cards c ON c.deck_id = d.id
		GROUP BY d.id, d.name
		ORDER BY d.name
	`

	rows, err := s.db.QueryContext(ctx, query, domain.DateOf(now))
	if err != nil {
		log.Error("failed to list decks", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	decks := []domain.DeckSummary{}
	for rows.Next() {
		var d domain.DeckSummary
		if err := rows.Scan(&d.ID, &d.Name, &d.DueCardCount); err != nil {
			log.Error("failed to scan deck summary", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		decks = append(decks, d)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating deck rows", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	log.Debug("decks listed", slog.Int("count", len(decks)))
	return decks, nil
}

// GetByID implements store.DeckStore.GetByID
func (s *PostgresDeckStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Deck, error) {
	return s.getOne(ctx, "id", `SELECT id, name, created_at FROM decks WHERE id = $1`, id)
}

// GetByName implements store.DeckStore.GetByName
func (s *PostgresDeckStore) GetByName(ctx context.Context, name string) (*domain.Deck, error) {
	return s.getOne(ctx, "name", `SELECT id, name, created_at FROM decks WHERE name = $1`, name)
}

func (s *PostgresDeckStore) getOne(ctx context.Context, key, query string, arg any) (*domain.Deck, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var deck domain.Deck
	err := s.db.QueryRowContext(ctx, query, arg).Scan(&deck.ID, &deck.Name, &deck.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("deck not found", slog.Any(key, arg))
			return nil, store.ErrDeckNotFound
		}
		log.Error("failed to get deck",
			slog.String("error", err.Error()),
			slog.Any(key, arg))
		return nil, MapError(err)
	}

	return &deck, nil
}

// Create implements store.DeckStore.Create
func (s *PostgresDeckStore) Create(ctx context.Context, deck *domain.Deck) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `INSERT INTO decks (id, name, created_at) VALUES ($1, $2, $3)`
	_, err := s.db.ExecContext(ctx, query, deck.ID, deck.Name, deck.CreatedAt)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("deck name already exists", slog.String("deck_name", deck.Name))
			return fmt.Errorf("%w: %q", store.ErrDeckNameExists, deck.Name)
		}
		log.Error("failed to create deck",
			slog.String("error", err.Error()),
			slog.String("deck_id", deck.ID.String()))
		return MapError(err)
	}

	log.Info("deck created",
		slog.String("deck_id", deck.ID.String()),
		slog.String("deck_name", deck.Name))
	return nil
}

// Delete implements store.DeckStore.Delete
func (s *PostgresDeckStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM decks WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete deck",
			slog.String("error", err.Error()),
			slog.String("deck_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrDeckNotFound); err != nil {
		return err
	}

	log.Info("deck deleted", slog.String("deck_id", id.String()))
	return nil
}

// WithTx implements store.DeckStore.WithTx
func (s *PostgresDeckStore) WithTx(tx *sql.Tx) store.DeckStore {
	return &PostgresDeckStore{db: tx, logger: s.logger}
}
