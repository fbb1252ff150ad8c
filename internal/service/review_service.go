package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/deckstudy/internal/domain"
	"github.com/phrazzld/deckstudy/internal/domain/srs"
	"github.com/phrazzld/deckstudy/internal/platform/logger"
	"github.com/phrazzld/deckstudy/internal/store"
)

// ReviewService applies ratings to cards.
type ReviewService interface {
	// Submit rates a card and persists the schedule computed by the SRS
	// scheduler. The returned card carries the new schedule.
	//
	// Errors:
	//   - wraps domain.ErrInvalidRating for a rating other than again/good/easy
	//   - wraps store.ErrCardNotFound when the card does not exist
	Submit(ctx context.Context, cardID uuid.UUID, rating domain.Rating) (*domain.Card, error)

	// GetCard returns a single card, used by the preview endpoint.
	GetCard(ctx context.Context, cardID uuid.UUID) (*domain.Card, error)
}

type reviewServiceImpl struct {
	db         *sql.DB
	cards      store.CardStore
	srsService srs.Service
	clock      func() time.Time
	logger     *slog.Logger
}

var _ ReviewService = (*reviewServiceImpl)(nil)

// NewReviewService creates a ReviewService.
func NewReviewService(
	db *sql.DB,
	cards store.CardStore,
	srsService srs.Service,
	logger *slog.Logger,
	opts ...Option,
) (ReviewService, error) {
	if db == nil {
		return nil, domain.NewValidationError("db", "cannot be nil", ErrNilDependency)
	}
	if cards == nil {
		return nil, domain.NewValidationError("cards", "cannot be nil", ErrNilDependency)
	}
	if srsService == nil {
		return nil, domain.NewValidationError("srsService", "cannot be nil", ErrNilDependency)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &reviewServiceImpl{
		db:         db,
		cards:      cards,
		srsService: srsService,
		clock:      newOptions(opts).clock,
		logger:     logger.With(slog.String("component", "review_service")),
	}, nil
}

// Submit implements ReviewService.Submit.
func (s *reviewServiceImpl) Submit(
	ctx context.Context,
	cardID uuid.UUID,
	rating domain.Rating,
) (*domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if !rating.Valid() {
		log.Warn("invalid review rating",
			slog.String("card_id", cardID.String()),
			slog.String("rating", string(rating)))
		return nil, reviewError("submit", "invalid rating",
			fmt.Errorf("%w: %q", domain.ErrInvalidRating, rating))
	}

	var updated *domain.Card
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txCards := s.cards.WithTx(tx)

		card, err := txCards.GetByID(ctx, cardID)
		if err != nil {
			return err
		}

		next, err := s.srsService.CalculateNextReview(card.Schedule, rating, s.clock())
		if err != nil {
			return fmt.Errorf("failed to calculate next review: %w", err)
		}

		if err := txCards.UpdateSchedule(ctx, cardID, next); err != nil {
			return err
		}

		card.Schedule = next
		updated = card
		return nil
	})
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Warn("card not found for review", slog.String("card_id", cardID.String()))
			return nil, reviewError("submit", "card not found", store.ErrCardNotFound)
		}
		log.Error("failed to submit review",
			slog.String("error", err.Error()),
			slog.String("card_id", cardID.String()))
		return nil, reviewError("submit", "failed to update card", err)
	}

	log.Debug("review applied",
		slog.String("card_id", cardID.String()),
		slog.String("rating", string(rating)),
		slog.String("status", string(updated.Status)),
		slog.Int("interval", updated.Interval),
		slog.Float64("ease_factor", updated.EaseFactor))

	return updated, nil
}

// GetCard implements ReviewService.GetCard.
func (s *reviewServiceImpl) GetCard(ctx context.Context, cardID uuid.UUID) (*domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	card, err := s.cards.GetByID(ctx, cardID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, reviewError("get_card", "card not found", store.ErrCardNotFound)
		}
		log.Error("failed to retrieve card",
			slog.String("error", err.Error()),
			slog.String("card_id", cardID.String()))
		return nil, reviewError("get_card", "failed to retrieve card", err)
	}
	return card, nil
}
