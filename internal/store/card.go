package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/deckstudy/internal/domain"
)

// CardStore defines the interface for card data persistence.
type CardStore interface {
	// CreateMultiple saves multiple cards to the store.
	// It should run within a transaction; use WithTx with RunInTransaction:
	//
	//   err := store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
	//       return cardStore.WithTx(tx).CreateMultiple(ctx, cards)
	//   })
	CreateMultiple(ctx context.Context, cards []*domain.Card) error

	// GetByID retrieves a card by its ID.
	// Returns ErrCardNotFound if the card does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error)

	// ListDue returns the cards of a deck that are new or whose review date
	// is on or before the day containing now.
	ListDue(ctx context.Context, deckID uuid.UUID, now time.Time) ([]domain.Card, error)

	// UpdateSchedule stores a card's new schedule.
	// Returns ErrCardNotFound if the card does not exist.
	UpdateSchedule(ctx context.Context, id uuid.UUID, schedule domain.Schedule) error

	// WithTx returns a CardStore that runs its queries in tx.
	WithTx(tx *sql.Tx) CardStore
}
