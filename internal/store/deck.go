package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/deckstudy/internal/domain"
)

// DeckStore defines the interface for deck data persistence.
type DeckStore interface {
	// List returns every deck with the number of cards due on the day
	// containing now, ordered by name.
	List(ctx context.Context, now time.Time) ([]domain.DeckSummary, error)

	// GetByID retrieves a deck by its ID.
	// Returns ErrDeckNotFound if the deck does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Deck, error)

	// GetByName retrieves a deck by its exact name.
	// Returns ErrDeckNotFound if no deck has that name.
	GetByName(ctx context.Context, name string) (*domain.Deck, error)

	// Create saves a new deck.
	// Returns ErrDeckNameExists if the name is taken.
	Create(ctx context.Context, deck *domain.Deck) error

	// Delete removes a deck and, through ON DELETE CASCADE, its cards.
	// Returns ErrDeckNotFound if the deck does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a DeckStore that runs its queries in tx.
	WithTx(tx *sql.Tx) DeckStore
}
