package service

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

// ImportResult describes a successfully imported deck.
type ImportResult struct {
	DeckID    uuid.UUID
	DeckName  string
	CardCount int
}

// DeckService provides deck-level operations.
type DeckService interface {
	// ListDecks returns every deck with its count of due cards, ordered by name.
	ListDecks(ctx context.Context) ([]domain.DeckSummary, error)

	// GetDeck returns the deck or an error wrapping store.ErrDeckNotFound.
	GetDeck(ctx context.Context, id uuid.UUID) (*domain.Deck, error)

	// DueCards returns the cards of a deck that are new or whose review date
	// is today or earlier.
	DueCards(ctx context.Context, deckID uuid.UUID) ([]domain.Card, error)

	// Import validates doc and creates the deck and all of its cards in a
	// single transaction. A deck with the same name yields an error wrapping
	// store.ErrDuplicate.
	Import(ctx context.Context, doc *domain.DeckImport) (*ImportResult, error)

	// DeleteDeck removes a deck and, through the foreign key, its cards.
	DeleteDeck(ctx context.Context, id uuid.UUID) error
}

type deckServiceImpl struct {
	db     *sql.DB
	decks  store.DeckStore
	cards  store.CardStore
	clock  func() time.Time
	logger *slog.Logger
}

var _ DeckService = (*deckServiceImpl)(nil)

// NewDeckService creates a DeckService. db is used to open the import
// transaction; the stores are rebound to it with WithTx.
func NewDeckService(
	db *sql.DB,
	decks store.DeckStore,
	cards store.CardStore,
	logger *slog.Logger,
	opts ...Option,
) (DeckService, error) {
	if db == nil {
		return nil, domain.NewValidationError("db", "cannot be nil", ErrNilDependency)
	}
	if decks == nil {
		return nil, domain.NewValidationError("decks", "cannot be nil", ErrNilDependency)
	}
	if cards == nil {
		return nil, domain.NewValidationError("cards", "cannot be nil", ErrNilDependency)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &deckServiceImpl{
		db:     db,
		decks:  decks,
		cards:  cards,
		clock:  newOptions(opts).clock,
		logger: logger.With(slog.String("component", "deck_service")),
	}, nil
}

// ListDecks implements DeckService.ListDecks.
func (s *deckServiceImpl) ListDecks(ctx context.Context) ([]domain.DeckSummary, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	decks, err := s.decks.List(ctx, s.clock())
	if err != nil {
		log.Error("failed to list decks", slog.String("error", err.Error()))
		return nil, deckError("list", "failed to list decks", err)
	}

	log.Debug("listed decks", slog.Int("deck_count", len(decks)))
	return decks, nil
}

// GetDeck implements DeckService.GetDeck.
func (s *deckServiceImpl) GetDeck(ctx context.Context, id uuid.UUID) (*domain.Deck, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	deck, err := s.decks.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("deck not found", slog.String("deck_id", id.String()))
			return nil, deckError("get", "deck not found", store.ErrDeckNotFound)
		}
		log.Error("failed to retrieve deck",
			slog.String("error", err.Error()),
			slog.String("deck_id", id.String()))
		return nil, deckError("get", "failed to retrieve deck", err)
	}
	return deck, nil
}

// DueCards implements DeckService.DueCards.
func (s *deckServiceImpl) DueCards(ctx context.Context, deckID uuid.UUID) ([]domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.GetDeck(ctx, deckID); err != nil {
		return nil, err
	}

	cards, err := s.cards.ListDue(ctx, deckID, s.clock())
	if err != nil {
		log.Error("failed to list due cards",
			slog.String("error", err.Error()),
			slog.String("deck_id", deckID.String()))
		return nil, deckError("due_cards", "failed to list due cards", err)
	}

	log.Debug("listed due cards",
		slog.String("deck_id", deckID.String()),
		slog.Int("card_count", len(cards)))
	return cards, nil
}

// Import implements DeckService.Import.
func (s *deckServiceImpl) Import(ctx context.Context, doc *domain.DeckImport) (*ImportResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if doc == nil {
		return nil, deckError("import", "missing import document", ErrInvalidImport)
	}
	if err := doc.Validate(); err != nil {
		log.Debug("rejected deck import", slog.String("error", err.Error()))
		return nil, deckError("import", "invalid import document", fmt.Errorf("%w: %w", ErrInvalidImport, err))
	}

	deck, err := domain.NewDeck(doc.Name())
	if err != nil {
		return nil, deckError("import", "invalid deck name", fmt.Errorf("%w: %w", ErrInvalidImport, err))
	}

	cards, err := doc.NewCards(deck.ID)
	if err != nil {
		return nil, deckError("import", "invalid cards", fmt.Errorf("%w: %w", ErrInvalidImport, err))
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txDecks := s.decks.WithTx(tx)
		txCards := s.cards.WithTx(tx)

		if _, err := txDecks.GetByName(ctx, deck.Name); err == nil {
			return fmt.Errorf("%w: %q", store.ErrDeckNameExists, deck.Name)
		} else if !store.IsNotFoundError(err) {
			return fmt.Errorf("failed to check deck name: %w", err)
		}

		if err := txDecks.Create(ctx, deck); err != nil {
			return err
		}

		if len(cards) == 0 {
			return nil
		}
		return txCards.CreateMultiple(ctx, cards)
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			log.Info("deck import rejected: name exists", slog.String("deck_name", deck.Name))
			return nil, deckError("import", "deck name already exists", err)
		}
		log.Error("failed to import deck",
			slog.String("error", err.Error()),
			slog.String("deck_name", deck.Name))
		return nil, deckError("import", "failed to save deck", err)
	}

	log.Info("imported deck",
		slog.String("deck_id", deck.ID.String()),
		slog.String("deck_name", deck.Name),
		slog.Int("card_count", len(cards)))

	return &ImportResult{
		DeckID:    deck.ID,
		DeckName:  deck.Name,
		CardCount: len(cards),
	}, nil
}

// DeleteDeck implements DeckService.DeleteDeck.
func (s *deckServiceImpl) DeleteDeck(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.decks.Delete(ctx, id); err != nil {
		if store.IsNotFoundError(err) {
			return deckError("delete", "deck not found", store.ErrDeckNotFound)
		}
		log.Error("failed to delete deck",
			slog.String("error", err.Error()),
			slog.String("deck_id", id.String()))
		return deckError("delete", "failed to delete deck", err)
	}

	log.Info("deleted deck", slog.String("deck_id", id.String()))
	return nil
}
