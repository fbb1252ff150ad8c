package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/deckstudy/internal/domain"
	"github.com/phrazzld/deckstudy/internal/service"
)

// MockDeckService implements service.DeckService for testing
type MockDeckService struct {
	// Custom behavior functions
	ListDecksFn  func(ctx context.Context) ([]domain.DeckSummary, error)
	GetDeckFn    func(ctx context.Context, id uuid.UUID) (*domain.Deck, error)
	DueCardsFn   func(ctx context.Context, deckID uuid.UUID) ([]domain.Card, error)
	ImportFn     func(ctx context.Context, doc *domain.DeckImport) (*service.ImportResult, error)
	DeleteDeckFn func(ctx context.Context, id uuid.UUID) error

	// Default return values
	Decks        []domain.DeckSummary
	Deck         *domain.Deck
	Cards        []domain.Card
	Result       *service.ImportResult
	DefaultError error
}

var _ service.DeckService = (*MockDeckService)(nil)

// ListDecks implements the DeckService.ListDecks method
func (m *MockDeckService) ListDecks(ctx context.Context) ([]domain.DeckSummary, error) {
	if m.ListDecksFn != nil {
		return m.ListDecksFn(ctx)
	}
	return m.Decks, m.DefaultError
}

// GetDeck implements the DeckService.GetDeck method
func (m *MockDeckService) GetDeck(ctx context.Context, id uuid.UUID) (*domain.Deck, error) {
	if m.GetDeckFn != nil {
		return m.GetDeckFn(ctx, id)
	}
	return m.Deck, m.DefaultError
}

// DueCards implements the DeckService.DueCards method
func (m *MockDeckService) DueCards(ctx context.Context, deckID uuid.UUID) ([]domain.Card, error) {
	if m.DueCardsFn != nil {
		return m.DueCardsFn(ctx, deckID)
	}
	return m.Cards, m.DefaultError
}

// Import implements the DeckService.Import method
func (m *MockDeckService) Import(ctx context.Context, doc *domain.DeckImport) (*service.ImportResult, error) {
	if m.ImportFn != nil {
		return m.ImportFn(ctx, doc)
	}
	return m.Result, m.DefaultError
}

// DeleteDeck implements the DeckService.DeleteDeck method
func (m *MockDeckService) DeleteDeck(ctx context.Context, id uuid.UUID) error {
	if m.DeleteDeckFn != nil {
		return m.DeleteDeckFn(ctx, id)
	}
	return m.DefaultError
}

// MockReviewService implements service.ReviewService for testing
type MockReviewService struct {
	SubmitFn  func(ctx context.Context, cardID uuid.UUID, rating domain.Rating) (*domain.Card, error)
	GetCardFn func(ctx context.Context, cardID uuid.UUID) (*domain.Card, error)

	Card         *domain.Card
	DefaultError error
}

var _ service.ReviewService = (*MockReviewService)(nil)

// Submit implements the ReviewService.Submit method
func (m *MockReviewService) Submit(ctx context.Context, cardID uuid.UUID, rating domain.Rating) (*domain.Card, error) {
	if m.SubmitFn != nil {
		return m.SubmitFn(ctx, cardID, rating)
	}
	return m.Card, m.DefaultError
}

// GetCard implements the ReviewService.GetCard method
func (m *MockReviewService) GetCard(ctx context.Context, cardID uuid.UUID) (*domain.Card, error) {
	if m.GetCardFn != nil {
		return m.GetCardFn(ctx, cardID)
	}
	return m.Card, m.DefaultError
}
