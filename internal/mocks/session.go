package mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/deckstudy/internal/domain"
)

// MockCardSource implements session.CardSource for testing
type MockCardSource struct {
	// Custom behavior functions
	FetchDeckMetaFn func(ctx context.Context, deckID string) (domain.DeckMeta, error)
	FetchDueCardsFn func(ctx context.Context, deckID string) ([]domain.Card, error)

	// Default response values
	Meta     domain.DeckMeta
	MetaErr  error
	Cards    []domain.Card
	CardsErr error

	// Call tracking for verification
	mu                 sync.Mutex
	FetchDeckMetaCalls []string
	FetchDueCardsCalls []string
}

// FetchDeckMeta implements the session.CardSource interface
func (m *MockCardSource) FetchDeckMeta(ctx context.Context, deckID string) (domain.DeckMeta, error) {
	m.mu.Lock()
	m.FetchDeckMetaCalls = append(m.FetchDeckMetaCalls, deckID)
	m.mu.Unlock()

	if m.FetchDeckMetaFn != nil {
		return m.FetchDeckMetaFn(ctx, deckID)
	}
	return m.Meta, m.MetaErr
}

// FetchDueCards implements the session.CardSource interface
func (m *MockCardSource) FetchDueCards(ctx context.Context, deckID string) ([]domain.Card, error) {
	m.mu.Lock()
	m.FetchDueCardsCalls = append(m.FetchDueCardsCalls, deckID)
	m.mu.Unlock()

	if m.FetchDueCardsFn != nil {
		return m.FetchDueCardsFn(ctx, deckID)
	}
	return m.Cards, m.CardsErr
}

// ReviewCall records one SubmitReview invocation.
type ReviewCall struct {
	CardID uuid.UUID
	Rating domain.Rating
}

// MockReviewSubmitter implements session.ReviewSubmitter for testing
type MockReviewSubmitter struct {
	// Custom behavior function
	SubmitReviewFn func(ctx context.Context, cardID uuid.UUID, rating domain.Rating) error

	// Default response value
	Err error

	mu    sync.Mutex
	calls []ReviewCall
}

// SubmitReview implements the session.ReviewSubmitter interface
func (m *MockReviewSubmitter) SubmitReview(ctx context.Context, cardID uuid.UUID, rating domain.Rating) error {
	m.mu.Lock()
	m.calls = append(m.calls, ReviewCall{CardID: cardID, Rating: rating})
	m.mu.Unlock()

	if m.SubmitReviewFn != nil {
		return m.SubmitReviewFn(ctx, cardID, rating)
	}
	return m.Err
}

// Calls returns a copy of the recorded calls.
func (m *MockReviewSubmitter) Calls() []ReviewCall {
	m.mu.Lock()
	defer m.mu.Unlock()

	calls := make([]ReviewCall, len(m.calls))
	copy(calls, m.calls)
	return calls
}
