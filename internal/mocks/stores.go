package mocks

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/deckstudy/internal/domain"
	"github.com/phrazzld/deckstudy/internal/store"
)

// MockDeckStore implements store.DeckStore for testing.
// WithTx returns the same mock so expectations hold inside transactions.
type MockDeckStore struct {
	ListFn      func(ctx context.Context, now time.Time) ([]domain.DeckSummary, error)
	GetByIDFn   func(ctx context.Context, id uuid.UUID) (*domain.Deck, error)
	GetByNameFn func(ctx context.Context, name string) (*domain.Deck, error)
	CreateFn    func(ctx context.Context, deck *domain.Deck) error
	DeleteFn    func(ctx context.Context, id uuid.UUID) error

	// Records each deck passed to Create
	Created []*domain.Deck
	// Number of WithTx calls
	TxCount int
}

var _ store.DeckStore = (*MockDeckStore)(nil)

// List implements store.DeckStore.
func (m *MockDeckStore) List(ctx context.Context, now time.Time) ([]domain.DeckSummary, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, now)
	}
	return []domain.DeckSummary{}, nil
}

// GetByID implements store.DeckStore.
func (m *MockDeckStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Deck, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrDeckNotFound
}

// GetByName implements store.DeckStore.
func (m *MockDeckStore) GetByName(ctx context.Context, name string) (*domain.Deck, error) {
	if m.GetByNameFn != nil {
		return m.GetByNameFn(ctx, name)
	}
	return nil, store.ErrDeckNotFound
}

// Create implements store.DeckStore.
func (m *MockDeckStore) Create(ctx context.Context, deck *domain.Deck) error {
	m.Created = append(m.Created, deck)
	if m.CreateFn != nil {
		return m.CreateFn(ctx, deck)
	}
	return nil
}

// Delete implements store.DeckStore.
func (m *MockDeckStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

// WithTx implements store.DeckStore.
func (m *MockDeckStore) WithTx(*sql.Tx) store.DeckStore {
	m.TxCount++
	return m
}

// MockCardStore implements store.CardStore for testing.
type MockCardStore struct {
	CreateMultipleFn func(ctx context.Context, cards []*domain.Card) error
	GetByIDFn        func(ctx context.Context, id uuid.UUID) (*domain.Card, error)
	ListDueFn        func(ctx context.Context, deckID uuid.UUID, now time.Time) ([]domain.Card, error)
	UpdateScheduleFn func(ctx context.Context, id uuid.UUID, schedule domain.Schedule) error

	// Records the cards passed to CreateMultiple
	Created []*domain.Card
	// Records each schedule passed to UpdateSchedule, keyed by card
	Updated map[uuid.UUID]domain.Schedule
	TxCount int
}

var _ store.CardStore = (*MockCardStore)(nil)

// CreateMultiple implements store.CardStore.
func (m *MockCardStore) CreateMultiple(ctx context.Context, cards []*domain.Card) error {
	m.Created = append(m.Created, cards...)
	if m.CreateMultipleFn != nil {
		return m.CreateMultipleFn(ctx, cards)
	}
	return nil
}

// GetByID implements store.CardStore.
func (m *MockCardStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrCardNotFound
}

// ListDue implements store.CardStore.
func (m *MockCardStore) ListDue(ctx context.Context, deckID uuid.UUID, now time.Time) ([]domain.Card, error) {
	if m.ListDueFn != nil {
		return m.ListDueFn(ctx, deckID, now)
	}
	return []domain.Card{}, nil
}

// UpdateSchedule implements store.CardStore.
func (m *MockCardStore) UpdateSchedule(ctx context.Context, id uuid.UUID, schedule domain.Schedule) error {
	if m.Updated == nil {
		m.Updated = make(map[uuid.UUID]domain.Schedule)
	}
	m.Updated[id] = schedule
	if m.UpdateScheduleFn != nil {
		return m.UpdateScheduleFn(ctx, id, schedule)
	}
	return nil
}

// WithTx implements store.CardStore.
func (m *MockCardStore) WithTx(*sql.Tx) store.CardStore {
	m.TxCount++
	return m
}
