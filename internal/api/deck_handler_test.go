package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/deckstudy/internal/api"
	"github.com/phrazzld/deckstudy/internal/api/shared"
	"github.com/phrazzld/deckstudy/internal/domain"
	"github.com/phrazzld/deckstudy/internal/mocks"
	"github.com/phrazzld/deckstudy/internal/service"
	"github.com/phrazzld/deckstudy/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeckHandler_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { api.NewDeckHandler(nil, discardLogger()) })
	assert.Panics(t, func() { api.NewDeckHandler(&mocks.MockDeckService{}, nil) })
}

func TestListDecks(t *testing.T) {
	first, second := uuid.New(), uuid.New()
	decks := &mocks.MockDeckService{
		Decks: []domain.DeckSummary{
			{ID: first, Name: "Go", DueCardCount: 2},
			{ID: second, Name: "SQL", DueCardCount: 0},
		},
	}

	rec := do(t, newTestRouter(decks, nil), http.MethodGet, "/api/decks", "")

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[[]api.DeckSummaryResponse](t, rec)
	assert.Equal(t, []api.DeckSummaryResponse{
		{ID: first, Name: "Go", DueCardCount: 2},
		{ID: second, Name: "SQL", DueCardCount: 0},
	}, got)
}

func TestListDecks_EmptyIsArray(t *testing.T) {
	rec := do(t, newTestRouter(&mocks.MockDeckService{}, nil), http.MethodGet, "/api/decks", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListDecks_ServiceError(t *testing.T) {
	decks := &mocks.MockDeckService{DefaultError: errors.New("pq: connection refused at 10.0.0.5")}

	rec := do(t, newTestRouter(decks, nil), http.MethodGet, "/api/decks", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeBody[shared.ErrorResponse](t, rec)
	assert.Equal(t, "An unexpected error occurred", resp.Error)
	assert.NotEmpty(t, resp.TraceID)
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
}

func TestGetDeck(t *testing.T) {
	deck := &domain.Deck{ID: uuid.New(), Name: "Go"}
	decks := &mocks.MockDeckService{
		GetDeckFn: func(_ context.Context, id uuid.UUID) (*domain.Deck, error) {
			if id == deck.ID {
				return deck, nil
			}
			return nil, store.ErrDeckNotFound
		},
	}
	router := newTestRouter(decks, nil)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantError  string
	}{
		{"found", "/api/decks/" + deck.ID.String(), http.StatusOK, ""},
		{"missing", "/api/decks/" + uuid.NewString(), http.StatusNotFound, "Deck not found"},
		{"malformed id", "/api/decks/abc", http.StatusBadRequest, "Invalid ID format"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, router, http.MethodGet, tc.path, "")
			require.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantError != "" {
				assert.Equal(t, tc.wantError, decodeBody[shared.ErrorResponse](t, rec).Error)
				return
			}
			assert.Equal(t, api.DeckResponse{ID: deck.ID, Name: "Go"}, decodeBody[api.DeckResponse](t, rec))
		})
	}
}

func TestDueCards(t *testing.T) {
	deckID := uuid.New()
	reviewDate := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	cards := []domain.Card{
		{
			ID: uuid.New(), DeckID: deckID, Front: "Q1", Back: "A1",
			Schedule: domain.NewSchedule(),
		},
		{
			ID: uuid.New(), DeckID: deckID, Front: "Q2", Back: "A2", Tags: []string{"sql"},
			Schedule: domain.Schedule{
				Status: domain.CardStatusReview, Interval: 3, EaseFactor: 2.36, ReviewDate: &reviewDate,
			},
		},
	}
	decks := &mocks.MockDeckService{
		DueCardsFn: func(_ context.Context, id uuid.UUID) ([]domain.Card, error) {
			assert.Equal(t, deckID, id)
			return cards, nil
		},
	}

	rec := do(t, newTestRouter(decks, nil), http.MethodGet, "/api/decks/"+deckID.String()+"/cards", "")

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[[]api.CardResponse](t, rec)
	require.Len(t, got, 2)
	assert.Equal(t, []string{}, got[0].Tags)
	assert.Nil(t, got[0].ReviewDate)
	require.NotNil(t, got[1].ReviewDate)
	assert.Equal(t, "2024-03-09", *got[1].ReviewDate)

	back, err := got[1].ToDomain()
	require.NoError(t, err)
	assert.Equal(t, cards[1].Schedule, back.Schedule)
}

func TestImportDeck(t *testing.T) {
	deckID := uuid.New()
	var received *domain.DeckImport
	decks := &mocks.MockDeckService{
		ImportFn: func(_ context.Context, doc *domain.DeckImport) (*service.ImportResult, error) {
			received = doc
			return &service.ImportResult{DeckID: deckID, DeckName: doc.Name(), CardCount: len(doc.Cards)}, nil
		},
	}

	body := `{"deck_name": "Go", "cards": [{"front_content": "Q", "back_content": "A"}]}`
	rec := do(t, newTestRouter(decks, nil), http.MethodPost, "/api/import", body)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, api.ImportResponse{
		Message: "Import Successful", DeckID: deckID, DeckName: "Go", CardCount: 1,
	}, decodeBody[api.ImportResponse](t, rec))
	require.NotNil(t, received)
	assert.Equal(t, []string{}, received.Cards[0].Tags)
}

func TestImportDeck_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		importErr  error
		wantStatus int
		wantPrefix string
	}{
		{
			name:       "not json",
			body:       `deck`,
			wantStatus: http.StatusBadRequest,
			wantPrefix: "Invalid request: request must be a valid JSON object",
		},
		{
			name:       "root is array",
			body:       `[]`,
			wantStatus: http.StatusBadRequest,
			wantPrefix: "Invalid request: the root of the JSON must be an object",
		},
		{
			name:       "card missing back",
			body:       `{"deck_name": "Go", "cards": [{"front_content": "Q"}]}`,
			wantStatus: http.StatusBadRequest,
			wantPrefix: "Invalid request: cards[0]",
		},
		{
			name:       "duplicate name",
			body:       `{"deck_name": "Go", "cards": []}`,
			importErr:  store.ErrDeckNameExists,
			wantStatus: http.StatusConflict,
			wantPrefix: "A deck with this name already exists",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			decks := &mocks.MockDeckService{
				ImportFn: func(context.Context, *domain.DeckImport) (*service.ImportResult, error) {
					if tc.importErr == nil {
						t.Fatal("service should not be called for invalid input")
					}
					return nil, tc.importErr
				},
			}
			rec := do(t, newTestRouter(decks, nil), http.MethodPost, "/api/import", tc.body)
			require.Equal(t, tc.wantStatus, rec.Code)
			assert.Contains(t, decodeBody[shared.ErrorResponse](t, rec).Error, tc.wantPrefix)
		})
	}
}

func TestDeleteDeck(t *testing.T) {
	existing := uuid.New()
	decks := &mocks.MockDeckService{
		DeleteDeckFn: func(_ context.Context, id uuid.UUID) error {
			if id == existing {
				return nil
			}
			return store.ErrDeckNotFound
		},
	}
	router := newTestRouter(decks, nil)

	rec := do(t, router, http.MethodDelete, "/api/decks/"+existing.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, decodeBody[shared.MessageResponse](t, rec).Message, existing.String())

	rec = do(t, router, http.MethodDelete, "/api/decks/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
