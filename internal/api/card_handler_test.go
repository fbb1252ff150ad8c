package api_test

import (
	"context"
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

func TestNewCardHandler_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { api.NewCardHandler(nil, nil, discardLogger()) })
	assert.Panics(t, func() { api.NewCardHandler(&mocks.MockReviewService{}, nil, nil) })
}

func TestSubmitReview(t *testing.T) {
	cardID := uuid.New()
	reviewDate := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	reviews := &mocks.MockReviewService{
		SubmitFn: func(_ context.Context, id uuid.UUID, rating domain.Rating) (*domain.Card, error) {
			assert.Equal(t, cardID, id)
			assert.Equal(t, domain.RatingGood, rating)
			return &domain.Card{ID: id, Schedule: domain.Schedule{
				Status: domain.CardStatusReview, Interval: 1, EaseFactor: 2.5, ReviewDate: &reviewDate,
			}}, nil
		},
	}

	body := `{"card_id": "` + cardID.String() + `", "rating": "good"}`
	rec := do(t, newTestRouter(nil, reviews), http.MethodPost, "/api/cards/review", body)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[api.ReviewResponse](t, rec)
	assert.Equal(t, "Card review updated successfully.", resp.Message)
	assert.Equal(t, cardID, resp.CardID)
	assert.Equal(t, domain.CardStatusReview, resp.NewState.Status)
	assert.Equal(t, 1, resp.NewState.Interval)
	require.NotNil(t, resp.NewState.ReviewDate)
	assert.Equal(t, "2024-03-11", *resp.NewState.ReviewDate)
}

func TestSubmitReview_Errors(t *testing.T) {
	cardID := uuid.NewString()
	tests := []struct {
		name       string
		body       string
		submitErr  error
		wantStatus int
		wantError  string
	}{
		{"empty body", "", nil, http.StatusBadRequest, "Request must be JSON with 'card_id' and 'rating' fields."},
		{"missing rating", `{"card_id": "` + cardID + `"}`, nil, http.StatusBadRequest, "Invalid request: rating: required field"},
		{"bad card id", `{"card_id": "12", "rating": "good"}`, nil, http.StatusBadRequest, "Invalid request: card_id: must be a UUID"},
		{
			"invalid rating", `{"card_id": "` + cardID + `", "rating": "hard"}`,
			service.NewServiceError("review", "submit", "invalid rating", domain.ErrInvalidRating),
			http.StatusBadRequest, "Invalid rating: must be 'again', 'good', or 'easy'",
		},
		{
			"unknown card", `{"card_id": "` + cardID + `", "rating": "easy"}`,
			store.ErrCardNotFound, http.StatusNotFound, "Card not found",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			reviews := &mocks.MockReviewService{DefaultError: tc.submitErr}
			rec := do(t, newTestRouter(nil, reviews), http.MethodPost, "/api/cards/review", tc.body)
			require.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantError, decodeBody[shared.ErrorResponse](t, rec).Error)
		})
	}
}

func TestPreviewCard(t *testing.T) {
	card := &domain.Card{
		ID:    uuid.New(),
		Front: "What does `<script>` do?",
		Back:  "[TABLE]a|b\n1|2[/TABLE]",
	}
	reviews := &mocks.MockReviewService{Card: card}

	rec := do(t, newTestRouter(nil, reviews), http.MethodGet, "/api/cards/"+card.ID.String()+"/preview", "")

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[api.PreviewResponse](t, rec)
	assert.Equal(t, card.ID, resp.ID)
	assert.Contains(t, resp.FrontHTML, "<code>")
	assert.NotContains(t, resp.FrontHTML, "<script>")
	assert.Contains(t, resp.BackHTML, "<table>")
}

func TestPreviewCard_NotFound(t *testing.T) {
	reviews := &mocks.MockReviewService{DefaultError: store.ErrCardNotFound}

	rec := do(t, newTestRouter(nil, reviews), http.MethodGet, "/api/cards/"+uuid.NewString()+"/preview", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
