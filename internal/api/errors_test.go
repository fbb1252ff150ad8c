package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/phrazzld/deckstudy/internal/api/shared"
	"github.com/phrazzld/deckstudy/internal/domain"
	"github.com/phrazzld/deckstudy/internal/domain/srs"
	"github.com/phrazzld/deckstudy/internal/service"
	"github.com/phrazzld/deckstudy/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"deck not found", store.ErrDeckNotFound, http.StatusNotFound},
		{"wrapped card not found", service.NewServiceError("review", "submit", "x", store.ErrCardNotFound), http.StatusNotFound},
		{"duplicate name", fmt.Errorf("%w: %q", store.ErrDeckNameExists, "Go"), http.StatusConflict},
		{"invalid rating", domain.ErrInvalidRating, http.StatusBadRequest},
		{"srs invalid rating", srs.ErrInvalidRating, http.StatusBadRequest},
		{"invalid import", service.ErrInvalidImport, http.StatusBadRequest},
		{"validation", domain.NewValidationError("deck_name", "must be a non-empty string", nil), http.StatusBadRequest},
		{"empty body", shared.ErrEmptyBody, http.StatusBadRequest},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
		{"transaction", store.ErrTransactionFailed, http.StatusInternalServerError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, "An unexpected error occurred"},
		{"deck not found", store.ErrDeckNotFound, "Deck not found"},
		{"card not found", store.ErrCardNotFound, "Card not found"},
		{"generic not found", store.ErrNotFound, "Resource not found"},
		{"duplicate name", store.ErrDeckNameExists, "A deck with this name already exists"},
		{"invalid rating", domain.ErrInvalidRating, "Invalid rating: must be 'again', 'good', or 'easy'"},
		{"invalid id", domain.NewValidationError("id", "has invalid format", domain.ErrInvalidID), "Invalid ID format"},
		{
			"validation passes through",
			domain.NewValidationError("cards[2]", "is missing 'back_content'", nil),
			"Invalid request: cards[2] is missing 'back_content'",
		},
		{"internal details hidden", errors.New("pq: password authentication failed"), "An unexpected error occurred"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, GetSafeErrorMessage(tc.err))
		})
	}
}
