package api_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/deckstudy/internal/api"
	"github.com/phrazzld/deckstudy/internal/api/middleware"
	"github.com/phrazzld/deckstudy/internal/mocks"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestRouter mounts the handlers the same way the server does.
func newTestRouter(decks *mocks.MockDeckService, reviews *mocks.MockReviewService) http.Handler {
	if decks == nil {
		decks = &mocks.MockDeckService{}
	}
	if reviews == nil {
		reviews = &mocks.MockReviewService{}
	}
	deckHandler := api.NewDeckHandler(decks, discardLogger())
	cardHandler := api.NewCardHandler(reviews, nil, discardLogger())

	r := chi.NewRouter()
	r.Use(middleware.Trace(discardLogger()))
	r.Route("/api", func(r chi.Router) {
		r.Get("/decks", deckHandler.ListDecks)
		r.Get("/decks/{id}", deckHandler.GetDeck)
		r.Get("/decks/{id}/cards", deckHandler.DueCards)
		r.Delete("/decks/{id}", deckHandler.DeleteDeck)
		r.Post("/import", deckHandler.ImportDeck)
		r.Post("/cards/review", cardHandler.SubmitReview)
		r.Get("/cards/{id}/preview", cardHandler.PreviewCard)
	})
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequestWithContext(context.Background(), method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}
