package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/deckstudy/internal/api/shared"
	"github.com/phrazzld/deckstudy/internal/domain"
	"github.com/phrazzld/deckstudy/internal/platform/logger"
	"github.com/phrazzld/deckstudy/internal/service"
)

// DeckHandler serves the deck endpoints.
type DeckHandler struct {
	decks  service.DeckService
	logger *slog.Logger
}

// NewDeckHandler creates a DeckHandler.
func NewDeckHandler(decks service.DeckService, logger *slog.Logger) *DeckHandler {
	if decks == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("deck service cannot be nil for DeckHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for DeckHandler")
	}
	return &DeckHandler{
		decks:  decks,
		logger: logger.With(slog.String("component", "deck_handler")),
	}
}

// ListDecks handles GET /api/decks.
func (h *DeckHandler) ListDecks(w http.ResponseWriter, r *http.Request) {
	decks, err := h.decks.ListDecks(r.Context())
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	resp := make([]DeckSummaryResponse, 0, len(decks))
	for _, d := range decks {
		resp = append(resp, DeckSummaryResponse{ID: d.ID, Name: d.Name, DueCardCount: d.DueCardCount})
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// GetDeck handles GET /api/decks/{id}.
func (h *DeckHandler) GetDeck(w http.ResponseWriter, r *http.Request) {
	deckID, err := getPathUUID(r, "id")
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	deck, err := h.decks.GetDeck(r.Context(), deckID)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, DeckResponse{ID: deck.ID, Name: deck.Name})
}

// DueCards handles GET /api/decks/{id}/cards.
func (h *DeckHandler) DueCards(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	deckID, err := getPathUUID(r, "id")
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	cards, err := h.decks.DueCards(r.Context(), deckID)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	resp := make([]CardResponse, 0, len(cards))
	for i := range cards {
		resp = append(resp, cardToResponse(&cards[i]))
	}

	log.Debug("returning due cards",
		slog.String("deck_id", deckID.String()),
		slog.Int("card_count", len(resp)))
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// ImportDeck handles POST /api/import.
func (h *DeckHandler) ImportDeck(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, shared.MaxBodyBytes)
	doc, err := domain.ParseDeckImport(body)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	result, err := h.decks.Import(r.Context(), doc)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, ImportResponse{
		Message:   "Import Successful",
		DeckID:    result.DeckID,
		DeckName:  result.DeckName,
		CardCount: result.CardCount,
	})
}

// DeleteDeck handles DELETE /api/decks/{id}.
func (h *DeckHandler) DeleteDeck(w http.ResponseWriter, r *http.Request) {
	deckID, err := getPathUUID(r, "id")
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	if err := h.decks.DeleteDeck(r.Context(), deckID); err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	shared.RespondWithMessage(w, r, http.StatusOK,
		fmt.Sprintf("Deck with id %s deleted successfully.", deckID))
}
