package api

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/phrazzld/deckstudy/internal/api/shared"
	"github.com/phrazzld/deckstudy/internal/domain"
	"github.com/phrazzld/deckstudy/internal/platform/logger"
	"github.com/phrazzld/deckstudy/internal/render"
	"github.com/phrazzld/deckstudy/internal/service"
)

// CardHandler serves the card endpoints.
type CardHandler struct {
	reviews  service.ReviewService
	renderer *render.Renderer
	logger   *slog.Logger
}

// NewCardHandler creates a CardHandler. renderer is used by the preview
// endpoint; nil selects a renderer without syntax highlighting.
func NewCardHandler(reviews service.ReviewService, renderer *render.Renderer, logger *slog.Logger) *CardHandler {
	if reviews == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("review service cannot be nil for CardHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CardHandler")
	}
	if renderer == nil {
		renderer = render.NewRenderer(render.WithLogger(logger))
	}
	return &CardHandler{
		reviews:  reviews,
		renderer: renderer,
		logger:   logger.With(slog.String("component", "card_handler")),
	}
}

// SubmitReview handles POST /api/cards/review.
func (h *CardHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req ReviewRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest,
			"Request must be JSON with 'card_id' and 'rating' fields.", err)
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, shared.ValidationMessage(err), err)
		return
	}

	cardID, err := uuid.Parse(req.CardID)
	if err != nil {
		respondWithServiceError(w, r, domain.NewValidationError("card_id", "has invalid format", domain.ErrInvalidID))
		return
	}
	card, err := h.reviews.Submit(r.Context(), cardID, domain.Rating(req.Rating))
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	log.Debug("review recorded",
		slog.String("card_id", cardID.String()),
		slog.String("rating", req.Rating))

	shared.RespondWithJSON(w, r, http.StatusOK, ReviewResponse{
		Message:  "Card review updated successfully.",
		CardID:   cardID,
		NewState: scheduleToResponse(card.Schedule),
	})
}

// PreviewCard handles GET /api/cards/{id}/preview, rendering both sides of
// the card to sanitized HTML.
func (h *CardHandler) PreviewCard(w http.ResponseWriter, r *http.Request) {
	cardID, err := getPathUUID(r, "id")
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	card, err := h.reviews.GetCard(r.Context(), cardID)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, PreviewResponse{
		ID:        card.ID,
		FrontHTML: render.HTML(h.renderer.RenderText(card.Front)),
		BackHTML:  render.HTML(h.renderer.RenderText(card.Back)),
	})
}
