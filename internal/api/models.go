package api

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/deckstudy/internal/domain"
)

// DateLayout is the wire format of review dates.
const DateLayout = "2006-01-02"

// DeckSummaryResponse is one entry of GET /api/decks.
type DeckSummaryResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	DueCardCount int       `json:"due_card_count"`
}

// DeckResponse is the body of GET /api/decks/{id}.
type DeckResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ScheduleResponse is a card's scheduling state on the wire.
type ScheduleResponse struct {
	Status     domain.CardStatus `json:"status"`
	Interval   int               `json:"interval"`
	EaseFactor float64           `json:"ease_factor"`
	ReviewDate *string           `json:"review_date"`
}

// CardResponse is a card on the wire.
type CardResponse struct {
	ID     uuid.UUID `json:"id"`
	DeckID uuid.UUID `json:"deck_id"`
	Front  string    `json:"front_content"`
	Back   string    `json:"back_content"`
	Tags   []string  `json:"tags"`
	ScheduleResponse
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ImportResponse is the 201 body of POST /api/import.
type ImportResponse struct {
	Message   string    `json:"message"`
	DeckID    uuid.UUID `json:"deck_id"`
	DeckName  string    `json:"deck_name"`
	CardCount int       `json:"card_count"`
}

// ReviewRequest is the body of POST /api/cards/review.
type ReviewRequest struct {
	CardID string `json:"card_id" validate:"required,uuid"`
	Rating string `json:"rating" validate:"required"`
}

// ReviewResponse is the body of a successful review submission.
type ReviewResponse struct {
	Message  string           `json:"message"`
	CardID   uuid.UUID        `json:"card_id"`
	NewState ScheduleResponse `json:"new_state"`
}

// PreviewResponse carries sanitized HTML renderings of both card sides.
type PreviewResponse struct {
	ID        uuid.UUID `json:"id"`
	FrontHTML string    `json:"front_html"`
	BackHTML  string    `json:"back_html"`
}

func scheduleToResponse(s domain.Schedule) ScheduleResponse {
	resp := ScheduleResponse{
		Status:     s.Status,
		Interval:   s.Interval,
		EaseFactor: s.EaseFactor,
	}
	if s.ReviewDate != nil {
		d := s.ReviewDate.UTC().Format(DateLayout)
		resp.ReviewDate = &d
	}
	return resp
}

// ToDomain parses the wire schedule back into a domain.Schedule.
func (r ScheduleResponse) ToDomain() (domain.Schedule, error) {
	s := domain.Schedule{
		Status:     r.Status,
		Interval:   r.Interval,
		EaseFactor: r.EaseFactor,
	}
	if r.ReviewDate != nil {
		d, err := time.Parse(DateLayout, *r.ReviewDate)
		if err != nil {
			return domain.Schedule{}, fmt.Errorf("%w: review_date %q", domain.ErrInvalidFormat, *r.ReviewDate)
		}
		s.ReviewDate = &d
	}
	return s, nil
}

func cardToResponse(c *domain.Card) CardResponse {
	tags := c.Tags
	if tags == nil {
		tags = []string{}
	}
	return CardResponse{
		ID:               c.ID,
		DeckID:           c.DeckID,
		Front:            c.Front,
		Back:             c.Back,
		Tags:             tags,
		ScheduleResponse: scheduleToResponse(c.Schedule),
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

// ToDomain converts a wire card into a domain.Card.
func (r CardResponse) ToDomain() (domain.Card, error) {
	schedule, err := r.ScheduleResponse.ToDomain()
	if err != nil {
		return domain.Card{}, err
	}
	return domain.Card{
		ID:        r.ID,
		DeckID:    r.DeckID,
		Front:     r.Front,
		Back:      r.Back,
		Tags:      r.Tags,
		Schedule:  schedule,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}, nil
}
