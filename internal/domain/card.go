package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Card-specific validation errors
var (
	// ErrCardIDEmpty is returned when a card ID is empty or nil.
	ErrCardIDEmpty = errors.New("card ID cannot be empty")

	// ErrCardDeckIDEmpty is returned when a card's deck ID is empty or nil.
	ErrCardDeckIDEmpty = errors.New("card deck ID cannot be empty")

	// ErrCardInvalidSchedule is returned when a card's schedule is out of range.
	ErrCardInvalidSchedule = errors.New("card schedule is invalid")
)

// Card is a flashcard belonging to a deck. Front and Back hold raw card
// markup; see package markup for the format.
type Card struct {
	ID     uuid.UUID `json:"id"`
	DeckID uuid.UUID `json:"deck_id"`
	Front  string    `json:"front_content"`
	Back   string    `json:"back_content"`
	Tags   []string  `json:"tags"`
	Schedule
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCard creates a new, never reviewed Card in the given deck.
// Returns an error if validation fails.
func NewCard(deckID uuid.UUID, front, back string, tags []string) (*Card, error) {
	if tags == nil {
		tags = []string{}
	}
	now := time.Now().UTC()
	card := &Card{
		ID:        uuid.New(),
		DeckID:    deckID,
		Front:     front,
		Back:      back,
		Tags:      tags,
		Schedule:  NewSchedule(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}

	return card, nil
}

// Validate checks if the Card has valid data.
func (c *Card) Validate() error {
	if c.ID == uuid.Nil {
		return ErrCardIDEmpty
	}

	if c.DeckID == uuid.Nil {
		return ErrCardDeckIDEmpty
	}

	switch c.Status {
	case CardStatusNew, CardStatusLearning, CardStatusReview:
	default:
		return ErrCardInvalidSchedule
	}

	if c.Interval < 0 || c.EaseFactor <= 0 {
		return ErrCardInvalidSchedule
	}

	return nil
}
