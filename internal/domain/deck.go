package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Deck-specific validation errors
var (
	// ErrDeckNameEmpty is returned when a deck name is blank.
	ErrDeckNameEmpty = errors.New("deck name cannot be empty")
)

// Deck is a named collection of cards.
type Deck struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// DeckMeta is the subset of deck information used to label a study session.
type DeckMeta struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// DeckSummary is a deck together with the number of cards currently due.
type DeckSummary struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	DueCardCount int       `json:"due_card_count"`
}

// NewDeck creates a deck with a trimmed, non-empty name.
func NewDeck(name string) (*Deck, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrDeckNameEmpty
	}
	return &Deck{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Meta returns the labelling subset of the deck.
func (d *Deck) Meta() DeckMeta {
	return DeckMeta{ID: d.ID, Name: d.Name}
}
