package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

// DeckImport is the JSON document accepted by the import flow:
//
//	{"deck_name": "...", "cards": [{"front_content": "...", "back_content": "...", "tags": ["..."]}]}
//
// Pointer fields distinguish a missing key from an empty value.
type DeckImport struct {
	DeckName *string      `json:"deck_name"`
	Cards    []CardImport `json:"cards"`
}

// CardImport is one card of a DeckImport.
type CardImport struct {
	Front *string  `json:"front_content"`
	Back  *string  `json:"back_content"`
	Tags  []string `json:"tags"`
}

// ParseDeckImport decodes and validates an import document.
// Returned errors wrap ErrValidation.
func ParseDeckImport(r io.Reader) (*DeckImport, error) {
	var raw json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, NewValidationError("", "request must be a valid JSON object", ErrInvalidFormat)
	}

	if trimmed := strings.TrimSpace(string(raw)); !strings.HasPrefix(trimmed, "{") {
		return nil, NewValidationError("", "the root of the JSON must be an object", ErrValidation)
	}

	var doc DeckImport
	if err := json.Unmarshal(raw, &doc); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, NewValidationError(typeErr.Field,
				fmt.Sprintf("must be of type %s", typeErr.Type), ErrValidation)
		}
		return nil, NewValidationError("", "request must be a valid JSON object", ErrInvalidFormat)
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate checks the document structure and normalizes it in place:
// the deck name is trimmed and missing tags become an empty list.
func (d *DeckImport) Validate() error {
	if d.DeckName == nil || strings.TrimSpace(*d.DeckName) == "" {
		return NewValidationError("deck_name", "must be a non-empty string", ErrValidation)
	}
	name := strings.TrimSpace(*d.DeckName)
	d.DeckName = &name

	if d.Cards == nil {
		return NewValidationError("cards", "must be a list", ErrValidation)
	}

	for i := range d.Cards {
		card := &d.Cards[i]
		field := fmt.Sprintf("cards[%d]", i)
		if card.Front == nil {
			return NewValidationError(field, "is missing 'front_content'", ErrValidation)
		}
		// back_content is required even when empty
		if card.Back == nil {
			return NewValidationError(field, "is missing 'back_content'", ErrValidation)
		}
		if card.Tags == nil {
			card.Tags = []string{}
		}
	}
	return nil
}

// Name returns the normalized deck name. Only meaningful after Validate.
func (d *DeckImport) Name() string {
	if d.DeckName == nil {
		return ""
	}
	return *d.DeckName
}

// NewCards builds new, unscheduled cards for deckID from the document.
func (d *DeckImport) NewCards(deckID uuid.UUID) ([]*Card, error) {
	cards := make([]*Card, 0, len(d.Cards))
	for i, ci := range d.Cards {
		if ci.Front == nil || ci.Back == nil {
			return nil, NewValidationError(fmt.Sprintf("cards[%d]", i), "is incomplete", ErrValidation)
		}
		card, err := NewCard(deckID, *ci.Front, *ci.Back, ci.Tags)
		if err != nil {
			return nil, fmt.Errorf("card at index %d: %w", i, err)
		}
		cards = append(cards, card)
	}
	return cards, nil
}
