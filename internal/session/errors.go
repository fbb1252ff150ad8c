package session

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/phrazzld/deckstudy/internal/domain"
)

// Common session errors
var (
	// ErrMissingSessionParameter is returned when no deck identifier was given.
	ErrMissingSessionParameter = errors.New("missing session parameter: deck id is required")

	// ErrInvalidSessionParameter is returned when the deck identifier is malformed.
	ErrInvalidSessionParameter = errors.New("invalid session parameter: deck id")

	// ErrAlreadyStarted is returned when a session is started twice.
	ErrAlreadyStarted = errors.New("session already started")

	// ErrRatingUnavailable is returned when Rate is called before the current
	// card is revealed, while a submission is in flight, or after the session ended.
	ErrRatingUnavailable = errors.New("rating is not available")
)

// SubmitError is a recoverable failure to submit a rating. The session stays
// on the card and the rating can be retried.
type SubmitError struct {
	CardID uuid.UUID
	Rating domain.Rating
	Err    error
}

// Error implements the error interface.
func (e *SubmitError) Error() string {
	return fmt.Sprintf("failed to submit %s rating for card %s: %v", e.Rating, e.CardID, e.Err)
}

// Unwrap returns the underlying error.
func (e *SubmitError) Unwrap() error {
	return e.Err
}
