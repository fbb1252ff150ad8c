// Package srs implements the spaced repetition scheduler: given a card's
// current schedule and a rating it computes the next interval, ease factor,
// status and review date (a simplified SM-2).
package srs

import (
	"errors"
	"time"

	"github.com/phrazzld/deckstudy/internal/domain"
)

// Common errors
var (
	ErrInvalidRating = errors.New("invalid rating: must be 'again', 'good', or 'easy'")
	ErrNilParams     = errors.New("srs params cannot be nil")
)

// Service defines the interface for SRS algorithm operations
type Service interface {
	// CalculateNextReview computes the schedule that follows a review with the given rating.
	CalculateNextReview(
		schedule domain.Schedule,
		rating domain.Rating,
		now time.Time,
	) (domain.Schedule, error)
}

// defaultService is the standard implementation of the Service interface
type defaultService struct {
	params *Params
}

// NewDefaultService creates a new SRS service with default parameters
func NewDefaultService() (Service, error) {
	return NewServiceWithParams(NewDefaultParams())
}

// NewServiceWithParams creates a new SRS service with custom parameters
func NewServiceWithParams(params *Params) (Service, error) {
	if params == nil {
		return nil, ErrNilParams
	}
	return &defaultService{params: params}, nil
}

// CalculateNextReview implements the Service interface
func (s *defaultService) CalculateNextReview(
	schedule domain.Schedule,
	rating domain.Rating,
	now time.Time,
) (domain.Schedule, error) {
	if !rating.Valid() {
		return domain.Schedule{}, ErrInvalidRating
	}
	return calculateNextSchedule(schedule, rating, now, s.params), nil
}
