package srs

import "github.com/phrazzld/deckstudy/internal/domain"

// Params defines all configurable parameters for the SRS algorithm
type Params struct {
	// Core limits
	DefaultEaseFactor float64
	MinEaseFactor     float64

	// Ease factor adjustments
	AgainPenalty float64 // subtracted on "again"
	EasyBonus    float64 // added on "easy"

	// Interval growth
	EasyMultiplier float64 // applied on top of the ease factor for "easy"

	// Intervals (days) used when a card graduates from new/learning
	GraduatingIntervals map[domain.Rating]int

	// Interval clamp (days)
	MinIntervalDays int
	MaxIntervalDays int
}

// ParamsConfig allows overriding the default parameters when creating a new Params instance.
// Zero values keep the default.
type ParamsConfig struct {
	DefaultEaseFactor float64
	MinEaseFactor     float64
	AgainPenalty      float64
	EasyBonus         float64
	EasyMultiplier    float64
	MaxIntervalDays   int
}

// NewDefaultParams creates a new Params instance with default values
func NewDefaultParams() *Params {
	return &Params{
		DefaultEaseFactor: domain.DefaultEaseFactor,
		MinEaseFactor:     1.3,

		AgainPenalty: 0.20,
		EasyBonus:    0.15,

		// Anki's "easy bonus"
		EasyMultiplier: 1.3,

		GraduatingIntervals: map[domain.Rating]int{
			domain.RatingAgain: 1,
			domain.RatingGood:  1,
			domain.RatingEasy:  4,
		},

		MinIntervalDays: 1,
		// roughly 100 years
		MaxIntervalDays: 36500,
	}
}

// NewParams creates a new Params instance with custom configuration
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	if config.DefaultEaseFactor > 0 {
		params.DefaultEaseFactor = config.DefaultEaseFactor
	}
	if config.MinEaseFactor > 0 {
		params.MinEaseFactor = config.MinEaseFactor
	}
	if config.AgainPenalty > 0 {
		params.AgainPenalty = config.AgainPenalty
	}
	if config.EasyBonus > 0 {
		params.EasyBonus = config.EasyBonus
	}
	if config.EasyMultiplier > 0 {
		params.EasyMultiplier = config.EasyMultiplier
	}
	if config.MaxIntervalDays > 0 {
		params.MaxIntervalDays = config.MaxIntervalDays
	}

	return params
}
