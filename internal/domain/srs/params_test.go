package srs

import (
	"testing"

	"github.com/phrazzld/deckstudy/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestNewDefaultParams(t *testing.T) {
	params := NewDefaultParams()

	assert.Equal(t, 2.5, params.DefaultEaseFactor)
	assert.Equal(t, 1.3, params.MinEaseFactor)
	assert.Equal(t, 0.20, params.AgainPenalty)
	assert.Equal(t, 0.15, params.EasyBonus)
	assert.Equal(t, 1.3, params.EasyMultiplier)
	assert.Equal(t, 1, params.GraduatingIntervals[domain.RatingGood])
	assert.Equal(t, 4, params.GraduatingIntervals[domain.RatingEasy])
	assert.Equal(t, 1, params.MinIntervalDays)
	assert.Equal(t, 36500, params.MaxIntervalDays)
}

func TestNewParams(t *testing.T) {
	t.Run("zero config keeps defaults", func(t *testing.T) {
		assert.Equal(t, NewDefaultParams(), NewParams(ParamsConfig{}))
	})

	t.Run("overrides", func(t *testing.T) {
		params := NewParams(ParamsConfig{
			DefaultEaseFactor: 2.0,
			MinEaseFactor:     1.5,
			AgainPenalty:      0.3,
			EasyBonus:         0.1,
			EasyMultiplier:    1.5,
			MaxIntervalDays:   365,
		})

		assert.Equal(t, 2.0, params.DefaultEaseFactor)
		assert.Equal(t, 1.5, params.MinEaseFactor)
		assert.Equal(t, 0.3, params.AgainPenalty)
		assert.Equal(t, 0.1, params.EasyBonus)
		assert.Equal(t, 1.5, params.EasyMultiplier)
		assert.Equal(t, 365, params.MaxIntervalDays)
	})
}
