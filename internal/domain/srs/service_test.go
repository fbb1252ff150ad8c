package srs

import (
	"testing"
	"time"

	"github.com/phrazzld/deckstudy/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServiceWithParams(t *testing.T) {
	_, err := NewServiceWithParams(nil)
	assert.ErrorIs(t, err, ErrNilParams)

	svc, err := NewServiceWithParams(NewDefaultParams())
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestService_CalculateNextReview(t *testing.T) {
	svc, err := NewDefaultService()
	require.NoError(t, err)

	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	t.Run("invalid rating", func(t *testing.T) {
		_, err := svc.CalculateNextReview(domain.NewSchedule(), domain.Rating("hard"), now)
		assert.ErrorIs(t, err, ErrInvalidRating)
	})

	t.Run("new card through to review", func(t *testing.T) {
		schedule := domain.NewSchedule()

		schedule, err = svc.CalculateNextReview(schedule, domain.RatingGood, now)
		require.NoError(t, err)
		assert.Equal(t, domain.CardStatusReview, schedule.Status)
		assert.Equal(t, 1, schedule.Interval)
		assert.False(t, schedule.IsDue(now))
		assert.True(t, schedule.IsDue(now.AddDate(0, 0, 1)))

		schedule, err = svc.CalculateNextReview(schedule, domain.RatingGood, now.AddDate(0, 0, 1))
		require.NoError(t, err)
		assert.Equal(t, 2, schedule.Interval)

		schedule, err = svc.CalculateNextReview(schedule, domain.RatingAgain, now.AddDate(0, 0, 3))
		require.NoError(t, err)
		assert.Equal(t, domain.CardStatusLearning, schedule.Status)
		assert.Equal(t, 1, schedule.Interval)
		assert.InDelta(t, 2.3, schedule.EaseFactor, 1e-9)
	})

	t.Run("custom params", func(t *testing.T) {
		custom, err := NewServiceWithParams(NewParams(ParamsConfig{MaxIntervalDays: 30}))
		require.NoError(t, err)

		next, err := custom.CalculateNextReview(reviewSchedule(20, 2.5), domain.RatingGood, now)
		require.NoError(t, err)
		assert.Equal(t, 30, next.Interval)
	})
}
