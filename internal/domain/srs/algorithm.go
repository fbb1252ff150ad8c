package srs

import (
	"math"
	"time"

	"github.com/phrazzld/deckstudy/internal/domain"
)

// isGraduating reports whether a card in this status is still being learned,
// in which case fixed graduating intervals apply instead of ease growth.
func isGraduating(status domain.CardStatus) bool {
	return status == domain.CardStatusNew || status == domain.CardStatusLearning || status == ""
}

// calculateNewEaseFactor determines the new ease factor based on the rating.
//
// "again" lowers the ease factor, "easy" raises it and "good" leaves it
// unchanged. The result never drops below params.MinEaseFactor and is rounded
// to two decimals as stored.
func calculateNewEaseFactor(currentEF float64, rating domain.Rating, params *Params) float64 {
	if currentEF <= 0 {
		currentEF = params.DefaultEaseFactor
	}

	newEF := currentEF
	switch rating {
	case domain.RatingAgain:
		newEF = currentEF - params.AgainPenalty
	case domain.RatingEasy:
		newEF = currentEF + params.EasyBonus
	}

	if newEF < params.MinEaseFactor {
		newEF = params.MinEaseFactor
	}

	return math.Round(newEF*100) / 100
}

// calculateNewInterval determines the next interval in days.
//
// Algorithm behavior:
//   - "again": the card lapses back to the first learning interval
//   - new/learning cards graduate with a fixed interval per rating
//   - review cards grow by the current ease factor ("good") or by the ease
//     factor times params.EasyMultiplier ("easy")
//   - the result is clamped to [MinIntervalDays, MaxIntervalDays]
//
// The growth uses the ease factor the card had before this review. Halves are
// rounded to even, matching the scheduler this replaces.
func calculateNewInterval(schedule domain.Schedule, rating domain.Rating, params *Params) int {
	ease := schedule.EaseFactor
	if ease <= 0 {
		ease = params.DefaultEaseFactor
	}

	var interval int
	switch {
	case rating == domain.RatingAgain:
		interval = params.GraduatingIntervals[domain.RatingAgain]
	case isGraduating(schedule.Status):
		interval = params.GraduatingIntervals[rating]
	case rating == domain.RatingEasy:
		interval = int(math.RoundToEven(float64(schedule.Interval) * ease * params.EasyMultiplier))
	default:
		interval = int(math.RoundToEven(float64(schedule.Interval) * ease))
	}

	if interval > params.MaxIntervalDays {
		interval = params.MaxIntervalDays
	}
	if interval < params.MinIntervalDays {
		interval = params.MinIntervalDays
	}
	return interval
}

// calculateNewStatus returns the status after a review: a lapse goes back to
// learning, anything else promotes the card to review.
func calculateNewStatus(rating domain.Rating) domain.CardStatus {
	if rating == domain.RatingAgain {
		return domain.CardStatusLearning
	}
	return domain.CardStatusReview
}

// calculateNextSchedule derives the full schedule after a review without
// modifying the input. The review date is the interval counted in whole days
// from the calendar day containing now.
func calculateNextSchedule(schedule domain.Schedule, rating domain.Rating, now time.Time, params *Params) domain.Schedule {
	interval := calculateNewInterval(schedule, rating, params)
	reviewDate := domain.DateOf(now).AddDate(0, 0, interval)

	return domain.Schedule{
		Status:     calculateNewStatus(rating),
		Interval:   interval,
		EaseFactor: calculateNewEaseFactor(schedule.EaseFactor, rating, params),
		ReviewDate: &reviewDate,
	}
}
