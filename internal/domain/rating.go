package domain

// Rating is the user's difficulty judgment for a reviewed card.
type Rating string

// The rating vocabulary understood by the scheduler.
const (
	RatingAgain Rating = "again"
	RatingGood  Rating = "good"
	RatingEasy  Rating = "easy"
)

// Ratings returns the vocabulary in presentation order.
func Ratings() []Rating {
	return []Rating{RatingAgain, RatingGood, RatingEasy}
}

// Valid reports whether r is part of the vocabulary.
func (r Rating) Valid() bool {
	switch r {
	case RatingAgain, RatingGood, RatingEasy:
		return true
	default:
		return false
	}
}
