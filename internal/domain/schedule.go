package domain

import "time"

// CardStatus is the learning stage of a card.
type CardStatus string

// Possible card statuses
const (
	CardStatusNew      CardStatus = "new"
	CardStatusLearning CardStatus = "learning"
	CardStatusReview   CardStatus = "review"
)

// DefaultEaseFactor is the ease factor assigned to new cards.
const DefaultEaseFactor = 2.5

// Schedule is the spaced repetition state of a card.
type Schedule struct {
	Status     CardStatus `json:"status"`
	Interval   int        `json:"interval"`    // days
	EaseFactor float64    `json:"ease_factor"` // 1.3 and up
	ReviewDate *time.Time `json:"review_date,omitempty"`
}

// NewSchedule returns the schedule of a card that has never been reviewed.
func NewSchedule() Schedule {
	return Schedule{
		Status:     CardStatusNew,
		Interval:   0,
		EaseFactor: DefaultEaseFactor,
	}
}

// IsDue reports whether the card should be studied on the day containing now:
// new cards are always due, others once their review date has been reached.
func (s Schedule) IsDue(now time.Time) bool {
	if s.Status == CardStatusNew {
		return true
	}
	if s.ReviewDate == nil {
		return false
	}
	return !DateOf(*s.ReviewDate).After(DateOf(now))
}

// DateOf truncates t to midnight UTC of its calendar day.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
