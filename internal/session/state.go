package session

import "github.com/phrazzld/deckstudy/internal/domain"

// Phase is the lifecycle stage of a session.
type Phase int

// Session phases
const (
	PhaseLoading Phase = iota
	PhasePresenting
	PhaseSubmitting
	PhaseComplete
	PhaseEmpty
	PhaseFailed
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhasePresenting:
		return "presenting"
	case PhaseSubmitting:
		return "submitting"
	case PhaseComplete:
		return "complete"
	case PhaseEmpty:
		return "empty"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is a snapshot of a session.
type State struct {
	Phase    Phase
	DeckID   string
	DeckName string

	// Cards is fixed once shuffled.
	Cards    []domain.Card
	Index    int
	Revealed bool

	// LastError is the most recent recoverable submission failure, cleared
	// on the next rating attempt.
	LastError error

	// Err is the fatal error that put the session in PhaseFailed.
	Err error
}

// Total returns the number of cards in the session.
func (s State) Total() int {
	return len(s.Cards)
}

// Terminal reports whether the session has finished, successfully or not.
func (s State) Terminal() bool {
	return s.Phase == PhaseComplete || s.Phase == PhaseEmpty || s.Phase == PhaseFailed
}

// CanReveal reports whether the current card's back may be revealed.
func (s State) CanReveal() bool {
	return s.Phase == PhasePresenting && !s.Revealed
}

// CanRate reports whether a rating may be submitted for the current card.
func (s State) CanRate() bool {
	return s.Phase == PhasePresenting && s.Revealed
}
