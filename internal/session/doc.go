// Package session implements the study session state machine.
//
// A Controller owns the due cards of one deck, the position in the shuffled
// order and the reveal flag. It moves through the phases
//
//	Loading -> Presenting (front) -> Presenting (revealed) -> Submitting -> Presenting (next card) ... -> Complete
//
// with Empty and Failed as terminal phases reachable only from Loading.
// Ratings are submitted one at a time; the next card is presented only once
// the submission for the current card has succeeded.
package session
