package session

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/deckstudy/internal/domain"
)

// DefaultDeckLabel labels a session whose deck name could not be fetched.
const DefaultDeckLabel = "Study Session"

// CardSource provides the deck label and the due cards of a deck.
type CardSource interface {
	FetchDeckMeta(ctx context.Context, deckID string) (domain.DeckMeta, error)
	FetchDueCards(ctx context.Context, deckID string) ([]domain.Card, error)
}

// ReviewSubmitter records a rating for a card.
type ReviewSubmitter interface {
	SubmitReview(ctx context.Context, cardID uuid.UUID, rating domain.Rating) error
}

// Controller drives a single study session. It is safe for concurrent use,
// but only one submission is ever in flight.
type Controller struct {
	source    CardSource
	submitter ReviewSubmitter
	rng       *rand.Rand
	logger    *slog.Logger

	mu       sync.Mutex
	state    State
	starting bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithRand sets the random source used to shuffle cards.
func WithRand(r *rand.Rand) Option {
	return func(c *Controller) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithLogger sets the controller's logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewController creates a Controller in PhaseLoading.
func NewController(source CardSource, submitter ReviewSubmitter, opts ...Option) *Controller {
	if source == nil {
		panic("source cannot be nil") // ALLOW-PANIC
	}
	if submitter == nil {
		panic("submitter cannot be nil") // ALLOW-PANIC
	}

	c := &Controller{
		source:    source,
		submitter: submitter,
		rng:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		logger:    slog.Default(),
		state:     State{Phase: PhaseLoading},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With(slog.String("component", "session_controller"))
	return c
}

// Start loads the deck label and the due cards for deckID and begins the
// session. A missing label falls back to DefaultDeckLabel; any other failure
// moves the session to PhaseFailed and is returned.
func (c *Controller) Start(ctx context.Context, deckID string) error {
	deckID = strings.TrimSpace(deckID)

	c.mu.Lock()
	if c.state.Phase != PhaseLoading || c.starting {
		c.mu.Unlock()
		return ErrAlreadyStarted
	}
	c.starting = true
	c.state.DeckID = deckID
	c.mu.Unlock()

	if deckID == "" {
		return c.fail(ErrMissingSessionParameter)
	}
	if _, err := uuid.Parse(deckID); err != nil {
		return c.fail(fmt.Errorf("%w: %q", ErrInvalidSessionParameter, deckID))
	}

	log := c.logger.With(slog.String("deck_id", deckID))

	name := DefaultDeckLabel
	meta, err := c.source.FetchDeckMeta(ctx, deckID)
	switch {
	case err != nil:
		log.Warn("could not fetch deck name, using default label", slog.String("error", err.Error()))
	case strings.TrimSpace(meta.Name) != "":
		name = meta.Name
	}

	cards, err := c.source.FetchDueCards(ctx, deckID)
	if err != nil {
		return c.fail(fmt.Errorf("failed to fetch due cards: %w", err))
	}

	c.mu.Lock()
	c.state.DeckName = name
	c.mu.Unlock()

	log.Debug("due cards loaded", slog.Int("count", len(cards)))
	return c.Begin(cards)
}

func (c *Controller) fail(err error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Phase = PhaseFailed
	c.state.Err = err
	c.starting = false
	c.logger.Error("session failed to start", slog.String("error", err.Error()))
	return err
}

// Begin shuffles cards into a uniformly random order and presents the first
// one, or moves to PhaseEmpty when there are none. The slice is not modified.
func (c *Controller) Begin(cards []domain.Card) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Phase != PhaseLoading {
		return ErrAlreadyStarted
	}
	c.starting = false

	shuffled := make([]domain.Card, len(cards))
	copy(shuffled, cards)
	c.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	c.state.Cards = shuffled
	c.state.Index = 0
	c.state.Revealed = false

	if len(shuffled) == 0 {
		c.state.Phase = PhaseEmpty
		return nil
	}
	c.state.Phase = PhasePresenting
	return nil
}

// Reveal shows the back of the current card. It reports false and changes
// nothing when the card is already revealed or no card is being presented.
func (c *Controller) Reveal() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.CanReveal() {
		return false
	}
	c.state.Revealed = true
	return true
}

// Rate submits rating for the current card. Rating is only available once
// the card is revealed; otherwise ErrRatingUnavailable is returned and the
// state is unchanged. While the submission is in flight the session is in
// PhaseSubmitting and further ratings are rejected. On success the next card
// is presented, or the session completes. On failure the session stays on
// the revealed card and a *SubmitError is returned.
func (c *Controller) Rate(ctx context.Context, rating domain.Rating) error {
	c.mu.Lock()
	if !c.state.CanRate() {
		c.mu.Unlock()
		return ErrRatingUnavailable
	}
	card := c.state.Cards[c.state.Index]
	c.state.Phase = PhaseSubmitting
	c.state.LastError = nil
	c.mu.Unlock()

	err := c.submitter.SubmitReview(ctx, card.ID, rating)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		submitErr := &SubmitError{CardID: card.ID, Rating: rating, Err: err}
		c.state.Phase = PhasePresenting
		c.state.LastError = submitErr
		c.logger.Warn("review submission failed",
			slog.String("card_id", card.ID.String()),
			slog.String("rating", string(rating)),
			slog.String("error", err.Error()))
		return submitErr
	}

	c.state.Index++
	c.state.Revealed = false
	if c.state.Index >= len(c.state.Cards) {
		c.state.Phase = PhaseComplete
		c.logger.Info("session complete", slog.Int("reviewed", len(c.state.Cards)))
		return nil
	}
	c.state.Phase = PhasePresenting
	return nil
}

// CurrentCard returns the card being studied. It reports false before the
// session starts and after it ends.
func (c *Controller) CurrentCard() (domain.Card, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state.Phase {
	case PhasePresenting, PhaseSubmitting:
		return c.state.Cards[c.state.Index], true
	default:
		return domain.Card{}, false
	}
}

// State returns a snapshot of the session.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot := c.state
	snapshot.Cards = make([]domain.Card, len(c.state.Cards))
	copy(snapshot.Cards, c.state.Cards)
	return snapshot
}
