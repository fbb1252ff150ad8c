package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/phrazzld/deckstudy/internal/domain"
	"github.com/phrazzld/deckstudy/internal/render"
	"github.com/phrazzld/deckstudy/internal/session"
)

const (
	emptyDeckMessage = "No cards are due for review in this deck."
	ratingPrompt     = "Rate: 1=again 2=good 3=easy (q to quit)"
	revealPrompt     = "Press Enter to show the answer (q to quit)"
)

// ratingKeys maps input keys to ratings.
var ratingKeys = map[string]domain.Rating{
	"1": domain.RatingAgain,
	"2": domain.RatingGood,
	"3": domain.RatingEasy,
}

// errQuit is returned by the prompts when the user quits or input ends.
var errQuit = errors.New("quit")

// studyUI is a line-oriented front end for a session.Controller.
type studyUI struct {
	in       *bufio.Reader
	out      io.Writer
	renderer *render.Renderer
	term     *render.Terminal

	title   lipgloss.Style
	label   lipgloss.Style
	muted   lipgloss.Style
	failure lipgloss.Style
}

func newStudyUI(in io.Reader, out io.Writer, theme string, logger *slog.Logger) *studyUI {
	return &studyUI{
		in:  bufio.NewReader(in),
		out: out,
		renderer: render.NewRenderer(
			render.WithHighlighter(render.NewChromaHighlighter(theme)),
			render.WithLogger(logger),
		),
		term:    render.NewTerminal(theme),
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5")),
		label:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),
		muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		failure: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
	}
}

// run starts a session for deckID and drives it to completion from the
// keyboard.
func (u *studyUI) run(ctx context.Context, ctrl *session.Controller, deckID string) error {
	u.println(u.muted.Render("Loading cards..."))
	if err := ctrl.Start(ctx, deckID); err != nil {
		if errors.Is(err, session.ErrMissingSessionParameter) {
			return fmt.Errorf("%w (use --deck or DECKSTUDY_CLIENT_DECK)", err)
		}
		return err
	}

	st := ctrl.State()
	if st.Phase == session.PhaseEmpty {
		u.println(emptyDeckMessage)
		return nil
	}
	u.println(u.title.Render(st.DeckName))

	tally := make(map[domain.Rating]int)
	for !ctrl.State().Terminal() {
		if err := ctx.Err(); err != nil {
			return err
		}
		rating, err := u.studyCard(ctx, ctrl)
		if errors.Is(err, errQuit) {
			u.printSummary(ctrl.State(), tally, false)
			return nil
		}
		if err != nil {
			return err
		}
		tally[rating]++
	}

	u.printSummary(ctrl.State(), tally, true)
	return nil
}

// studyCard presents the current card, reveals it on Enter and submits a
// rating, re-prompting after failed submissions.
func (u *studyUI) studyCard(ctx context.Context, ctrl *session.Controller) (domain.Rating, error) {
	st := ctrl.State()
	card, ok := ctrl.CurrentCard()
	if !ok {
		return "", fmt.Errorf("no card to present in phase %s", st.Phase)
	}

	u.println("")
	u.println(u.muted.Render(fmt.Sprintf("Card %d of %d", st.Index+1, st.Total())))
	u.println(u.label.Render("Front"))
	if err := u.term.Write(u.out, u.renderer.RenderText(card.Front)); err != nil {
		return "", err
	}

	if _, err := u.prompt(revealPrompt); err != nil {
		return "", err
	}
	ctrl.Reveal()

	u.println(u.label.Render("Back"))
	if err := u.term.Write(u.out, u.renderer.RenderText(card.Back)); err != nil {
		return "", err
	}

	for {
		answer, err := u.prompt(ratingPrompt)
		if err != nil {
			return "", err
		}
		rating, ok := ratingKeys[answer]
		if !ok {
			u.println(u.failure.Render("Please enter 1, 2 or 3."))
			continue
		}

		err = ctrl.Rate(ctx, rating)
		var submitErr *session.SubmitError
		switch {
		case err == nil:
			return rating, nil
		case errors.As(err, &submitErr):
			u.println(u.failure.Render("Could not save rating: " + submitErr.Err.Error()))
		default:
			return "", err
		}
	}
}

// prompt prints label and reads one trimmed line. "q" and end of input
// return errQuit.
func (u *studyUI) prompt(label string) (string, error) {
	fmt.Fprintf(u.out, "%s > ", u.muted.Render(label))
	line, err := u.in.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		u.println("")
		return "", errQuit
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	if answer == "q" {
		return "", errQuit
	}
	return answer, nil
}

func (u *studyUI) printSummary(st session.State, tally map[domain.Rating]int, complete bool) {
	reviewed := 0
	for _, n := range tally {
		reviewed += n
	}

	u.println("")
	if complete {
		u.println(u.title.Render(fmt.Sprintf("Session complete: %d of %d cards reviewed in %s.",
			reviewed, st.Total(), st.DeckName)))
	} else {
		u.println(u.title.Render(fmt.Sprintf("Session ended: %d of %d cards reviewed.",
			reviewed, st.Total())))
	}

	parts := make([]string, 0, len(domain.Ratings()))
	for _, r := range domain.Ratings() {
		parts = append(parts, fmt.Sprintf("%s %d", r, tally[r]))
	}
	u.println(u.muted.Render(strings.Join(parts, ", ")))
}

func (u *studyUI) println(s string) {
	fmt.Fprintln(u.out, s)
}
