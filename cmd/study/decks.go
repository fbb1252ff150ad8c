package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/google/uuid"
	"github.com/phrazzld/deckstudy/internal/api"
	"github.com/phrazzld/deckstudy/internal/domain"
)

// deckAPI is the part of the client used by the deck management commands.
type deckAPI interface {
	ListDecks(ctx context.Context) ([]domain.DeckSummary, error)
	Import(ctx context.Context, doc *domain.DeckImport) (*api.ImportResponse, error)
	DeleteDeck(ctx context.Context, deckID uuid.UUID) error
}

// listDecks prints every deck with its due card count.
func listDecks(ctx context.Context, decks deckAPI, out io.Writer) error {
	summaries, err := decks.ListDecks(ctx)
	if err != nil {
		return fmt.Errorf("failed to list decks: %w", err)
	}
	if len(summaries) == 0 {
		_, err := fmt.Fprintln(out, "No decks found. Import one with --import <file>.")
		return err
	}

	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "NAME", "DUE").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
	for _, d := range summaries {
		t.Row(d.ID.String(), d.Name, strconv.Itoa(d.DueCardCount))
	}

	_, err = fmt.Fprintln(out, t.Render())
	return err
}

// importDeck validates the deck file locally, then uploads it.
func importDeck(ctx context.Context, decks deckAPI, path string, out io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open deck file: %w", err)
	}
	defer func() { _ = f.Close() }()

	doc, err := domain.ParseDeckImport(f)
	if err != nil {
		return fmt.Errorf("invalid deck file %s: %w", path, err)
	}

	resp, err := decks.Import(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to import deck: %w", err)
	}

	_, err = fmt.Fprintf(out, "Imported deck %q with %d cards (id %s).\n",
		resp.DeckName, resp.CardCount, resp.DeckID)
	return err
}

// deleteDeck removes a deck by id.
func deleteDeck(ctx context.Context, decks deckAPI, rawID string, out io.Writer) error {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return fmt.Errorf("invalid deck id %q: %w", rawID, err)
	}
	if err := decks.DeleteDeck(ctx, id); err != nil {
		return fmt.Errorf("failed to delete deck: %w", err)
	}
	_, err = fmt.Fprintf(out, "Deleted deck %s.\n", id)
	return err
}
