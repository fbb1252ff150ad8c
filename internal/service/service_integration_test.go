//go:build integration

package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/deckstudy/internal/domain"
	"github.com/phrazzld/deckstudy/internal/domain/srs"
	"github.com/phrazzld/deckstudy/internal/platform/postgres"
	"github.com/phrazzld/deckstudy/internal/service"
	"github.com/phrazzld/deckstudy/internal/store"
	"github.com/phrazzld/deckstudy/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportAndReviewIntegration(t *testing.T) {
	db := testdb.MustOpen(t)
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	decks := postgres.NewPostgresDeckStore(db, logger)
	cards := postgres.NewPostgresCardStore(db, logger)
	srsService, err := srs.NewDefaultService()
	require.NoError(t, err)

	deckService, err := service.NewDeckService(db, decks, cards, logger, service.WithClock(fixedClock))
	require.NoError(t, err)
	reviewService, err := service.NewReviewService(db, cards, srsService, logger, service.WithClock(fixedClock))
	require.NoError(t, err)

	name := "Integration " + uuid.NewString()
	doc := importDoc(t, `{"deck_name":"`+name+`","cards":[
		{"front_content":"What is SELECT?","back_content":"A query"},
		{"front_content":"What is JOIN?","back_content":"Combines rows","tags":["sql"]}]}`)

	result, err := deckService.Import(ctx, doc)
	require.NoError(t, err)
	t.Cleanup(func() { _ = deckService.DeleteDeck(context.Background(), result.DeckID) })
	assert.Equal(t, 2, result.CardCount)

	_, err = deckService.Import(ctx, importDoc(t, `{"deck_name":"`+name+`","cards":[]}`))
	assert.ErrorIs(t, err, store.ErrDuplicate)

	due, err := deckService.DueCards(ctx, result.DeckID)
	require.NoError(t, err)
	require.Len(t, due, 2)

	updated, err := reviewService.Submit(ctx, due[0].ID, domain.RatingEasy)
	require.NoError(t, err)
	assert.Equal(t, domain.CardStatusReview, updated.Status)
	assert.Equal(t, 4, updated.Interval)

	due, err = deckService.DueCards(ctx, result.DeckID)
	require.NoError(t, err)
	assert.Len(t, due, 1)

	require.NoError(t, deckService.DeleteDeck(ctx, result.DeckID))
	_, err = reviewService.GetCard(ctx, updated.ID)
	assert.ErrorIs(t, err, store.ErrCardNotFound)
}
