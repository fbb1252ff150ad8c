//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/deckstudy/internal/domain"
	"github.com/phrazzld/deckstudy/internal/platform/postgres"
	"github.com/phrazzld/deckstudy/internal/store"
	"github.com/phrazzld/deckstudy/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDB *sql.DB

func TestMain(m *testing.M) {
	os.Exit(testdb.RunMain(m, &testDB))
}

func TestStoresIntegration(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	testdb.WithTx(t, testDB, func(t *testing.T, tx *sql.Tx) {
		decks := postgres.NewPostgresDeckStore(tx, nil)

		deck, err := domain.NewDeck("Integration " + uuid.NewString())
		require.NoError(t, err)
		require.NoError(t, decks.Create(ctx, deck))

		err = decks.Create(ctx, &domain.Deck{ID: uuid.New(), Name: deck.Name, CreatedAt: now})
		assert.ErrorIs(t, err, store.ErrDeckNameExists)
	})

	testdb.WithTx(t, testDB, func(t *testing.T, tx *sql.Tx) {
		decks := postgres.NewPostgresDeckStore(tx, nil)
		cards := postgres.NewPostgresCardStore(tx, nil)

		deck, err := domain.NewDeck("Due " + uuid.NewString())
		require.NoError(t, err)
		require.NoError(t, decks.Create(ctx, deck))

		fresh, err := domain.NewCard(deck.ID, "new card", "", []string{"x"})
		require.NoError(t, err)
		later, err := domain.NewCard(deck.ID, "later card", "back", nil)
		require.NoError(t, err)
		require.NoError(t, cards.CreateMultiple(ctx, []*domain.Card{fresh, later}))

		future := now.AddDate(0, 0, 5)
		require.NoError(t, cards.UpdateSchedule(ctx, later.ID, domain.Schedule{
			Status: domain.CardStatusReview, Interval: 5, EaseFactor: 2.5, ReviewDate: &future,
		}))

		due, err := cards.ListDue(ctx, deck.ID, now)
		require.NoError(t, err)
		require.Len(t, due, 1)
		assert.Equal(t, fresh.ID, due[0].ID)
		assert.Equal(t, []string{"x"}, due[0].Tags)

		due, err = cards.ListDue(ctx, deck.ID, future)
		require.NoError(t, err)
		assert.Len(t, due, 2)

		got, err := cards.GetByID(ctx, later.ID)
		require.NoError(t, err)
		require.NotNil(t, got.ReviewDate)
		assert.True(t, domain.DateOf(future).Equal(*got.ReviewDate))

		summaries, err := decks.List(ctx, now)
		require.NoError(t, err)
		var found bool
		for _, s := range summaries {
			if s.ID == deck.ID {
				found = true
				assert.Equal(t, 1, s.DueCardCount)
			}
		}
		assert.True(t, found)

		require.NoError(t, decks.Delete(ctx, deck.ID))
		_, err = cards.GetByID(ctx, fresh.ID)
		assert.ErrorIs(t, err, store.ErrCardNotFound)
		assert.ErrorIs(t, decks.Delete(ctx, deck.ID), store.ErrDeckNotFound)
	})
}
