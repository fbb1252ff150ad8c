package postgres_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/phrazzld/deckstudy/internal/domain"
	"github.com/phrazzld/deckstudy/internal/platform/postgres"
	"github.com/phrazzld/deckstudy/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cardColumnNames = []string{
	"id", "deck_id", "front_content", "back_content", "tags",
	"status", "interval_days", "ease_factor", "review_date", "created_at", "updated_at",
}

func TestNewPostgresCardStore(t *testing.T) {
	assert.Panics(t, func() { postgres.NewPostgresCardStore(nil, nil) })
}

func TestPostgresCardStore_CreateMultiple(t *testing.T) {
	deckID := uuid.New()

	t.Run("inserts every card", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := postgres.NewPostgresCardStore(db, nil)

		first, err := domain.NewCard(deckID, "Q1", "A1", []string{"go"})
		require.NoError(t, err)
		second, err := domain.NewCard(deckID, "Q2", "", nil)
		require.NoError(t, err)

		prep := mock.ExpectPrepare(regexp.QuoteMeta("INSERT INTO cards"))
		prep.ExpectExec().
			WithArgs(first.ID, deckID, "Q1", "A1", []byte(`["go"]`), "new", 0, 2.5,
				sql.NullTime{}, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		prep.ExpectExec().
			WithArgs(second.ID, deckID, "Q2", "", []byte(`[]`), "new", 0, 2.5,
				sql.NullTime{}, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, s.CreateMultiple(context.Background(), []*domain.Card{first, second}))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty list is a no-op", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := postgres.NewPostgresCardStore(db, nil)

		assert.NoError(t, s.CreateMultiple(context.Background(), nil))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("invalid card rejected before any query", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := postgres.NewPostgresCardStore(db, nil)

		bad := &domain.Card{ID: uuid.New(), Schedule: domain.NewSchedule()}
		err := s.CreateMultiple(context.Background(), []*domain.Card{bad})

		assert.ErrorIs(t, err, store.ErrInvalidEntity)
		assert.ErrorIs(t, err, domain.ErrCardDeckIDEmpty)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing deck maps to invalid entity", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := postgres.NewPostgresCardStore(db, nil)

		card, err := domain.NewCard(deckID, "Q", "A", nil)
		require.NoError(t, err)

		mock.ExpectPrepare(regexp.QuoteMeta("INSERT INTO cards")).
			ExpectExec().
			WillReturnError(newPgError("23503"))

		err = s.CreateMultiple(context.Background(), []*domain.Card{card})
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})
}

func TestPostgresCardStore_GetByID(t *testing.T) {
	id, deckID := uuid.New(), uuid.New()
	created := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)
	review := time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := postgres.NewPostgresCardStore(db, nil)

		mock.ExpectQuery(regexp.QuoteMeta("FROM cards WHERE id = $1")).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(cardColumnNames).
				AddRow(id.String(), deckID.String(), "front", "back", []byte(`["a","b"]`),
					"review", 4, 2.65, review, created, created))

		card, err := s.GetByID(context.Background(), id)
		require.NoError(t, err)

		assert.Equal(t, id, card.ID)
		assert.Equal(t, deckID, card.DeckID)
		assert.Equal(t, []string{"a", "b"}, card.Tags)
		assert.Equal(t, domain.CardStatusReview, card.Status)
		assert.Equal(t, 4, card.Interval)
		assert.Equal(t, 2.65, card.EaseFactor)
		require.NotNil(t, card.ReviewDate)
		assert.True(t, review.Equal(*card.ReviewDate))
	})

	t.Run("new card has no review date and empty tags", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := postgres.NewPostgresCardStore(db, nil)

		mock.ExpectQuery(regexp.QuoteMeta("FROM cards WHERE id = $1")).
			WillReturnRows(sqlmock.NewRows(cardColumnNames).
				AddRow(id.String(), deckID.String(), "front", "", nil,
					"new", 0, 2.5, nil, created, created))

		card, err := s.GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.Nil(t, card.ReviewDate)
		assert.Equal(t, []string{}, card.Tags)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := postgres.NewPostgresCardStore(db, nil)

		mock.ExpectQuery(regexp.QuoteMeta("FROM cards WHERE id = $1")).
			WillReturnError(sql.ErrNoRows)

		_, err := s.GetByID(context.Background(), id)
		assert.ErrorIs(t, err, store.ErrCardNotFound)
	})
}

func TestPostgresCardStore_ListDue(t *testing.T) {
	db, mock := newMockDB(t)
	s := postgres.NewPostgresCardStore(db, nil)

	deckID := uuid.New()
	now := time.Date(2024, 3, 3, 22, 0, 0, 0, time.UTC)
	created := now.Add(-48 * time.Hour)
	firstID, secondID := uuid.New(), uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE deck_id = $1 AND (status = 'new' OR review_date <= $2)")).
		WithArgs(deckID, domain.DateOf(now)).
		WillReturnRows(sqlmock.NewRows(cardColumnNames).
			AddRow(firstID.String(), deckID.String(), "Q1", "A1", []byte(`[]`),
				"new", 0, 2.5, nil, created, created).
			AddRow(secondID.String(), deckID.String(), "Q2", "A2", []byte(`[]`),
				"review", 3, 2.5, domain.DateOf(now), created, created))

	cards, err := s.ListDue(context.Background(), deckID, now)
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, firstID, cards[0].ID)
	assert.Equal(t, secondID, cards[1].ID)
	assert.True(t, cards[1].IsDue(now))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCardStore_UpdateSchedule(t *testing.T) {
	id := uuid.New()
	review := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	schedule := domain.Schedule{
		Status:     domain.CardStatusReview,
		Interval:   6,
		EaseFactor: 2.5,
		ReviewDate: &review,
	}

	t.Run("updated", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := postgres.NewPostgresCardStore(db, nil)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE cards")).
			WithArgs("review", 6, 2.5, sql.NullTime{Time: review, Valid: true}, sqlmock.AnyArg(), id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, s.UpdateSchedule(context.Background(), id, schedule))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := postgres.NewPostgresCardStore(db, nil)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE cards")).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, s.UpdateSchedule(context.Background(), id, schedule), store.ErrCardNotFound)
	})
}
