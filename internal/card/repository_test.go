package card

import (
	"context"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepository(t *testing.T) (*DBRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewDBRepository(sqlx.NewDb(db, "mysql")), mock
}

func TestDBRepository_FindByDeck(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta("SELECT id, deck_id, front, back, created_at FROM cards WHERE deck_id = ? ORDER BY created_at, id")

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		want      []Card
		wantErr   bool
	}{
		{
			name: "returns cards in creation order",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "deck_id", "front", "back", "created_at"}).
					AddRow("c1", "d1", "猫", "cat", now).
					AddRow("c2", "d1", "犬", "dog", now.Add(time.Minute))
				mock.ExpectQuery(query).WithArgs("d1").WillReturnRows(rows)
			},
			want: []Card{
				{ID: "c1", DeckID: "d1", Front: "猫", Back: "cat", CreatedAt: now},
				{ID: "c2", DeckID: "d1", Front: "犬", Back: "dog", CreatedAt: now.Add(time.Minute)},
			},
		},
		{
			name: "empty deck",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).WithArgs("d1").
					WillReturnRows(sqlmock.NewRows([]string{"id", "deck_id", "front", "back", "created_at"}))
			},
			want: nil,
		},
		{
			name: "db error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).WithArgs("d1").WillReturnError(fmt.Errorf("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)
			tt.setupMock(mock)

			got, err := repo.FindByDeck(context.Background(), "d1")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBRepository_FindDeck(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta("SELECT id, subject_id, name, created_at FROM decks WHERE id = ?")

	t.Run("found", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectQuery(query).WithArgs("d1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "subject_id", "name", "created_at"}).AddRow("d1", "s1", "Animals", now))

		got, err := repo.FindDeck(context.Background(), "d1")
		require.NoError(t, err)
		assert.Equal(t, &Deck{ID: "d1", SubjectID: "s1", Name: "Animals", CreatedAt: now}, got)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectQuery(query).WithArgs("missing").
			WillReturnRows(sqlmock.NewRows([]string{"id", "subject_id", "name", "created_at"}))

		got, err := repo.FindDeck(context.Background(), "missing")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestDBRepository_FindDecksBySubject(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	repo, mock := newMockRepository(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, subject_id, name, created_at FROM decks WHERE subject_id = ? ORDER BY created_at, id")).
		WithArgs("s1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "subject_id", "name", "created_at"}).
			AddRow("d1", "s1", "Animals", now).
			AddRow("d2", "s1", "Food", now))

	got, err := repo.FindDecksBySubject(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "d2", got[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIDs(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, IDs([]Card{{ID: "a"}, {ID: "b"}}))
	assert.Empty(t, IDs(nil))
}
