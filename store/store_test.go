package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendGameEvents(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	s := &Store{pool: mock}
	gameID := uuid.New()
	tags := []string{"batterUp", "ball", "strike", "strikeOut"}

	for i, tag := range tags {
		mock.ExpectExec("INSERT INTO game_events").
			WithArgs(gameID, i, tag).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
	}

	err = s.AppendGameEvents(context.Background(), gameID, tags)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadGameEvents(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	s := &Store{pool: mock}
	gameID := uuid.New()

	rows := pgxmock.NewRows([]string{"tag"}).
		AddRow("batterUp").
		AddRow("ball").
		AddRow("strikeOut")
	mock.ExpectQuery("SELECT tag FROM game_events").WithArgs(gameID).WillReturnRows(rows)

	tags, err := s.LoadGameEvents(context.Background(), gameID)
	require.NoError(t, err)
	assert.Equal(t, []string{"batterUp", "ball", "strikeOut"}, tags)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSchema(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	s := &Store{pool: mock}
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS worlds").WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS game_events").WillReturnResult(pgxmock.NewResult("CREATE", 0))

	err = s.EnsureSchema(context.Background())
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
