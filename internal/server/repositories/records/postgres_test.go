package records

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"markbook/internal/common"
)

func TestPostgres_WriteScores_ReplacesInOneTx(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()
	repo := NewPostgresRepository(db)

	scores := fullScoreSet()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM scores WHERE user_name = \$1`).
		WithArgs("Alice").
		WillReturnResult(sqlmock.NewResult(0, 7))
	for i, s := range scores {
		mock.ExpectExec(`INSERT INTO scores`).
			WithArgs("Alice", i, s.Subject, s.Marks).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	require.NoError(t, repo.WriteScores(context.Background(), "Alice", scores))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_WriteScores_RollsBackOnError(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM scores WHERE user_name = \$1`).
		WithArgs("Alice").
		WillReturnError(errors.New("db down"))
	mock.ExpectRollback()

	err = repo.WriteScores(context.Background(), "Alice", fullScoreSet())
	require.ErrorIs(t, err, common.ErrStorageUnavailable)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_ReadScores_OrderedResult(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{"subject", "marks"})
	for _, s := range fullScoreSet() {
		rows.AddRow(s.Subject, s.Marks)
	}
	mock.ExpectQuery(`SELECT subject, marks FROM scores WHERE user_name = \$1 ORDER BY position`).
		WithArgs("Alice").
		WillReturnRows(rows)

	got, err := repo.ReadScores(context.Background(), "Alice")
	require.NoError(t, err)
	assert.Equal(t, fullScoreSet(), got)
}

func TestPostgres_ReadScores_NoRows(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery(`SELECT subject, marks FROM scores`).
		WithArgs("Bob").
		WillReturnRows(sqlmock.NewRows([]string{"subject", "marks"}))

	_, err = repo.ReadScores(context.Background(), "Bob")
	require.ErrorIs(t, err, common.ErrNoRecordsYet)
}
