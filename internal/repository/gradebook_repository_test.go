package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func newGradebookRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

const gradebookQuery = "SELECT gi.quiz_id, gg.user_id, gi.grade_min, gi.grade_max, gg.grade FROM quiz_grade_items gi JOIN quiz_grades gg ON gg.item_id = gi.id WHERE gi.quiz_id = $1 AND gg.user_id = $2"

func TestGradebookRepositoryQuizGrade(t *testing.T) {
	db, mock, cleanup := newGradebookRepoMock(t)
	defer cleanup()
	repo := NewGradebookRepository(db)

	rows := sqlmock.NewRows([]string{"quiz_id", "user_id", "grade_min", "grade_max", "grade"}).
		AddRow(int64(1), int64(10), 0.0, 10.0, 9.0)
	mock.ExpectQuery(regexp.QuoteMeta(gradebookQuery)).
		WithArgs(int64(1), int64(10)).
		WillReturnRows(rows)

	record, err := repo.QuizGrade(context.Background(), 1, 10)
	require.NoError(t, err)
	require.NotNil(t, record)
	require.NotNil(t, record.Grade)
	require.Equal(t, 9.0, *record.Grade)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGradebookRepositoryQuizGradeNullGrade(t *testing.T) {
	db, mock, cleanup := newGradebookRepoMock(t)
	defer cleanup()
	repo := NewGradebookRepository(db)

	rows := sqlmock.NewRows([]string{"quiz_id", "user_id", "grade_min", "grade_max", "grade"}).
		AddRow(int64(1), int64(10), 0.0, 10.0, nil)
	mock.ExpectQuery(regexp.QuoteMeta(gradebookQuery)).
		WithArgs(int64(1), int64(10)).
		WillReturnRows(rows)

	record, err := repo.QuizGrade(context.Background(), 1, 10)
	require.NoError(t, err)
	require.NotNil(t, record)
	require.Nil(t, record.Grade)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGradebookRepositoryQuizGradeMissing(t *testing.T) {
	db, mock, cleanup := newGradebookRepoMock(t)
	defer cleanup()
	repo := NewGradebookRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(gradebookQuery)).
		WithArgs(int64(1), int64(11)).
		WillReturnRows(sqlmock.NewRows([]string{"quiz_id", "user_id", "grade_min", "grade_max", "grade"}))

	record, err := repo.QuizGrade(context.Background(), 1, 11)
	require.NoError(t, err)
	require.Nil(t, record)
	require.NoError(t, mock.ExpectationsWereMet())
}
