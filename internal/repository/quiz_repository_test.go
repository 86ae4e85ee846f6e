package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/progress-analytics-api/internal/models"
)

func newQuizRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestQuizRepositoryListVisibleByCourse(t *testing.T) {
	db, mock, cleanup := newQuizRepoMock(t)
	defer cleanup()
	repo := NewQuizRepository(db)

	rows := sqlmock.NewRows([]string{"id", "course_id", "name", "sum_grades", "visible"}).
		AddRow(int64(1), int64(7), "Quiz 1", 80.0, true).
		AddRow(int64(2), int64(7), "Quiz 2", 100.0, true)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, course_id, name, sum_grades, visible FROM quizzes WHERE course_id = $1 AND visible = TRUE ORDER BY id")).
		WithArgs(int64(7)).
		WillReturnRows(rows)

	quizzes, err := repo.ListVisibleByCourse(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, quizzes, 2)
	require.Equal(t, "Quiz 1", quizzes[0].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQuizRepositoryFinishedAttempts(t *testing.T) {
	db, mock, cleanup := newQuizRepoMock(t)
	defer cleanup()
	repo := NewQuizRepository(db)

	rows := sqlmock.NewRows([]string{"id", "quiz_id", "user_id", "state", "sum_grades", "time_finish"}).
		AddRow(int64(3), int64(1), int64(10), models.AttemptStateFinished, 40.0, int64(1700000100)).
		AddRow(int64(4), int64(1), int64(10), models.AttemptStateFinished, nil, int64(1700000500))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, quiz_id, user_id, state, sum_grades, time_finish FROM quiz_attempts WHERE quiz_id = $1 AND user_id = $2 AND state = $3 ORDER BY time_finish, id")).
		WithArgs(int64(1), int64(10), models.AttemptStateFinished).
		WillReturnRows(rows)

	attempts, err := repo.FinishedAttempts(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Len(t, attempts, 2)
	require.NotNil(t, attempts[0].SumGrades)
	require.Nil(t, attempts[1].SumGrades)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQuizRepositoryHasFinishedAttempt(t *testing.T) {
	db, mock, cleanup := newQuizRepoMock(t)
	defer cleanup()
	repo := NewQuizRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS ( SELECT 1 FROM quiz_attempts WHERE quiz_id = $1 AND user_id = $2 AND state = $3)")).
		WithArgs(int64(1), int64(10), models.AttemptStateFinished).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.HasFinishedAttempt(context.Background(), 1, 10)
	require.NoError(t, err)
	require.True(t, exists)
	require.NoError(t, mock.ExpectationsWereMet())
}
