package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func newCourseRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestCourseRepositoryFind(t *testing.T) {
	db, mock, cleanup := newCourseRepoMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "visible"}).
		AddRow(int64(7), "Algebra", true)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, visible FROM courses WHERE id = $1")).
		WithArgs(int64(7)).
		WillReturnRows(rows)

	course, err := repo.Find(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, course)
	require.Equal(t, "Algebra", course.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepositoryFindMissing(t *testing.T) {
	db, mock, cleanup := newCourseRepoMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, visible FROM courses WHERE id = $1")).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "visible"}))

	course, err := repo.Find(context.Background(), 404)
	require.NoError(t, err)
	require.Nil(t, course)
	require.NoError(t, mock.ExpectationsWereMet())
}
