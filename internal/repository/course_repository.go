package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/progress-analytics-api/internal/models"
)

// CourseRepository reads course records.
type CourseRepository struct {
	db *sqlx.DB
}

// NewCourseRepository creates a new course repository.
func NewCourseRepository(db *sqlx.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// Find returns the course with the given ID, or nil when it does not exist.
func (r *CourseRepository) Find(ctx context.Context, id int64) (*models.Course, error) {
	const query = `SELECT id, name, visible FROM courses WHERE id = $1`
	var course models.Course
	if err := r.db.GetContext(ctx, &course, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find course %d: %w", id, err)
	}
	return &course, nil
}
