package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/progress-analytics-api/internal/models"
)

// ActivityRepository reads the course activity roster (the completion store's
// view of gradable/completable units).
type ActivityRepository struct {
	db *sqlx.DB
}

// NewActivityRepository creates a new activity repository.
func NewActivityRepository(db *sqlx.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// ListByCourse returns every activity in the course, visible or not.
// Visibility filtering is a policy decision left to the service layer.
func (r *ActivityRepository) ListByCourse(ctx context.Context, courseID int64) ([]models.Activity, error) {
	const query = `SELECT id, course_id, module, instance_id, name, visible
        FROM course_activities
        WHERE course_id = $1
        ORDER BY id`
	var activities []models.Activity
	if err := r.db.SelectContext(ctx, &activities, query, courseID); err != nil {
		return nil, fmt.Errorf("list activities for course %d: %w", courseID, err)
	}
	return activities, nil
}
