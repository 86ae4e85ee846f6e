package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/progress-analytics-api/internal/models"
)

// EnrollmentRepository reads the course enrollment directory.
type EnrollmentRepository struct {
	db *sqlx.DB
}

// NewEnrollmentRepository creates a new enrollment repository.
func NewEnrollmentRepository(db *sqlx.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// ListQuizParticipants returns the IDs of active enrollees allowed to
// attempt quizzes, i.e. the population the course baseline is computed over.
func (r *EnrollmentRepository) ListQuizParticipants(ctx context.Context, courseID int64) ([]int64, error) {
	const query = `SELECT user_id FROM enrollments
        WHERE course_id = $1 AND status = 'active' AND role = $2
        ORDER BY user_id`
	var userIDs []int64
	if err := r.db.SelectContext(ctx, &userIDs, query, courseID, models.RoleStudent); err != nil {
		return nil, fmt.Errorf("list quiz participants for course %d: %w", courseID, err)
	}
	return userIDs, nil
}
