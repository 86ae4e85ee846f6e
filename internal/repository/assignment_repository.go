package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/progress-analytics-api/internal/models"
)

// AssignmentRepository reads assignment submissions and grades.
type AssignmentRepository struct {
	db *sqlx.DB
}

// NewAssignmentRepository creates a new assignment repository.
func NewAssignmentRepository(db *sqlx.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// HasSubmitted reports whether the user has a submission in submitted state.
func (r *AssignmentRepository) HasSubmitted(ctx context.Context, assignmentID, userID int64) (bool, error) {
	const query = `SELECT EXISTS (
        SELECT 1 FROM assignment_submissions
        WHERE assignment_id = $1 AND user_id = $2 AND status = $3)`
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, assignmentID, userID, models.SubmissionStatusSubmitted); err != nil {
		return false, fmt.Errorf("check submission for assignment %d user %d: %w", assignmentID, userID, err)
	}
	return exists, nil
}

// Grade returns the user's grade record for an assignment, or nil when no
// record exists. The Grade field itself may still be null.
func (r *AssignmentRepository) Grade(ctx context.Context, assignmentID, userID int64) (*models.AssignmentGrade, error) {
	const query = `SELECT id, assignment_id, user_id, grade
        FROM assignment_grades
        WHERE assignment_id = $1 AND user_id = $2`
	var grade models.AssignmentGrade
	if err := r.db.GetContext(ctx, &grade, query, assignmentID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetch grade for assignment %d user %d: %w", assignmentID, userID, err)
	}
	return &grade, nil
}
