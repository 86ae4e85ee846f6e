package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/progress-analytics-api/internal/models"
)

// GradebookRepository reads the system-of-record gradebook for quizzes.
type GradebookRepository struct {
	db *sqlx.DB
}

// NewGradebookRepository creates a new gradebook repository.
func NewGradebookRepository(db *sqlx.DB) *GradebookRepository {
	return &GradebookRepository{db: db}
}

// QuizGrade returns the gradebook entry for a user on a quiz, carrying the
// grade item's scale bounds alongside the (nullable) grade. Returns nil when
// no entry exists for the user.
func (r *GradebookRepository) QuizGrade(ctx context.Context, quizID, userID int64) (*models.QuizGradeRecord, error) {
	const query = `SELECT gi.quiz_id, gg.user_id, gi.grade_min, gi.grade_max, gg.grade
        FROM quiz_grade_items gi
        JOIN quiz_grades gg ON gg.item_id = gi.id
        WHERE gi.quiz_id = $1 AND gg.user_id = $2`
	var record models.QuizGradeRecord
	if err := r.db.GetContext(ctx, &record, query, quizID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetch gradebook entry for quiz %d user %d: %w", quizID, userID, err)
	}
	return &record, nil
}
