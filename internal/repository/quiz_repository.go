package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/progress-analytics-api/internal/models"
)

// QuizRepository reads quizzes and quiz attempts.
type QuizRepository struct {
	db *sqlx.DB
}

// NewQuizRepository creates a new quiz repository.
func NewQuizRepository(db *sqlx.DB) *QuizRepository {
	return &QuizRepository{db: db}
}

// ListVisibleByCourse returns the quizzes in a course that are visible to
// participants, ordered by ID.
func (r *QuizRepository) ListVisibleByCourse(ctx context.Context, courseID int64) ([]models.Quiz, error) {
	const query = `SELECT id, course_id, name, sum_grades, visible
        FROM quizzes
        WHERE course_id = $1 AND visible = TRUE
        ORDER BY id`
	var quizzes []models.Quiz
	if err := r.db.SelectContext(ctx, &quizzes, query, courseID); err != nil {
		return nil, fmt.Errorf("list quizzes for course %d: %w", courseID, err)
	}
	return quizzes, nil
}

// FinishedAttempts returns the user's finished attempts on a quiz ordered by
// finish time ascending, so the last element is the most recent.
func (r *QuizRepository) FinishedAttempts(ctx context.Context, quizID, userID int64) ([]models.QuizAttempt, error) {
	const query = `SELECT id, quiz_id, user_id, state, sum_grades, time_finish
        FROM quiz_attempts
        WHERE quiz_id = $1 AND user_id = $2 AND state = $3
        ORDER BY time_finish, id`
	var attempts []models.QuizAttempt
	if err := r.db.SelectContext(ctx, &attempts, query, quizID, userID, models.AttemptStateFinished); err != nil {
		return nil, fmt.Errorf("list finished attempts for quiz %d user %d: %w", quizID, userID, err)
	}
	return attempts, nil
}

// HasFinishedAttempt reports whether the user finished at least one attempt.
func (r *QuizRepository) HasFinishedAttempt(ctx context.Context, quizID, userID int64) (bool, error) {
	const query = `SELECT EXISTS (
        SELECT 1 FROM quiz_attempts
        WHERE quiz_id = $1 AND user_id = $2 AND state = $3)`
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, quizID, userID, models.AttemptStateFinished); err != nil {
		return false, fmt.Errorf("check finished attempt for quiz %d user %d: %w", quizID, userID, err)
	}
	return exists, nil
}
