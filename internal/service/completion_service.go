package service

import (
	"context"
	"fmt"

	"github.com/noah-isme/progress-analytics-api/internal/models"
)

type attemptChecker interface {
	HasFinishedAttempt(ctx context.Context, quizID, userID int64) (bool, error)
}

type submissionReader interface {
	HasSubmitted(ctx context.Context, assignmentID, userID int64) (bool, error)
	Grade(ctx context.Context, assignmentID, userID int64) (*models.AssignmentGrade, error)
}

// CompletionClassifier decides per-user completion of a single activity
// using type-specific rules. Unknown activity kinds are never guessed at;
// they classify as incomplete.
type CompletionClassifier struct {
	quizzes     attemptChecker
	assignments submissionReader
}

// NewCompletionClassifier constructs a classifier.
func NewCompletionClassifier(quizzes attemptChecker, assignments submissionReader) *CompletionClassifier {
	return &CompletionClassifier{quizzes: quizzes, assignments: assignments}
}

// IsComplete reports whether the user completed the activity.
func (c *CompletionClassifier) IsComplete(ctx context.Context, activity models.Activity, userID int64) (bool, error) {
	switch activity.Kind() {
	case models.ActivityQuiz:
		done, err := c.quizzes.HasFinishedAttempt(ctx, activity.InstanceID, userID)
		if err != nil {
			return false, fmt.Errorf("classify quiz activity %d: %w", activity.ID, err)
		}
		return done, nil
	case models.ActivityAssignment:
		submitted, err := c.assignments.HasSubmitted(ctx, activity.InstanceID, userID)
		if err != nil {
			return false, fmt.Errorf("classify assignment activity %d: %w", activity.ID, err)
		}
		if submitted {
			return true, nil
		}
		grade, err := c.assignments.Grade(ctx, activity.InstanceID, userID)
		if err != nil {
			return false, fmt.Errorf("classify assignment activity %d: %w", activity.ID, err)
		}
		return grade != nil && grade.Grade != nil, nil
	default:
		// Unknown criteria for other configured module types.
		return false, nil
	}
}
