package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/progress-analytics-api/internal/models"
	appErrors "github.com/noah-isme/progress-analytics-api/pkg/errors"
)

type cacheInvalidator interface {
	Invalidate(ctx context.Context, userID, courseID int64) error
}

// EventService bridges the host event bus to cache invalidation. The core
// defines no bus of its own; the bus adapter posts events here.
type EventService struct {
	progress  cacheInvalidator
	validator *validator.Validate
	logger    *zap.Logger
}

// NewEventService constructs an event service.
func NewEventService(progress cacheInvalidator, logger *zap.Logger) *EventService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventService{progress: progress, validator: validator.New(), logger: logger}
}

// Handle applies one data-change event. Completion events for non-quiz
// modules are acknowledged but do not invalidate anything.
func (s *EventService) Handle(ctx context.Context, event models.ProgressEvent) error {
	if err := s.validator.Struct(event); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid event payload")
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}

	switch event.Type {
	case models.EventQuizAttemptSubmitted, models.EventQuizAttemptFinished, models.EventQuizGradeUpdated:
		// Always grade-affecting.
	case models.EventCompletionUpdated:
		if event.Module != string(models.ActivityQuiz) {
			s.logger.Debug("ignoring completion event for non-quiz module",
				zap.String("event_id", event.ID),
				zap.String("module", event.Module))
			return nil
		}
	default:
		return appErrors.Clone(appErrors.ErrValidation, "unknown event type")
	}

	if err := s.progress.Invalidate(ctx, event.UserID, event.CourseID); err != nil {
		return err
	}

	s.logger.Info("progress cache invalidated",
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)),
		zap.Int64("user_id", event.UserID),
		zap.Int64("course_id", event.CourseID))
	return nil
}
