package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/progress-analytics-api/internal/models"
	appErrors "github.com/noah-isme/progress-analytics-api/pkg/errors"
)

type fakeInvalidator struct {
	calls []string
	err   error
}

func (f *fakeInvalidator) Invalidate(_ context.Context, userID, courseID int64) error {
	f.calls = append(f.calls, attemptKey(userID, courseID))
	return f.err
}

func TestHandleQuizEventsInvalidate(t *testing.T) {
	for _, eventType := range []models.ProgressEventType{
		models.EventQuizAttemptSubmitted,
		models.EventQuizAttemptFinished,
		models.EventQuizGradeUpdated,
	} {
		t.Run(string(eventType), func(t *testing.T) {
			progress := &fakeInvalidator{}
			svc := NewEventService(progress, nil)

			err := svc.Handle(context.Background(), models.ProgressEvent{
				Type:     eventType,
				UserID:   10,
				CourseID: 1,
			})
			require.NoError(t, err)
			assert.Equal(t, []string{attemptKey(10, 1)}, progress.calls)
		})
	}
}

func TestHandleCompletionEventQuizModule(t *testing.T) {
	progress := &fakeInvalidator{}
	svc := NewEventService(progress, nil)

	err := svc.Handle(context.Background(), models.ProgressEvent{
		Type:     models.EventCompletionUpdated,
		UserID:   10,
		CourseID: 1,
		Module:   "quiz",
	})
	require.NoError(t, err)
	assert.Len(t, progress.calls, 1)
}

func TestHandleCompletionEventOtherModuleIgnored(t *testing.T) {
	progress := &fakeInvalidator{}
	svc := NewEventService(progress, nil)

	err := svc.Handle(context.Background(), models.ProgressEvent{
		Type:     models.EventCompletionUpdated,
		UserID:   10,
		CourseID: 1,
		Module:   "assign",
	})
	require.NoError(t, err)
	assert.Empty(t, progress.calls)
}

func TestHandleUnknownEventType(t *testing.T) {
	progress := &fakeInvalidator{}
	svc := NewEventService(progress, nil)

	err := svc.Handle(context.Background(), models.ProgressEvent{
		Type:     "course_viewed",
		UserID:   10,
		CourseID: 1,
	})
	require.Error(t, err)
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Empty(t, progress.calls)
}

func TestHandleInvalidPayload(t *testing.T) {
	progress := &fakeInvalidator{}
	svc := NewEventService(progress, nil)

	err := svc.Handle(context.Background(), models.ProgressEvent{
		Type:     models.EventQuizGradeUpdated,
		UserID:   0,
		CourseID: 1,
	})
	require.Error(t, err)
	assert.Empty(t, progress.calls)
}

func TestHandleInvalidationErrorPassthrough(t *testing.T) {
	progress := &fakeInvalidator{err: assert.AnError}
	svc := NewEventService(progress, nil)

	err := svc.Handle(context.Background(), models.ProgressEvent{
		Type:     models.EventQuizGradeUpdated,
		UserID:   10,
		CourseID: 1,
	})
	assert.ErrorIs(t, err, assert.AnError)
}
