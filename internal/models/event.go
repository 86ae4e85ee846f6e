package models

// ProgressEventType identifies a data-change event relevant to cached metrics.
type ProgressEventType string

const (
	EventQuizAttemptSubmitted ProgressEventType = "quiz_attempt_submitted"
	EventQuizAttemptFinished  ProgressEventType = "quiz_attempt_finished"
	EventQuizGradeUpdated     ProgressEventType = "quiz_grade_updated"
	EventCompletionUpdated    ProgressEventType = "course_module_completion_updated"
)

// ProgressEvent is the payload the host event bus delivers when grade- or
// completion-affecting data changes. Module is only meaningful for
// completion events, where non-quiz modules are ignored.
type ProgressEvent struct {
	ID       string            `json:"id"`
	Type     ProgressEventType `json:"type" validate:"required"`
	UserID   int64             `json:"userId" validate:"required,gt=0"`
	CourseID int64             `json:"courseId" validate:"required,gt=0"`
	Module   string            `json:"module"`
}
