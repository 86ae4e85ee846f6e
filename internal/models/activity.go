package models

// ActivityKind enumerates the activity module types the progress engine
// knows how to classify. Anything else maps to ActivityUnknown and is
// reported incomplete rather than guessed at.
type ActivityKind string

const (
	ActivityQuiz       ActivityKind = "quiz"
	ActivityAssignment ActivityKind = "assign"
	ActivityUnknown    ActivityKind = "unknown"
)

// ParseActivityKind maps a raw module name onto the closed kind set.
func ParseActivityKind(raw string) ActivityKind {
	switch raw {
	case string(ActivityQuiz):
		return ActivityQuiz
	case string(ActivityAssignment):
		return ActivityAssignment
	default:
		return ActivityUnknown
	}
}

// Activity is one gradable or completable unit within a course. Owned by the
// course; read-only to this service.
type Activity struct {
	ID         int64  `db:"id" json:"id"`
	CourseID   int64  `db:"course_id" json:"course_id"`
	Module     string `db:"module" json:"module"`
	InstanceID int64  `db:"instance_id" json:"instance_id"`
	Name       string `db:"name" json:"name"`
	Visible    bool   `db:"visible" json:"visible"`
}

// Kind returns the typed activity kind for dispatch.
func (a Activity) Kind() ActivityKind {
	return ParseActivityKind(a.Module)
}
