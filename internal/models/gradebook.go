package models

// QuizGradeRecord is the gradebook entry for a user on a quiz: the grade
// item's own scale bounds plus the user's (nullable) grade on that scale.
// Normalisation always uses the item bounds, never per-attempt values.
type QuizGradeRecord struct {
	QuizID   int64    `db:"quiz_id" json:"quiz_id"`
	UserID   int64    `db:"user_id" json:"user_id"`
	GradeMin float64  `db:"grade_min" json:"grade_min"`
	GradeMax float64  `db:"grade_max" json:"grade_max"`
	Grade    *float64 `db:"grade" json:"grade,omitempty"`
}
