package models

// AttemptStateFinished marks a quiz attempt the user has submitted and closed.
const AttemptStateFinished = "finished"

// Quiz describes a quiz instance within a course.
type Quiz struct {
	ID        int64   `db:"id" json:"id"`
	CourseID  int64   `db:"course_id" json:"course_id"`
	Name      string  `db:"name" json:"name"`
	SumGrades float64 `db:"sum_grades" json:"sum_grades"`
	Visible   bool    `db:"visible" json:"visible"`
}

// QuizAttempt is one recorded engagement of a user with a quiz. SumGrades is
// nullable: an attempt can finish without any mark recorded.
type QuizAttempt struct {
	ID         int64    `db:"id" json:"id"`
	QuizID     int64    `db:"quiz_id" json:"quiz_id"`
	UserID     int64    `db:"user_id" json:"user_id"`
	State      string   `db:"state" json:"state"`
	SumGrades  *float64 `db:"sum_grades" json:"sum_grades,omitempty"`
	TimeFinish int64    `db:"time_finish" json:"time_finish"`
}
