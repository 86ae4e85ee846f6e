package models

// SubmissionStatusSubmitted is the status value counted as a completed hand-in.
const SubmissionStatusSubmitted = "submitted"

// AssignmentSubmission records a user's hand-in for an assignment instance.
type AssignmentSubmission struct {
	ID           int64  `db:"id" json:"id"`
	AssignmentID int64  `db:"assignment_id" json:"assignment_id"`
	UserID       int64  `db:"user_id" json:"user_id"`
	Status       string `db:"status" json:"status"`
}

// AssignmentGrade is the marker-entered grade for an assignment instance.
// Grade is nullable; a row can exist before any mark is given.
type AssignmentGrade struct {
	ID           int64    `db:"id" json:"id"`
	AssignmentID int64    `db:"assignment_id" json:"assignment_id"`
	UserID       int64    `db:"user_id" json:"user_id"`
	Grade        *float64 `db:"grade" json:"grade,omitempty"`
}
