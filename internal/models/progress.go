package models

// ProgressSummary reports activity completion for one user in one course.
type ProgressSummary struct {
	Completed  int     `json:"completed"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// QuizResult is one finished quiz with its display-ready grade on the 0-100
// scale and the epoch-seconds finish time of the latest attempt.
type QuizResult struct {
	QuizID int64   `json:"quizid"`
	Name   string  `json:"name"`
	Grade  float64 `json:"grade"`
	Date   int64   `json:"date"`
}

// ComparisonSummary contextualises the student against the course baseline.
// Percentile stays 0 when the participant gate is not met.
type ComparisonSummary struct {
	StudentMean   float64 `json:"studentMean"`
	CourseMean    float64 `json:"courseMean"`
	Percentile    int     `json:"percentile"`
	HasComparison bool    `json:"hasComparison"`
}

// CourseBaseline is the course-wide aggregate cached independently of any
// single user: one mean per participant with at least one completed grade.
type CourseBaseline struct {
	CourseMean       float64   `json:"course_mean"`
	AllGrades        []float64 `json:"all_grades"`
	ParticipantCount int       `json:"participant_count"`
}

// CourseQuizMetrics is the full per-user response payload and the unit of
// user-level caching.
type CourseQuizMetrics struct {
	Progress   ProgressSummary   `json:"progress"`
	Results    []QuizResult      `json:"results"`
	Comparison ComparisonSummary `json:"comparison"`
}
