package models

// Course is the enclosing container for activities. Read-only here.
type Course struct {
	ID      int64  `db:"id" json:"id"`
	Name    string `db:"name" json:"name"`
	Visible bool   `db:"visible" json:"visible"`
}
