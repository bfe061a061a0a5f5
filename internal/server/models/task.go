package models

import "time"

// Task is a to-do item owned by exactly one user for its entire lifetime.
// UserID is set at creation and used as a mandatory filter on every
// subsequent access.
type Task struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Date        *time.Time `json:"date"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// TaskUpdate carries the fields of an update request. Nil pointers mean
// "leave unchanged"; Date distinguishes "absent" (DateSet false) from
// "explicitly cleared" (DateSet true, Date nil).
type TaskUpdate struct {
	Title       *string
	Description *string
	Completed   *bool
	Date        *time.Time
	DateSet     bool
}
