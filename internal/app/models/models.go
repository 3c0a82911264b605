package models

import "time"

// Column names of the students table that the roster relies on. Any other
// column is passed through untouched.
const (
	ColumnID          = "id"
	ColumnName        = "name"
	ColumnIsSuspended = "isSuspended"
	ColumnCreatedAt   = "created_at"
	ColumnUpdatedAt   = "updated_at"
)

// EventType names a change published to event subscribers.
type EventType string

const (
	EventStudentSuspended   EventType = "student.suspended"
	EventStudentUnsuspended EventType = "student.unsuspended"
)

// Event is a roster change pushed to event subscribers.
type Event struct {
	Type      EventType `json:"type" example:"student.suspended"`
	StudentID int64     `json:"studentId" example:"1"`
	Reason    *string   `json:"reason,omitempty" example:"Repeated absence"`
	Timestamp time.Time `json:"timestamp"`
}
