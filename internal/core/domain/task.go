package domain

import (
	"time"
	"unicode/utf8"
)

// TaskStatus represents the workflow state of a task. There is no
// transition graph: any status may move to any other status.
type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
)

// ValidStatus reports whether s is one of the enumerated statuses.
func ValidStatus(s TaskStatus) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// TaskPriority represents the urgency of a task.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// ValidPriority reports whether p is one of the enumerated priorities.
func ValidPriority(p TaskPriority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

const (
	MaxTitleLen       = 200
	MaxDescriptionLen = 1000
)

// Task is a unit of work exclusively owned by the user who created it.
type Task struct {
	ID          string       `json:"id"`
	UserID      string       `json:"user_id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	DueDate     *time.Time   `json:"due_date,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// Validate checks the task's field invariants. The first violated field
// wins; no partial result is ever persisted on failure.
func (t *Task) Validate() error {
	if t.Title == "" {
		return &ValidationError{Field: "title", Message: "title is required"}
	}
	if utf8.RuneCountInString(t.Title) > MaxTitleLen {
		return &ValidationError{Field: "title", Message: "title must be at most 200 characters"}
	}
	if utf8.RuneCountInString(t.Description) > MaxDescriptionLen {
		return &ValidationError{Field: "description", Message: "description must be at most 1000 characters"}
	}
	if !ValidStatus(t.Status) {
		return &ValidationError{Field: "status", Message: "status must be one of: pending, in_progress, completed"}
	}
	if !ValidPriority(t.Priority) {
		return &ValidationError{Field: "priority", Message: "priority must be one of: low, medium, high"}
	}
	return nil
}
