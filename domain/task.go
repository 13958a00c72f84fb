package domain

import (
	"fmt"
	"time"
)

// Priority classifies how urgent a task is.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task represents a user-owned activity item. The owner is never part of
// the wire representation; completed_at and created_at are server-derived.
type Task struct {
	ID          string     `json:"id"`
	UserID      string     `json:"-"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *Date      `json:"due_date"`
	Priority    Priority   `json:"priority"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"created_at"`
	SubTasks    []SubTask  `json:"subtasks"`
	CompletedAt *time.Time `json:"completed_at"`
}

// SyncCompletion keeps completed_at consistent with the completed flag:
// set once on the false→true transition, cleared whenever completed is false.
func (t *Task) SyncCompletion(now time.Time) {
	if t.Completed {
		if t.CompletedAt == nil {
			ts := now
			t.CompletedAt = &ts
		}
		return
	}
	t.CompletedAt = nil
}

// Validate checks caller-writable fields before any persist.
func (t *Task) Validate() error {
	fields := map[string]string{}
	if t.Title == "" {
		fields["title"] = "title is required"
	} else if len(t.Title) > 255 {
		fields["title"] = "title must be at most 255 characters"
	}
	if !t.Priority.Valid() {
		fields["priority"] = fmt.Sprintf("priority must be one of %s, %s, %s", PriorityLow, PriorityMedium, PriorityHigh)
	}
	if len(fields) > 0 {
		return NewValidationError(fields)
	}
	return nil
}
