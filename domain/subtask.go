package domain

import "time"

// SubTask is a step under a Task. Ownership is transitive through the
// parent task; no direct owner reference is stored.
type SubTask struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Completed   bool       `json:"completed"`
	TaskID      string     `json:"task"`
	CompletedAt *time.Time `json:"completed_at"`
}

// SyncCompletion mirrors Task.SyncCompletion for the subtask timestamps.
func (s *SubTask) SyncCompletion(now time.Time) {
	if s.Completed {
		if s.CompletedAt == nil {
			ts := now
			s.CompletedAt = &ts
		}
		return
	}
	s.CompletedAt = nil
}

// Validate checks caller-writable fields before any persist.
func (s *SubTask) Validate() error {
	fields := map[string]string{}
	if s.Title == "" {
		fields["title"] = "title is required"
	} else if len(s.Title) > 255 {
		fields["title"] = "title must be at most 255 characters"
	}
	if s.TaskID == "" {
		fields["task"] = "task is required"
	}
	if len(fields) > 0 {
		return NewValidationError(fields)
	}
	return nil
}
