package domain

import "time"

// FocusSession records a single logged focus session. It is immutable
// after creation; the timestamp is always server-assigned.
type FocusSession struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Timestamp time.Time `json:"timestamp"`
}
