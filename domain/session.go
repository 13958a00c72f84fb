package domain

import "time"

// Session tracks an issued refresh token server-side. A refresh token is
// honored only while its session record exists.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *Session) IsExpired(reference time.Time) bool {
	if s == nil {
		return true
	}
	if reference.IsZero() {
		reference = time.Now()
	}
	return !s.ExpiresAt.After(reference)
}
