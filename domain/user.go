package domain

import "time"

// User represents a registered account. The password hash never leaves
// the process boundary.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"-"`
}

// Validate checks the fields supplied at registration time.
func (u *User) Validate() error {
	fields := map[string]string{}
	if u == nil || u.Username == "" {
		fields["username"] = "username is required"
	}
	if u != nil && len(u.Username) > 150 {
		fields["username"] = "username must be at most 150 characters"
	}
	if len(fields) > 0 {
		return NewValidationError(fields)
	}
	return nil
}
