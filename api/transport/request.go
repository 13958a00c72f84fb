package transport

import "github.com/focusdo/backend/domain"

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Access    string `json:"access"`
	Refresh   string `json:"refresh,omitempty"`
	ExpiresIn int64  `json:"expires_in"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

// TaskCreateRequest carries the caller-writable task fields. Timestamps
// and ownership are server-assigned and have no place here.
type TaskCreateRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	DueDate     *domain.Date    `json:"due_date"`
	Priority    domain.Priority `json:"priority"`
	Completed   bool            `json:"completed"`
}

// TaskUpdateRequest carries a partial update; nil means "leave as is".
type TaskUpdateRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	DueDate     *domain.Date     `json:"due_date"`
	Priority    *domain.Priority `json:"priority"`
	Completed   *bool            `json:"completed"`
}

type SubTaskCreateRequest struct {
	Title     string `json:"title"`
	Task      string `json:"task"`
	Completed bool   `json:"completed"`
}

type SubTaskUpdateRequest struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}
