package domain

import (
	"errors"
	"fmt"
)

// ErrorCode represents a semantic classification shared across transport layers.
type ErrorCode string

const (
	ErrCodeNotFound     ErrorCode = "NOT_FOUND"
	ErrCodeInvalid      ErrorCode = "INVALID"
	ErrCodeConflict     ErrorCode = "CONFLICT"
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeInternal     ErrorCode = "INTERNAL"
)

// Error represents a domain-level error. Validation failures carry
// per-field messages in Fields.
type Error struct {
	Code    ErrorCode
	Message string
	Fields  map[string]string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewError builds a domain error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// NewValidationError builds an INVALID error with field-level messages.
func NewValidationError(fields map[string]string) *Error {
	return &Error{
		Code:    ErrCodeInvalid,
		Message: "validation failed",
		Fields:  fields,
	}
}

// WrapError wraps an existing error with a domain classification.
func WrapError(code ErrorCode, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common domain errors.
var (
	ErrUserNotFound       = NewError(ErrCodeNotFound, "user not found")
	ErrTaskNotFound       = NewError(ErrCodeNotFound, "task not found")
	ErrSubTaskNotFound    = NewError(ErrCodeNotFound, "subtask not found")
	ErrSessionNotFound    = NewError(ErrCodeNotFound, "session not found")
	ErrInvalidCredentials = NewError(ErrCodeUnauthorized, "invalid credentials")
	ErrInvalidToken       = NewError(ErrCodeUnauthorized, "invalid or expired token")
	ErrInvalidPayload     = NewError(ErrCodeInvalid, "invalid payload")
)

// ErrUsernameTaken reports a duplicate username as a field-level validation failure.
func ErrUsernameTaken() *Error {
	return NewValidationError(map[string]string{"username": "username already taken"})
}

// IsDomainError helps checking error codes.
func IsDomainError(err error, code ErrorCode) bool {
	var dErr *Error
	if errors.As(err, &dErr) {
		return dErr.Code == code
	}
	return false
}
