package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials covers both unknown-email and wrong-password
	// sign-in failures so the API never acts as a user-exists oracle.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrEmailTaken = errors.New("email already registered")

	// ErrTaskNotFound is returned both when a task row is absent and when
	// it exists but belongs to another user. Callers cannot distinguish
	// the two cases.
	ErrTaskNotFound = errors.New("task not found")

	ErrUserNotFound    = errors.New("user not found")
	ErrProfileNotFound = errors.New("profile not found")
	ErrRoleNotFound    = errors.New("role assignment not found")
	ErrSessionNotFound = errors.New("session not found")

	ErrForbidden = errors.New("access forbidden")
)

// ValidationError reports the first field that failed validation.
// Validation runs before any persistence call and blocks it entirely.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
