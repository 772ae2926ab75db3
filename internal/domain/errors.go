package domain

import (
	"fmt"
	"time"
)

// Common error types
type ErrNotFound struct {
	Entity string
	ID     string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found with ID: %s", e.Entity, e.ID)
}

// ValidationError represents an error that occurs due to invalid input or parameters
type ValidationError struct {
	Message string
}

// Error implements the error interface
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// NewValidationError creates a new validation error with the given message
func NewValidationError(message string) error {
	return ValidationError{
		Message: message,
	}
}

// PermissionError represents insufficient permissions for an operation.
// The message is deliberately generic: it must not reveal whether the
// underlying resource exists.
type PermissionError struct {
	Message string `json:"message"`
}

// Error implements the error interface
func (e *PermissionError) Error() string {
	return e.Message
}

// NewPermissionError creates a new permission error
func NewPermissionError(message string) *PermissionError {
	return &PermissionError{Message: message}
}

// ErrInsufficientPermissions is the default insufficient permissions error
var ErrInsufficientPermissions = NewPermissionError("Insufficient permissions")

// AuthError represents a failed authentication: bad credentials, an invalid
// or expired token, or a deactivated principal. Always maps to a 401.
type AuthError struct {
	Message string `json:"message"`
}

// Error implements the error interface
func (e *AuthError) Error() string {
	return e.Message
}

// NewAuthError creates a new authentication error
func NewAuthError(message string) *AuthError {
	return &AuthError{Message: message}
}

// ErrLockConflict is returned when a content item already has a live lock
// held by another admin.
type ErrLockConflict struct {
	ContentItemID string
	ExpiresAt     time.Time
}

func (e *ErrLockConflict) Error() string {
	return fmt.Sprintf("content item %s is locked until %s", e.ContentItemID, e.ExpiresAt.Format(time.RFC3339))
}
