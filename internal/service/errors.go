package service

import (
	"errors"
	"fmt"
)

// Common service errors - sentinel errors used across service implementations.
// These errors represent common conditions that callers may want to check for with errors.Is().
//
// Error handling principles:
// 1. Service methods return sentinel errors for expected error conditions
// 2. Unexpected errors are wrapped in service-specific error types
// 3. Callers use errors.Is/errors.As to check for specific error conditions
// 4. The API layer maps service errors to appropriate HTTP status codes
var (
	// ErrNotOwned indicates a garden exists but the requesting user is not
	// one of its owners.
	// API layer should map this to HTTP 403 Forbidden.
	ErrNotOwned = errors.New("resource is owned by another user")
)

// GardenServiceError is a custom error type for garden service errors.
type GardenServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for GardenServiceError.
func (e *GardenServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("garden service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("garden service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *GardenServiceError) Unwrap() error {
	return e.Err
}

// NewGardenServiceError creates a new GardenServiceError.
func NewGardenServiceError(operation, message string, err error) *GardenServiceError {
	return &GardenServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
