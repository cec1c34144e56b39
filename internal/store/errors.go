package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a lookup, update or delete targets an
	// entity that does not exist in the store. Absence is never transient,
	// so callers should not retry.
	ErrNotFound = errors.New("entity not found")

	// ErrBadRequest is returned when a caller-supplied payload cannot be
	// turned into a valid statement, for example an empty partial update.
	ErrBadRequest = errors.New("bad request")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., linking the same user to a garden twice).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity references rows that do
	// not exist or violates a table constraint.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrNoData indicates a partial update with no fields to set.
	ErrNoData = fmt.Errorf("%w: no data", ErrBadRequest)

	// ErrGardenNotFound indicates that the requested garden does not exist in the store.
	ErrGardenNotFound = fmt.Errorf("%w: garden", ErrNotFound)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsBadRequestError checks if the error is any kind of "bad request" error.
func IsBadRequestError(err error) bool {
	return errors.Is(err, ErrBadRequest)
}

// NotFoundError reports a missing entity together with the identifier that
// was looked up. It matches ErrNotFound and the entity-specific sentinel
// with errors.Is.
type NotFoundError struct {
	Entity string
	ID     any
	Err    error
}

// Error implements the error interface, e.g. "No garden: 42".
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("No %s: %v", e.Entity, e.ID)
}

// Unwrap returns the sentinel the error was created with.
func (e *NotFoundError) Unwrap() error {
	if e.Err == nil {
		return ErrNotFound
	}
	return e.Err
}

// NewGardenNotFoundError creates the not-found error for garden id.
func NewGardenNotFoundError(id int64) *NotFoundError {
	return &NotFoundError{
		Entity: "garden",
		ID:     id,
		Err:    ErrGardenNotFound,
	}
}
