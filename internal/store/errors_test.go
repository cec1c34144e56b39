package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
		{
			name:     "generic error",
			err:      errors.New("some error"),
			expected: false,
		},
		{
			name:     "ErrNotFound",
			err:      ErrNotFound,
			expected: true,
		},
		{
			name:     "wrapped ErrGardenNotFound",
			err:      fmt.Errorf("failed to find garden: %w", ErrGardenNotFound),
			expected: true,
		},
		{
			name:     "NotFoundError",
			err:      NewGardenNotFoundError(9),
			expected: true,
		},
		{
			name:     "bad request is not not-found",
			err:      ErrNoData,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsNotFoundError(tt.err))
		})
	}
}

func TestIsBadRequestError(t *testing.T) {
	assert.True(t, IsBadRequestError(ErrNoData))
	assert.True(t, IsBadRequestError(fmt.Errorf("compile: %w", ErrNoData)))
	assert.False(t, IsBadRequestError(ErrGardenNotFound))
	assert.False(t, IsBadRequestError(nil))
}

func TestNotFoundError(t *testing.T) {
	err := NewGardenNotFoundError(42)

	assert.Equal(t, "No garden: 42", err.Error())
	assert.ErrorIs(t, err, ErrGardenNotFound)
	assert.ErrorIs(t, err, ErrNotFound)

	var nf *NotFoundError
	assert.True(t, errors.As(fmt.Errorf("get: %w", err), &nf))
	assert.Equal(t, int64(42), nf.ID)

	bare := &NotFoundError{Entity: "bed", ID: 7}
	assert.Equal(t, "No bed: 7", bare.Error())
	assert.ErrorIs(t, bare, ErrNotFound)
	assert.NotErrorIs(t, bare, ErrGardenNotFound)
}
