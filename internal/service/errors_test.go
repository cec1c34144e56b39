package service

import (
	"errors"
	"testing"

	"github.com/phrazzld/garden-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "resource is owned by another user", ErrNotOwned.Error())
	assert.False(t, errors.Is(ErrNotOwned, store.ErrNotFound))
}

func TestGardenServiceError(t *testing.T) {
	tests := []struct {
		name     string
		op       string
		msg      string
		err      error
		expected string
	}{
		{
			name:     "with underlying error",
			op:       "update_garden",
			msg:      "failed to update garden",
			err:      errors.New("connection refused"),
			expected: "garden service update_garden failed: failed to update garden: connection refused",
		},
		{
			name:     "without underlying error",
			op:       "get_garden",
			msg:      "garden missing",
			expected: "garden service get_garden failed: garden missing",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := NewGardenServiceError(tc.op, tc.msg, tc.err)
			assert.Equal(t, tc.expected, err.Error())
			assert.Equal(t, tc.err, errors.Unwrap(err))
		})
	}

	t.Run("sentinels stay matchable through the wrapper", func(t *testing.T) {
		err := NewGardenServiceError("remove_garden", "not found", store.NewGardenNotFoundError(4))
		assert.ErrorIs(t, err, store.ErrGardenNotFound)
		assert.ErrorIs(t, err, store.ErrNotFound)

		var nf *store.NotFoundError
		assert.ErrorAs(t, err, &nf)
		assert.Equal(t, int64(4), nf.ID)
	})
}
