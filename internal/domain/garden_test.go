package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateGardenName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "simple", input: "Backyard"},
		{name: "ascii at limit", input: strings.Repeat("a", MaxGardenNameLength)},
		{name: "ascii over limit", input: strings.Repeat("a", MaxGardenNameLength+1), wantErr: ErrValidation},
		{name: "multibyte short", input: strings.Repeat("庭", 40)},
		{name: "multibyte at limit", input: strings.Repeat("庭", MaxGardenNameLength)},
		{name: "multibyte over limit", input: strings.Repeat("庭", MaxGardenNameLength+1), wantErr: ErrValidation},
		{name: "empty", input: "", wantErr: ErrEmptyGardenName},
		{name: "whitespace only", input: " \t ", wantErr: ErrEmptyGardenName},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateGardenName(tc.input)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, "name", vErr.Field)
		})
	}
}

func TestValidateGardenDescription(t *testing.T) {
	t.Parallel()

	ptr := func(s string) *string { return &s }

	tests := []struct {
		name    string
		input   *string
		wantErr bool
	}{
		{name: "nil clears", input: nil},
		{name: "empty string", input: ptr("")},
		{name: "ascii at limit", input: ptr(strings.Repeat("d", MaxGardenDescriptionLength))},
		{name: "ascii over limit", input: ptr(strings.Repeat("d", MaxGardenDescriptionLength+1)), wantErr: true},
		{name: "multibyte at limit", input: ptr(strings.Repeat("é", MaxGardenDescriptionLength))},
		{name: "multibyte over limit", input: ptr(strings.Repeat("é", MaxGardenDescriptionLength+1)), wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateGardenDescription(tc.input)
			if !tc.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrValidation)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, "description", vErr.Field)
		})
	}
}

func TestGardenUpdate_ValidateMultibyteName(t *testing.T) {
	t.Parallel()

	var fits GardenUpdate
	fits.SetName(strings.Repeat("庭", MaxGardenNameLength))
	assert.NoError(t, fits.Validate())

	var over GardenUpdate
	over.SetName(strings.Repeat("庭", MaxGardenNameLength+1))
	assert.ErrorIs(t, over.Validate(), ErrValidation)
}

func TestNewOwnedGarden(t *testing.T) {
	t.Parallel()

	desc := "shaded plot"
	g := NewOwnedGarden(7, "Backyard", &desc, "alice")

	assert.Equal(t, int64(7), g.ID)
	assert.Equal(t, "Backyard", g.Name)
	require.NotNil(t, g.Description)
	assert.Equal(t, "shaded plot", *g.Description)
	assert.Equal(t, []string{"alice"}, g.Users)

	bare := NewOwnedGarden(8, "Roof", nil, "bob")
	assert.Nil(t, bare.Description)
}

func TestOwnedGarden_HasOwner(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		users    []string
		username string
		want     bool
	}{
		{name: "sole owner", users: []string{"alice"}, username: "alice", want: true},
		{name: "co-owner", users: []string{"alice", "bob"}, username: "bob", want: true},
		{name: "stranger", users: []string{"alice", "bob"}, username: "mallory", want: false},
		{name: "case sensitive", users: []string{"alice"}, username: "Alice", want: false},
		{name: "no owners", users: []string{}, username: "alice", want: false},
		{name: "nil owners", users: nil, username: "alice", want: false},
		{name: "empty username", users: []string{"alice"}, username: "", want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			g := OwnedGarden{Garden: Garden{ID: 1, Name: "Backyard"}, Users: tc.users}
			assert.Equal(t, tc.want, g.HasOwner(tc.username))
		})
	}
}
