package domain

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGardenUpdate_SetOrderAndReplace(t *testing.T) {
	t.Parallel()

	desc := "shaded plot"
	var u GardenUpdate
	u.SetDescription(&desc).SetName("Backyard").SetName("Front yard")

	changes := u.Changes()
	require.Len(t, changes, 2)
	assert.Equal(t, GardenFieldDescription, changes[0].Field)
	assert.Equal(t, "shaded plot", changes[0].Value)
	assert.Equal(t, GardenFieldName, changes[1].Field)
	assert.Equal(t, "Front yard", changes[1].Value, "second SetName replaces the first in place")
}

func TestGardenUpdate_ClearDescription(t *testing.T) {
	t.Parallel()

	var u GardenUpdate
	u.SetDescription(nil)

	changes := u.Changes()
	require.Len(t, changes, 1)
	assert.Nil(t, changes[0].Value)
}

func TestGardenUpdate_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		body      string
		wantErr   error
		wantNames []GardenField
		check     func(t *testing.T, u GardenUpdate)
	}{
		{
			name:      "name only",
			body:      `{"name":"New Name"}`,
			wantNames: []GardenField{GardenFieldName},
			check: func(t *testing.T, u GardenUpdate) {
				assert.Equal(t, "New Name", u.Changes()[0].Value)
			},
		},
		{
			name:      "both fields in canonical order",
			body:      `{"description":"d","name":"n"}`,
			wantNames: []GardenField{GardenFieldName, GardenFieldDescription},
		},
		{
			name:      "null description clears",
			body:      `{"description":null}`,
			wantNames: []GardenField{GardenFieldDescription},
			check: func(t *testing.T, u GardenUpdate) {
				assert.Nil(t, u.Changes()[0].Value)
			},
		},
		{
			name: "empty object decodes to empty update",
			body: `{}`,
			check: func(t *testing.T, u GardenUpdate) {
				assert.True(t, u.IsEmpty())
			},
		},
		{
			name:    "unknown field rejected",
			body:    `{"name":"x","id":7}`,
			wantErr: ErrUnknownGardenField,
		},
		{
			name:    "null name rejected",
			body:    `{"name":null}`,
			wantErr: ErrEmptyGardenName,
		},
		{
			name:    "non-string name rejected",
			body:    `{"name":42}`,
			wantErr: ErrValidation,
		},
		{
			name:    "null body rejected",
			body:    `null`,
			wantErr: ErrValidation,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var u GardenUpdate
			err := json.Unmarshal([]byte(tc.body), &u)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tc.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)

			var got []GardenField
			for _, c := range u.Changes() {
				got = append(got, c.Field)
			}
			assert.Equal(t, tc.wantNames, got)
			if tc.check != nil {
				tc.check(t, u)
			}
		})
	}
}

func TestGardenUpdate_Validate(t *testing.T) {
	t.Parallel()

	var ok GardenUpdate
	ok.SetName("Herbs")
	assert.NoError(t, ok.Validate())

	var blank GardenUpdate
	blank.SetName("   ")
	assert.ErrorIs(t, blank.Validate(), ErrEmptyGardenName)

	var empty GardenUpdate
	assert.NoError(t, empty.Validate())

	long := strings.Repeat("x", MaxGardenDescriptionLength+1)
	var tooLong GardenUpdate
	tooLong.SetDescription(&long)
	assert.ErrorIs(t, tooLong.Validate(), ErrValidation)

	var cleared GardenUpdate
	cleared.SetDescription(nil)
	assert.NoError(t, cleared.Validate())
}

func TestParseGardenField(t *testing.T) {
	t.Parallel()

	f, err := ParseGardenField("description")
	require.NoError(t, err)
	assert.Equal(t, GardenFieldDescription, f)

	_, err = ParseGardenField("name; DROP TABLE gardens")
	assert.ErrorIs(t, err, ErrUnknownGardenField)
}

func TestOwnedGarden_JSONShape(t *testing.T) {
	t.Parallel()

	g := NewOwnedGarden(3, "Backyard", nil, "alice")
	b, err := json.Marshal(g)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":3,"name":"Backyard","description":null,"users":["alice"]}`, string(b))
	assert.True(t, g.HasOwner("alice"))
	assert.False(t, g.HasOwner("bob"))

	detail := GardenDetail{OwnedGarden: *g, Beds: []Bed{}}
	b, err = json.Marshal(detail)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":3,"name":"Backyard","description":null,"users":["alice"],"beds":[]}`, string(b))
}
