package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// GardenField enumerates the mutable columns of a garden. Only these
// values can reach the partial update compiler.
type GardenField string

const (
	GardenFieldName        GardenField = "name"
	GardenFieldDescription GardenField = "description"
)

// gardenFieldOrder fixes the order fields are applied when decoding JSON.
var gardenFieldOrder = []GardenField{GardenFieldName, GardenFieldDescription}

// ParseGardenField resolves an external field name.
func ParseGardenField(s string) (GardenField, error) {
	for _, f := range gardenFieldOrder {
		if string(f) == s {
			return f, nil
		}
	}
	return "", NewValidationError(s, "is not an updatable garden field", ErrUnknownGardenField)
}

// GardenChange is a single field assignment within a GardenUpdate.
// A nil Value on the description field stores NULL.
type GardenChange struct {
	Field GardenField
	Value any
}

// GardenUpdate is a partial update of a garden. Fields that were never set
// are left untouched by the store. Changes keep the order they were set in,
// and setting a field twice replaces the earlier value in place.
type GardenUpdate struct {
	changes []GardenChange
}

// SetName records a new name.
func (u *GardenUpdate) SetName(name string) *GardenUpdate {
	u.set(GardenFieldName, name)
	return u
}

// SetDescription records a new description; nil clears it.
func (u *GardenUpdate) SetDescription(description *string) *GardenUpdate {
	if description == nil {
		u.set(GardenFieldDescription, nil)
	} else {
		u.set(GardenFieldDescription, *description)
	}
	return u
}

func (u *GardenUpdate) set(field GardenField, value any) {
	for i := range u.changes {
		if u.changes[i].Field == field {
			u.changes[i].Value = value
			return
		}
	}
	u.changes = append(u.changes, GardenChange{Field: field, Value: value})
}

// Changes returns a copy of the recorded assignments in order.
func (u GardenUpdate) Changes() []GardenChange {
	out := make([]GardenChange, len(u.changes))
	copy(out, u.changes)
	return out
}

// IsEmpty reports whether no field has been set.
func (u GardenUpdate) IsEmpty() bool {
	return len(u.changes) == 0
}

// Validate checks the values carried by the update. An empty update is
// valid here; rejecting it is the compiler's job.
func (u GardenUpdate) Validate() error {
	for _, c := range u.changes {
		switch c.Field {
		case GardenFieldName:
			name, ok := c.Value.(string)
			if !ok {
				return NewValidationError("name", "must be a string", ErrValidation)
			}
			if err := ValidateGardenName(name); err != nil {
				return err
			}
		case GardenFieldDescription:
			if c.Value == nil {
				continue
			}
			desc, ok := c.Value.(string)
			if !ok {
				return NewValidationError("description", "must be a string", ErrValidation)
			}
			if err := ValidateGardenDescription(&desc); err != nil {
				return err
			}
		}
	}
	return nil
}

// UnmarshalJSON decodes a JSON object such as {"name":"x","description":null}.
// Unknown keys are rejected. A null name is a validation error; a null
// description clears the column.
func (u *GardenUpdate) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		return NewValidationError("", "patch must be a JSON object", ErrValidation)
	}

	for key := range raw {
		if _, err := ParseGardenField(key); err != nil {
			return err
		}
	}

	var next GardenUpdate
	for _, field := range gardenFieldOrder {
		msg, ok := raw[string(field)]
		if !ok {
			continue
		}
		isNull := bytes.Equal(bytes.TrimSpace(msg), []byte("null"))

		switch field {
		case GardenFieldName:
			if isNull {
				return NewValidationError("name", "cannot be null", ErrEmptyGardenName)
			}
			var name string
			if err := json.Unmarshal(msg, &name); err != nil {
				return NewValidationError("name", fmt.Sprintf("must be a string: %v", err), ErrValidation)
			}
			next.SetName(name)
		case GardenFieldDescription:
			if isNull {
				next.SetDescription(nil)
				continue
			}
			var desc string
			if err := json.Unmarshal(msg, &desc); err != nil {
				return NewValidationError("description", fmt.Sprintf("must be a string: %v", err), ErrValidation)
			}
			next.SetDescription(&desc)
		}
	}

	*u = next
	return nil
}
