package domain

import (
	"strings"
	"unicode/utf8"
)

const (
	// MaxGardenNameLength bounds garden names, in characters.
	MaxGardenNameLength = 100

	// MaxGardenDescriptionLength bounds garden descriptions, in characters.
	MaxGardenDescriptionLength = 1000
)

// Garden is the root row of the garden aggregate.
// Description is nil when the stored column is NULL.
type Garden struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// OwnedGarden is a garden together with the usernames that co-own it.
// It is the summary view returned by create and by the per-user listing;
// it never carries beds.
type OwnedGarden struct {
	Garden
	Users []string `json:"users"`
}

// GardenDetail is the fully assembled aggregate: the garden, its owners,
// and its beds ordered by name.
type GardenDetail struct {
	OwnedGarden
	Beds []Bed `json:"beds"`
}

// Bed is a planting bed belonging to a garden.
type Bed struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// GardenRef identifies a garden that no longer exists after removal.
type GardenRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// NewOwnedGarden builds the in-memory view of a freshly created garden
// with its creator as the single owner.
func NewOwnedGarden(id int64, name string, description *string, owner string) *OwnedGarden {
	return &OwnedGarden{
		Garden: Garden{
			ID:          id,
			Name:        name,
			Description: description,
		},
		Users: []string{owner},
	}
}

// ValidateGardenName checks a candidate garden name.
func ValidateGardenName(name string) error {
	if strings.TrimSpace(name) == "" {
		return NewValidationError("name", "cannot be empty", ErrEmptyGardenName)
	}
	if utf8.RuneCountInString(name) > MaxGardenNameLength {
		return NewValidationError("name", "is too long", ErrValidation)
	}
	return nil
}

// ValidateGardenDescription checks an optional description. Nil is valid.
func ValidateGardenDescription(description *string) error {
	if description != nil && utf8.RuneCountInString(*description) > MaxGardenDescriptionLength {
		return NewValidationError("description", "is too long", ErrValidation)
	}
	return nil
}

// HasOwner reports whether username is among the garden's owners.
func (g *OwnedGarden) HasOwner(username string) bool {
	for _, u := range g.Users {
		if u == username {
			return true
		}
	}
	return false
}
