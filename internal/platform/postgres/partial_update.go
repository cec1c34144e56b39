package postgres

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/phrazzld/garden-api/internal/domain"
	"github.com/phrazzld/garden-api/internal/store"
)

// Assignment is one field of a partial update payload. Field names come
// from trusted code (a typed field enumeration or a validated request);
// only the resolved column identifier is interpolated into SQL text.
type Assignment struct {
	Field string
	Value any
}

// PartialUpdate is a compiled SET clause and its bind values.
// SetClause reads like `name = $1, description = $2`; Values[i] binds $i+1.
type PartialUpdate struct {
	SetClause string
	Values    []any
}

// NextPlaceholder is the first positional index not used by the SET clause,
// for callers appending a WHERE condition.
func (p PartialUpdate) NextPlaceholder() int {
	return len(p.Values) + 1
}

// CompilePartialUpdate turns an ordered payload into a SET clause with
// positional placeholders numbered from $1 in payload order. Fields found in
// columns are renamed; all others are used verbatim.
//
// An empty payload returns store.ErrNoData, which is a store.ErrBadRequest.
// A field assigned twice is also a bad request.
func CompilePartialUpdate(data []Assignment, columns map[string]string) (PartialUpdate, error) {
	if len(data) == 0 {
		return PartialUpdate{}, store.ErrNoData
	}

	fragments := make([]string, 0, len(data))
	values := make([]any, 0, len(data))
	seen := make(map[string]struct{}, len(data))

	for i, a := range data {
		column := a.Field
		if mapped, ok := columns[a.Field]; ok {
			column = mapped
		}
		if column == "" {
			return PartialUpdate{}, fmt.Errorf("%w: empty column name at position %d", store.ErrBadRequest, i+1)
		}
		if _, dup := seen[column]; dup {
			return PartialUpdate{}, fmt.Errorf("%w: column %q assigned more than once", store.ErrBadRequest, column)
		}
		seen[column] = struct{}{}

		fragments = append(fragments, column+" = $"+strconv.Itoa(i+1))
		values = append(values, a.Value)
	}

	return PartialUpdate{
		SetClause: strings.Join(fragments, ", "),
		Values:    values,
	}, nil
}

// gardenAssignments lowers a typed garden patch into compiler input.
func gardenAssignments(patch domain.GardenUpdate) []Assignment {
	changes := patch.Changes()
	out := make([]Assignment, 0, len(changes))
	for _, c := range changes {
		out = append(out, Assignment{Field: string(c.Field), Value: c.Value})
	}
	return out
}
