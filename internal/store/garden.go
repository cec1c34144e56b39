package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/garden-api/internal/domain"
)

// GardenStore defines the interface for garden aggregate persistence.
type GardenStore interface {
	// Create inserts a garden and links username as its first owner.
	// Both inserts succeed or neither does. The returned view is built in
	// memory from the inputs and the generated id.
	Create(ctx context.Context, username, name string, description *string) (*domain.OwnedGarden, error)

	// Get retrieves a garden with its owners and its beds ordered by name.
	// Returns a *NotFoundError wrapping ErrGardenNotFound if the garden does not exist.
	Get(ctx context.Context, id int64) (*domain.GardenDetail, error)

	// FindAll retrieves every garden username co-owns, each with its full
	// owners list and without beds. Returns an empty slice if there are none.
	FindAll(ctx context.Context, username string) ([]domain.OwnedGarden, error)

	// Update applies a partial update and returns the stored row.
	// Returns ErrNoData (a BadRequest) if the update sets no field, and a
	// *NotFoundError if the garden does not exist.
	Update(ctx context.Context, id int64, patch domain.GardenUpdate) (*domain.Garden, error)

	// Remove deletes the garden row and returns what was removed.
	// Returns a *NotFoundError if the garden does not exist.
	Remove(ctx context.Context, id int64) (*domain.GardenRef, error)

	// IsOwner reports whether username co-owns garden id.
	IsOwner(ctx context.Context, id int64, username string) (bool, error)

	// WithTx returns a new GardenStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) GardenStore
}
