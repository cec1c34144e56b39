package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/phrazzld/garden-api/internal/domain"
	"github.com/phrazzld/garden-api/internal/platform/logger"
	"github.com/phrazzld/garden-api/internal/store"
)

// GardenService provides garden operations on behalf of an authenticated user.
type GardenService interface {
	// CreateGarden creates a garden owned by username.
	CreateGarden(ctx context.Context, username, name string, description *string) (*domain.OwnedGarden, error)

	// GetGarden returns a garden with owners and beds. Missing gardens are
	// reported before ownership, so a non-owner sees ErrNotOwned only for
	// gardens that exist.
	GetGarden(ctx context.Context, username string, id int64) (*domain.GardenDetail, error)

	// ListGardens returns every garden username co-owns.
	ListGardens(ctx context.Context, username string) ([]domain.OwnedGarden, error)

	// UpdateGarden applies patch to a garden owned by username.
	UpdateGarden(ctx context.Context, username string, id int64, patch domain.GardenUpdate) (*domain.Garden, error)

	// RemoveGarden deletes a garden owned by username.
	RemoveGarden(ctx context.Context, username string, id int64) (*domain.GardenRef, error)
}

// gardenServiceImpl implements the GardenService interface
type gardenServiceImpl struct {
	gardens store.GardenStore
	db      store.TxBeginner
	logger  *slog.Logger
}

// NewGardenService creates a new GardenService.
// It returns an error if any of the required dependencies are nil.
func NewGardenService(
	gardens store.GardenStore,
	db store.TxBeginner,
	logger *slog.Logger,
) (GardenService, error) {
	if gardens == nil {
		return nil, domain.NewValidationError("gardens", "cannot be nil", domain.ErrValidation)
	}
	if db == nil {
		return nil, domain.NewValidationError("db", "cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &gardenServiceImpl{
		gardens: gardens,
		db:      db,
		logger:  logger.With(slog.String("component", "garden_service")),
	}, nil
}

// CreateGarden implements GardenService.CreateGarden
func (s *gardenServiceImpl) CreateGarden(
	ctx context.Context,
	username, name string,
	description *string,
) (*domain.OwnedGarden, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := domain.ValidateGardenName(name); err != nil {
		log.Debug("invalid garden name", slog.String("error", err.Error()))
		return nil, err
	}
	if err := domain.ValidateGardenDescription(description); err != nil {
		log.Debug("invalid garden description", slog.String("error", err.Error()))
		return nil, err
	}

	garden, err := s.gardens.Create(ctx, username, name, description)
	if err != nil {
		return nil, NewGardenServiceError("create_garden", "failed to create garden", err)
	}
	return garden, nil
}

// GetGarden implements GardenService.GetGarden
func (s *gardenServiceImpl) GetGarden(
	ctx context.Context,
	username string,
	id int64,
) (*domain.GardenDetail, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	garden, err := s.gardens.Get(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, NewGardenServiceError("get_garden", "garden not found", err)
		}
		return nil, NewGardenServiceError("get_garden", "failed to retrieve garden", err)
	}

	if !garden.HasOwner(username) {
		log.Warn("user attempted to read a garden they do not own",
			slog.String("username", username),
			slog.Int64("garden_id", id))
		return nil, ErrNotOwned
	}
	return garden, nil
}

// ListGardens implements GardenService.ListGardens
func (s *gardenServiceImpl) ListGardens(ctx context.Context, username string) ([]domain.OwnedGarden, error) {
	gardens, err := s.gardens.FindAll(ctx, username)
	if err != nil {
		return nil, NewGardenServiceError("list_gardens", "failed to list gardens", err)
	}
	return gardens, nil
}

// UpdateGarden implements GardenService.UpdateGarden
// An empty patch is rejected before any query. The ownership check and the
// update run in one transaction.
func (s *gardenServiceImpl) UpdateGarden(
	ctx context.Context,
	username string,
	id int64,
	patch domain.GardenUpdate,
) (*domain.Garden, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := patch.Validate(); err != nil {
		log.Debug("invalid garden patch", slog.String("error", err.Error()))
		return nil, err
	}
	if patch.IsEmpty() {
		log.Debug("empty garden patch", slog.Int64("garden_id", id))
		return nil, store.ErrNoData
	}

	var updated *domain.Garden
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txGardens := s.gardens.WithTx(tx)
		if err := s.authorize(ctx, txGardens, username, id); err != nil {
			return err
		}

		var err error
		updated, err = txGardens.Update(ctx, id, patch)
		return err
	})
	if err != nil {
		return nil, s.wrap("update_garden", "failed to update garden", err)
	}
	return updated, nil
}

// RemoveGarden implements GardenService.RemoveGarden
// The ownership check and the delete run in one transaction.
func (s *gardenServiceImpl) RemoveGarden(
	ctx context.Context,
	username string,
	id int64,
) (*domain.GardenRef, error) {
	var removed *domain.GardenRef
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txGardens := s.gardens.WithTx(tx)
		if err := s.authorize(ctx, txGardens, username, id); err != nil {
			return err
		}

		var err error
		removed, err = txGardens.Remove(ctx, id)
		return err
	})
	if err != nil {
		return nil, s.wrap("remove_garden", "failed to remove garden", err)
	}
	return removed, nil
}

// authorize returns nil if username owns garden id, the store's not found
// error if the garden does not exist, and ErrNotOwned otherwise.
func (s *gardenServiceImpl) authorize(
	ctx context.Context,
	gardens store.GardenStore,
	username string,
	id int64,
) error {
	owns, err := gardens.IsOwner(ctx, id, username)
	if err != nil {
		return err
	}
	if owns {
		return nil
	}

	// Not an owner: tell a missing garden apart from someone else's.
	if _, err := gardens.Get(ctx, id); err != nil {
		return err
	}

	logger.FromContextOrDefault(ctx, s.logger).Warn("user attempted to modify a garden they do not own",
		slog.String("username", username),
		slog.Int64("garden_id", id))
	return ErrNotOwned
}

// wrap passes ownership and validation failures through unchanged and
// wraps everything else in a GardenServiceError.
func (s *gardenServiceImpl) wrap(operation, message string, err error) error {
	if errors.Is(err, ErrNotOwned) {
		return err
	}
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		return err
	}
	return NewGardenServiceError(operation, message, err)
}
