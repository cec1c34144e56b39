package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/garden-api/internal/domain"
	"github.com/phrazzld/garden-api/internal/platform/logger"
	"github.com/phrazzld/garden-api/internal/store"
)

// gardenColumns maps garden fields to columns. Field and column names
// coincide for gardens, so the map is empty and the compiler's identity
// default applies.
var gardenColumns = map[string]string{}

// PostgresGardenStore implements the store.GardenStore interface
// using a PostgreSQL database as the storage backend.
type PostgresGardenStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresGardenStore creates a new PostgreSQL implementation of the GardenStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresGardenStore(db store.DBTX, logger *slog.Logger) *PostgresGardenStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresGardenStore{
		db:     db,
		logger: logger.With(slog.String("component", "garden_store")),
	}
}

// Ensure PostgresGardenStore implements store.GardenStore interface
var _ store.GardenStore = (*PostgresGardenStore)(nil)

// WithTx implements store.GardenStore.WithTx
func (s *PostgresGardenStore) WithTx(tx *sql.Tx) store.GardenStore {
	return &PostgresGardenStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.GardenStore.Create
// The garden row and the creator's ownership row are written in one
// transaction. The returned view is not re-read from the database.
func (s *PostgresGardenStore) Create(
	ctx context.Context,
	username, name string,
	description *string,
) (*domain.OwnedGarden, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var id int64
	err := store.InTransaction(ctx, s.db, func(ctx context.Context, q store.DBTX) error {
		err := q.QueryRowContext(ctx, `
			INSERT INTO gardens (name, description)
			VALUES ($1, $2)
			RETURNING id
		`, name, description).Scan(&id)
		if err != nil {
			return fmt.Errorf("insert garden: %w", err)
		}

		_, err = q.ExecContext(ctx, `
			INSERT INTO users_gardens (username, garden_id)
			VALUES ($1, $2)
		`, username, id)
		if err != nil {
			return fmt.Errorf("link owner %q: %w", username, err)
		}
		return nil
	})
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("garden owner does not exist",
				slog.String("username", username),
				slog.String("error", err.Error()))
		} else {
			log.Error("failed to create garden",
				slog.String("username", username),
				slog.String("error", err.Error()))
		}
		return nil, MapError(err)
	}

	log.Info("garden created",
		slog.Int64("garden_id", id),
		slog.String("username", username))
	return domain.NewOwnedGarden(id, name, description, username), nil
}

// Get implements store.GardenStore.Get
// Returns a *store.NotFoundError if the garden does not exist. A garden
// whose ownership rows are all gone is still returned, with empty Users;
// GardenService then refuses it to every caller with ErrNotOwned.
func (s *PostgresGardenStore) Get(ctx context.Context, id int64) (*domain.GardenDetail, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving garden", slog.Int64("garden_id", id))

	// LEFT JOIN keeps a garden whose owners have all been removed visible.
	rows, err := s.db.QueryContext(ctx, `
		SELECT g.id, g.name, g.description, ug.username
		FROM gardens AS g
		LEFT JOIN users_gardens AS ug ON ug.garden_id = g.id
		WHERE g.id = $1
		ORDER BY ug.username
	`, id)
	if err != nil {
		log.Error("failed to query garden",
			slog.Int64("garden_id", id),
			slog.String("error", err.Error()))
		return nil, err
	}
	ownerRows, err := scanOwnerRows(rows)
	if err != nil {
		log.Error("failed to read garden rows",
			slog.Int64("garden_id", id),
			slog.String("error", err.Error()))
		return nil, err
	}

	gardens := groupOwnerRows(ownerRows)
	if len(gardens) == 0 {
		log.Debug("garden not found", slog.Int64("garden_id", id))
		return nil, store.NewGardenNotFoundError(id)
	}

	beds, err := s.bedsForGarden(ctx, id)
	if err != nil {
		log.Error("failed to query beds",
			slog.Int64("garden_id", id),
			slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("garden retrieved",
		slog.Int64("garden_id", id),
		slog.Int("owner_count", len(gardens[0].Users)),
		slog.Int("bed_count", len(beds)))
	return &domain.GardenDetail{
		OwnedGarden: gardens[0],
		Beds:        beds,
	}, nil
}

// FindAll implements store.GardenStore.FindAll
// Every returned garden carries all of its owners, not only username.
func (s *PostgresGardenStore) FindAll(ctx context.Context, username string) ([]domain.OwnedGarden, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("listing gardens for user", slog.String("username", username))

	rows, err := s.db.QueryContext(ctx, `
		SELECT g.id, g.name, g.description, ug.username
		FROM gardens AS g
		JOIN users_gardens AS ug ON ug.garden_id = g.id
		WHERE g.id IN (
			SELECT garden_id FROM users_gardens WHERE username = $1
		)
		ORDER BY g.id, ug.username
	`, username)
	if err != nil {
		log.Error("failed to query gardens for user",
			slog.String("username", username),
			slog.String("error", err.Error()))
		return nil, err
	}
	ownerRows, err := scanOwnerRows(rows)
	if err != nil {
		log.Error("failed to read garden rows",
			slog.String("username", username),
			slog.String("error", err.Error()))
		return nil, err
	}

	gardens := groupOwnerRows(ownerRows)

	log.Debug("gardens listed",
		slog.String("username", username),
		slog.Int("count", len(gardens)))
	return gardens, nil
}

// Update implements store.GardenStore.Update
// Only the fields set on patch are written.
func (s *PostgresGardenStore) Update(
	ctx context.Context,
	id int64,
	patch domain.GardenUpdate,
) (*domain.Garden, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	compiled, err := CompilePartialUpdate(gardenAssignments(patch), gardenColumns)
	if err != nil {
		log.Warn("rejected garden update",
			slog.Int64("garden_id", id),
			slog.String("error", err.Error()))
		return nil, err
	}

	query := fmt.Sprintf(`
		UPDATE gardens
		SET %s
		WHERE id = $%d
		RETURNING id, name, description
	`, compiled.SetClause, compiled.NextPlaceholder())
	args := append(compiled.Values, id)

	var garden domain.Garden
	var description sql.NullString
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&garden.ID, &garden.Name, &description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("garden not found for update", slog.Int64("garden_id", id))
			return nil, store.NewGardenNotFoundError(id)
		}
		log.Error("failed to update garden",
			slog.Int64("garden_id", id),
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	garden.Description = nullStringPtr(description)

	log.Info("garden updated",
		slog.Int64("garden_id", id),
		slog.Int("field_count", len(compiled.Values)))
	return &garden, nil
}

// Remove implements store.GardenStore.Remove
// Beds and ownership rows go with the garden through ON DELETE CASCADE.
func (s *PostgresGardenStore) Remove(ctx context.Context, id int64) (*domain.GardenRef, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var ref domain.GardenRef
	err := s.db.QueryRowContext(ctx, `
		DELETE FROM gardens
		WHERE id = $1
		RETURNING id, name
	`, id).Scan(&ref.ID, &ref.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("garden not found for removal", slog.Int64("garden_id", id))
			return nil, store.NewGardenNotFoundError(id)
		}
		log.Error("failed to remove garden",
			slog.Int64("garden_id", id),
			slog.String("error", err.Error()))
		return nil, err
	}

	log.Info("garden removed", slog.Int64("garden_id", id))
	return &ref, nil
}

// IsOwner implements store.GardenStore.IsOwner
func (s *PostgresGardenStore) IsOwner(ctx context.Context, id int64, username string) (bool, error) {
	var owns bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM users_gardens
			WHERE garden_id = $1 AND username = $2
		)
	`, id, username).Scan(&owns)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to check garden ownership",
			slog.Int64("garden_id", id),
			slog.String("username", username),
			slog.String("error", err.Error()))
		return false, err
	}
	return owns, nil
}

func (s *PostgresGardenStore) bedsForGarden(ctx context.Context, gardenID int64) ([]domain.Bed, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name
		FROM beds
		WHERE garden_id = $1
		ORDER BY name, id
	`, gardenID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	beds := []domain.Bed{}
	for rows.Next() {
		var bed domain.Bed
		if err := rows.Scan(&bed.ID, &bed.Name); err != nil {
			return nil, err
		}
		beds = append(beds, bed)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return beds, nil
}
