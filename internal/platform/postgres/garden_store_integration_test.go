//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/phrazzld/garden-api/internal/domain"
	"github.com/phrazzld/garden-api/internal/platform/postgres"
	"github.com/phrazzld/garden-api/internal/store"
	"github.com/phrazzld/garden-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	testdb.Main(m)
}

func insertUsers(t *testing.T, tx *sql.Tx, usernames ...string) {
	t.Helper()
	for _, u := range usernames {
		_, err := tx.Exec(`INSERT INTO users (username) VALUES ($1)`, u)
		require.NoError(t, err)
	}
}

func addOwner(t *testing.T, tx *sql.Tx, gardenID int64, username string) {
	t.Helper()
	_, err := tx.Exec(`INSERT INTO users_gardens (username, garden_id) VALUES ($1, $2)`, username, gardenID)
	require.NoError(t, err)
}

func addBed(t *testing.T, tx *sql.Tx, gardenID int64, name string) {
	t.Helper()
	_, err := tx.Exec(`INSERT INTO beds (garden_id, name) VALUES ($1, $2)`, gardenID, name)
	require.NoError(t, err)
}

func TestGardenStore_Integration_Lifecycle(t *testing.T) {
	t.Parallel()
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		gardens := postgres.NewPostgresGardenStore(tx, nil)
		insertUsers(t, tx, "it_alice", "it_bob")

		desc := "shaded plot"
		created, err := gardens.Create(ctx, "it_alice", "Backyard", &desc)
		require.NoError(t, err)
		assert.Equal(t, []string{"it_alice"}, created.Users)

		addOwner(t, tx, created.ID, "it_bob")
		addBed(t, tx, created.ID, "Tomatoes")
		addBed(t, tx, created.ID, "Herbs")

		got, err := gardens.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Backyard", got.Name)
		require.NotNil(t, got.Description)
		assert.Equal(t, "shaded plot", *got.Description)
		assert.Equal(t, []string{"it_alice", "it_bob"}, got.Users)
		require.Len(t, got.Beds, 2)
		assert.Equal(t, "Herbs", got.Beds[0].Name, "beds are ordered by name")
		assert.Equal(t, "Tomatoes", got.Beds[1].Name)

		again, err := gardens.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, got, again)

		var patch domain.GardenUpdate
		patch.SetName("Front yard").SetDescription(nil)
		updated, err := gardens.Update(ctx, created.ID, patch)
		require.NoError(t, err)
		assert.Equal(t, "Front yard", updated.Name)
		assert.Nil(t, updated.Description)

		owns, err := gardens.IsOwner(ctx, created.ID, "it_bob")
		require.NoError(t, err)
		assert.True(t, owns)

		removed, err := gardens.Remove(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, removed.ID)
		assert.Equal(t, "Front yard", removed.Name)

		var links, beds int
		require.NoError(t, tx.QueryRow(`SELECT count(*) FROM users_gardens WHERE garden_id = $1`, created.ID).Scan(&links))
		require.NoError(t, tx.QueryRow(`SELECT count(*) FROM beds WHERE garden_id = $1`, created.ID).Scan(&beds))
		assert.Zero(t, links, "ownership links cascade")
		assert.Zero(t, beds, "beds cascade")

		_, err = gardens.Remove(ctx, created.ID)
		assert.ErrorIs(t, err, store.ErrNotFound)
		_, err = gardens.Get(ctx, created.ID)
		assert.ErrorIs(t, err, store.ErrGardenNotFound)
	})
}

func TestGardenStore_Integration_FindAll(t *testing.T) {
	t.Parallel()
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		gardens := postgres.NewPostgresGardenStore(tx, nil)
		insertUsers(t, tx, "fa_alice", "fa_bob", "fa_carol")

		shared, err := gardens.Create(ctx, "fa_alice", "Shared", nil)
		require.NoError(t, err)
		addOwner(t, tx, shared.ID, "fa_bob")
		_, err = gardens.Create(ctx, "fa_bob", "Bob only", nil)
		require.NoError(t, err)

		list, err := gardens.FindAll(ctx, "fa_alice")
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, shared.ID, list[0].ID)
		assert.Equal(t, []string{"fa_alice", "fa_bob"}, list[0].Users, "owners list is complete")

		list, err = gardens.FindAll(ctx, "fa_bob")
		require.NoError(t, err)
		assert.Len(t, list, 2)

		list, err = gardens.FindAll(ctx, "fa_carol")
		require.NoError(t, err)
		assert.NotNil(t, list)
		assert.Empty(t, list)
	})
}

func TestGardenStore_Integration_UpdateRejectsEmptyPatch(t *testing.T) {
	t.Parallel()
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		gardens := postgres.NewPostgresGardenStore(tx, nil)
		insertUsers(t, tx, "up_alice")

		created, err := gardens.Create(ctx, "up_alice", "Backyard", nil)
		require.NoError(t, err)

		_, err = gardens.Update(ctx, created.ID, domain.GardenUpdate{})
		assert.ErrorIs(t, err, store.ErrBadRequest)

		var patch domain.GardenUpdate
		patch.SetName("Nowhere")
		_, err = gardens.Update(ctx, created.ID+1000000, patch)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestGardenStore_Integration_CreateUnknownOwner(t *testing.T) {
	t.Parallel()
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		gardens := postgres.NewPostgresGardenStore(tx, nil)

		_, err := gardens.Create(context.Background(), "nobody_registered", "Backyard", nil)
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})
}

func TestGardenStore_Integration_CreateIsAtomic(t *testing.T) {
	db := testdb.GetTestDBWithT(t)
	ctx := context.Background()
	gardens := postgres.NewPostgresGardenStore(db, nil)

	_, err := gardens.Create(ctx, "atomic_missing_user", "Orphan", nil)
	require.ErrorIs(t, err, store.ErrInvalidEntity)

	var after int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT count(*) FROM gardens WHERE name = 'Orphan'`).Scan(&after))
	assert.Zero(t, after, "garden row is rolled back with the failed owner link")
}
