// Package testdb provides utilities for database integration tests.
//
// Tests share one migrated PostgreSQL database per test binary. It comes from
// DATABASE_URL when set, and otherwise from a throwaway container started with
// testcontainers-go. Each test runs inside its own transaction that is rolled
// back afterwards, so tests can run in parallel without cleanup:
//
//	func TestMain(m *testing.M) {
//	    testdb.Main(m)
//	}
//
//	func TestCreate(t *testing.T) {
//	    t.Parallel()
//	    db := testdb.GetTestDBWithT(t)
//
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        gardens := postgres.NewPostgresGardenStore(tx, nil)
//	        // ...
//	    })
//	}
package testdb
