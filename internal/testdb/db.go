package testdb

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/phrazzld/garden-api/internal/platform/postgres"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestTimeout bounds setup operations such as pings and migrations.
const TestTimeout = 30 * time.Second

// PostgresImage is the image used when no DATABASE_URL is configured.
const PostgresImage = "postgres:alpine"

var (
	sharedOnce sync.Once
	sharedDB   *sql.DB
	sharedErr  error
	teardown   func()
)

// GetTestDatabaseURL returns DATABASE_URL, falling back to GARDEN_TEST_DB_URL.
// An empty result means a container will be started.
func GetTestDatabaseURL() string {
	if u := os.Getenv("DATABASE_URL"); u != "" {
		return u
	}
	return os.Getenv("GARDEN_TEST_DB_URL")
}

// Main runs the package's tests and then releases the shared database.
func Main(m *testing.M) {
	code := m.Run()
	if teardown != nil {
		teardown()
	}
	os.Exit(code)
}

// GetTestDBWithT returns the shared, migrated test database. The test is
// skipped when no DATABASE_URL is set and no container runtime is available.
func GetTestDBWithT(t *testing.T) *sql.DB {
	t.Helper()

	if GetTestDatabaseURL() == "" {
		testcontainers.SkipIfProviderIsNotHealthy(t)
	}

	db, err := GetTestDB()
	if err != nil {
		t.Fatalf("failed to set up test database: %v", err)
	}
	return db
}

// GetTestDB returns the shared, migrated test database, creating it on first use.
func GetTestDB() (*sql.DB, error) {
	sharedOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		sharedDB, teardown, sharedErr = open(ctx)
	})
	return sharedDB, sharedErr
}

func open(ctx context.Context) (*sql.DB, func(), error) {
	dbURL := GetTestDatabaseURL()
	terminate := func() {}

	if dbURL == "" {
		container, err := tcpostgres.Run(ctx,
			PostgresImage,
			tcpostgres.WithDatabase("garden_test"),
			tcpostgres.WithUsername("garden"),
			tcpostgres.WithPassword("garden"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(60*time.Second)),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to start postgres container: %w", err)
		}
		terminate = func() {
			if err := testcontainers.TerminateContainer(container); err != nil {
				fmt.Fprintf(os.Stderr, "failed to terminate postgres container: %v\n", err)
			}
		}

		dbURL, err = container.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			terminate()
			return nil, nil, fmt.Errorf("failed to get connection string: %w", err)
		}
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		terminate()
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	setupCtx, cancel := context.WithTimeout(ctx, TestTimeout)
	defer cancel()

	if err := db.PingContext(setupCtx); err != nil {
		_ = db.Close()
		terminate()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	if err := postgres.Migrate(setupCtx, db, logger); err != nil {
		_ = db.Close()
		terminate()
		return nil, nil, err
	}

	return db, func() {
		_ = db.Close()
		terminate()
	}, nil
}
