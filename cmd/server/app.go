package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/garden-api/internal/config"
	"github.com/phrazzld/garden-api/internal/metrics"
	"github.com/phrazzld/garden-api/internal/platform/postgres"
	"github.com/phrazzld/garden-api/internal/service"
	"github.com/phrazzld/garden-api/internal/service/auth"
	"github.com/phrazzld/garden-api/internal/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	registry  *prometheus.Registry
	collector *metrics.Collector

	gardenStore   store.GardenStore
	jwtService    auth.JWTService
	gardenService service.GardenService
}

// newApplication wires stores, services and metrics around an open database.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config:   cfg,
		logger:   logger,
		db:       db,
		registry: prometheus.NewRegistry(),
	}

	app.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	app.collector = metrics.NewCollector(app.registry)

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		slog.Int("token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes))

	app.gardenStore = metrics.NewInstrumentedGardenStore(
		postgres.NewPostgresGardenStore(db, logger),
		app.collector,
	)

	app.gardenService, err = service.NewGardenService(app.gardenStore, db, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create garden service: %w", err)
	}

	logger.Info("application initialized successfully")
	return app, nil
}

// cleanup releases application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", slog.String("error", err.Error()))
		}
	}
	app.logger.Info("application shutdown completed")
}
