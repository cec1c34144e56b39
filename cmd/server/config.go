package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/garden-api/internal/config"
)

// loadAppConfig loads the application configuration from dir and the environment.
func loadAppConfig(dir string) (*config.Config, error) {
	cfg, err := config.LoadFrom(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// logAppConfig records the non-secret parts of cfg.
func logAppConfig(cfg *config.Config, logger *slog.Logger) {
	logger.Info("server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel))

	logger.Debug("database configuration",
		slog.Bool("url_present", cfg.Database.URL != ""),
		slog.Int("max_open_conns", cfg.Database.MaxOpenConns))
	logger.Debug("auth configuration",
		slog.Bool("jwt_secret_present", cfg.Auth.JWTSecret != ""),
		slog.Int("token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes))
}
