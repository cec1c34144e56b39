package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Start the garden API on the configured port.

The server stops accepting connections on SIGINT or SIGTERM and waits up to
server.shutdown_timeout_seconds for in-flight requests to finish.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, opts)
		},
	}
}

// runServe loads configuration, connects to the database and serves until
// ctx is canceled.
func runServe(ctx context.Context, opts *rootOptions) error {
	cfg, err := loadAppConfig(opts.configDir)
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg, os.Stdout)
	if err != nil {
		return err
	}
	logAppConfig(cfg, logger)

	db, err := setupAppDatabase(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}

	app, err := newApplication(cfg, logger, db)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer app.cleanup()

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
