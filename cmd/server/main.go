// Package main implements the entry point for the Parky API server,
// a versioned HTTP catalog of national parks and their trails with
// token-based user authentication.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"

	"github.com/parkyapi/parky/internal/config"
	"github.com/parkyapi/parky/internal/platform/logger"
)

func main() {
	migrateOnly := flag.Bool("migrate", false, "run database migrations and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		log.Fatalf("Failed to set up logger: %v", err)
	}

	appLogger.Info("Server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.Any("api_versions", cfg.Server.APIVersions))

	ctx := context.Background()

	app, err := newApplication(ctx, cfg, appLogger)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.cleanup()

	if err := runMigrations(app.db, cfg.Database.MigrationsDir, appLogger); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if *migrateOnly {
		appLogger.Info("Migrations applied, exiting")
		return
	}

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
