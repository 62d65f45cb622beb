package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/parkyapi/parky/internal/config"
	"github.com/parkyapi/parky/internal/platform/postgres"
	"github.com/parkyapi/parky/internal/service/auth"
	"github.com/parkyapi/parky/internal/store"
)

// application holds the assembled dependencies of a running server. All
// handlers and middleware receive their collaborators from here, so the
// wiring lives in exactly one place.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	parkStore  store.NationalParkStore
	trailStore store.TrailStore
	userStore  store.UserStore

	jwtService       auth.JWTService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier
}

// newApplication connects to the database and builds the dependency graph.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
) (*application, error) {
	db, err := setupDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to set up database: %w", err)
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		closeErr := db.Close()
		if closeErr != nil {
			logger.Error("failed to close database", "error", closeErr)
		}
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	return &application{
		config:           cfg,
		logger:           logger,
		db:               db,
		parkStore:        postgres.NewNationalParkStore(db, logger),
		trailStore:       postgres.NewTrailStore(db, logger),
		userStore:        postgres.NewUserStore(db, logger),
		jwtService:       jwtService,
		passwordHasher:   auth.NewBcryptHasher(cfg.Auth.BcryptCost),
		passwordVerifier: auth.NewBcryptVerifier(),
	}, nil
}

// cleanup releases resources held by the application. Safe to call once
// during shutdown.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database", "error", err)
		}
	}
}
