package main

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/parkyapi/parky/internal/api"
	apiMiddleware "github.com/parkyapi/parky/internal/api/middleware"
	"github.com/parkyapi/parky/internal/domain"
)

// setupRouter builds the full route tree. The same resource routes are
// registered once per configured API version, each version getting its own
// handlers bound to that version's base path so Location headers point back
// into the version the client called.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace)

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	for _, version := range app.config.Server.APIVersions {
		basePath := fmt.Sprintf("/api/v%d", version)
		app.registerVersion(r, basePath, authMiddleware)
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}

// registerVersion mounts park, trail and user routes under one version
// base path.
func (app *application) registerVersion(
	r chi.Router,
	basePath string,
	authMiddleware *apiMiddleware.AuthMiddleware,
) {
	parkHandler := api.NewNationalParkHandler(app.parkStore, basePath, app.logger)
	trailHandler := api.NewTrailHandler(app.trailStore, app.parkStore, basePath, app.logger)
	authHandler := api.NewAuthHandler(
		app.userStore,
		app.jwtService,
		app.passwordHasher,
		app.passwordVerifier,
		app.logger,
	)

	r.Route(basePath, func(r chi.Router) {
		r.Route("/nationalparks", func(r chi.Router) {
			r.Get("/", parkHandler.List)
			r.Post("/", parkHandler.Create)
			r.Patch("/{id}", parkHandler.Update)
			r.Delete("/{id}", parkHandler.Delete)

			// Reading a single park requires a valid bearer token.
			r.Group(func(r chi.Router) {
				r.Use(authMiddleware.Authenticate)
				r.Get("/{id}", parkHandler.Get)
			})
		})

		r.Route("/trails", func(r chi.Router) {
			r.Get("/", trailHandler.List)
			r.Get("/GetTrailInNationalPark/{parkId}", trailHandler.ListByPark)
			r.Post("/", trailHandler.Create)
			r.Patch("/{id}", trailHandler.Update)
			r.Delete("/{id}", trailHandler.Delete)

			// Reading a single trail is restricted to administrators.
			r.Group(func(r chi.Router) {
				r.Use(authMiddleware.Authenticate)
				r.Use(authMiddleware.RequireRole(domain.RoleAdmin))
				r.Get("/{id}", trailHandler.Get)
			})
		})

		r.Route("/users", func(r chi.Router) {
			r.Post("/authenticate", authHandler.Authenticate)
			r.Post("/register", authHandler.Register)
		})
	})
}
