package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/parkyapi/parky/internal/domain"
	"github.com/parkyapi/parky/internal/service/auth"
	"github.com/parkyapi/parky/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"missing token", auth.ErrMissingToken, http.StatusUnauthorized},
		{"forbidden", domain.ErrUnauthorized, http.StatusForbidden},
		{"park not found", store.ErrParkNotFound, http.StatusNotFound},
		{"trail not found", store.ErrTrailNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("lookup: %w", store.ErrUserNotFound), http.StatusNotFound},
		{"duplicate park name", store.ErrParkNameExists, http.StatusNotFound},
		{"duplicate trail name", store.ErrTrailNameExists, http.StatusNotFound},
		{"broken reference", store.ErrInvalidEntity, http.StatusBadRequest},
		{"validation", domain.ErrValidation, http.StatusBadRequest},
		{"invalid id", domain.ErrInvalidID, http.StatusBadRequest},
		{
			"field validation",
			domain.NewValidationError("id", "must be a positive integer", domain.ErrInvalidID),
			http.StatusBadRequest,
		},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError},
		{"nil", nil, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, "An unexpected error occurred"},
		{"expired token", auth.ErrExpiredToken, "Token expired"},
		{"invalid token", auth.ErrInvalidToken, "Invalid token"},
		{"park not found", store.ErrParkNotFound, "National park not found"},
		{"trail not found", store.ErrTrailNotFound, "Trail not found"},
		{"duplicate username", store.ErrUsernameExists, "Username already exists"},
		{"broken reference", store.ErrInvalidEntity, "Invalid entity data"},
		{
			"wrapped store error stays safe",
			fmt.Errorf("select parks: %w", errors.New("pg: connection refused")),
			"An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetSafeErrorMessage(tt.err))
		})
	}
}
