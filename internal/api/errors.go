package api

import (
	"errors"
	"net/http"

	"github.com/parkyapi/parky/internal/domain"
	"github.com/parkyapi/parky/internal/service/auth"
	"github.com/parkyapi/parky/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes based on
// the error kind. Duplicate-name conflicts map to 404, preserving the
// public contract's documented quirk.
func MapErrorToStatusCode(err error) int {
	var validationErr *domain.ValidationError

	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden

	// Not found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Duplicate-name conflicts (documented 404 quirk)
	case store.IsDuplicateError(err):
		return http.StatusNotFound

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.As(err, &validationErr):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-facing error message based
// on the error kind, so internal detail never leaks to clients.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var validationErr *domain.ValidationError

	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"

	case errors.Is(err, store.ErrParkNotFound):
		return "National park not found"

	case errors.Is(err, store.ErrTrailNotFound):
		return "Trail not found"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrParkNameExists):
		return "National park already exists"

	case errors.Is(err, store.ErrTrailNameExists):
		return "Trail already exists"

	case errors.Is(err, store.ErrUsernameExists):
		return "Username already exists"

	case errors.As(err, &validationErr):
		return validationErr.Error()

	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation):
		return "Invalid entity data"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the response for err using the mapped status code
// and a safe message (overridable via message) while logging the full error.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, message string) {
	status := MapErrorToStatusCode(err)
	if message == "" {
		message = GetSafeErrorMessage(err)
	}
	RespondWithErrorAndLog(w, r, status, message, err)
}
