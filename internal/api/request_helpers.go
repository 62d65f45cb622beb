package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/parkyapi/parky/internal/api/shared"
	"github.com/parkyapi/parky/internal/domain"
)

// Aliases into shared so handlers in this package read naturally.
var (
	RespondWithJSON        = shared.RespondWithJSON
	RespondWithError       = shared.RespondWithError
	RespondWithErrorAndLog = shared.RespondWithErrorAndLog
	DecodeJSON             = shared.DecodeJSON
	ValidateRequest        = shared.ValidateRequest
)

// getPathID extracts an integer ID from the URL path parameters.
// Returns a validation error when the parameter is missing or not a
// positive integer.
func getPathID(r *http.Request, paramName string) (int, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	id, err := strconv.Atoi(pathParam)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(paramName, "must be a positive integer", domain.ErrInvalidID)
	}

	return id, nil
}
