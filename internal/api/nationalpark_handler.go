package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/parkyapi/parky/internal/platform/logger"
	"github.com/parkyapi/parky/internal/store"
)

// NationalParkHandler handles national park API requests for one API version.
type NationalParkHandler struct {
	parks    store.NationalParkStore
	basePath string // version prefix, e.g. "/api/v1"
	logger   *slog.Logger
}

// NewNationalParkHandler creates a new NationalParkHandler serving routes
// under the given version base path.
func NewNationalParkHandler(
	parks store.NationalParkStore,
	basePath string,
	log *slog.Logger,
) *NationalParkHandler {
	if log == nil {
		log = slog.Default()
	}
	return &NationalParkHandler{
		parks:    parks,
		basePath: basePath,
		logger:   log.With(slog.String("component", "national_park_handler")),
	}
}

// List handles GET {base}/nationalparks.
// Always responds 200 with a (possibly empty) name-sorted list.
func (h *NationalParkHandler) List(w http.ResponseWriter, r *http.Request) {
	parks, err := h.parks.List(r.Context())
	if err != nil {
		RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to list national parks", err)
		return
	}

	responses := make([]NationalParkResponse, 0, len(parks))
	for i := range parks {
		responses = append(responses, parkToResponse(&parks[i]))
	}

	RespondWithJSON(w, r, http.StatusOK, responses)
}

// Get handles GET {base}/nationalparks/{id}.
// Responds 404 when the park does not exist.
func (h *NationalParkHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	park, err := h.parks.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, parkToResponse(park))
}

// Create handles POST {base}/nationalparks.
// Duplicate names are rejected before persistence; the response status for
// that case is 404, kept for compatibility with the published contract.
func (h *NationalParkHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req NationalParkCreateRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := ValidateRequest(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	exists, err := h.parks.ExistsByName(r.Context(), req.Name)
	if err != nil {
		RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to create national park", err)
		return
	}
	if exists {
		RespondWithError(w, r, http.StatusNotFound, "National park already exists")
		return
	}

	park := req.toDomain()
	if err := h.parks.Create(r.Context(), park); err != nil {
		if store.IsDuplicateError(err) {
			// Lost the pre-check race; same outcome as the pre-check.
			RespondWithError(w, r, http.StatusNotFound, "National park already exists")
			return
		}
		RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			fmt.Sprintf("Something went wrong when saving the record %s", park.Name), err)
		return
	}

	log.Info("national park created",
		slog.Int("park_id", park.ID),
		slog.String("name", park.Name))

	w.Header().Set("Location", fmt.Sprintf("%s/nationalparks/%d", h.basePath, park.ID))
	RespondWithJSON(w, r, http.StatusCreated, parkToResponse(park))
}

// Update handles PATCH {base}/nationalparks/{id} with full-replace semantics.
// Responds 204 on success with no body.
func (h *NationalParkHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req NationalParkUpdateRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := ValidateRequest(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	if id != req.ID {
		RespondWithError(w, r, http.StatusBadRequest, "Path id does not match payload id")
		return
	}

	park := req.toDomain()
	if err := h.parks.Update(r.Context(), park); err != nil {
		RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			fmt.Sprintf("Something went wrong when updating the record %s", park.Name), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE {base}/nationalparks/{id}.
// A missing target is a 404 via the existence pre-check; a failed delete is
// a 500. Responds 204 on success.
func (h *NationalParkHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	exists, err := h.parks.ExistsByID(r.Context(), id)
	if err != nil {
		RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to delete national park", err)
		return
	}
	if !exists {
		RespondWithError(w, r, http.StatusNotFound, "National park not found")
		return
	}

	if err := h.parks.Delete(r.Context(), id); err != nil {
		RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Something went wrong when deleting the record", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
