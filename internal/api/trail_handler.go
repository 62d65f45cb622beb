package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/parkyapi/parky/internal/platform/logger"
	"github.com/parkyapi/parky/internal/store"
)

// TrailHandler handles trail API requests for one API version.
// It holds the park store as well: trail creation and update validate the
// referenced national park before touching trail storage.
type TrailHandler struct {
	trails   store.TrailStore
	parks    store.NationalParkStore
	basePath string // version prefix, e.g. "/api/v1"
	logger   *slog.Logger
}

// NewTrailHandler creates a new TrailHandler serving routes under the
// given version base path.
func NewTrailHandler(
	trails store.TrailStore,
	parks store.NationalParkStore,
	basePath string,
	log *slog.Logger,
) *TrailHandler {
	if log == nil {
		log = slog.Default()
	}
	return &TrailHandler{
		trails:   trails,
		parks:    parks,
		basePath: basePath,
		logger:   log.With(slog.String("component", "trail_handler")),
	}
}

// List handles GET {base}/trails.
// Always responds 200 with a (possibly empty) name-sorted list; every
// trail carries its resolved owning park.
func (h *TrailHandler) List(w http.ResponseWriter, r *http.Request) {
	trails, err := h.trails.List(r.Context())
	if err != nil {
		RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to list trails", err)
		return
	}

	responses := make([]TrailResponse, 0, len(trails))
	for i := range trails {
		responses = append(responses, trailToResponse(&trails[i]))
	}

	RespondWithJSON(w, r, http.StatusOK, responses)
}

// Get handles GET {base}/trails/{id}.
// Responds 404 when the trail does not exist.
func (h *TrailHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	trail, err := h.trails.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, trailToResponse(trail))
}

// ListByPark handles GET {base}/trails/GetTrailInNationalPark/{parkId}.
// Responds 200 with the trails owned by the park, an empty list when the
// park has none. The result is not sorted by name.
func (h *TrailHandler) ListByPark(w http.ResponseWriter, r *http.Request) {
	parkID, err := getPathID(r, "parkId")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	trails, err := h.trails.ListByPark(r.Context(), parkID)
	if err != nil {
		RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to list trails in national park", err)
		return
	}

	responses := make([]TrailResponse, 0, len(trails))
	for i := range trails {
		responses = append(responses, trailToResponse(&trails[i]))
	}

	RespondWithJSON(w, r, http.StatusOK, responses)
}

// Create handles POST {base}/trails.
// The referenced national park must exist (400 when it does not); a
// duplicate trail name is rejected with the contract's 404 status.
func (h *TrailHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req TrailCreateRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := ValidateRequest(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	exists, err := h.trails.ExistsByName(r.Context(), req.Name)
	if err != nil {
		RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to create trail", err)
		return
	}
	if exists {
		RespondWithError(w, r, http.StatusNotFound, "Trail already exists")
		return
	}

	if ok := h.checkParkExists(w, r, req.NationalParkID); !ok {
		return
	}

	trail := req.toDomain()
	if err := h.trails.Create(r.Context(), trail); err != nil {
		if store.IsDuplicateError(err) {
			// Lost the pre-check race; same outcome as the pre-check.
			RespondWithError(w, r, http.StatusNotFound, "Trail already exists")
			return
		}
		if errors.Is(err, store.ErrInvalidEntity) {
			RespondWithErrorAndLog(w, r, http.StatusBadRequest,
				fmt.Sprintf("National park %d does not exist", req.NationalParkID), err)
			return
		}
		RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			fmt.Sprintf("Something went wrong when saving the record %s", trail.Name), err)
		return
	}

	log.Info("trail created",
		slog.Int("trail_id", trail.ID),
		slog.String("name", trail.Name),
		slog.Int("national_park_id", trail.NationalParkID))

	w.Header().Set("Location", fmt.Sprintf("%s/trails/%d", h.basePath, trail.ID))
	RespondWithJSON(w, r, http.StatusCreated, trailToResponse(trail))
}

// Update handles PATCH {base}/trails/{id} with full-replace semantics.
// Responds 204 on success with no body.
func (h *TrailHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req TrailUpdateRequest
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

	if ok := h.checkParkExists(w, r, req.NationalParkID); !ok {
		return
	}

	trail := req.toDomain()
	if err := h.trails.Update(r.Context(), trail); err != nil {
		RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			fmt.Sprintf("Something went wrong when updating the record %s", trail.Name), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE {base}/trails/{id}.
// A missing target is a 404 via the existence pre-check; a failed delete is
// a 500. Responds 204 on success.
func (h *TrailHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	exists, err := h.trails.ExistsByID(r.Context(), id)
	if err != nil {
		RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to delete trail", err)
		return
	}
	if !exists {
		RespondWithError(w, r, http.StatusNotFound, "Trail not found")
		return
	}

	if err := h.trails.Delete(r.Context(), id); err != nil {
		RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Something went wrong when deleting the record", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// checkParkExists validates the owning park reference and writes the
// response when it is broken. Returns true when the park exists.
func (h *TrailHandler) checkParkExists(w http.ResponseWriter, r *http.Request, parkID int) bool {
	exists, err := h.parks.ExistsByID(r.Context(), parkID)
	if err != nil {
		RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to verify national park", err)
		return false
	}
	if !exists {
		RespondWithError(w, r, http.StatusBadRequest,
			fmt.Sprintf("National park %d does not exist", parkID))
		return false
	}
	return true
}
