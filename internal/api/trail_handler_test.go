package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/parkyapi/parky/internal/domain"
	"github.com/parkyapi/parky/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTrailRouter(trails *mocks.MockTrailStore, parks *mocks.MockNationalParkStore) http.Handler {
	handler := NewTrailHandler(trails, parks, "/api/v1", nil)

	r := chi.NewRouter()
	r.Route("/api/v1/trails", func(r chi.Router) {
		r.Get("/", handler.List)
		r.Get("/GetTrailInNationalPark/{parkId}", handler.ListByPark)
		r.Get("/{id}", handler.Get)
		r.Post("/", handler.Create)
		r.Patch("/{id}", handler.Update)
		r.Delete("/{id}", handler.Delete)
	})
	return r
}

func trailFixtures() (*mocks.MockTrailStore, *mocks.MockNationalParkStore) {
	parks := mocks.NewMockNationalParkStore()
	acadia := parks.Seed(domain.NationalPark{Name: "Acadia", State: "Maine"})
	zion := parks.Seed(domain.NationalPark{Name: "Zion", State: "Utah"})

	trails := mocks.NewMockTrailStore()
	trails.Seed(domain.Trail{
		Name:           "Precipice",
		Distance:       3.2,
		Difficulty:     domain.DifficultyDifficult,
		NationalParkID: acadia.ID,
		NationalPark:   acadia,
	})
	trails.Seed(domain.Trail{
		Name:           "Angels Landing",
		Distance:       8.7,
		Difficulty:     domain.DifficultyDifficult,
		NationalParkID: zion.ID,
		NationalPark:   zion,
	})
	trails.Seed(domain.Trail{
		Name:           "Jordan Pond Path",
		Distance:       5.3,
		Difficulty:     domain.DifficultyEasy,
		NationalParkID: acadia.ID,
		NationalPark:   acadia,
	})
	return trails, parks
}

func TestTrailList(t *testing.T) {
	t.Parallel()

	trails, parks := trailFixtures()
	router := newTrailRouter(trails, parks)

	recorder := doJSON(t, router, http.MethodGet, "/api/v1/trails", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var got []TrailResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Len(t, got, 3)

	// Ordered by name ascending, each with its owning park resolved.
	assert.Equal(t, "Angels Landing", got[0].Name)
	assert.Equal(t, "Jordan Pond Path", got[1].Name)
	assert.Equal(t, "Precipice", got[2].Name)
	require.NotNil(t, got[0].NationalPark)
	assert.Equal(t, "Zion", got[0].NationalPark.Name)
}

func TestTrailGet(t *testing.T) {
	t.Parallel()

	trails, parks := trailFixtures()
	router := newTrailRouter(trails, parks)

	t.Run("found", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodGet, "/api/v1/trails/1", nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		var got TrailResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
		assert.Equal(t, "Precipice", got.Name)
		assert.Equal(t, "Difficult", got.Difficulty)
		require.NotNil(t, got.NationalPark)
		assert.Equal(t, "Acadia", got.NationalPark.Name)
	})

	t.Run("not found", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodGet, "/api/v1/trails/99", nil)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestTrailListByPark(t *testing.T) {
	t.Parallel()

	trails, parks := trailFixtures()
	router := newTrailRouter(trails, parks)

	t.Run("park with trails", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodGet, "/api/v1/trails/GetTrailInNationalPark/1", nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		var got []TrailResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "Precipice", got[0].Name)
		assert.Equal(t, "Jordan Pond Path", got[1].Name)
	})

	t.Run("park without trails", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodGet, "/api/v1/trails/GetTrailInNationalPark/42", nil)
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, "[]", recorder.Body.String())
	})

	t.Run("non-numeric park id", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodGet, "/api/v1/trails/GetTrailInNationalPark/acadia", nil)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestTrailCreate(t *testing.T) {
	t.Parallel()

	validPayload := func() map[string]any {
		return map[string]any{
			"name":             "Cadillac North Ridge",
			"distance":         4.4,
			"elevation_gain":   340.0,
			"difficulty":       "Moderate",
			"national_park_id": 1,
		}
	}

	tests := []struct {
		name       string
		mutate     func(map[string]any)
		wantStatus int
	}{
		{
			name:       "valid create",
			mutate:     func(m map[string]any) {},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "unknown difficulty",
			mutate:     func(m map[string]any) { m["difficulty"] = "Extreme" },
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing name",
			mutate:     func(m map[string]any) { delete(m, "name") },
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing park reference",
			mutate:     func(m map[string]any) { delete(m, "national_park_id") },
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "park does not exist",
			mutate:     func(m map[string]any) { m["national_park_id"] = 99 },
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "duplicate trail name",
			mutate:     func(m map[string]any) { m["name"] = "precipice" },
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trails, parks := trailFixtures()
			router := newTrailRouter(trails, parks)

			payload := validPayload()
			tt.mutate(payload)

			recorder := doJSON(t, router, http.MethodPost, "/api/v1/trails", payload)
			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantStatus == http.StatusCreated {
				var got TrailResponse
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
				assert.NotZero(t, got.ID)
				assert.Equal(t, "Cadillac North Ridge", got.Name)
				assert.Equal(t, "/api/v1/trails/4", recorder.Header().Get("Location"))
			} else {
				assert.Len(t, trails.Trails, 3, "storage unchanged")
			}
		})
	}
}

func TestTrailUpdate(t *testing.T) {
	t.Parallel()

	payload := func(id, parkID int) map[string]any {
		return map[string]any{
			"id":               id,
			"name":             "Precipice",
			"distance":         3.5,
			"elevation_gain":   300.0,
			"difficulty":       "Difficult",
			"national_park_id": parkID,
		}
	}

	t.Run("success returns 204", func(t *testing.T) {
		trails, parks := trailFixtures()
		router := newTrailRouter(trails, parks)

		recorder := doJSON(t, router, http.MethodPatch, "/api/v1/trails/1", payload(1, 1))
		assert.Equal(t, http.StatusNoContent, recorder.Code)
		assert.Empty(t, recorder.Body.String())
		assert.Equal(t, 3.5, trails.Trails[1].Distance)
	})

	t.Run("path id and payload id disagree", func(t *testing.T) {
		trails, parks := trailFixtures()
		router := newTrailRouter(trails, parks)

		recorder := doJSON(t, router, http.MethodPatch, "/api/v1/trails/1", payload(2, 1))
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("reassignment to missing park rejected", func(t *testing.T) {
		trails, parks := trailFixtures()
		router := newTrailRouter(trails, parks)

		recorder := doJSON(t, router, http.MethodPatch, "/api/v1/trails/1", payload(1, 99))
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, 1, trails.Trails[1].NationalParkID, "storage unchanged")
	})
}

func TestTrailDelete(t *testing.T) {
	t.Parallel()

	trails, parks := trailFixtures()
	router := newTrailRouter(trails, parks)

	t.Run("missing target returns 404", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodDelete, "/api/v1/trails/99", nil)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Len(t, trails.Trails, 3, "storage unchanged")
	})

	t.Run("existing target removed", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodDelete, "/api/v1/trails/2", nil)
		assert.Equal(t, http.StatusNoContent, recorder.Code)
		assert.Len(t, trails.Trails, 2)
	})
}
