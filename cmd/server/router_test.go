package main

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/parkyapi/parky/internal/config"
	"github.com/parkyapi/parky/internal/domain"
	"github.com/parkyapi/parky/internal/mocks"
	"github.com/parkyapi/parky/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApplication(versions []int) (*application, *mocks.MockJWTService) {
	jwt := &mocks.MockJWTService{
		Token: "signed-token",
		Claims: map[string]*auth.Claims{
			"user-token":  {UserID: 1, Username: "ranger", Role: domain.RoleUser},
			"admin-token": {UserID: 2, Username: "warden", Role: domain.RoleAdmin},
		},
	}

	parks := mocks.NewMockNationalParkStore()
	parks.Seed(domain.NationalPark{Name: "Acadia", State: "Maine"})

	trails := mocks.NewMockTrailStore()
	trails.Seed(domain.Trail{
		Name:           "Precipice",
		Difficulty:     domain.DifficultyDifficult,
		NationalParkID: 1,
	})

	app := &application{
		config: &config.Config{
			Server: config.ServerConfig{Port: 8080, LogLevel: "info", APIVersions: versions},
		},
		logger:           slog.Default(),
		parkStore:        parks,
		trailStore:       trails,
		userStore:        mocks.NewMockUserStore(),
		jwtService:       jwt,
		passwordHasher:   &mocks.MockPasswordHasher{},
		passwordVerifier: &mocks.MockPasswordVerifier{},
	}
	return app, jwt
}

func get(t *testing.T, router http.Handler, path, token string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestRouterVersionReplication(t *testing.T) {
	t.Parallel()

	app, _ := newTestApplication([]int{1, 2})
	router := app.setupRouter()

	// The same resources answer under every configured version prefix.
	assert.Equal(t, http.StatusOK, get(t, router, "/api/v1/nationalparks", "").Code)
	assert.Equal(t, http.StatusOK, get(t, router, "/api/v2/nationalparks", "").Code)
	assert.Equal(t, http.StatusOK, get(t, router, "/api/v1/trails", "").Code)
	assert.Equal(t, http.StatusOK, get(t, router, "/api/v2/trails", "").Code)

	// An unconfigured version is not routed.
	assert.Equal(t, http.StatusNotFound, get(t, router, "/api/v3/nationalparks", "").Code)
}

func TestRouterParkReadRequiresToken(t *testing.T) {
	t.Parallel()

	app, _ := newTestApplication([]int{1})
	router := app.setupRouter()

	t.Run("list is public", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, get(t, router, "/api/v1/nationalparks", "").Code)
	})

	t.Run("single park without token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, get(t, router, "/api/v1/nationalparks/1", "").Code)
	})

	t.Run("single park with any valid token", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, get(t, router, "/api/v1/nationalparks/1", "user-token").Code)
	})
}

func TestRouterTrailReadRequiresAdmin(t *testing.T) {
	t.Parallel()

	app, _ := newTestApplication([]int{1})
	router := app.setupRouter()

	t.Run("list is public", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, get(t, router, "/api/v1/trails", "").Code)
	})

	t.Run("by park is public", func(t *testing.T) {
		recorder := get(t, router, "/api/v1/trails/GetTrailInNationalPark/1", "")
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("single trail without token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, get(t, router, "/api/v1/trails/1", "").Code)
	})

	t.Run("single trail with non-admin token", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, get(t, router, "/api/v1/trails/1", "user-token").Code)
	})

	t.Run("single trail with admin token", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, get(t, router, "/api/v1/trails/1", "admin-token").Code)
	})
}

func TestRouterHealth(t *testing.T) {
	t.Parallel()

	app, _ := newTestApplication([]int{1})
	router := app.setupRouter()

	recorder := get(t, router, "/health", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "OK", recorder.Body.String())
}
