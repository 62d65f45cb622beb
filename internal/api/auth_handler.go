package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/parkyapi/parky/internal/domain"
	"github.com/parkyapi/parky/internal/platform/logger"
	"github.com/parkyapi/parky/internal/service/auth"
	"github.com/parkyapi/parky/internal/store"
)

// AuthHandler handles the authenticate and register endpoints.
type AuthHandler struct {
	users    store.UserStore
	jwt      auth.JWTService
	hasher   auth.PasswordHasher
	verifier auth.PasswordVerifier
	logger   *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	users store.UserStore,
	jwt auth.JWTService,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	log *slog.Logger,
) *AuthHandler {
	if log == nil {
		log = slog.Default()
	}
	return &AuthHandler{
		users:    users,
		jwt:      jwt,
		hasher:   hasher,
		verifier: verifier,
		logger:   log.With(slog.String("component", "auth_handler")),
	}
}

// Authenticate handles POST {base}/users/authenticate.
// An unknown username and a wrong password produce the same 401 response,
// so callers cannot enumerate usernames.
func (h *AuthHandler) Authenticate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req AuthenticationRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := ValidateRequest(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	user, err := h.users.GetByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			RespondWithError(w, r, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to authenticate user", err)
		return
	}

	if err := h.verifier.Compare(user.Hash, req.Password); err != nil {
		RespondWithError(w, r, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	token, err := h.jwt.GenerateToken(r.Context(), user)
	if err != nil {
		RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to generate authentication token", err)
		return
	}

	log.Info("user authenticated", slog.String("username", user.Username))
	RespondWithJSON(w, r, http.StatusOK, userToAuthResponse(user, token))
}

// Register handles POST {base}/users/register.
// Username uniqueness is checked before any persistence is attempted.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req AuthenticationRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := ValidateRequest(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	taken, err := h.users.IsUsernameTaken(r.Context(), req.Username)
	if err != nil {
		RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to register user", err)
		return
	}
	if taken {
		RespondWithError(w, r, http.StatusBadRequest, "Username already exists")
		return
	}

	user, err := domain.NewUser(req.Username, req.Password)
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid user data: "+err.Error())
		return
	}

	hash, err := h.hasher.Hash(req.Password)
	if err != nil {
		RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to register user", err)
		return
	}
	user.Hash = hash
	user.Password = ""

	if err := h.users.Create(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			// Lost the pre-check race; same outcome as the pre-check.
			RespondWithError(w, r, http.StatusBadRequest, "Username already exists")
			return
		}
		RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Error while registering", err)
		return
	}

	token, err := h.jwt.GenerateToken(r.Context(), user)
	if err != nil {
		RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to generate authentication token", err)
		return
	}

	log.Info("user registered",
		slog.Int("user_id", user.ID),
		slog.String("username", user.Username))
	RespondWithJSON(w, r, http.StatusCreated, userToAuthResponse(user, token))
}
