package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/parkyapi/parky/internal/domain"
	"github.com/parkyapi/parky/internal/platform/logger"
	"github.com/parkyapi/parky/internal/store"
)

// UserStore implements the store.UserStore interface using a PostgreSQL
// database as the storage backend.
type UserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewUserStore creates a new PostgreSQL implementation of the UserStore
// interface. It accepts a database connection or transaction that should be
// initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewUserStore(db store.DBTX, logger *slog.Logger) *UserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &UserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure UserStore implements store.UserStore interface
var _ store.UserStore = (*UserStore)(nil)

// IsUsernameTaken implements store.UserStore.IsUsernameTaken.
// Usernames are compared exactly as stored.
func (s *UserStore) IsUsernameTaken(ctx context.Context, username string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, username).Scan(&exists); err != nil {
		return false, MapError(err)
	}
	return exists, nil
}

// GetByUsername implements store.UserStore.GetByUsername.
// Returns store.ErrUserNotFound if the user does not exist.
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, username, hashed_password, role
		FROM users
		WHERE username = $1
	`

	var user domain.User
	var role string
	err := s.db.QueryRowContext(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.Hash,
		&role,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found", slog.String("username", username))
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by username",
			slog.String("error", err.Error()),
			slog.String("username", username))
		return nil, MapError(err)
	}

	user.Role = domain.UserRole(role)
	return &user, nil
}

// Create implements store.UserStore.Create.
// The assigned ID is written back into the given user. Only the password
// hash is persisted; the plaintext Password field never reaches the store.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if user.Hash == "" {
		return fmt.Errorf("%w: user has no password hash", store.ErrInvalidEntity)
	}
	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO users (username, hashed_password, role)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := s.db.QueryRowContext(
		ctx,
		query,
		user.Username,
		user.Hash,
		string(user.Role),
	).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			log.Warn("duplicate username on create", slog.String("username", user.Username))
			return fmt.Errorf("%w: %q", store.ErrUsernameExists, user.Username)
		}
		log.Error("failed to create user",
			slog.String("error", err.Error()),
			slog.String("username", user.Username))
		return store.NewStoreError("user", "create", "insert failed", MapError(err))
	}

	log.Info("user created",
		slog.Int("user_id", user.ID),
		slog.String("username", user.Username),
		slog.String("role", string(user.Role)))
	return nil
}
