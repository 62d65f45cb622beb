package store

import (
	"context"

	"github.com/parkyapi/parky/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// IsUsernameTaken reports whether a user with the given username exists.
	// Usernames are compared exactly as stored.
	IsUsernameTaken(ctx context.Context, username string) (bool, error)

	// GetByUsername retrieves a user by username.
	// Returns ErrUserNotFound if the user does not exist.
	// The returned user carries the password hash, never a plaintext password.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// Create persists a new user and assigns its ID. The user's Hash must
	// already be populated; the plaintext Password field is never stored.
	// Returns ErrUsernameExists if the username is already taken.
	Create(ctx context.Context, user *domain.User) error
}
