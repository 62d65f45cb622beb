package mocks

import (
	"context"
	"fmt"

	"github.com/parkyapi/parky/internal/domain"
	"github.com/parkyapi/parky/internal/store"
)

// MockUserStore implements store.UserStore for testing.
type MockUserStore struct {
	// Function fields for customizable behavior
	IsUsernameTakenFn func(ctx context.Context, username string) (bool, error)
	GetByUsernameFn   func(ctx context.Context, username string) (*domain.User, error)
	CreateFn          func(ctx context.Context, user *domain.User) error

	// Data for the default implementation
	Users  map[string]*domain.User
	NextID int
}

// Ensure MockUserStore implements the interface
var _ store.UserStore = (*MockUserStore)(nil)

// NewMockUserStore creates a new mock store with initialized defaults.
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users:  make(map[string]*domain.User),
		NextID: 1,
	}
}

// Seed inserts a user directly, bypassing uniqueness checks.
func (m *MockUserStore) Seed(user domain.User) *domain.User {
	if user.ID == 0 {
		user.ID = m.NextID
	}
	if user.ID >= m.NextID {
		m.NextID = user.ID + 1
	}
	m.Users[user.Username] = &user
	return m.Users[user.Username]
}

// IsUsernameTaken implements store.UserStore.
func (m *MockUserStore) IsUsernameTaken(ctx context.Context, username string) (bool, error) {
	if m.IsUsernameTakenFn != nil {
		return m.IsUsernameTakenFn(ctx, username)
	}

	_, ok := m.Users[username]
	return ok, nil
}

// GetByUsername implements store.UserStore.
func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}

	user, ok := m.Users[username]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	copy := *user
	return &copy, nil
}

// Create implements store.UserStore.
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	if _, ok := m.Users[user.Username]; ok {
		return fmt.Errorf("%w: %q", store.ErrUsernameExists, user.Username)
	}

	user.ID = m.NextID
	m.NextID++
	copy := *user
	m.Users[user.Username] = &copy
	return nil
}
