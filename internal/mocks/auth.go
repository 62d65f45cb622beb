package mocks

import (
	"context"
	"errors"

	"github.com/parkyapi/parky/internal/domain"
	"github.com/parkyapi/parky/internal/service/auth"
)

// MockJWTService implements auth.JWTService for testing.
type MockJWTService struct {
	Token       string
	GenerateErr error
	ValidateErr error

	// Claims returned by ValidateToken keyed by token string; a token not
	// in the map fails with auth.ErrInvalidToken.
	Claims map[string]*auth.Claims
}

// Ensure MockJWTService implements the interface
var _ auth.JWTService = (*MockJWTService)(nil)

// GenerateToken implements auth.JWTService.
func (m *MockJWTService) GenerateToken(ctx context.Context, user *domain.User) (string, error) {
	if m.GenerateErr != nil {
		return "", m.GenerateErr
	}
	return m.Token, nil
}

// ValidateToken implements auth.JWTService.
func (m *MockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateErr != nil {
		return nil, m.ValidateErr
	}
	if claims, ok := m.Claims[tokenString]; ok {
		return claims, nil
	}
	return nil, auth.ErrInvalidToken
}

// MockPasswordHasher implements auth.PasswordHasher for testing.
type MockPasswordHasher struct {
	Err error
}

// Hash returns a deterministic fake hash.
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return "hashed:" + password, nil
}

// MockPasswordVerifier implements auth.PasswordVerifier for testing.
// It accepts passwords hashed by MockPasswordHasher.
type MockPasswordVerifier struct {
	ShouldSucceed bool
}

// Compare implements auth.PasswordVerifier.
func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	if m.ShouldSucceed || hashedPassword == "hashed:"+password {
		return nil
	}
	return errors.New("password mismatch")
}
