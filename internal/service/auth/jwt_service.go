// Package auth provides credential services: JWT issuance/validation and
// password hashing. Handlers compose these with the user store to realize
// the authenticate and register capabilities.
package auth

import (
	"context"

	"github.com/parkyapi/parky/internal/domain"
)

// Claims represents the validated identity carried by an access token.
type Claims struct {
	UserID   int
	Username string
	Role     domain.UserRole
}

// JWTService defines the interface for issuing and validating access tokens.
type JWTService interface {
	// GenerateToken creates a signed access token carrying the user's
	// identity and role.
	GenerateToken(ctx context.Context, user *domain.User) (string, error)

	// ValidateToken verifies a token string and returns its claims.
	// Returns ErrExpiredToken, ErrTokenNotYetValid or ErrInvalidToken on failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}
