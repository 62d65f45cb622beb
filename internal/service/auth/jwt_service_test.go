package auth

import (
	"context"
	"testing"
	"time"

	"github.com/parkyapi/parky/internal/config"
	"github.com/parkyapi/parky/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-that-is-at-least-32-characters"

func newTestService(t *testing.T) *hmacJWTService {
	t.Helper()

	svc, err := NewJWTService(config.AuthConfig{
		JWTSecret:            testSecret,
		TokenLifetimeMinutes: 60,
	})
	require.NoError(t, err)
	return svc.(*hmacJWTService)
}

func TestNewJWTService(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService(config.AuthConfig{JWTSecret: "too short"})
	assert.ErrorContains(t, err, "at least 32 characters")
}

func TestGenerateAndValidateToken(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	user := &domain.User{ID: 42, Username: "alice", Role: domain.RoleAdmin}

	token, err := svc.GenerateToken(context.Background(), user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestValidateTokenFailures(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	user := &domain.User{ID: 1, Username: "bob", Role: domain.RoleUser}

	t.Run("missing token", func(t *testing.T) {
		_, err := svc.ValidateToken(context.Background(), "")
		assert.ErrorIs(t, err, ErrMissingToken)
	})

	t.Run("malformed token", func(t *testing.T) {
		_, err := svc.ValidateToken(context.Background(), "not.a.jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		other, err := NewJWTService(config.AuthConfig{
			JWTSecret:            "another-secret-that-is-32-chars-long!!",
			TokenLifetimeMinutes: 60,
		})
		require.NoError(t, err)

		token, err := other.GenerateToken(context.Background(), user)
		require.NoError(t, err)

		_, err = svc.ValidateToken(context.Background(), token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		issued := newTestService(t)
		issuedAt := time.Now().Add(-2 * time.Hour)
		issued.timeFunc = func() time.Time { return issuedAt }

		token, err := issued.GenerateToken(context.Background(), user)
		require.NoError(t, err)

		// Validate with real time: token expired an hour ago, beyond skew.
		_, err = svc.ValidateToken(context.Background(), token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("clock skew tolerated", func(t *testing.T) {
		issued := newTestService(t)
		issued.timeFunc = func() time.Time { return time.Now().Add(time.Minute) }

		token, err := issued.GenerateToken(context.Background(), user)
		require.NoError(t, err)

		// Issued one minute in the future; within the 2 minute leeway.
		_, err = svc.ValidateToken(context.Background(), token)
		assert.NoError(t, err)
	})
}
