package auth

import "errors"

// Sentinel errors reported by token validation. The middleware maps each
// to a distinct 401 response message.
var (
	// ErrInvalidToken covers malformed tokens and signature mismatches.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token's expiry has passed.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrTokenNotYetValid indicates an nbf claim in the future.
	ErrTokenNotYetValid = errors.New("authentication token not yet valid")

	// ErrMissingToken indicates no token was supplied at all.
	ErrMissingToken = errors.New("authentication token is missing")
)
