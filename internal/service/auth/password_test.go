package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasherAndVerifier(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(bcrypt.MinCost)
	verifier := NewBcryptVerifier()

	hash, err := hasher.Hash("hunter2hunter2")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "hunter2hunter2", hash)

	assert.NoError(t, verifier.Compare(hash, "hunter2hunter2"))
	assert.Error(t, verifier.Compare(hash, "wrong password"))
	assert.Error(t, verifier.Compare("not a hash", "hunter2hunter2"))
}

func TestNewBcryptHasherDefaultCost(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(0)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}
