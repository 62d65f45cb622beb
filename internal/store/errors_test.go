package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNotFoundError(ErrNotFound))
	assert.True(t, IsNotFoundError(ErrParkNotFound))
	assert.True(t, IsNotFoundError(ErrTrailNotFound))
	assert.True(t, IsNotFoundError(ErrUserNotFound))
	assert.True(t, IsNotFoundError(fmt.Errorf("lookup: %w", ErrParkNotFound)))

	assert.False(t, IsNotFoundError(ErrDuplicate))
	assert.False(t, IsNotFoundError(errors.New("boom")))
	assert.False(t, IsNotFoundError(nil))
}

func TestIsDuplicateError(t *testing.T) {
	t.Parallel()

	assert.True(t, IsDuplicateError(ErrDuplicate))
	assert.True(t, IsDuplicateError(ErrParkNameExists))
	assert.True(t, IsDuplicateError(ErrTrailNameExists))
	assert.True(t, IsDuplicateError(ErrUsernameExists))

	assert.False(t, IsDuplicateError(ErrNotFound))
	assert.False(t, IsDuplicateError(nil))
}

func TestStoreError(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")
	err := NewStoreError("national park", "create", "insert failed", cause)

	assert.Contains(t, err.Error(), "create operation on national park failed")
	assert.Contains(t, err.Error(), "connection reset")
	assert.ErrorIs(t, err, cause)

	bare := NewStoreError("trail", "delete", "no rows", nil)
	assert.Equal(t, "delete operation on trail failed: no rows", bare.Error())
}
