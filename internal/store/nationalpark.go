package store

import (
	"context"

	"github.com/parkyapi/parky/internal/domain"
)

// NationalParkStore defines the interface for national park persistence.
// It is the sole gateway to national park storage; all invariant checks
// (name uniqueness, existence before delete) are made against it.
type NationalParkStore interface {
	// List returns all national parks sorted by name ascending.
	// It only fails on storage unavailability.
	List(ctx context.Context) ([]domain.NationalPark, error)

	// GetByID retrieves a park by its primary key.
	// Returns ErrParkNotFound if the park does not exist.
	GetByID(ctx context.Context, id int) (*domain.NationalPark, error)

	// ExistsByName reports whether a park with the given name exists.
	// The comparison is case-insensitive and whitespace-trimmed on both sides.
	ExistsByName(ctx context.Context, name string) (bool, error)

	// ExistsByID reports whether a park with the given id exists.
	ExistsByID(ctx context.Context, id int) (bool, error)

	// Create persists a new park and assigns its ID. The caller must have
	// already verified name uniqueness; the store's unique constraint is the
	// backstop, surfaced as ErrParkNameExists.
	Create(ctx context.Context, park *domain.NationalPark) error

	// Update performs a full replace of an existing park keyed by ID.
	// Returns ErrUpdateFailed if no row was updated.
	Update(ctx context.Context, park *domain.NationalPark) error

	// Delete removes a park by ID.
	// Returns ErrDeleteFailed if no row was deleted.
	Delete(ctx context.Context, id int) error
}
