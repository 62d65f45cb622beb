package store

import (
	"context"

	"github.com/parkyapi/parky/internal/domain"
)

// TrailStore defines the interface for trail persistence.
// Single-trail and list reads always resolve and attach the owning
// national park, never a bare foreign key.
type TrailStore interface {
	// List returns all trails sorted by name ascending, each joined with
	// its owning national park.
	List(ctx context.Context) ([]domain.Trail, error)

	// GetByID retrieves a trail by its primary key, joined with its owning park.
	// Returns ErrTrailNotFound if the trail does not exist.
	GetByID(ctx context.Context, id int) (*domain.Trail, error)

	// ListByPark returns the trails whose NationalParkID equals parkID,
	// joined with the owning park. The result is not sorted by name.
	// A park with no trails yields an empty, non-nil slice.
	ListByPark(ctx context.Context, parkID int) ([]domain.Trail, error)

	// ExistsByName reports whether a trail with the given name exists.
	// The comparison is case-insensitive and whitespace-trimmed on both sides.
	ExistsByName(ctx context.Context, name string) (bool, error)

	// ExistsByID reports whether a trail with the given id exists.
	ExistsByID(ctx context.Context, id int) (bool, error)

	// Create persists a new trail and assigns its ID. The caller must have
	// verified name uniqueness and that the referenced park exists; the
	// store's constraints are the backstop (ErrTrailNameExists,
	// ErrInvalidEntity on a broken park reference).
	Create(ctx context.Context, trail *domain.Trail) error

	// Update performs a full replace of an existing trail keyed by ID.
	// Returns ErrUpdateFailed if no row was updated.
	Update(ctx context.Context, trail *domain.Trail) error

	// Delete removes a trail by ID.
	// Returns ErrDeleteFailed if no row was deleted.
	Delete(ctx context.Context, id int) error
}
