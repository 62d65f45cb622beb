package mocks

import (
	"context"
	"fmt"
	"sort"

	"github.com/parkyapi/parky/internal/domain"
	"github.com/parkyapi/parky/internal/store"
)

// MockTrailStore implements store.TrailStore for testing.
type MockTrailStore struct {
	// Function fields for customizable behavior
	ListFn         func(ctx context.Context) ([]domain.Trail, error)
	GetByIDFn      func(ctx context.Context, id int) (*domain.Trail, error)
	ListByParkFn   func(ctx context.Context, parkID int) ([]domain.Trail, error)
	ExistsByNameFn func(ctx context.Context, name string) (bool, error)
	ExistsByIDFn   func(ctx context.Context, id int) (bool, error)
	CreateFn       func(ctx context.Context, trail *domain.Trail) error
	UpdateFn       func(ctx context.Context, trail *domain.Trail) error
	DeleteFn       func(ctx context.Context, id int) error

	// Data for the default implementation
	Trails map[int]*domain.Trail
	NextID int
}

// Ensure MockTrailStore implements the interface
var _ store.TrailStore = (*MockTrailStore)(nil)

// NewMockTrailStore creates a new mock store with initialized defaults.
func NewMockTrailStore() *MockTrailStore {
	return &MockTrailStore{
		Trails: make(map[int]*domain.Trail),
		NextID: 1,
	}
}

// Seed inserts a trail directly, bypassing uniqueness checks.
func (m *MockTrailStore) Seed(trail domain.Trail) *domain.Trail {
	if trail.ID == 0 {
		trail.ID = m.NextID
	}
	if trail.ID >= m.NextID {
		m.NextID = trail.ID + 1
	}
	m.Trails[trail.ID] = &trail
	return m.Trails[trail.ID]
}

// List implements store.TrailStore, sorted by name ascending.
func (m *MockTrailStore) List(ctx context.Context) ([]domain.Trail, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	trails := make([]domain.Trail, 0, len(m.Trails))
	for _, trail := range m.Trails {
		trails = append(trails, *trail)
	}
	sort.Slice(trails, func(i, j int) bool { return trails[i].Name < trails[j].Name })
	return trails, nil
}

// GetByID implements store.TrailStore.
func (m *MockTrailStore) GetByID(ctx context.Context, id int) (*domain.Trail, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	trail, ok := m.Trails[id]
	if !ok {
		return nil, store.ErrTrailNotFound
	}
	copy := *trail
	return &copy, nil
}

// ListByPark implements store.TrailStore, ordered by id.
func (m *MockTrailStore) ListByPark(ctx context.Context, parkID int) ([]domain.Trail, error) {
	if m.ListByParkFn != nil {
		return m.ListByParkFn(ctx, parkID)
	}

	trails := make([]domain.Trail, 0)
	for _, trail := range m.Trails {
		if trail.NationalParkID == parkID {
			trails = append(trails, *trail)
		}
	}
	sort.Slice(trails, func(i, j int) bool { return trails[i].ID < trails[j].ID })
	return trails, nil
}

// ExistsByName implements store.TrailStore.
func (m *MockTrailStore) ExistsByName(ctx context.Context, name string) (bool, error) {
	if m.ExistsByNameFn != nil {
		return m.ExistsByNameFn(ctx, name)
	}

	normalized := domain.NormalizeName(name)
	for _, trail := range m.Trails {
		if domain.NormalizeName(trail.Name) == normalized {
			return true, nil
		}
	}
	return false, nil
}

// ExistsByID implements store.TrailStore.
func (m *MockTrailStore) ExistsByID(ctx context.Context, id int) (bool, error) {
	if m.ExistsByIDFn != nil {
		return m.ExistsByIDFn(ctx, id)
	}

	_, ok := m.Trails[id]
	return ok, nil
}

// Create implements store.TrailStore.
func (m *MockTrailStore) Create(ctx context.Context, trail *domain.Trail) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, trail)
	}

	if exists, _ := m.ExistsByName(ctx, trail.Name); exists {
		return fmt.Errorf("%w: %q", store.ErrTrailNameExists, trail.Name)
	}

	trail.ID = m.NextID
	m.NextID++
	copy := *trail
	m.Trails[trail.ID] = &copy
	return nil
}

// Update implements store.TrailStore.
func (m *MockTrailStore) Update(ctx context.Context, trail *domain.Trail) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, trail)
	}

	if _, ok := m.Trails[trail.ID]; !ok {
		return fmt.Errorf("%w: trail %d", store.ErrUpdateFailed, trail.ID)
	}
	copy := *trail
	m.Trails[trail.ID] = &copy
	return nil
}

// Delete implements store.TrailStore.
func (m *MockTrailStore) Delete(ctx context.Context, id int) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, ok := m.Trails[id]; !ok {
		return fmt.Errorf("%w: trail %d", store.ErrDeleteFailed, id)
	}
	delete(m.Trails, id)
	return nil
}
