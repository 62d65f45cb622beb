package mocks

import (
	"context"
	"fmt"
	"sort"

	"github.com/parkyapi/parky/internal/domain"
	"github.com/parkyapi/parky/internal/store"
)

// MockNationalParkStore implements store.NationalParkStore for testing.
type MockNationalParkStore struct {
	// Function fields for customizable behavior
	ListFn         func(ctx context.Context) ([]domain.NationalPark, error)
	GetByIDFn      func(ctx context.Context, id int) (*domain.NationalPark, error)
	ExistsByNameFn func(ctx context.Context, name string) (bool, error)
	ExistsByIDFn   func(ctx context.Context, id int) (bool, error)
	CreateFn       func(ctx context.Context, park *domain.NationalPark) error
	UpdateFn       func(ctx context.Context, park *domain.NationalPark) error
	DeleteFn       func(ctx context.Context, id int) error

	// Data for the default implementation
	Parks  map[int]*domain.NationalPark
	NextID int
}

// Ensure MockNationalParkStore implements the interface
var _ store.NationalParkStore = (*MockNationalParkStore)(nil)

// NewMockNationalParkStore creates a new mock store with initialized defaults.
func NewMockNationalParkStore() *MockNationalParkStore {
	return &MockNationalParkStore{
		Parks:  make(map[int]*domain.NationalPark),
		NextID: 1,
	}
}

// Seed inserts a park directly, bypassing uniqueness checks.
func (m *MockNationalParkStore) Seed(park domain.NationalPark) *domain.NationalPark {
	if park.ID == 0 {
		park.ID = m.NextID
	}
	if park.ID >= m.NextID {
		m.NextID = park.ID + 1
	}
	m.Parks[park.ID] = &park
	return m.Parks[park.ID]
}

// List implements store.NationalParkStore, sorted by name ascending.
func (m *MockNationalParkStore) List(ctx context.Context) ([]domain.NationalPark, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	parks := make([]domain.NationalPark, 0, len(m.Parks))
	for _, park := range m.Parks {
		parks = append(parks, *park)
	}
	sort.Slice(parks, func(i, j int) bool { return parks[i].Name < parks[j].Name })
	return parks, nil
}

// GetByID implements store.NationalParkStore.
func (m *MockNationalParkStore) GetByID(ctx context.Context, id int) (*domain.NationalPark, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	park, ok := m.Parks[id]
	if !ok {
		return nil, store.ErrParkNotFound
	}
	copy := *park
	return &copy, nil
}

// ExistsByName implements store.NationalParkStore.
func (m *MockNationalParkStore) ExistsByName(ctx context.Context, name string) (bool, error) {
	if m.ExistsByNameFn != nil {
		return m.ExistsByNameFn(ctx, name)
	}

	normalized := domain.NormalizeName(name)
	for _, park := range m.Parks {
		if domain.NormalizeName(park.Name) == normalized {
			return true, nil
		}
	}
	return false, nil
}

// ExistsByID implements store.NationalParkStore.
func (m *MockNationalParkStore) ExistsByID(ctx context.Context, id int) (bool, error) {
	if m.ExistsByIDFn != nil {
		return m.ExistsByIDFn(ctx, id)
	}

	_, ok := m.Parks[id]
	return ok, nil
}

// Create implements store.NationalParkStore.
func (m *MockNationalParkStore) Create(ctx context.Context, park *domain.NationalPark) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, park)
	}

	if exists, _ := m.ExistsByName(ctx, park.Name); exists {
		return fmt.Errorf("%w: %q", store.ErrParkNameExists, park.Name)
	}

	park.ID = m.NextID
	m.NextID++
	copy := *park
	m.Parks[park.ID] = &copy
	return nil
}

// Update implements store.NationalParkStore.
func (m *MockNationalParkStore) Update(ctx context.Context, park *domain.NationalPark) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, park)
	}

	if _, ok := m.Parks[park.ID]; !ok {
		return fmt.Errorf("%w: national park %d", store.ErrUpdateFailed, park.ID)
	}
	copy := *park
	m.Parks[park.ID] = &copy
	return nil
}

// Delete implements store.NationalParkStore.
func (m *MockNationalParkStore) Delete(ctx context.Context, id int) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, ok := m.Parks[id]; !ok {
		return fmt.Errorf("%w: national park %d", store.ErrDeleteFailed, id)
	}
	delete(m.Parks, id)
	return nil
}
