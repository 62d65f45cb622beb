package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/parkyapi/parky/internal/domain"
	"github.com/parkyapi/parky/internal/platform/logger"
	"github.com/parkyapi/parky/internal/store"
)

// NationalParkStore implements the store.NationalParkStore interface
// using a PostgreSQL database as the storage backend.
type NationalParkStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewNationalParkStore creates a new PostgreSQL implementation of the
// NationalParkStore interface. It accepts a database connection or
// transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewNationalParkStore(db store.DBTX, logger *slog.Logger) *NationalParkStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &NationalParkStore{
		db:     db,
		logger: logger.With(slog.String("component", "national_park_store")),
	}
}

// Ensure NationalParkStore implements store.NationalParkStore interface
var _ store.NationalParkStore = (*NationalParkStore)(nil)

// List implements store.NationalParkStore.List.
// Parks are returned sorted by name ascending.
func (s *NationalParkStore) List(ctx context.Context) ([]domain.NationalPark, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, state, established, picture
		FROM national_parks
		ORDER BY name ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list national parks", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	parks := make([]domain.NationalPark, 0)
	for rows.Next() {
		var park domain.NationalPark
		if err := rows.Scan(
			&park.ID,
			&park.Name,
			&park.State,
			&park.Established,
			&park.Picture,
		); err != nil {
			log.Error("failed to scan national park row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		parks = append(parks, park)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return parks, nil
}

// GetByID implements store.NationalParkStore.GetByID.
// Returns store.ErrParkNotFound if the park does not exist.
func (s *NationalParkStore) GetByID(ctx context.Context, id int) (*domain.NationalPark, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, state, established, picture
		FROM national_parks
		WHERE id = $1
	`

	var park domain.NationalPark
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&park.ID,
		&park.Name,
		&park.State,
		&park.Established,
		&park.Picture,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("national park not found", slog.Int("park_id", id))
			return nil, store.ErrParkNotFound
		}
		log.Error("failed to get national park by ID",
			slog.String("error", err.Error()),
			slog.Int("park_id", id))
		return nil, MapError(err)
	}

	return &park, nil
}

// ExistsByName implements store.NationalParkStore.ExistsByName.
// Names are compared case-insensitively after trimming whitespace.
func (s *NationalParkStore) ExistsByName(ctx context.Context, name string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM national_parks
			WHERE lower(trim(name)) = lower(trim($1))
		)
	`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, name).Scan(&exists); err != nil {
		return false, MapError(err)
	}
	return exists, nil
}

// ExistsByID implements store.NationalParkStore.ExistsByID.
func (s *NationalParkStore) ExistsByID(ctx context.Context, id int) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM national_parks WHERE id = $1)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, MapError(err)
	}
	return exists, nil
}

// Create implements store.NationalParkStore.Create.
// The assigned ID is written back into the given park.
func (s *NationalParkStore) Create(ctx context.Context, park *domain.NationalPark) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := park.Validate(); err != nil {
		log.Warn("national park validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO national_parks (name, state, established, picture)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := s.db.QueryRowContext(
		ctx,
		query,
		park.Name,
		park.State,
		park.Established,
		park.Picture,
	).Scan(&park.ID)
	if err != nil {
		if isUniqueViolation(err) {
			log.Warn("duplicate national park name on create",
				slog.String("name", park.Name))
			return fmt.Errorf("%w: %q", store.ErrParkNameExists, park.Name)
		}
		log.Error("failed to create national park",
			slog.String("error", err.Error()),
			slog.String("name", park.Name))
		return store.NewStoreError("national park", "create", "insert failed", MapError(err))
	}

	log.Info("national park created",
		slog.Int("park_id", park.ID),
		slog.String("name", park.Name))
	return nil
}

// Update implements store.NationalParkStore.Update.
// All attributes are replaced; the identity is preserved.
// Returns store.ErrUpdateFailed if no row matched the ID.
func (s *NationalParkStore) Update(ctx context.Context, park *domain.NationalPark) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := park.Validate(); err != nil {
		log.Warn("national park validation failed during update",
			slog.String("error", err.Error()),
			slog.Int("park_id", park.ID))
		return err
	}

	query := `
		UPDATE national_parks
		SET name = $1, state = $2, established = $3, picture = $4
		WHERE id = $5
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		park.Name,
		park.State,
		park.Established,
		park.Picture,
		park.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %q", store.ErrParkNameExists, park.Name)
		}
		log.Error("failed to update national park",
			slog.String("error", err.Error()),
			slog.Int("park_id", park.ID))
		return store.NewStoreError("national park", "update", "update failed", MapError(err))
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return store.NewStoreError("national park", "update", "rows affected unavailable", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: national park %d", store.ErrUpdateFailed, park.ID)
	}

	log.Info("national park updated", slog.Int("park_id", park.ID))
	return nil
}

// Delete implements store.NationalParkStore.Delete.
// Returns store.ErrDeleteFailed if no row matched the ID.
func (s *NationalParkStore) Delete(ctx context.Context, id int) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM national_parks WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete national park",
			slog.String("error", err.Error()),
			slog.Int("park_id", id))
		return store.NewStoreError("national park", "delete", "delete failed", MapError(err))
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return store.NewStoreError("national park", "delete", "rows affected unavailable", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: national park %d", store.ErrDeleteFailed, id)
	}

	log.Info("national park deleted", slog.Int("park_id", id))
	return nil
}
