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

// TrailStore implements the store.TrailStore interface using a PostgreSQL
// database as the storage backend. All reads join the owning national park.
type TrailStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewTrailStore creates a new PostgreSQL implementation of the TrailStore
// interface. It accepts a database connection or transaction that should be
// initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewTrailStore(db store.DBTX, logger *slog.Logger) *TrailStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &TrailStore{
		db:     db,
		logger: logger.With(slog.String("component", "trail_store")),
	}
}

// Ensure TrailStore implements store.TrailStore interface
var _ store.TrailStore = (*TrailStore)(nil)

// trailColumns selects a trail row joined with its owning park.
const trailColumns = `
	t.id, t.name, t.distance, t.elevation_gain, t.difficulty, t.picture, t.national_park_id,
	p.id, p.name, p.state, p.established, p.picture
`

// scanTrail scans one joined trail row into a domain.Trail with its park attached.
func scanTrail(scanner interface{ Scan(dest ...any) error }) (domain.Trail, error) {
	var trail domain.Trail
	var park domain.NationalPark
	var difficulty string

	err := scanner.Scan(
		&trail.ID,
		&trail.Name,
		&trail.Distance,
		&trail.ElevationGain,
		&difficulty,
		&trail.Picture,
		&trail.NationalParkID,
		&park.ID,
		&park.Name,
		&park.State,
		&park.Established,
		&park.Picture,
	)
	if err != nil {
		return domain.Trail{}, err
	}

	trail.Difficulty = domain.TrailDifficulty(difficulty)
	trail.NationalPark = &park
	return trail, nil
}

// List implements store.TrailStore.List.
// Trails are returned sorted by name ascending.
func (s *TrailStore) List(ctx context.Context) ([]domain.Trail, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + trailColumns + `
		FROM trails t
		JOIN national_parks p ON p.id = t.national_park_id
		ORDER BY t.name ASC
	`

	return s.queryTrails(ctx, log, query)
}

// ListByPark implements store.TrailStore.ListByPark.
// The result is filtered by owning park and deliberately not name-sorted.
func (s *TrailStore) ListByPark(ctx context.Context, parkID int) ([]domain.Trail, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + trailColumns + `
		FROM trails t
		JOIN national_parks p ON p.id = t.national_park_id
		WHERE t.national_park_id = $1
		ORDER BY t.id
	`

	return s.queryTrails(ctx, log, query, parkID)
}

func (s *TrailStore) queryTrails(
	ctx context.Context,
	log *slog.Logger,
	query string,
	args ...any,
) ([]domain.Trail, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query trails", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	trails := make([]domain.Trail, 0)
	for rows.Next() {
		trail, err := scanTrail(rows)
		if err != nil {
			log.Error("failed to scan trail row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		trails = append(trails, trail)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return trails, nil
}

// GetByID implements store.TrailStore.GetByID.
// Returns store.ErrTrailNotFound if the trail does not exist.
func (s *TrailStore) GetByID(ctx context.Context, id int) (*domain.Trail, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + trailColumns + `
		FROM trails t
		JOIN national_parks p ON p.id = t.national_park_id
		WHERE t.id = $1
	`

	trail, err := scanTrail(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("trail not found", slog.Int("trail_id", id))
			return nil, store.ErrTrailNotFound
		}
		log.Error("failed to get trail by ID",
			slog.String("error", err.Error()),
			slog.Int("trail_id", id))
		return nil, MapError(err)
	}

	return &trail, nil
}

// ExistsByName implements store.TrailStore.ExistsByName.
// Names are compared case-insensitively after trimming whitespace.
func (s *TrailStore) ExistsByName(ctx context.Context, name string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM trails
			WHERE lower(trim(name)) = lower(trim($1))
		)
	`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, name).Scan(&exists); err != nil {
		return false, MapError(err)
	}
	return exists, nil
}

// ExistsByID implements store.TrailStore.ExistsByID.
func (s *TrailStore) ExistsByID(ctx context.Context, id int) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM trails WHERE id = $1)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, MapError(err)
	}
	return exists, nil
}

// Create implements store.TrailStore.Create.
// The assigned ID is written back into the given trail.
// A broken park reference surfaces as store.ErrInvalidEntity via the FK.
func (s *TrailStore) Create(ctx context.Context, trail *domain.Trail) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := trail.Validate(); err != nil {
		log.Warn("trail validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO trails (name, distance, elevation_gain, difficulty, picture, national_park_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := s.db.QueryRowContext(
		ctx,
		query,
		trail.Name,
		trail.Distance,
		trail.ElevationGain,
		string(trail.Difficulty),
		trail.Picture,
		trail.NationalParkID,
	).Scan(&trail.ID)
	if err != nil {
		if isUniqueViolation(err) {
			log.Warn("duplicate trail name on create", slog.String("name", trail.Name))
			return fmt.Errorf("%w: %q", store.ErrTrailNameExists, trail.Name)
		}
		mapped := MapError(err)
		if errors.Is(mapped, store.ErrInvalidEntity) {
			log.Warn("foreign key violation during trail creation",
				slog.Int("national_park_id", trail.NationalParkID))
			return fmt.Errorf("%w: national park %d not found",
				store.ErrInvalidEntity, trail.NationalParkID)
		}
		log.Error("failed to create trail",
			slog.String("error", err.Error()),
			slog.String("name", trail.Name))
		return store.NewStoreError("trail", "create", "insert failed", mapped)
	}

	log.Info("trail created",
		slog.Int("trail_id", trail.ID),
		slog.String("name", trail.Name),
		slog.Int("national_park_id", trail.NationalParkID))
	return nil
}

// Update implements store.TrailStore.Update.
// All attributes are replaced; the identity is preserved.
// Returns store.ErrUpdateFailed if no row matched the ID.
func (s *TrailStore) Update(ctx context.Context, trail *domain.Trail) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := trail.Validate(); err != nil {
		log.Warn("trail validation failed during update",
			slog.String("error", err.Error()),
			slog.Int("trail_id", trail.ID))
		return err
	}

	query := `
		UPDATE trails
		SET name = $1, distance = $2, elevation_gain = $3, difficulty = $4,
		    picture = $5, national_park_id = $6
		WHERE id = $7
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		trail.Name,
		trail.Distance,
		trail.ElevationGain,
		string(trail.Difficulty),
		trail.Picture,
		trail.NationalParkID,
		trail.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %q", store.ErrTrailNameExists, trail.Name)
		}
		mapped := MapError(err)
		if errors.Is(mapped, store.ErrInvalidEntity) {
			return fmt.Errorf("%w: national park %d not found",
				store.ErrInvalidEntity, trail.NationalParkID)
		}
		log.Error("failed to update trail",
			slog.String("error", err.Error()),
			slog.Int("trail_id", trail.ID))
		return store.NewStoreError("trail", "update", "update failed", mapped)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return store.NewStoreError("trail", "update", "rows affected unavailable", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: trail %d", store.ErrUpdateFailed, trail.ID)
	}

	log.Info("trail updated", slog.Int("trail_id", trail.ID))
	return nil
}

// Delete implements store.TrailStore.Delete.
// Returns store.ErrDeleteFailed if no row matched the ID.
func (s *TrailStore) Delete(ctx context.Context, id int) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM trails WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete trail",
			slog.String("error", err.Error()),
			slog.Int("trail_id", id))
		return store.NewStoreError("trail", "delete", "delete failed", MapError(err))
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return store.NewStoreError("trail", "delete", "rows affected unavailable", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: trail %d", store.ErrDeleteFailed, id)
	}

	log.Info("trail deleted", slog.Int("trail_id", id))
	return nil
}
