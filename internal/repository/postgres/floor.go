package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ShivenPandit/Super-Mall-Web-App/internal/domain"
	"github.com/ShivenPandit/Super-Mall-Web-App/pkg/database"
	apperrors "github.com/ShivenPandit/Super-Mall-Web-App/pkg/errors"
)

// FloorRepository implements repository.FloorRepository using PostgreSQL.
type FloorRepository struct {
	pool database.PgxPool
}

// NewFloorRepository creates a new PostgreSQL-backed floor repository.
func NewFloorRepository(pool database.PgxPool) *FloorRepository {
	return &FloorRepository{pool: pool}
}

// Create inserts a new floor. Floor codes are unique.
func (r *FloorRepository) Create(ctx context.Context, f *domain.Floor) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if f.CreatedAt.IsZero() {
		f.CreatedAt = now
	}
	if f.UpdatedAt.IsZero() {
		f.UpdatedAt = now
	}

	query := `
		INSERT INTO floors (id, name, code, level, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		f.ID,
		f.Name,
		f.Code,
		f.Level,
		f.Description,
		f.CreatedAt,
		f.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("floor", "code", f.Code)
		}
		return fmt.Errorf("insert floor: %w", err)
	}

	return nil
}

// GetByID retrieves a floor by its ID.
func (r *FloorRepository) GetByID(ctx context.Context, id string) (*domain.Floor, error) {
	query := `
		SELECT id, name, code, level, description, created_at, updated_at
		FROM floors
		WHERE id = $1`

	var f domain.Floor
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&f.ID,
		&f.Name,
		&f.Code,
		&f.Level,
		&f.Description,
		&f.CreatedAt,
		&f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("scan floor: %w", err)
	}

	return &f, nil
}

// List returns all floors ordered by level, lowest first.
func (r *FloorRepository) List(ctx context.Context) ([]domain.Floor, error) {
	query := `
		SELECT id, name, code, level, description, created_at, updated_at
		FROM floors
		ORDER BY level ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list floors: %w", err)
	}
	defer rows.Close()

	var floors []domain.Floor
	for rows.Next() {
		var f domain.Floor
		if err := rows.Scan(
			&f.ID,
			&f.Name,
			&f.Code,
			&f.Level,
			&f.Description,
			&f.CreatedAt,
			&f.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan floor row: %w", err)
		}
		floors = append(floors, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate floor rows: %w", err)
	}

	if floors == nil {
		floors = []domain.Floor{}
	}

	return floors, nil
}

// Update overwrites an existing floor record.
func (r *FloorRepository) Update(ctx context.Context, f *domain.Floor) error {
	f.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE floors
		SET name = $1, code = $2, level = $3, description = $4, updated_at = $5
		WHERE id = $6`

	ct, err := r.pool.Exec(ctx, query,
		f.Name,
		f.Code,
		f.Level,
		f.Description,
		f.UpdatedAt,
		f.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("floor", "code", f.Code)
		}
		return fmt.Errorf("update floor: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("floor", f.ID)
	}

	return nil
}

// Delete removes a floor.
func (r *FloorRepository) Delete(ctx context.Context, id string) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM floors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete floor: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("floor", id)
	}

	return nil
}
