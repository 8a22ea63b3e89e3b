// Package postgres provides PostgreSQL-backed implementations of the
// repository interfaces. Repositories accept database.PgxPool so tests can
// substitute a pgxmock pool.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ShivenPandit/Super-Mall-Web-App/internal/domain"
	"github.com/ShivenPandit/Super-Mall-Web-App/pkg/database"
	apperrors "github.com/ShivenPandit/Super-Mall-Web-App/pkg/errors"
)

// ShopRepository implements repository.ShopRepository using PostgreSQL.
type ShopRepository struct {
	pool database.PgxPool
}

// NewShopRepository creates a new PostgreSQL-backed shop repository.
func NewShopRepository(pool database.PgxPool) *ShopRepository {
	return &ShopRepository{pool: pool}
}

// Create inserts a new shop. The id and timestamps are assigned here when
// the caller left them empty.
func (r *ShopRepository) Create(ctx context.Context, s *domain.Shop) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = now
	}

	query := `
		INSERT INTO shops (
			id, name, description, category, floor, contact_number,
			status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		s.ID,
		s.Name,
		s.Description,
		s.Category,
		s.Floor,
		s.ContactNumber,
		s.Status,
		s.CreatedAt,
		s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("shop", "id", s.ID)
		}
		return fmt.Errorf("insert shop: %w", err)
	}

	return nil
}

// GetByID retrieves a shop by its ID.
func (r *ShopRepository) GetByID(ctx context.Context, id string) (*domain.Shop, error) {
	query := `
		SELECT id, name, description, category, floor, contact_number,
			   status, created_at, updated_at
		FROM shops
		WHERE id = $1`

	var s domain.Shop
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&s.ID,
		&s.Name,
		&s.Description,
		&s.Category,
		&s.Floor,
		&s.ContactNumber,
		&s.Status,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("scan shop: %w", err)
	}

	return &s, nil
}

// List returns all shops, newest first.
func (r *ShopRepository) List(ctx context.Context) ([]domain.Shop, error) {
	query := `
		SELECT id, name, description, category, floor, contact_number,
			   status, created_at, updated_at
		FROM shops
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list shops: %w", err)
	}
	defer rows.Close()

	var shops []domain.Shop
	for rows.Next() {
		var s domain.Shop
		if err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.Description,
			&s.Category,
			&s.Floor,
			&s.ContactNumber,
			&s.Status,
			&s.CreatedAt,
			&s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan shop row: %w", err)
		}
		shops = append(shops, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shop rows: %w", err)
	}

	if shops == nil {
		shops = []domain.Shop{}
	}

	return shops, nil
}

// Update overwrites an existing shop record.
func (r *ShopRepository) Update(ctx context.Context, s *domain.Shop) error {
	s.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE shops
		SET name = $1, description = $2, category = $3, floor = $4,
		    contact_number = $5, status = $6, updated_at = $7
		WHERE id = $8`

	ct, err := r.pool.Exec(ctx, query,
		s.Name,
		s.Description,
		s.Category,
		s.Floor,
		s.ContactNumber,
		s.Status,
		s.UpdatedAt,
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("update shop: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("shop", s.ID)
	}

	return nil
}

// Delete removes a shop. Offers referencing the shop are intentionally left
// in place.
func (r *ShopRepository) Delete(ctx context.Context, id string) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM shops WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete shop: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("shop", id)
	}

	return nil
}

// isUniqueViolation checks if the error is a PostgreSQL unique constraint violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "23505")
}
