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

// AdminRepository implements repository.AdminRepository using PostgreSQL.
type AdminRepository struct {
	pool database.PgxPool
}

// NewAdminRepository creates a new PostgreSQL-backed admin repository.
func NewAdminRepository(pool database.PgxPool) *AdminRepository {
	return &AdminRepository{pool: pool}
}

// Create inserts a new administrator account. Emails are unique.
func (r *AdminRepository) Create(ctx context.Context, a *domain.Admin) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	query := `
		INSERT INTO admins (id, email, name, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query,
		a.ID,
		a.Email,
		a.Name,
		a.PasswordHash,
		a.CreatedAt,
		a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("admin", "email", a.Email)
		}
		return fmt.Errorf("insert admin: %w", err)
	}

	return nil
}

// GetByID retrieves an admin by its ID.
func (r *AdminRepository) GetByID(ctx context.Context, id string) (*domain.Admin, error) {
	query := `
		SELECT id, email, name, password_hash, created_at, updated_at
		FROM admins
		WHERE id = $1`

	return r.scanAdmin(ctx, query, id)
}

// GetByEmail retrieves an admin by email address.
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	query := `
		SELECT id, email, name, password_hash, created_at, updated_at
		FROM admins
		WHERE email = $1`

	return r.scanAdmin(ctx, query, email)
}

// UpdatePassword replaces the stored password hash.
func (r *AdminRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	query := `
		UPDATE admins
		SET password_hash = $1, updated_at = $2
		WHERE id = $3`

	ct, err := r.pool.Exec(ctx, query, passwordHash, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("update admin password: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("admin", id)
	}

	return nil
}

// Count returns the number of administrator accounts.
func (r *AdminRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM admins`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count admins: %w", err)
	}
	return count, nil
}

// scanAdmin executes a query expected to return a single admin row.
func (r *AdminRepository) scanAdmin(ctx context.Context, query string, args ...any) (*domain.Admin, error) {
	var a domain.Admin
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&a.ID,
		&a.Email,
		&a.Name,
		&a.PasswordHash,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("scan admin: %w", err)
	}

	return &a, nil
}
