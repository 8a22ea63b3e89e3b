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

// OfferRepository implements repository.OfferRepository using PostgreSQL.
type OfferRepository struct {
	pool database.PgxPool
}

// NewOfferRepository creates a new PostgreSQL-backed offer repository.
func NewOfferRepository(pool database.PgxPool) *OfferRepository {
	return &OfferRepository{pool: pool}
}

// Create inserts a new offer. The id and timestamps are assigned here when
// the caller left them empty.
func (r *OfferRepository) Create(ctx context.Context, o *domain.Offer) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now
	}
	if o.UpdatedAt.IsZero() {
		o.UpdatedAt = now
	}

	query := `
		INSERT INTO offers (
			id, shop_id, shop_name, title, description, offer_type,
			discount, start_date, end_date, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.pool.Exec(ctx, query,
		o.ID,
		o.ShopID,
		o.ShopName,
		o.Title,
		o.Description,
		o.OfferType,
		o.Discount,
		o.StartDate,
		o.EndDate,
		o.CreatedAt,
		o.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("offer", "id", o.ID)
		}
		return fmt.Errorf("insert offer: %w", err)
	}

	return nil
}

// GetByID retrieves an offer by its ID.
func (r *OfferRepository) GetByID(ctx context.Context, id string) (*domain.Offer, error) {
	query := `
		SELECT id, shop_id, shop_name, title, description, offer_type,
			   discount, start_date, end_date, created_at, updated_at
		FROM offers
		WHERE id = $1`

	var o domain.Offer
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&o.ID,
		&o.ShopID,
		&o.ShopName,
		&o.Title,
		&o.Description,
		&o.OfferType,
		&o.Discount,
		&o.StartDate,
		&o.EndDate,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("scan offer: %w", err)
	}

	return &o, nil
}

// List returns all offers, newest first.
func (r *OfferRepository) List(ctx context.Context) ([]domain.Offer, error) {
	query := `
		SELECT id, shop_id, shop_name, title, description, offer_type,
			   discount, start_date, end_date, created_at, updated_at
		FROM offers
		ORDER BY created_at DESC`

	return r.queryOffers(ctx, query)
}

// ListActive returns offers whose end date is on or after the given ISO
// date, soonest-ending first. Dates are stored as ISO-8601 text so the
// comparison is lexicographic.
func (r *OfferRepository) ListActive(ctx context.Context, date string) ([]domain.Offer, error) {
	query := `
		SELECT id, shop_id, shop_name, title, description, offer_type,
			   discount, start_date, end_date, created_at, updated_at
		FROM offers
		WHERE end_date >= $1
		ORDER BY end_date ASC`

	return r.queryOffers(ctx, query, date)
}

// Update overwrites an existing offer record.
func (r *OfferRepository) Update(ctx context.Context, o *domain.Offer) error {
	o.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE offers
		SET shop_id = $1, shop_name = $2, title = $3, description = $4,
		    offer_type = $5, discount = $6, start_date = $7, end_date = $8,
		    updated_at = $9
		WHERE id = $10`

	ct, err := r.pool.Exec(ctx, query,
		o.ShopID,
		o.ShopName,
		o.Title,
		o.Description,
		o.OfferType,
		o.Discount,
		o.StartDate,
		o.EndDate,
		o.UpdatedAt,
		o.ID,
	)
	if err != nil {
		return fmt.Errorf("update offer: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("offer", o.ID)
	}

	return nil
}

// Delete removes an offer.
func (r *OfferRepository) Delete(ctx context.Context, id string) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM offers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete offer: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("offer", id)
	}

	return nil
}

// queryOffers executes a query expected to return offer rows.
func (r *OfferRepository) queryOffers(ctx context.Context, query string, args ...any) ([]domain.Offer, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}
	defer rows.Close()

	var offers []domain.Offer
	for rows.Next() {
		var o domain.Offer
		if err := rows.Scan(
			&o.ID,
			&o.ShopID,
			&o.ShopName,
			&o.Title,
			&o.Description,
			&o.OfferType,
			&o.Discount,
			&o.StartDate,
			&o.EndDate,
			&o.CreatedAt,
			&o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan offer row: %w", err)
		}
		offers = append(offers, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate offer rows: %w", err)
	}

	if offers == nil {
		offers = []domain.Offer{}
	}

	return offers, nil
}
