// Package repository defines the persistence interfaces for the portal's
// collections. Implementations assign ids and server timestamps at insert;
// updates are full-record overwrites.
package repository

import (
	"context"

	"github.com/ShivenPandit/Super-Mall-Web-App/internal/domain"
)

// ShopRepository persists shop records.
type ShopRepository interface {
	Create(ctx context.Context, shop *domain.Shop) error
	GetByID(ctx context.Context, id string) (*domain.Shop, error)
	// List returns all shops, newest first.
	List(ctx context.Context) ([]domain.Shop, error)
	Update(ctx context.Context, shop *domain.Shop) error
	// Delete removes the shop only. Offers referencing it are left in
	// place; the reference is soft by design.
	Delete(ctx context.Context, id string) error
}

// CategoryRepository persists category records.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	// List returns all categories in name order.
	List(ctx context.Context) ([]domain.Category, error)
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, id string) error
}

// FloorRepository persists floor records.
type FloorRepository interface {
	Create(ctx context.Context, floor *domain.Floor) error
	GetByID(ctx context.Context, id string) (*domain.Floor, error)
	// List returns all floors ordered by level, lowest first.
	List(ctx context.Context) ([]domain.Floor, error)
	Update(ctx context.Context, floor *domain.Floor) error
	Delete(ctx context.Context, id string) error
}

// OfferRepository persists offer records.
type OfferRepository interface {
	Create(ctx context.Context, offer *domain.Offer) error
	GetByID(ctx context.Context, id string) (*domain.Offer, error)
	// List returns all offers, newest first.
	List(ctx context.Context) ([]domain.Offer, error)
	// ListActive returns offers whose end date is on or after the given
	// ISO date, ordered by end date ascending.
	ListActive(ctx context.Context, date string) ([]domain.Offer, error)
	Update(ctx context.Context, offer *domain.Offer) error
	Delete(ctx context.Context, id string) error
}

// AdminRepository persists administrator accounts.
type AdminRepository interface {
	Create(ctx context.Context, admin *domain.Admin) error
	GetByID(ctx context.Context, id string) (*domain.Admin, error)
	GetByEmail(ctx context.Context, email string) (*domain.Admin, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	Count(ctx context.Context) (int, error)
}
