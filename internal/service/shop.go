// Package service implements the business logic for the portal: validation,
// persistence, catalog cache refresh, and domain event publishing.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ShivenPandit/Super-Mall-Web-App/internal/catalog"
	"github.com/ShivenPandit/Super-Mall-Web-App/internal/domain"
	"github.com/ShivenPandit/Super-Mall-Web-App/internal/event"
	"github.com/ShivenPandit/Super-Mall-Web-App/internal/repository"
	"github.com/ShivenPandit/Super-Mall-Web-App/internal/validation"
	apperrors "github.com/ShivenPandit/Super-Mall-Web-App/pkg/errors"
)

// ShopService implements the business logic for shop operations.
type ShopService struct {
	repo     repository.ShopRepository
	cache    *catalog.Cache[domain.Shop]
	producer *event.Producer
	logger   *slog.Logger
}

// NewShopService creates a new shop service.
func NewShopService(repo repository.ShopRepository, cache *catalog.Cache[domain.Shop], producer *event.Producer, logger *slog.Logger) *ShopService {
	return &ShopService{
		repo:     repo,
		cache:    cache,
		producer: producer,
		logger:   logger,
	}
}

// ShopInput holds the parameters for creating or replacing a shop.
type ShopInput struct {
	Name          string
	Description   string
	Category      string
	Floor         string
	ContactNumber string
	Status        string
}

func (in ShopInput) validate() error {
	result := validation.ValidateShop(validation.ShopInput{
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Floor:       in.Floor,
		Contact:     in.ContactNumber,
	})
	if !result.IsValid {
		return apperrors.ValidationFailed(result.Errors)
	}
	if in.Status != "" && !domain.IsValidShopStatus(in.Status) {
		return apperrors.InvalidInput(fmt.Sprintf("invalid shop status %q", in.Status))
	}
	return nil
}

// CreateShop validates the input and creates a new shop.
func (s *ShopService) CreateShop(ctx context.Context, input ShopInput) (*domain.Shop, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = domain.ShopStatusActive
	}

	shop := &domain.Shop{
		Name:          input.Name,
		Description:   input.Description,
		Category:      input.Category,
		Floor:         input.Floor,
		ContactNumber: input.ContactNumber,
		Status:        status,
	}

	if err := s.repo.Create(ctx, shop); err != nil {
		return nil, fmt.Errorf("create shop: %w", err)
	}

	s.refreshCache(ctx)

	if err := s.producer.PublishShopCreated(ctx, shop); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish shop.created event",
			slog.String("module", "shops"),
			slog.String("shop_id", shop.ID),
			slog.String("error", err.Error()),
		)
		// Do not fail the operation if event publishing fails.
	}

	s.logger.InfoContext(ctx, "shop created",
		slog.String("module", "shops"),
		slog.String("shop_id", shop.ID),
		slog.String("name", shop.Name),
	)

	return shop, nil
}

// GetShop retrieves a shop by its ID.
func (s *ShopService) GetShop(ctx context.Context, id string) (*domain.Shop, error) {
	shop, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get shop by id: %w", err)
	}
	return shop, nil
}

// ListShops returns all shops, newest first. Reads are served from the
// catalog cache once it has loaded.
func (s *ShopService) ListShops(ctx context.Context) ([]domain.Shop, error) {
	if s.cache.Loaded() {
		return s.cache.Snapshot(), nil
	}

	if err := s.cache.Reload(ctx, s.repo.List); err != nil {
		return nil, fmt.Errorf("list shops: %w", err)
	}

	return s.cache.Snapshot(), nil
}

// UpdateShop validates the input and replaces the shop record.
func (s *ShopService) UpdateShop(ctx context.Context, id string, input ShopInput) (*domain.Shop, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	shop, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get shop for update: %w", err)
	}

	shop.Name = input.Name
	shop.Description = input.Description
	shop.Category = input.Category
	shop.Floor = input.Floor
	shop.ContactNumber = input.ContactNumber
	if input.Status != "" {
		shop.Status = input.Status
	}

	if err := s.repo.Update(ctx, shop); err != nil {
		return nil, fmt.Errorf("update shop: %w", err)
	}

	s.refreshCache(ctx)

	if err := s.producer.PublishShopUpdated(ctx, shop); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish shop.updated event",
			slog.String("module", "shops"),
			slog.String("shop_id", shop.ID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "shop updated",
		slog.String("module", "shops"),
		slog.String("shop_id", shop.ID),
	)

	return shop, nil
}

// DeleteShop removes a shop. Offers that reference it are left untouched.
func (s *ShopService) DeleteShop(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete shop: %w", err)
	}

	s.refreshCache(ctx)

	if err := s.producer.PublishShopDeleted(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish shop.deleted event",
			slog.String("module", "shops"),
			slog.String("shop_id", id),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "shop deleted",
		slog.String("module", "shops"),
		slog.String("shop_id", id),
	)

	return nil
}

// refreshCache reloads the shop cache after a write. A failed reload keeps
// the previous snapshot, so it is logged rather than returned.
func (s *ShopService) refreshCache(ctx context.Context) {
	if err := s.cache.Reload(ctx, s.repo.List); err != nil {
		s.logger.WarnContext(ctx, "shop cache reload failed",
			slog.String("module", "shops"),
			slog.String("error", err.Error()),
		)
	}
}
