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

// CategoryService implements the business logic for category operations.
type CategoryService struct {
	repo     repository.CategoryRepository
	cache    *catalog.Cache[domain.Category]
	producer *event.Producer
	logger   *slog.Logger
}

// NewCategoryService creates a new category service.
func NewCategoryService(repo repository.CategoryRepository, cache *catalog.Cache[domain.Category], producer *event.Producer, logger *slog.Logger) *CategoryService {
	return &CategoryService{
		repo:     repo,
		cache:    cache,
		producer: producer,
		logger:   logger,
	}
}

// CategoryInput holds the parameters for creating or replacing a category.
type CategoryInput struct {
	Name        string
	Description string
	Icon        string
}

func (in CategoryInput) validate() error {
	result := validation.ValidateCategory(validation.CategoryInput{
		Name:        in.Name,
		Description: in.Description,
	})
	if !result.IsValid {
		return apperrors.ValidationFailed(result.Errors)
	}
	return nil
}

// CreateCategory validates the input and creates a new category.
func (s *CategoryService) CreateCategory(ctx context.Context, input CategoryInput) (*domain.Category, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	category := &domain.Category{
		Name:        input.Name,
		Description: input.Description,
		Icon:        input.Icon,
	}

	if err := s.repo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	s.refreshCache(ctx)

	if err := s.producer.PublishCategoryCreated(ctx, category); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish category.created event",
			slog.String("module", "categories"),
			slog.String("category_id", category.ID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "category created",
		slog.String("module", "categories"),
		slog.String("category_id", category.ID),
		slog.String("name", category.Name),
	)

	return category, nil
}

// GetCategory retrieves a category by its ID.
func (s *CategoryService) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category by id: %w", err)
	}
	return category, nil
}

// ListCategories returns all categories in name order.
func (s *CategoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	if s.cache.Loaded() {
		return s.cache.Snapshot(), nil
	}

	if err := s.cache.Reload(ctx, s.repo.List); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	return s.cache.Snapshot(), nil
}

// UpdateCategory validates the input and replaces the category record.
func (s *CategoryService) UpdateCategory(ctx context.Context, id string, input CategoryInput) (*domain.Category, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category for update: %w", err)
	}

	category.Name = input.Name
	category.Description = input.Description
	category.Icon = input.Icon

	if err := s.repo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}

	s.refreshCache(ctx)

	if err := s.producer.PublishCategoryUpdated(ctx, category); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish category.updated event",
			slog.String("module", "categories"),
			slog.String("category_id", category.ID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "category updated",
		slog.String("module", "categories"),
		slog.String("category_id", category.ID),
	)

	return category, nil
}

// DeleteCategory removes a category. Shops keep their category string.
func (s *CategoryService) DeleteCategory(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	s.refreshCache(ctx)

	if err := s.producer.PublishCategoryDeleted(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish category.deleted event",
			slog.String("module", "categories"),
			slog.String("category_id", id),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "category deleted",
		slog.String("module", "categories"),
		slog.String("category_id", id),
	)

	return nil
}

func (s *CategoryService) refreshCache(ctx context.Context) {
	if err := s.cache.Reload(ctx, s.repo.List); err != nil {
		s.logger.WarnContext(ctx, "category cache reload failed",
			slog.String("module", "categories"),
			slog.String("error", err.Error()),
		)
	}
}
