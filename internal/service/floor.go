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

// FloorService implements the business logic for floor operations.
type FloorService struct {
	repo     repository.FloorRepository
	cache    *catalog.Cache[domain.Floor]
	producer *event.Producer
	logger   *slog.Logger
}

// NewFloorService creates a new floor service.
func NewFloorService(repo repository.FloorRepository, cache *catalog.Cache[domain.Floor], producer *event.Producer, logger *slog.Logger) *FloorService {
	return &FloorService{
		repo:     repo,
		cache:    cache,
		producer: producer,
		logger:   logger,
	}
}

// FloorInput holds the parameters for creating or replacing a floor.
// Level is a pointer so that level zero (ground) survives decoding.
type FloorInput struct {
	Name        string
	Code        string
	Level       *int
	Description string
}

func (in FloorInput) validate() error {
	result := validation.ValidateFloor(validation.FloorInput{
		Name:  in.Name,
		Code:  in.Code,
		Level: in.Level,
	})
	if !result.IsValid {
		return apperrors.ValidationFailed(result.Errors)
	}
	return nil
}

// CreateFloor validates the input and creates a new floor.
func (s *FloorService) CreateFloor(ctx context.Context, input FloorInput) (*domain.Floor, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	floor := &domain.Floor{
		Name:        input.Name,
		Code:        input.Code,
		Level:       *input.Level,
		Description: input.Description,
	}

	if err := s.repo.Create(ctx, floor); err != nil {
		return nil, fmt.Errorf("create floor: %w", err)
	}

	s.refreshCache(ctx)

	if err := s.producer.PublishFloorCreated(ctx, floor); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish floor.created event",
			slog.String("module", "floors"),
			slog.String("floor_id", floor.ID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "floor created",
		slog.String("module", "floors"),
		slog.String("floor_id", floor.ID),
		slog.String("code", floor.Code),
	)

	return floor, nil
}

// GetFloor retrieves a floor by its ID.
func (s *FloorService) GetFloor(ctx context.Context, id string) (*domain.Floor, error) {
	floor, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get floor by id: %w", err)
	}
	return floor, nil
}

// ListFloors returns all floors ordered by level, lowest first.
func (s *FloorService) ListFloors(ctx context.Context) ([]domain.Floor, error) {
	if s.cache.Loaded() {
		return s.cache.Snapshot(), nil
	}

	if err := s.cache.Reload(ctx, s.repo.List); err != nil {
		return nil, fmt.Errorf("list floors: %w", err)
	}

	return s.cache.Snapshot(), nil
}

// UpdateFloor validates the input and replaces the floor record.
func (s *FloorService) UpdateFloor(ctx context.Context, id string, input FloorInput) (*domain.Floor, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	floor, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get floor for update: %w", err)
	}

	floor.Name = input.Name
	floor.Code = input.Code
	floor.Level = *input.Level
	floor.Description = input.Description

	if err := s.repo.Update(ctx, floor); err != nil {
		return nil, fmt.Errorf("update floor: %w", err)
	}

	s.refreshCache(ctx)

	if err := s.producer.PublishFloorUpdated(ctx, floor); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish floor.updated event",
			slog.String("module", "floors"),
			slog.String("floor_id", floor.ID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "floor updated",
		slog.String("module", "floors"),
		slog.String("floor_id", floor.ID),
	)

	return floor, nil
}

// DeleteFloor removes a floor. Shops keep their floor code.
func (s *FloorService) DeleteFloor(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete floor: %w", err)
	}

	s.refreshCache(ctx)

	if err := s.producer.PublishFloorDeleted(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish floor.deleted event",
			slog.String("module", "floors"),
			slog.String("floor_id", id),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "floor deleted",
		slog.String("module", "floors"),
		slog.String("floor_id", id),
	)

	return nil
}

func (s *FloorService) refreshCache(ctx context.Context) {
	if err := s.cache.Reload(ctx, s.repo.List); err != nil {
		s.logger.WarnContext(ctx, "floor cache reload failed",
			slog.String("module", "floors"),
			slog.String("error", err.Error()),
		)
	}
}
