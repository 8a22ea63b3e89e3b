package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ShivenPandit/Super-Mall-Web-App/internal/catalog"
	"github.com/ShivenPandit/Super-Mall-Web-App/internal/domain"
	"github.com/ShivenPandit/Super-Mall-Web-App/internal/event"
	"github.com/ShivenPandit/Super-Mall-Web-App/internal/repository"
	"github.com/ShivenPandit/Super-Mall-Web-App/internal/validation"
	apperrors "github.com/ShivenPandit/Super-Mall-Web-App/pkg/errors"
)

// OfferService implements the business logic for offer operations.
type OfferService struct {
	repo     repository.OfferRepository
	shops    repository.ShopRepository
	cache    *catalog.Cache[domain.Offer]
	producer *event.Producer
	logger   *slog.Logger
}

// NewOfferService creates a new offer service.
func NewOfferService(repo repository.OfferRepository, shops repository.ShopRepository, cache *catalog.Cache[domain.Offer], producer *event.Producer, logger *slog.Logger) *OfferService {
	return &OfferService{
		repo:     repo,
		shops:    shops,
		cache:    cache,
		producer: producer,
		logger:   logger,
	}
}

// OfferInput holds the parameters for creating or replacing an offer.
type OfferInput struct {
	ShopID      string
	Title       string
	Description string
	OfferType   string
	Discount    float64
	StartDate   string
	EndDate     string
}

func (in OfferInput) validate() error {
	result := validation.ValidateOffer(validation.OfferInput{
		Title:       in.Title,
		Description: in.Description,
		OfferType:   in.OfferType,
		Discount:    in.Discount,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
	})
	if !result.IsValid {
		return apperrors.ValidationFailed(result.Errors)
	}
	if !domain.IsValidOfferType(in.OfferType) {
		return apperrors.InvalidInput(fmt.Sprintf("invalid offer type %q", in.OfferType))
	}
	return nil
}

// CreateOffer validates the input and creates a new offer. The shop name is
// denormalized onto the offer so listings never need a join.
func (s *OfferService) CreateOffer(ctx context.Context, input OfferInput) (*domain.Offer, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	shop, err := s.shops.GetByID(ctx, input.ShopID)
	if err != nil {
		return nil, fmt.Errorf("get shop for offer: %w", err)
	}

	offer := &domain.Offer{
		ShopID:      shop.ID,
		ShopName:    shop.Name,
		Title:       input.Title,
		Description: input.Description,
		OfferType:   input.OfferType,
		Discount:    input.Discount,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
	}

	if err := s.repo.Create(ctx, offer); err != nil {
		return nil, fmt.Errorf("create offer: %w", err)
	}

	s.refreshCache(ctx)

	if err := s.producer.PublishOfferCreated(ctx, offer); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish offer.created event",
			slog.String("module", "offers"),
			slog.String("offer_id", offer.ID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "offer created",
		slog.String("module", "offers"),
		slog.String("offer_id", offer.ID),
		slog.String("shop_id", offer.ShopID),
		slog.String("title", offer.Title),
	)

	return offer, nil
}

// GetOffer retrieves an offer by its ID.
func (s *OfferService) GetOffer(ctx context.Context, id string) (*domain.Offer, error) {
	offer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get offer by id: %w", err)
	}
	return offer, nil
}

// ListOffers returns all offers, newest first, served from the catalog
// cache once it has loaded.
func (s *OfferService) ListOffers(ctx context.Context) ([]domain.Offer, error) {
	if s.cache.Loaded() {
		return s.cache.Snapshot(), nil
	}

	if err := s.cache.Reload(ctx, s.repo.List); err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}

	return s.cache.Snapshot(), nil
}

// ListActiveOffers returns offers still running today, soonest-ending first.
func (s *OfferService) ListActiveOffers(ctx context.Context) ([]domain.Offer, error) {
	today := time.Now().UTC().Format(domain.DateLayout)
	offers, err := s.repo.ListActive(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("list active offers: %w", err)
	}
	return offers, nil
}

// ListExpiringSoonOffers returns active offers ending within the
// expiring-soon window.
func (s *OfferService) ListExpiringSoonOffers(ctx context.Context) ([]domain.Offer, error) {
	today := time.Now().UTC().Format(domain.DateLayout)
	offers, err := s.repo.ListActive(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("list expiring offers: %w", err)
	}

	expiring := make([]domain.Offer, 0, len(offers))
	for _, o := range offers {
		if o.ExpiringSoon(today) {
			expiring = append(expiring, o)
		}
	}
	return expiring, nil
}

// UpdateOffer validates the input and replaces the offer record.
func (s *OfferService) UpdateOffer(ctx context.Context, id string, input OfferInput) (*domain.Offer, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	offer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get offer for update: %w", err)
	}

	if input.ShopID != offer.ShopID {
		shop, err := s.shops.GetByID(ctx, input.ShopID)
		if err != nil {
			return nil, fmt.Errorf("get shop for offer: %w", err)
		}
		offer.ShopID = shop.ID
		offer.ShopName = shop.Name
	}

	offer.Title = input.Title
	offer.Description = input.Description
	offer.OfferType = input.OfferType
	offer.Discount = input.Discount
	offer.StartDate = input.StartDate
	offer.EndDate = input.EndDate

	if err := s.repo.Update(ctx, offer); err != nil {
		return nil, fmt.Errorf("update offer: %w", err)
	}

	s.refreshCache(ctx)

	if err := s.producer.PublishOfferUpdated(ctx, offer); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish offer.updated event",
			slog.String("module", "offers"),
			slog.String("offer_id", offer.ID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "offer updated",
		slog.String("module", "offers"),
		slog.String("offer_id", offer.ID),
	)

	return offer, nil
}

// DeleteOffer removes an offer.
func (s *OfferService) DeleteOffer(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete offer: %w", err)
	}

	s.refreshCache(ctx)

	if err := s.producer.PublishOfferDeleted(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish offer.deleted event",
			slog.String("module", "offers"),
			slog.String("offer_id", id),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "offer deleted",
		slog.String("module", "offers"),
		slog.String("offer_id", id),
	)

	return nil
}

func (s *OfferService) refreshCache(ctx context.Context) {
	if err := s.cache.Reload(ctx, s.repo.List); err != nil {
		s.logger.WarnContext(ctx, "offer cache reload failed",
			slog.String("module", "offers"),
			slog.String("error", err.Error()),
		)
	}
}
