// Package event publishes portal domain events to Kafka.
package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ShivenPandit/Super-Mall-Web-App/internal/domain"
	pkgkafka "github.com/ShivenPandit/Super-Mall-Web-App/pkg/kafka"
)

// Kafka topics for portal domain events.
var (
	TopicShopCreated = pkgkafka.Topic("shop", "created")
	TopicShopUpdated = pkgkafka.Topic("shop", "updated")
	TopicShopDeleted = pkgkafka.Topic("shop", "deleted")

	TopicOfferCreated = pkgkafka.Topic("offer", "created")
	TopicOfferUpdated = pkgkafka.Topic("offer", "updated")
	TopicOfferDeleted = pkgkafka.Topic("offer", "deleted")

	TopicCategoryCreated = pkgkafka.Topic("category", "created")
	TopicCategoryUpdated = pkgkafka.Topic("category", "updated")
	TopicCategoryDeleted = pkgkafka.Topic("category", "deleted")

	TopicFloorCreated = pkgkafka.Topic("floor", "created")
	TopicFloorUpdated = pkgkafka.Topic("floor", "updated")
	TopicFloorDeleted = pkgkafka.Topic("floor", "deleted")

	TopicAdminLoggedIn = pkgkafka.Topic("admin", "logged_in")
)

// Source identifier for events originating from the portal.
const SourcePortal = "supermall-portal"

// DeletedData is the payload for every *.deleted event.
type DeletedData struct {
	ID string `json:"id"`
}

// AdminLoggedInData is the payload for an admin.logged_in event.
type AdminLoggedInData struct {
	AdminID string `json:"admin_id"`
	Email   string `json:"email"`
}

// Producer publishes portal domain events to Kafka.
type Producer struct {
	kafka  *pkgkafka.Producer
	logger *slog.Logger
}

// NewProducer creates a new event producer for the portal.
func NewProducer(kafka *pkgkafka.Producer, logger *slog.Logger) *Producer {
	return &Producer{
		kafka:  kafka,
		logger: logger,
	}
}

// publish wraps the payload in the standard event envelope and sends it.
func (p *Producer) publish(ctx context.Context, topic, aggregateID, aggregateType string, data any) error {
	event, err := pkgkafka.NewEvent(topic, aggregateID, aggregateType, SourcePortal, data)
	if err != nil {
		return fmt.Errorf("create %s event: %w", topic, err)
	}

	if err := p.kafka.Publish(ctx, topic, event); err != nil {
		return fmt.Errorf("publish %s event: %w", topic, err)
	}

	p.logger.DebugContext(ctx, "published event",
		slog.String("topic", topic),
		slog.String("aggregate_id", aggregateID),
	)

	return nil
}

// PublishShopCreated publishes a shop.created event.
func (p *Producer) PublishShopCreated(ctx context.Context, shop *domain.Shop) error {
	return p.publish(ctx, TopicShopCreated, shop.ID, "shop", shop)
}

// PublishShopUpdated publishes a shop.updated event.
func (p *Producer) PublishShopUpdated(ctx context.Context, shop *domain.Shop) error {
	return p.publish(ctx, TopicShopUpdated, shop.ID, "shop", shop)
}

// PublishShopDeleted publishes a shop.deleted event.
func (p *Producer) PublishShopDeleted(ctx context.Context, id string) error {
	return p.publish(ctx, TopicShopDeleted, id, "shop", DeletedData{ID: id})
}

// PublishOfferCreated publishes an offer.created event.
func (p *Producer) PublishOfferCreated(ctx context.Context, offer *domain.Offer) error {
	return p.publish(ctx, TopicOfferCreated, offer.ID, "offer", offer)
}

// PublishOfferUpdated publishes an offer.updated event.
func (p *Producer) PublishOfferUpdated(ctx context.Context, offer *domain.Offer) error {
	return p.publish(ctx, TopicOfferUpdated, offer.ID, "offer", offer)
}

// PublishOfferDeleted publishes an offer.deleted event.
func (p *Producer) PublishOfferDeleted(ctx context.Context, id string) error {
	return p.publish(ctx, TopicOfferDeleted, id, "offer", DeletedData{ID: id})
}

// PublishCategoryCreated publishes a category.created event.
func (p *Producer) PublishCategoryCreated(ctx context.Context, category *domain.Category) error {
	return p.publish(ctx, TopicCategoryCreated, category.ID, "category", category)
}

// PublishCategoryUpdated publishes a category.updated event.
func (p *Producer) PublishCategoryUpdated(ctx context.Context, category *domain.Category) error {
	return p.publish(ctx, TopicCategoryUpdated, category.ID, "category", category)
}

// PublishCategoryDeleted publishes a category.deleted event.
func (p *Producer) PublishCategoryDeleted(ctx context.Context, id string) error {
	return p.publish(ctx, TopicCategoryDeleted, id, "category", DeletedData{ID: id})
}

// PublishFloorCreated publishes a floor.created event.
func (p *Producer) PublishFloorCreated(ctx context.Context, floor *domain.Floor) error {
	return p.publish(ctx, TopicFloorCreated, floor.ID, "floor", floor)
}

// PublishFloorUpdated publishes a floor.updated event.
func (p *Producer) PublishFloorUpdated(ctx context.Context, floor *domain.Floor) error {
	return p.publish(ctx, TopicFloorUpdated, floor.ID, "floor", floor)
}

// PublishFloorDeleted publishes a floor.deleted event.
func (p *Producer) PublishFloorDeleted(ctx context.Context, id string) error {
	return p.publish(ctx, TopicFloorDeleted, id, "floor", DeletedData{ID: id})
}

// PublishAdminLoggedIn publishes an admin.logged_in event.
func (p *Producer) PublishAdminLoggedIn(ctx context.Context, adminID, email string) error {
	return p.publish(ctx, TopicAdminLoggedIn, adminID, "admin", AdminLoggedInData{AdminID: adminID, Email: email})
}
