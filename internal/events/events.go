// Package events defines the booking lifecycle events published to Kafka.
package events

import (
	"context"
	"time"

	"github.com/shareit-platform/service-sharing/internal/kafka"
	"go.uber.org/zap"
)

const (
	// TopicBookingEvents carries all booking lifecycle events.
	TopicBookingEvents = "booking.events"

	// BookingCreated is emitted when a booking is persisted in WAITING state.
	BookingCreated = "sharing.booking.created"
	// BookingDecided is emitted when the owner approves or rejects.
	BookingDecided = "sharing.booking.decided"

	eventSource = "service-sharing"
)

// BookingCreatedEvent is the payload for BookingCreated.
type BookingCreatedEvent struct {
	BookingID  int64     `json:"booking_id"`
	ItemID     int64     `json:"item_id"`
	OwnerID    int64     `json:"owner_id"`
	BookerID   int64     `json:"booker_id"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	OccurredAt time.Time `json:"occurred_at"`
}

// BookingDecidedEvent is the payload for BookingDecided.
type BookingDecidedEvent struct {
	BookingID  int64     `json:"booking_id"`
	ItemID     int64     `json:"item_id"`
	OwnerID    int64     `json:"owner_id"`
	BookerID   int64     `json:"booker_id"`
	Approved   bool      `json:"approved"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher emits booking lifecycle events. Publishing is best-effort:
// failures are logged, never propagated to the request path.
type Publisher interface {
	BookingCreated(ctx context.Context, evt BookingCreatedEvent)
	BookingDecided(ctx context.Context, evt BookingDecidedEvent)
}

// KafkaPublisher publishes events through the shared Kafka producer.
type KafkaPublisher struct {
	producer *kafka.Producer
	logger   *zap.Logger
}

// NewKafkaPublisher creates a publisher on the given producer.
func NewKafkaPublisher(producer *kafka.Producer, logger *zap.Logger) *KafkaPublisher {
	return &KafkaPublisher{producer: producer, logger: logger}
}

// BookingCreated publishes a BookingCreated event.
func (p *KafkaPublisher) BookingCreated(ctx context.Context, evt BookingCreatedEvent) {
	p.publish(ctx, BookingCreated, evt)
}

// BookingDecided publishes a BookingDecided event.
func (p *KafkaPublisher) BookingDecided(ctx context.Context, evt BookingDecidedEvent) {
	p.publish(ctx, BookingDecided, evt)
}

func (p *KafkaPublisher) publish(ctx context.Context, eventType string, data any) {
	cloudEvent, err := kafka.NewCloudEvent(eventSource, eventType, data)
	if err != nil {
		p.logger.Error("failed to create cloud event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return
	}

	if err := p.producer.PublishEvent(ctx, TopicBookingEvents, cloudEvent); err != nil {
		p.logger.Error("failed to publish event",
			zap.String("topic", TopicBookingEvents),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}

// NopPublisher drops all events. Used where no broker is configured.
type NopPublisher struct{}

func (NopPublisher) BookingCreated(context.Context, BookingCreatedEvent) {}
func (NopPublisher) BookingDecided(context.Context, BookingDecidedEvent) {}
