package events

import (
	"context"

	"roomly/pkg/kafka"
	"roomly/pkg/logger"
	"roomly/pkg/model"
)

const (
	BookingCreated = "booking.created"
	BookingUpdated = "booking.updated"
	BookingDeleted = "booking.deleted"
)

// Publisher emits booking lifecycle events. Publishing is best-effort: a
// broker failure is logged and never fails the request that triggered it.
// A nil producer disables publishing entirely.
type Publisher struct {
	producer *kafka.Producer
	log      *logger.Logger
}

func NewPublisher(producer *kafka.Producer, log *logger.Logger) *Publisher {
	return &Publisher{
		producer: producer,
		log:      log,
	}
}

func (p *Publisher) Created(ctx context.Context, booking *model.Booking) {
	p.publish(ctx, BookingCreated, booking.ID, booking)
}

func (p *Publisher) Updated(ctx context.Context, booking *model.Booking) {
	p.publish(ctx, BookingUpdated, booking.ID, booking)
}

func (p *Publisher) Deleted(ctx context.Context, id string) {
	p.publish(ctx, BookingDeleted, id, map[string]string{"id": id})
}

func (p *Publisher) publish(ctx context.Context, eventType, entityID string, payload any) {
	if p.producer == nil {
		return
	}

	msg, err := kafka.NewEventMessage(eventType, entityID, payload)
	if err != nil {
		p.log.Error("Failed to build booking event", "event_type", eventType, "id", entityID, "error", err)
		return
	}

	if err := p.producer.Publish(ctx, msg); err != nil {
		p.log.Warn("Failed to publish booking event", "event_type", eventType, "id", entityID, "error", err)
		return
	}

	p.log.Debug("Booking event published", "event_type", eventType, "id", entityID)
}

func (p *Publisher) Close() {
	if p.producer == nil {
		return
	}
	if err := p.producer.Close(); err != nil {
		p.log.Error("Failed to close event producer", "error", err)
	}
}
