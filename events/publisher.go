package events

import (
	"context"

	"blog-backend/eventbus"
	"blog-backend/internal/logger"
)

// Publisher writes domain events to one topic of an event bus. Failures are
// logged and never surfaced: the write that produced the event has already
// been committed.
type Publisher struct {
	bus   eventbus.EventBus
	topic eventbus.Topic
}

func NewPublisher(bus eventbus.EventBus, topic eventbus.Topic) *Publisher {
	return &Publisher{bus: bus, topic: topic}
}

// Publish hands evt to the bus without waiting for delivery. It is a no-op on
// a nil Publisher.
func (p *Publisher) Publish(ctx context.Context, evt Event) {
	if p == nil || p.bus == nil {
		return
	}

	msg, err := eventbus.NewJSONEvent(evt.GetID(), string(evt.GetType()), evt)
	if err != nil {
		logger.ErrorWithFields("encode event", logger.Fields{"event_type": evt.GetType(), "error": err.Error()})
		return
	}

	if err := p.bus.Publish(ctx, p.topic.Base(), msg); err != nil {
		logger.ErrorWithFields("publish event", logger.Fields{
			"topic":      p.topic.Base(),
			"event_id":   msg.ID,
			"event_type": msg.Type,
			"error":      err.Error(),
		})
	}
}
