package eventbus

import (
	"context"
	"encoding/json"
	"time"
)

// Topic names the Kafka topic domain events are written to.
type Topic struct {
	base string
}

func NewTopic(base string) Topic {
	return Topic{base: base}
}

func (t Topic) Base() string {
	return t.base
}

// Event is the envelope written to the bus. Payload holds the JSON encoded
// domain event; Type is copied out so consumers can route without decoding it.
type Event struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Payload   json.RawMessage `json:"payload"`
}

// EventBus publishes events. Implementations must be safe for concurrent use.
type EventBus interface {
	Publish(ctx context.Context, topic string, event Event) error
	Close()
}
