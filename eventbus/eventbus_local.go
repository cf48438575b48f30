package eventbus

import (
	"context"
	"sync"

	"blog-backend/internal/logger"
)

// LogEventBus only logs events. It is used when no Kafka brokers are configured.
type LogEventBus struct{}

func NewLogEventBus() *LogEventBus { return &LogEventBus{} }

func (LogEventBus) Publish(ctx context.Context, topic string, event Event) error {
	logger.DebugWithFields("event published", logger.Fields{
		"topic":      topic,
		"event_id":   event.ID,
		"event_type": event.Type,
	})
	return nil
}

func (LogEventBus) Close() {}

// MemoryEventBus keeps published events in memory.
type MemoryEventBus struct {
	mu     sync.Mutex
	events map[string][]Event
}

func NewMemoryEventBus() *MemoryEventBus {
	return &MemoryEventBus{events: make(map[string][]Event)}
}

func (m *MemoryEventBus) Publish(ctx context.Context, topic string, event Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events[topic] = append(m.events[topic], event)
	return nil
}

// Events returns a copy of what was published to topic, oldest first.
func (m *MemoryEventBus) Events(topic string) []Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Event(nil), m.events[topic]...)
}

func (m *MemoryEventBus) Close() {}
