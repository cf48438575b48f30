package eventbus

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewJSONEvent encodes payload as the event body. An empty id gets a fresh UUID.
func NewJSONEvent(id, eventType string, payload any) (Event, error) {
	if id == "" {
		id = uuid.NewString()
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("marshal payload: %w", err)
	}
	return Event{
		ID:        id,
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Payload:   b,
	}, nil
}
