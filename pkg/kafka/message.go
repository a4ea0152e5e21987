package kafka

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Message is what gets published: a partition key, a JSON payload and a
// small set of well-known headers.
type Message struct {
	Key       string
	Value     []byte
	Headers   map[string]string
	Timestamp time.Time
}

const (
	HeaderEventID       = "event-id"
	HeaderEventType     = "event-type"
	HeaderSource        = "source"
	HeaderSchemaVersion = "schema-version"
	HeaderTimestamp     = "timestamp"
)

// NewEventMessage builds a message keyed by entity ID so all events for one
// booking land on the same partition, preserving their order.
func NewEventMessage(eventType, entityID string, payload any) (Message, error) {
	value, err := json.Marshal(payload)
	if err != nil {
		return Message{}, fmt.Errorf("failed to encode event payload: %w", err)
	}

	now := time.Now().UTC()
	return Message{
		Key:   entityID,
		Value: value,
		Headers: map[string]string{
			HeaderEventID:       uuid.NewString(),
			HeaderEventType:     eventType,
			HeaderSource:        "roomly",
			HeaderSchemaVersion: "1",
			HeaderTimestamp:     now.Format(time.RFC3339),
		},
		Timestamp: now,
	}, nil
}
