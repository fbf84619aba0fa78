package events

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventEnvelope represents the shared envelope for v1 contracts.
type EventEnvelope struct {
	EventName     string          `json:"eventName"`
	EventVersion  int             `json:"eventVersion"`
	EventID       string          `json:"eventId"`
	CorrelationID string          `json:"correlationId,omitempty"`
	CausationID   string          `json:"causationId,omitempty"`
	Producer      string          `json:"producer"`
	PartitionKey  string          `json:"partitionKey"`
	Sequence      int64           `json:"sequence,omitempty"`
	OccurredAt    time.Time       `json:"occurredAt"`
	Schema        string          `json:"schema"`
	Payload       json.RawMessage `json:"payload"`
}

func newEnvelope(ev Event, producer string, seq int64, correlationID string) (EventEnvelope, error) {
	payload, err := json.Marshal(ev)
	if err != nil {
		return EventEnvelope{}, fmt.Errorf("marshal %s: %w", ev.Name(), err)
	}
	return EventEnvelope{
		EventName:     ev.Name(),
		EventVersion:  1,
		EventID:       ev.ID(),
		CorrelationID: correlationID,
		Producer:      producer,
		PartitionKey:  ev.AggregateID(),
		Sequence:      seq,
		OccurredAt:    ev.OccurredAt(),
		Schema:        schemaFor(ev.Name()),
		Payload:       payload,
	}, nil
}

func schemaFor(eventName string) string {
	return "contracts/events/" + eventName + "/v1.schema.json"
}
