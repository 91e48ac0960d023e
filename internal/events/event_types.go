package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventCustomerUpdated EventType = "customer_updated"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID         string      `json:"id"`
	Type       EventType   `json:"type"`
	CustomerID string      `json:"customer_id"`
	Actor      string      `json:"actor"`
	Timestamp  time.Time   `json:"timestamp"`
	Payload    interface{} `json:"payload"`
}

// CustomerUpdatedPayload lists the fields whose values changed.
// Values themselves are never carried.
type CustomerUpdatedPayload struct {
	ChangedFields []string `json:"changed_fields"`
}

// NewEvent stamps an event with a fresh id and the current time.
func NewEvent(eventType EventType, customerID, actor string, payload interface{}) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		CustomerID: customerID,
		Actor:      actor,
		Timestamp:  time.Now().UTC(),
		Payload:    payload,
	}
}
