package event

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is implemented by everything the liability aggregate emits.
type DomainEvent interface {
	EventID() string
	EventType() string
	AggregateID() string
	AggregateType() string
	UserID() string
	OccurredAt() time.Time
}

// BaseEvent carries the envelope fields every domain event shares. Fields
// are exported so events serialise directly with encoding/json.
type BaseEvent struct {
	ID        string    `json:"event_id"`
	Type      string    `json:"event_type"`
	Aggregate string    `json:"aggregate_id"`
	Kind      string    `json:"aggregate_type"`
	User      string    `json:"user_id"`
	At        time.Time `json:"occurred_at"`
}

// NewBaseEvent creates an envelope with a generated id and the current time.
func NewBaseEvent(eventType, aggregateID, aggregateType, userID string) BaseEvent {
	return BaseEvent{
		ID:        uuid.New().String(),
		Type:      eventType,
		Aggregate: aggregateID,
		Kind:      aggregateType,
		User:      userID,
		At:        time.Now().UTC(),
	}
}

func (e BaseEvent) EventID() string       { return e.ID }
func (e BaseEvent) EventType() string     { return e.Type }
func (e BaseEvent) AggregateID() string   { return e.Aggregate }
func (e BaseEvent) AggregateType() string { return e.Kind }
func (e BaseEvent) UserID() string        { return e.User }
func (e BaseEvent) OccurredAt() time.Time { return e.At }
