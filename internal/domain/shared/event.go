// internal/domain/shared/event.go
package shared

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is an immutable record of a fact that occurred in the domain.
// Events are buffered on the aggregate that produced them and drained by the
// persistence boundary around commit time.
type DomainEvent interface {
	EventID() uuid.UUID
	EventName() string
	OccurredOn() time.Time
}

// BaseEvent carries the generated identity and timestamp shared by all events.
// Embed it in concrete event types.
type BaseEvent struct {
	ID         uuid.UUID `json:"event_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewBaseEvent stamps a fresh event identity with the current UTC time.
func NewBaseEvent() BaseEvent {
	return BaseEvent{
		ID:         uuid.New(),
		OccurredAt: time.Now().UTC(),
	}
}

func (e BaseEvent) EventID() uuid.UUID    { return e.ID }
func (e BaseEvent) OccurredOn() time.Time { return e.OccurredAt }

// EventPublisher hands drained events to downstream consumers. Delivery is
// fire-and-forget: the domain guarantees events are produced, not delivered.
type EventPublisher interface {
	Publish(events ...DomainEvent)
}
