// internal/domain/shared/entity.go
package shared

import (
	"time"

	"github.com/google/uuid"
)

// Entity is the embedded base of every aggregate: identity, audit metadata,
// soft-delete flag and the domain-event buffer. Identity is assigned once at
// construction and never reassigned. Fields are exported for persistence
// mapping; all mutation goes through the owning aggregate's methods.
type Entity struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time  `gorm:"not null" json:"created_at"`
	CreatedBy string     `gorm:"size:100" json:"created_by"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	UpdatedBy string     `gorm:"size:100" json:"updated_by,omitempty"`
	IsDeleted bool       `gorm:"not null;default:false;index" json:"-"`

	events []DomainEvent `gorm:"-" json:"-"`
}

// NewEntity assigns a fresh identity and creation stamp.
func NewEntity(createdBy string) Entity {
	return Entity{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
		CreatedBy: createdBy,
	}
}

// Record appends a domain event to the buffer.
func (e *Entity) Record(event DomainEvent) {
	e.events = append(e.events, event)
}

// DrainEvents returns the buffered events and clears the buffer. A second
// call without intervening mutations yields nil.
func (e *Entity) DrainEvents() []DomainEvent {
	events := e.events
	e.events = nil
	return events
}

// PendingEvents reports how many events are buffered without draining them.
func (e *Entity) PendingEvents() int {
	return len(e.events)
}

// MarkUpdated stamps update metadata.
func (e *Entity) MarkUpdated(actor string) {
	now := time.Now().UTC()
	e.UpdatedAt = &now
	e.UpdatedBy = actor
}

// MarkDeleted sets the soft-delete flag. There is no undelete; repositories
// exclude deleted rows from every query.
func (e *Entity) MarkDeleted() {
	e.IsDeleted = true
}
