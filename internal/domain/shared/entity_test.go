// internal/domain/shared/entity_test.go
package shared

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEvent struct {
	BaseEvent
}

func (testEvent) EventName() string { return "test.event" }

func TestNewEntity(t *testing.T) {
	e := NewEntity("tester")

	assert.NotEqual(t, uuid.Nil, e.ID)
	assert.Equal(t, "tester", e.CreatedBy)
	assert.False(t, e.CreatedAt.IsZero())
	assert.Nil(t, e.UpdatedAt)
	assert.False(t, e.IsDeleted)
}

func TestEntityDrainEvents(t *testing.T) {
	e := NewEntity("tester")
	e.Record(testEvent{BaseEvent: NewBaseEvent()})
	e.Record(testEvent{BaseEvent: NewBaseEvent()})

	assert.Equal(t, 2, e.PendingEvents())

	drained := e.DrainEvents()
	require.Len(t, drained, 2)
	assert.Equal(t, "test.event", drained[0].EventName())

	// second drain yields nothing
	assert.Nil(t, e.DrainEvents())
	assert.Equal(t, 0, e.PendingEvents())
}

func TestEntityMarkUpdated(t *testing.T) {
	e := NewEntity("creator")
	e.MarkUpdated("editor")

	require.NotNil(t, e.UpdatedAt)
	assert.Equal(t, "editor", e.UpdatedBy)
}

func TestEntityMarkDeleted(t *testing.T) {
	e := NewEntity("tester")
	e.MarkDeleted()
	assert.True(t, e.IsDeleted)
}

func TestBaseEventIdentity(t *testing.T) {
	a := testEvent{BaseEvent: NewBaseEvent()}
	b := testEvent{BaseEvent: NewBaseEvent()}

	assert.NotEqual(t, a.EventID(), b.EventID())
	assert.False(t, a.OccurredOn().IsZero())
}
