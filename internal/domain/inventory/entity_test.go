// internal/domain/inventory/entity_test.go
package inventory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/wms-backend/internal/domain/shared"
)

func newInventory(t *testing.T, onHand int) *Inventory {
	t.Helper()
	inv, err := NewInventory(uuid.New(), uuid.New(), uuid.New(), onHand, "tester")
	require.NoError(t, err)
	inv.DrainEvents()
	return inv
}

func TestNewInventory(t *testing.T) {
	inv := newInventory(t, 100)

	assert.Equal(t, 100, inv.QuantityOnHand)
	assert.Equal(t, 0, inv.QuantityReserved)
	assert.Equal(t, 100, inv.QuantityAvailable())
	assert.False(t, inv.LastStockCheck.IsZero())
}

func TestNewInventoryValidation(t *testing.T) {
	_, err := NewInventory(uuid.Nil, uuid.New(), uuid.New(), 0, "tester")
	assert.ErrorIs(t, err, shared.ErrInvalidValue)

	_, err = NewInventory(uuid.New(), uuid.Nil, uuid.New(), 0, "tester")
	assert.ErrorIs(t, err, shared.ErrInvalidValue)

	_, err = NewInventory(uuid.New(), uuid.New(), uuid.Nil, 0, "tester")
	assert.ErrorIs(t, err, shared.ErrInvalidValue)

	_, err = NewInventory(uuid.New(), uuid.New(), uuid.New(), -1, "tester")
	assert.ErrorIs(t, err, shared.ErrInvalidValue)
}

func TestIncreaseStock(t *testing.T) {
	inv := newInventory(t, 10)

	require.NoError(t, inv.IncreaseStock(5, "tester"))
	assert.Equal(t, 15, inv.QuantityOnHand)

	events := inv.DrainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "stock.increased", events[0].EventName())

	assert.ErrorIs(t, inv.IncreaseStock(0, "tester"), shared.ErrInvalidValue)
	assert.ErrorIs(t, inv.IncreaseStock(-1, "tester"), shared.ErrInvalidValue)
}

func TestDecreaseStock(t *testing.T) {
	inv := newInventory(t, 10)
	require.NoError(t, inv.ReserveStock(4, "tester"))
	inv.DrainEvents()

	// only available stock can be decreased
	err := inv.DecreaseStock(7, "tester")
	assert.ErrorIs(t, err, shared.ErrInsufficientStock)
	assert.Equal(t, 10, inv.QuantityOnHand)
	assert.Equal(t, 0, inv.PendingEvents())

	require.NoError(t, inv.DecreaseStock(6, "tester"))
	assert.Equal(t, 4, inv.QuantityOnHand)
	assert.Equal(t, 0, inv.QuantityAvailable())

	events := inv.DrainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "stock.decreased", events[0].EventName())
}

func TestReserveAndRelease(t *testing.T) {
	inv := newInventory(t, 10)

	require.NoError(t, inv.ReserveStock(6, "tester"))
	assert.Equal(t, 10, inv.QuantityOnHand)
	assert.Equal(t, 4, inv.QuantityAvailable())

	assert.ErrorIs(t, inv.ReserveStock(5, "tester"), shared.ErrInsufficientStock)

	assert.ErrorIs(t, inv.ReleaseReservation(7, "tester"), shared.ErrOverRelease)

	require.NoError(t, inv.ReleaseReservation(6, "tester"))
	assert.Equal(t, 0, inv.QuantityReserved)
	assert.Equal(t, 10, inv.QuantityAvailable())

	events := inv.DrainEvents()
	require.Len(t, events, 2)
	assert.Equal(t, "stock.reserved", events[0].EventName())
	assert.Equal(t, "stock.reservation_released", events[1].EventName())
}

func TestAdjustStock(t *testing.T) {
	inv := newInventory(t, 10)
	before := inv.LastStockCheck

	require.NoError(t, inv.AdjustStock(25, "cycle count", "tester"))
	assert.Equal(t, 25, inv.QuantityOnHand)
	assert.False(t, inv.LastStockCheck.Before(before))

	events := inv.DrainEvents()
	require.Len(t, events, 1)
	adjusted, ok := events[0].(StockAdjusted)
	require.True(t, ok)
	assert.Equal(t, 10, adjusted.OldQuantity)
	assert.Equal(t, 25, adjusted.NewQuantity)
	assert.Equal(t, "cycle count", adjusted.Reason)

	assert.ErrorIs(t, inv.AdjustStock(-1, "bad", "tester"), shared.ErrInvalidValue)
}

func TestAdjustStockBelowReserved(t *testing.T) {
	inv := newInventory(t, 10)
	require.NoError(t, inv.ReserveStock(8, "tester"))

	// a physical count may land below the reserved quantity
	require.NoError(t, inv.AdjustStock(5, "shrinkage", "tester"))
	assert.Equal(t, -3, inv.QuantityAvailable())
	assert.True(t, inv.IsOverReserved())
}
