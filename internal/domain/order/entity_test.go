// internal/domain/order/entity_test.go
package order

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/wms-backend/internal/domain/shared"
)

func newOrder(t *testing.T) *Order {
	t.Helper()
	o, err := NewOrder("ORD-001", TypeOutbound, uuid.New(), nil, "CUST-42", nil, "tester")
	require.NoError(t, err)
	return o
}

func newLine(t *testing.T, o *Order, quantity int, price float64, currency string) *Line {
	t.Helper()
	unitPrice, err := shared.NewMoney(decimal.NewFromFloat(price), currency)
	require.NoError(t, err)
	line, err := NewLine(o.ID, uuid.New(), quantity, unitPrice, "tester")
	require.NoError(t, err)
	return line
}

func TestNewOrder(t *testing.T) {
	o := newOrder(t)

	assert.Equal(t, StatusPending, o.Status)
	assert.True(t, o.TotalValue.IsZero())
	assert.Equal(t, DefaultCurrency, o.TotalValue.Currency)
	assert.False(t, o.OrderDate.IsZero())
	assert.Nil(t, o.CompletedDate)
}

func TestNewOrderValidation(t *testing.T) {
	_, err := NewOrder("  ", TypeOutbound, uuid.New(), nil, "", nil, "tester")
	assert.ErrorIs(t, err, shared.ErrInvalidValue)

	_, err = NewOrder("ORD-001", TypeOutbound, uuid.Nil, nil, "", nil, "tester")
	assert.ErrorIs(t, err, shared.ErrInvalidValue)
}

func TestOrderAddLineTotals(t *testing.T) {
	o := newOrder(t)

	require.NoError(t, o.AddLine(newLine(t, o, 10, 2.50, "USD")))
	assert.Equal(t, "25.00 USD", o.TotalValue.String())

	require.NoError(t, o.AddLine(newLine(t, o, 2, 5.00, "USD")))
	assert.Equal(t, "35.00 USD", o.TotalValue.String())
}

func TestOrderAddLineDuplicateProduct(t *testing.T) {
	o := newOrder(t)
	line := newLine(t, o, 1, 1.00, "USD")
	require.NoError(t, o.AddLine(line))

	dup, err := NewLine(o.ID, line.ProductID, 2, line.UnitPrice, "tester")
	require.NoError(t, err)
	assert.ErrorIs(t, o.AddLine(dup), shared.ErrDuplicateKey)
	assert.Len(t, o.Lines, 1)
}

func TestOrderAddLineCurrencyMismatch(t *testing.T) {
	o := newOrder(t)
	require.NoError(t, o.AddLine(newLine(t, o, 1, 10.00, "USD")))

	err := o.AddLine(newLine(t, o, 1, 10.00, "EUR"))
	assert.ErrorIs(t, err, shared.ErrUnitMismatch)

	// rejected line is not attached and the total is unchanged
	assert.Len(t, o.Lines, 1)
	assert.Equal(t, "10.00 USD", o.TotalValue.String())
}

func TestOrderRemoveLine(t *testing.T) {
	o := newOrder(t)
	first := newLine(t, o, 1, 10.00, "USD")
	second := newLine(t, o, 1, 5.00, "USD")
	require.NoError(t, o.AddLine(first))
	require.NoError(t, o.AddLine(second))

	require.NoError(t, o.RemoveLine(first.ID))
	assert.Equal(t, "5.00 USD", o.TotalValue.String())

	// removing the last line resets the total to the default currency
	require.NoError(t, o.RemoveLine(second.ID))
	assert.True(t, o.TotalValue.IsZero())
	assert.Equal(t, DefaultCurrency, o.TotalValue.Currency)

	assert.ErrorIs(t, o.RemoveLine(uuid.New()), shared.ErrNotFound)
}

func TestOrderConfirm(t *testing.T) {
	o := newOrder(t)

	// an order without lines cannot be confirmed
	assert.ErrorIs(t, o.Confirm("tester"), shared.ErrEmptyOrder)
	assert.Equal(t, StatusPending, o.Status)

	require.NoError(t, o.AddLine(newLine(t, o, 1, 1.00, "USD")))
	require.NoError(t, o.Confirm("tester"))
	assert.Equal(t, StatusConfirmed, o.Status)

	assert.ErrorIs(t, o.Confirm("tester"), shared.ErrInvalidTransition)
}

func TestOrderLifecycle(t *testing.T) {
	o := newOrder(t)
	require.NoError(t, o.AddLine(newLine(t, o, 1, 1.00, "USD")))
	o.DrainEvents()

	// skipping a stage is rejected at every step
	assert.ErrorIs(t, o.MarkAsPacked("tester"), shared.ErrInvalidTransition)
	assert.ErrorIs(t, o.MarkAsShipped("tester"), shared.ErrInvalidTransition)
	assert.ErrorIs(t, o.MarkAsDelivered("tester"), shared.ErrInvalidTransition)

	require.NoError(t, o.Confirm("tester"))
	require.NoError(t, o.StartProcessing("tester"))
	require.NoError(t, o.MarkAsPacked("tester"))
	require.NoError(t, o.MarkAsShipped("tester"))
	require.NoError(t, o.MarkAsDelivered("tester"))

	assert.Equal(t, StatusDelivered, o.Status)
	require.NotNil(t, o.CompletedDate)

	// one status event per transition
	events := o.DrainEvents()
	require.Len(t, events, 5)
	last, ok := events[4].(StatusChanged)
	require.True(t, ok)
	assert.Equal(t, StatusShipped, last.From)
	assert.Equal(t, StatusDelivered, last.To)
}

func TestOrderCancel(t *testing.T) {
	o := newOrder(t)
	require.NoError(t, o.AddLine(newLine(t, o, 1, 1.00, "USD")))
	require.NoError(t, o.Confirm("tester"))

	require.NoError(t, o.Cancel("customer request", "tester"))
	assert.Equal(t, StatusCancelled, o.Status)
	assert.Equal(t, "Cancelled: customer request", o.Notes)
}

func TestDeliveredOrderCannotBeCancelled(t *testing.T) {
	o := newOrder(t)
	require.NoError(t, o.AddLine(newLine(t, o, 1, 1.00, "USD")))
	require.NoError(t, o.Confirm("tester"))
	require.NoError(t, o.StartProcessing("tester"))
	require.NoError(t, o.MarkAsPacked("tester"))
	require.NoError(t, o.MarkAsShipped("tester"))
	require.NoError(t, o.MarkAsDelivered("tester"))

	assert.ErrorIs(t, o.Cancel("too late", "tester"), shared.ErrInvalidTransition)
}

func TestLinePickAndShip(t *testing.T) {
	o := newOrder(t)
	line := newLine(t, o, 10, 1.00, "USD")
	require.NoError(t, o.AddLine(line))

	attached, err := o.FindLine(line.ID)
	require.NoError(t, err)

	// shipping is bounded by picked, not ordered
	assert.ErrorIs(t, attached.Ship(1, "tester"), shared.ErrOverShip)

	require.NoError(t, attached.Pick(6, "tester"))
	require.NoError(t, attached.Pick(4, "tester"))
	assert.ErrorIs(t, attached.Pick(1, "tester"), shared.ErrOverPick)

	require.NoError(t, attached.Ship(10, "tester"))
	assert.ErrorIs(t, attached.Ship(1, "tester"), shared.ErrOverShip)

	assert.Equal(t, 10, attached.QuantityPicked)
	assert.Equal(t, 10, attached.QuantityShipped)
}

func TestNewLineValidation(t *testing.T) {
	price, _ := shared.NewMoney(decimal.NewFromInt(1), "USD")

	_, err := NewLine(uuid.Nil, uuid.New(), 1, price, "tester")
	assert.ErrorIs(t, err, shared.ErrInvalidValue)

	_, err = NewLine(uuid.New(), uuid.Nil, 1, price, "tester")
	assert.ErrorIs(t, err, shared.ErrInvalidValue)

	_, err = NewLine(uuid.New(), uuid.New(), 0, price, "tester")
	assert.ErrorIs(t, err, shared.ErrInvalidValue)
}
