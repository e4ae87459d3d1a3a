// internal/domain/order/service_test.go
package order

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/wms-backend/internal/domain/shared"
)

type fakeRepository struct {
	orders map[uuid.UUID]*Order
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{orders: make(map[uuid.UUID]*Order)}
}

func (r *fakeRepository) clone(o *Order) *Order {
	cp := *o
	cp.Lines = append([]Line(nil), o.Lines...)
	return &cp
}

func (r *fakeRepository) GetByID(_ context.Context, id uuid.UUID) (*Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, fmt.Errorf("%w: order %s", shared.ErrNotFound, id)
	}
	return r.clone(o), nil
}

func (r *fakeRepository) GetByOrderNumber(_ context.Context, orderNumber string) (*Order, error) {
	for _, o := range r.orders {
		if o.OrderNumber == orderNumber {
			return r.clone(o), nil
		}
	}
	return nil, fmt.Errorf("%w: order %q", shared.ErrNotFound, orderNumber)
}

func (r *fakeRepository) GetAll(_ context.Context) ([]Order, error) {
	var out []Order
	for _, o := range r.orders {
		out = append(out, *r.clone(o))
	}
	return out, nil
}

func (r *fakeRepository) GetByWarehouse(_ context.Context, warehouseID uuid.UUID) ([]Order, error) {
	var out []Order
	for _, o := range r.orders {
		if o.WarehouseID == warehouseID {
			out = append(out, *r.clone(o))
		}
	}
	return out, nil
}

func (r *fakeRepository) GetByStatus(_ context.Context, status Status) ([]Order, error) {
	var out []Order
	for _, o := range r.orders {
		if o.Status == status {
			out = append(out, *r.clone(o))
		}
	}
	return out, nil
}

func (r *fakeRepository) ExistsByOrderNumber(_ context.Context, orderNumber string) (bool, error) {
	for _, o := range r.orders {
		if o.OrderNumber == orderNumber {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepository) Add(_ context.Context, o *Order) error {
	r.orders[o.ID] = r.clone(o)
	return nil
}

func (r *fakeRepository) Update(_ context.Context, o *Order) error {
	if _, ok := r.orders[o.ID]; !ok {
		return fmt.Errorf("%w: order %s", shared.ErrNotFound, o.ID)
	}
	r.orders[o.ID] = r.clone(o)
	return nil
}

func (r *fakeRepository) RemoveLine(_ context.Context, lineID uuid.UUID) error {
	return nil
}

type capturingPublisher struct {
	events []shared.DomainEvent
}

func (p *capturingPublisher) Publish(events ...shared.DomainEvent) {
	p.events = append(p.events, events...)
}

func newTestService() (*Service, *fakeRepository, *capturingPublisher) {
	repo := newFakeRepository()
	pub := &capturingPublisher{}
	return NewService(repo, pub), repo, pub
}

func createRequest(orderNumber string) *CreateOrderRequest {
	return &CreateOrderRequest{
		OrderNumber: orderNumber,
		Type:        TypeOutbound,
		WarehouseID: uuid.New(),
		Lines: []CreateOrderLineRequest{
			{
				ProductID: uuid.New(),
				Quantity:  10,
				UnitPrice: decimal.NewFromFloat(2.50),
				Currency:  "USD",
			},
		},
	}
}

func TestServiceCreateOrder(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	o, err := svc.CreateOrder(ctx, createRequest("ORD-001"), "tester")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, o.Status)
	assert.Equal(t, "25.00 USD", o.TotalValue.String())
	assert.Len(t, repo.orders, 1)

	_, err = svc.CreateOrder(ctx, createRequest("ORD-001"), "tester")
	assert.ErrorIs(t, err, shared.ErrDuplicateKey)
}

func TestServiceLifecycle(t *testing.T) {
	svc, _, pub := newTestService()
	ctx := context.Background()

	o, err := svc.CreateOrder(ctx, createRequest("ORD-002"), "tester")
	require.NoError(t, err)

	o, err = svc.Confirm(ctx, o.ID, "tester")
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, o.Status)

	o, err = svc.StartProcessing(ctx, o.ID, "tester")
	require.NoError(t, err)
	o, err = svc.MarkAsPacked(ctx, o.ID, "tester")
	require.NoError(t, err)
	o, err = svc.MarkAsShipped(ctx, o.ID, "tester")
	require.NoError(t, err)
	o, err = svc.MarkAsDelivered(ctx, o.ID, "tester")
	require.NoError(t, err)

	assert.Equal(t, StatusDelivered, o.Status)
	require.NotNil(t, o.CompletedDate)

	require.Len(t, pub.events, 5)
	for _, e := range pub.events {
		assert.Equal(t, "order.status_changed", e.EventName())
	}
}

func TestServiceInvalidTransitionDoesNotSave(t *testing.T) {
	svc, repo, pub := newTestService()
	ctx := context.Background()

	o, err := svc.CreateOrder(ctx, createRequest("ORD-003"), "tester")
	require.NoError(t, err)

	_, err = svc.MarkAsShipped(ctx, o.ID, "tester")
	assert.ErrorIs(t, err, shared.ErrInvalidTransition)

	assert.Equal(t, StatusPending, repo.orders[o.ID].Status)
	assert.Empty(t, pub.events)
}

func TestServiceAddAndRemoveLine(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	o, err := svc.CreateOrder(ctx, createRequest("ORD-004"), "tester")
	require.NoError(t, err)

	o, err = svc.AddLine(ctx, o.ID, &AddLineRequest{
		ProductID: uuid.New(),
		Quantity:  2,
		UnitPrice: decimal.NewFromFloat(5.00),
		Currency:  "USD",
	}, "tester")
	require.NoError(t, err)
	assert.Len(t, o.Lines, 2)
	assert.Equal(t, "35.00 USD", o.TotalValue.String())

	o, err = svc.RemoveLine(ctx, o.ID, o.Lines[1].ID, "tester")
	require.NoError(t, err)
	assert.Len(t, o.Lines, 1)
	assert.Equal(t, "25.00 USD", o.TotalValue.String())
}

func TestServicePickAndShipLine(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	o, err := svc.CreateOrder(ctx, createRequest("ORD-005"), "tester")
	require.NoError(t, err)
	lineID := o.Lines[0].ID

	o, err = svc.PickLine(ctx, o.ID, lineID, &LineProgressRequest{Quantity: 4}, "picker")
	require.NoError(t, err)
	assert.Equal(t, 4, o.Lines[0].QuantityPicked)

	_, err = svc.ShipLine(ctx, o.ID, lineID, &LineProgressRequest{Quantity: 5}, "shipper")
	assert.ErrorIs(t, err, shared.ErrOverShip)

	o, err = svc.ShipLine(ctx, o.ID, lineID, &LineProgressRequest{Quantity: 4}, "shipper")
	require.NoError(t, err)
	assert.Equal(t, 4, o.Lines[0].QuantityShipped)
}

func TestServiceCancel(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	o, err := svc.CreateOrder(ctx, createRequest("ORD-006"), "tester")
	require.NoError(t, err)

	o, err = svc.Cancel(ctx, o.ID, &CancelRequest{Reason: "customer request"}, "tester")
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, o.Status)
	assert.Equal(t, "Cancelled: customer request", o.Notes)
}

func TestServiceGetOrders(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	first, err := svc.CreateOrder(ctx, createRequest("ORD-007"), "tester")
	require.NoError(t, err)
	_, err = svc.CreateOrder(ctx, createRequest("ORD-008"), "tester")
	require.NoError(t, err)

	all, err := svc.GetOrders(ctx, uuid.Nil, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byWarehouse, err := svc.GetOrders(ctx, first.WarehouseID, "")
	require.NoError(t, err)
	require.Len(t, byWarehouse, 1)
	assert.Equal(t, "ORD-007", byWarehouse[0].OrderNumber)

	pending, err := svc.GetOrders(ctx, uuid.Nil, StatusPending)
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	byNumber, err := svc.GetOrderByNumber(ctx, "ORD-008")
	require.NoError(t, err)
	assert.Equal(t, "ORD-008", byNumber.OrderNumber)

	_, err = svc.GetOrderByNumber(ctx, "ORD-404")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
