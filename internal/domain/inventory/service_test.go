// internal/domain/inventory/service_test.go
package inventory

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/wms-backend/internal/domain/shared"
)

type fakeRepository struct {
	items map[uuid.UUID]*Inventory
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{items: make(map[uuid.UUID]*Inventory)}
}

func (r *fakeRepository) GetByID(_ context.Context, id uuid.UUID) (*Inventory, error) {
	inv, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("%w: inventory %s", shared.ErrNotFound, id)
	}
	cp := *inv
	return &cp, nil
}

func (r *fakeRepository) GetByPosition(_ context.Context, productID, warehouseID, locationID uuid.UUID) (*Inventory, error) {
	for _, inv := range r.items {
		if inv.ProductID == productID && inv.WarehouseID == warehouseID && inv.LocationID == locationID {
			cp := *inv
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("%w: no inventory at position", shared.ErrNotFound)
}

func (r *fakeRepository) GetByWarehouse(_ context.Context, warehouseID uuid.UUID) ([]Inventory, error) {
	var out []Inventory
	for _, inv := range r.items {
		if inv.WarehouseID == warehouseID {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (r *fakeRepository) GetByProduct(_ context.Context, productID uuid.UUID) ([]Inventory, error) {
	var out []Inventory
	for _, inv := range r.items {
		if inv.ProductID == productID {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (r *fakeRepository) GetLowStockItems(_ context.Context) ([]LowStockItem, error) {
	return nil, nil
}

func (r *fakeRepository) Add(_ context.Context, inv *Inventory) error {
	cp := *inv
	r.items[inv.ID] = &cp
	return nil
}

func (r *fakeRepository) Update(_ context.Context, inv *Inventory) error {
	if _, ok := r.items[inv.ID]; !ok {
		return fmt.Errorf("%w: inventory %s", shared.ErrNotFound, inv.ID)
	}
	cp := *inv
	r.items[inv.ID] = &cp
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

func TestServiceCreateInventory(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	req := &CreateInventoryRequest{
		ProductID:       uuid.New(),
		WarehouseID:     uuid.New(),
		LocationID:      uuid.New(),
		InitialQuantity: 50,
	}

	inv, err := svc.CreateInventory(ctx, req, "tester")
	require.NoError(t, err)
	assert.Equal(t, 50, inv.QuantityOnHand)
	assert.Len(t, repo.items, 1)

	// same position twice
	_, err = svc.CreateInventory(ctx, req, "tester")
	assert.ErrorIs(t, err, shared.ErrDuplicateKey)
	assert.Len(t, repo.items, 1)
}

func TestServiceStockRoundTrip(t *testing.T) {
	svc, _, pub := newTestService()
	ctx := context.Background()

	inv, err := svc.CreateInventory(ctx, &CreateInventoryRequest{
		ProductID:       uuid.New(),
		WarehouseID:     uuid.New(),
		LocationID:      uuid.New(),
		InitialQuantity: 10,
	}, "tester")
	require.NoError(t, err)

	inv, err = svc.IncreaseStock(ctx, inv.ID, &StockChangeRequest{Quantity: 5}, "tester")
	require.NoError(t, err)
	assert.Equal(t, 15, inv.QuantityOnHand)

	inv, err = svc.ReserveStock(ctx, inv.ID, &StockChangeRequest{Quantity: 6}, "tester")
	require.NoError(t, err)
	assert.Equal(t, 9, inv.QuantityAvailable())

	inv, err = svc.ReleaseReservation(ctx, inv.ID, &StockChangeRequest{Quantity: 6}, "tester")
	require.NoError(t, err)
	assert.Equal(t, 0, inv.QuantityReserved)

	inv, err = svc.DecreaseStock(ctx, inv.ID, &StockChangeRequest{Quantity: 15}, "tester")
	require.NoError(t, err)
	assert.Equal(t, 0, inv.QuantityOnHand)

	// one event per mutation
	names := make([]string, 0, len(pub.events))
	for _, e := range pub.events {
		names = append(names, e.EventName())
	}
	assert.Equal(t, []string{
		"stock.increased",
		"stock.reserved",
		"stock.reservation_released",
		"stock.decreased",
	}, names)
}

func TestServiceFailedMutationDoesNotSave(t *testing.T) {
	svc, repo, pub := newTestService()
	ctx := context.Background()

	inv, err := svc.CreateInventory(ctx, &CreateInventoryRequest{
		ProductID:       uuid.New(),
		WarehouseID:     uuid.New(),
		LocationID:      uuid.New(),
		InitialQuantity: 3,
	}, "tester")
	require.NoError(t, err)

	_, err = svc.DecreaseStock(ctx, inv.ID, &StockChangeRequest{Quantity: 10}, "tester")
	assert.ErrorIs(t, err, shared.ErrInsufficientStock)

	stored := repo.items[inv.ID]
	assert.Equal(t, 3, stored.QuantityOnHand)
	assert.Empty(t, pub.events)
}

func TestServiceAdjustStock(t *testing.T) {
	svc, _, pub := newTestService()
	ctx := context.Background()

	inv, err := svc.CreateInventory(ctx, &CreateInventoryRequest{
		ProductID:       uuid.New(),
		WarehouseID:     uuid.New(),
		LocationID:      uuid.New(),
		InitialQuantity: 20,
	}, "tester")
	require.NoError(t, err)

	inv, err = svc.AdjustStock(ctx, inv.ID, &AdjustStockRequest{NewQuantity: 8, Reason: "cycle count"}, "auditor")
	require.NoError(t, err)
	assert.Equal(t, 8, inv.QuantityOnHand)
	assert.Equal(t, "auditor", inv.UpdatedBy)

	require.Len(t, pub.events, 1)
	adjusted, ok := pub.events[0].(StockAdjusted)
	require.True(t, ok)
	assert.Equal(t, 20, adjusted.OldQuantity)
	assert.Equal(t, 8, adjusted.NewQuantity)
}

func TestServiceUnknownInventory(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.IncreaseStock(context.Background(), uuid.New(), &StockChangeRequest{Quantity: 1}, "tester")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
