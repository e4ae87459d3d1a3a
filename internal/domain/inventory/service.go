// internal/domain/inventory/service.go
package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/your-org/wms-backend/internal/domain/shared"
)

// Service handles stock ledger business logic. Each mutation loads the
// position, applies one ledger operation, saves, and hands the drained
// events to the publisher. The save is the commit boundary; publish is
// fire-and-forget.
type Service struct {
	repo      Repository
	publisher shared.EventPublisher
}

// NewService creates a new inventory service.
func NewService(repo Repository, publisher shared.EventPublisher) *Service {
	return &Service{repo: repo, publisher: publisher}
}

// CreateInventoryRequest represents initial stock position data.
type CreateInventoryRequest struct {
	ProductID       uuid.UUID `json:"product_id" binding:"required"`
	WarehouseID     uuid.UUID `json:"warehouse_id" binding:"required"`
	LocationID      uuid.UUID `json:"location_id" binding:"required"`
	InitialQuantity int       `json:"initial_quantity"`
}

// StockChangeRequest represents an increase/decrease/reserve/release amount.
type StockChangeRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// AdjustStockRequest represents a physical-count correction.
type AdjustStockRequest struct {
	NewQuantity int    `json:"new_quantity"`
	Reason      string `json:"reason" binding:"required"`
}

// CreateInventory opens the ledger for a new stock position. One ledger per
// (product, warehouse, location) triple.
func (s *Service) CreateInventory(ctx context.Context, req *CreateInventoryRequest, actor string) (*Inventory, error) {
	existing, err := s.repo.GetByPosition(ctx, req.ProductID, req.WarehouseID, req.LocationID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, fmt.Errorf("failed to check position: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: inventory already exists for this position", shared.ErrDuplicateKey)
	}

	inv, err := NewInventory(req.ProductID, req.WarehouseID, req.LocationID, req.InitialQuantity, actor)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Add(ctx, inv); err != nil {
		return nil, fmt.Errorf("failed to create inventory: %w", err)
	}
	s.publisher.Publish(inv.DrainEvents()...)
	return inv, nil
}

// IncreaseStock receives goods into a position.
func (s *Service) IncreaseStock(ctx context.Context, id uuid.UUID, req *StockChangeRequest, actor string) (*Inventory, error) {
	return s.mutate(ctx, id, func(inv *Inventory) error {
		return inv.IncreaseStock(req.Quantity, actor)
	})
}

// DecreaseStock issues goods out of a position.
func (s *Service) DecreaseStock(ctx context.Context, id uuid.UUID, req *StockChangeRequest, actor string) (*Inventory, error) {
	return s.mutate(ctx, id, func(inv *Inventory) error {
		return inv.DecreaseStock(req.Quantity, actor)
	})
}

// ReserveStock places a hold against available stock.
func (s *Service) ReserveStock(ctx context.Context, id uuid.UUID, req *StockChangeRequest, actor string) (*Inventory, error) {
	return s.mutate(ctx, id, func(inv *Inventory) error {
		return inv.ReserveStock(req.Quantity, actor)
	})
}

// ReleaseReservation gives a hold back to available stock.
func (s *Service) ReleaseReservation(ctx context.Context, id uuid.UUID, req *StockChangeRequest, actor string) (*Inventory, error) {
	return s.mutate(ctx, id, func(inv *Inventory) error {
		return inv.ReleaseReservation(req.Quantity, actor)
	})
}

// AdjustStock overrides on-hand with a physical-count result.
func (s *Service) AdjustStock(ctx context.Context, id uuid.UUID, req *AdjustStockRequest, actor string) (*Inventory, error) {
	return s.mutate(ctx, id, func(inv *Inventory) error {
		return inv.AdjustStock(req.NewQuantity, req.Reason, actor)
	})
}

// mutate is the shared load-apply-save-publish path. A failing operation
// aborts before the save, so no partial state reaches the repository.
func (s *Service) mutate(ctx context.Context, id uuid.UUID, op func(*Inventory) error) (*Inventory, error) {
	inv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := op(inv); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, inv); err != nil {
		return nil, fmt.Errorf("failed to save inventory: %w", err)
	}
	s.publisher.Publish(inv.DrainEvents()...)
	return inv, nil
}

// GetInventory retrieves one stock position by id.
func (s *Service) GetInventory(ctx context.Context, id uuid.UUID) (*Inventory, error) {
	return s.repo.GetByID(ctx, id)
}

// GetInventoryByPosition retrieves one position by its natural key.
func (s *Service) GetInventoryByPosition(ctx context.Context, productID, warehouseID, locationID uuid.UUID) (*Inventory, error) {
	return s.repo.GetByPosition(ctx, productID, warehouseID, locationID)
}

// GetWarehouseInventory lists all positions in one warehouse.
func (s *Service) GetWarehouseInventory(ctx context.Context, warehouseID uuid.UUID) ([]Inventory, error) {
	return s.repo.GetByWarehouse(ctx, warehouseID)
}

// GetProductInventory lists all positions holding one product.
func (s *Service) GetProductInventory(ctx context.Context, productID uuid.UUID) ([]Inventory, error) {
	return s.repo.GetByProduct(ctx, productID)
}

// GetLowStockItems lists positions whose available quantity has fallen to or
// below the product's reorder level.
func (s *Service) GetLowStockItems(ctx context.Context) ([]LowStockItem, error) {
	return s.repo.GetLowStockItems(ctx)
}
