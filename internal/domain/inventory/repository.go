// internal/domain/inventory/repository.go
package inventory

import (
	"context"

	"github.com/google/uuid"
)

// LowStockItem joins a stock position against its product's reorder level.
type LowStockItem struct {
	Inventory
	SKU          string `json:"sku"`
	ProductName  string `json:"product_name"`
	ReorderLevel int    `json:"reorder_level"`
}

// Repository is the persistence contract for stock positions. Implementations
// exclude soft-deleted rows and report missing rows with shared.ErrNotFound.
// Concurrent mutations of one position are serialized at this boundary; the
// caller reloads and retries on a reported conflict.
type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Inventory, error)
	GetByPosition(ctx context.Context, productID, warehouseID, locationID uuid.UUID) (*Inventory, error)
	GetByWarehouse(ctx context.Context, warehouseID uuid.UUID) ([]Inventory, error)
	GetByProduct(ctx context.Context, productID uuid.UUID) ([]Inventory, error)
	GetLowStockItems(ctx context.Context) ([]LowStockItem, error)
	Add(ctx context.Context, inv *Inventory) error
	Update(ctx context.Context, inv *Inventory) error
}
