// internal/infrastructure/database/postgres/inventory_repository.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/your-org/wms-backend/internal/domain/inventory"
	"github.com/your-org/wms-backend/internal/domain/shared"
)

// InventoryRepository implements inventory.Repository on gorm.
type InventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository creates a new inventory repository.
func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

func (r *InventoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*inventory.Inventory, error) {
	var inv inventory.Inventory
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&inv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: inventory %s", shared.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}
	return &inv, nil
}

func (r *InventoryRepository) GetByPosition(ctx context.Context, productID, warehouseID, locationID uuid.UUID) (*inventory.Inventory, error) {
	var inv inventory.Inventory
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND warehouse_id = ? AND location_id = ? AND is_deleted = ?",
			productID, warehouseID, locationID, false).
		First(&inv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: inventory for product %s at %s/%s", shared.ErrNotFound, productID, warehouseID, locationID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}
	return &inv, nil
}

func (r *InventoryRepository) GetByWarehouse(ctx context.Context, warehouseID uuid.UUID) ([]inventory.Inventory, error) {
	var items []inventory.Inventory
	err := r.db.WithContext(ctx).
		Where("warehouse_id = ? AND is_deleted = ?", warehouseID, false).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list warehouse inventory: %w", err)
	}
	return items, nil
}

func (r *InventoryRepository) GetByProduct(ctx context.Context, productID uuid.UUID) ([]inventory.Inventory, error) {
	var items []inventory.Inventory
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND is_deleted = ?", productID, false).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list product inventory: %w", err)
	}
	return items, nil
}

func (r *InventoryRepository) GetLowStockItems(ctx context.Context) ([]inventory.LowStockItem, error) {
	var items []inventory.LowStockItem
	err := r.db.WithContext(ctx).
		Table("inventories").
		Select("inventories.*, products.sku AS sku, products.name AS product_name, products.reorder_level AS reorder_level").
		Joins("JOIN products ON products.id = inventories.product_id AND products.is_deleted = false").
		Where("inventories.is_deleted = ?", false).
		Where("inventories.quantity_on_hand - inventories.quantity_reserved <= products.reorder_level").
		Scan(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list low stock items: %w", err)
	}
	return items, nil
}

func (r *InventoryRepository) Add(ctx context.Context, inv *inventory.Inventory) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *InventoryRepository) Update(ctx context.Context, inv *inventory.Inventory) error {
	return r.db.WithContext(ctx).Save(inv).Error
}
