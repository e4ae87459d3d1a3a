// internal/infrastructure/database/postgres/warehouse_repository.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/your-org/wms-backend/internal/domain/shared"
	"github.com/your-org/wms-backend/internal/domain/warehouse"
)

// WarehouseRepository implements warehouse.Repository on gorm. Warehouses are
// loaded together with their non-deleted locations.
type WarehouseRepository struct {
	db *gorm.DB
}

// NewWarehouseRepository creates a new warehouse repository.
func NewWarehouseRepository(db *gorm.DB) *WarehouseRepository {
	return &WarehouseRepository{db: db}
}

func (r *WarehouseRepository) withLocations() *gorm.DB {
	return r.db.Preload("Locations", "is_deleted = ?", false)
}

func (r *WarehouseRepository) GetByID(ctx context.Context, id uuid.UUID) (*warehouse.Warehouse, error) {
	var wh warehouse.Warehouse
	err := r.withLocations().WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&wh).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: warehouse %s", shared.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load warehouse: %w", err)
	}
	return &wh, nil
}

func (r *WarehouseRepository) GetByCode(ctx context.Context, code string) (*warehouse.Warehouse, error) {
	var wh warehouse.Warehouse
	err := r.withLocations().WithContext(ctx).
		Where("code = ? AND is_deleted = ?", code, false).
		First(&wh).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: warehouse with code %q", shared.ErrNotFound, code)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load warehouse: %w", err)
	}
	return &wh, nil
}

func (r *WarehouseRepository) GetAll(ctx context.Context) ([]warehouse.Warehouse, error) {
	var warehouses []warehouse.Warehouse
	err := r.withLocations().WithContext(ctx).
		Where("is_deleted = ?", false).
		Order("code").
		Find(&warehouses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list warehouses: %w", err)
	}
	return warehouses, nil
}

func (r *WarehouseRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&warehouse.Warehouse{}).
		Where("code = ? AND is_deleted = ?", code, false).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check code: %w", err)
	}
	return count > 0, nil
}

func (r *WarehouseRepository) Add(ctx context.Context, wh *warehouse.Warehouse) error {
	return r.db.WithContext(ctx).Create(wh).Error
}

func (r *WarehouseRepository) Update(ctx context.Context, wh *warehouse.Warehouse) error {
	// Save with FullSaveAssociations so new and changed locations persist
	// together with the warehouse.
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(wh).Error
}
