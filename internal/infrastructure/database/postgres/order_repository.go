// internal/infrastructure/database/postgres/order_repository.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/your-org/wms-backend/internal/domain/order"
	"github.com/your-org/wms-backend/internal/domain/shared"
)

// OrderRepository implements order.Repository on gorm. Orders are always
// loaded and saved together with their lines.
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository.
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) withLines() *gorm.DB {
	return r.db.Preload("Lines", "is_deleted = ?", false)
}

func (r *OrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	var o order.Order
	err := r.withLines().WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: order %s", shared.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	return &o, nil
}

func (r *OrderRepository) GetByOrderNumber(ctx context.Context, orderNumber string) (*order.Order, error) {
	var o order.Order
	err := r.withLines().WithContext(ctx).
		Where("order_number = ? AND is_deleted = ?", orderNumber, false).
		First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: order %q", shared.ErrNotFound, orderNumber)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	return &o, nil
}

func (r *OrderRepository) GetAll(ctx context.Context) ([]order.Order, error) {
	var orders []order.Order
	err := r.withLines().WithContext(ctx).
		Where("is_deleted = ?", false).
		Order("order_date DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (r *OrderRepository) GetByWarehouse(ctx context.Context, warehouseID uuid.UUID) ([]order.Order, error) {
	var orders []order.Order
	err := r.withLines().WithContext(ctx).
		Where("warehouse_id = ? AND is_deleted = ?", warehouseID, false).
		Order("order_date DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list warehouse orders: %w", err)
	}
	return orders, nil
}

func (r *OrderRepository) GetByStatus(ctx context.Context, status order.Status) ([]order.Order, error) {
	var orders []order.Order
	err := r.withLines().WithContext(ctx).
		Where("status = ? AND is_deleted = ?", status, false).
		Order("order_date DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders by status: %w", err)
	}
	return orders, nil
}

func (r *OrderRepository) ExistsByOrderNumber(ctx context.Context, orderNumber string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&order.Order{}).
		Where("order_number = ? AND is_deleted = ?", orderNumber, false).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check order number: %w", err)
	}
	return count > 0, nil
}

func (r *OrderRepository) Add(ctx context.Context, o *order.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *OrderRepository) Update(ctx context.Context, o *order.Order) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(o).Error
}

func (r *OrderRepository) RemoveLine(ctx context.Context, lineID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&order.Line{}, "id = ?", lineID).Error
}
