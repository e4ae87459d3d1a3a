// internal/infrastructure/database/postgres/product_repository.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/your-org/wms-backend/internal/domain/product"
	"github.com/your-org/wms-backend/internal/domain/shared"
)

// ProductRepository implements product.Repository on gorm. Soft-deleted rows
// are excluded from every query.
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository.
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	var p product.Product
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: product %s", shared.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load product: %w", err)
	}
	return &p, nil
}

func (r *ProductRepository) GetBySKU(ctx context.Context, sku string) (*product.Product, error) {
	var p product.Product
	err := r.db.WithContext(ctx).
		Where("sku = ? AND is_deleted = ?", sku, false).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: product with sku %q", shared.ErrNotFound, sku)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load product: %w", err)
	}
	return &p, nil
}

func (r *ProductRepository) GetAll(ctx context.Context) ([]product.Product, error) {
	var products []product.Product
	err := r.db.WithContext(ctx).
		Where("is_deleted = ?", false).
		Order("sku").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) GetByCategory(ctx context.Context, category string) ([]product.Product, error) {
	var products []product.Product
	err := r.db.WithContext(ctx).
		Where("category = ? AND is_deleted = ?", category, false).
		Order("sku").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list products by category: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) ExistsBySKU(ctx context.Context, sku string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&product.Product{}).
		Where("sku = ? AND is_deleted = ?", sku, false).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check sku: %w", err)
	}
	return count > 0, nil
}

func (r *ProductRepository) Add(ctx context.Context, p *product.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}
