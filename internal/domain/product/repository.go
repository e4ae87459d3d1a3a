// internal/domain/product/repository.go
package product

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence contract for the product catalog.
// Implementations exclude soft-deleted rows from every query and report
// missing rows with shared.ErrNotFound.
type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Product, error)
	GetBySKU(ctx context.Context, sku string) (*Product, error)
	GetAll(ctx context.Context) ([]Product, error)
	GetByCategory(ctx context.Context, category string) ([]Product, error)
	ExistsBySKU(ctx context.Context, sku string) (bool, error)
	Add(ctx context.Context, product *Product) error
	Update(ctx context.Context, product *Product) error
}
