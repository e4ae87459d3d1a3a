// internal/domain/product/service.go
package product

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/your-org/wms-backend/internal/domain/shared"
)

// Service handles catalog business logic on top of the persistence contract.
type Service struct {
	repo Repository
}

// NewService creates a new catalog service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateProductRequest represents product creation data.
type CreateProductRequest struct {
	SKU             string          `json:"sku" binding:"required"`
	Name            string          `json:"name" binding:"required"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price" binding:"required"`
	Currency        string          `json:"currency" binding:"required"`
	Weight          decimal.Decimal `json:"weight"`
	WeightUnit      string          `json:"weight_unit" binding:"required"`
	Dimensions      decimal.Decimal `json:"dimensions"`
	DimensionsUnit  string          `json:"dimensions_unit" binding:"required"`
	ReorderLevel    int             `json:"reorder_level"`
	ReorderQuantity int             `json:"reorder_quantity"`
	Category        string          `json:"category"`
}

// UpdateProductRequest represents product detail updates.
type UpdateProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Currency    string          `json:"currency" binding:"required"`
}

// ReorderSettingsRequest represents replenishment threshold updates.
type ReorderSettingsRequest struct {
	ReorderLevel    int `json:"reorder_level"`
	ReorderQuantity int `json:"reorder_quantity"`
}

// CreateProduct creates a catalog item, enforcing SKU uniqueness against the
// repository before construction.
func (s *Service) CreateProduct(ctx context.Context, req *CreateProductRequest, actor string) (*Product, error) {
	exists, err := s.repo.ExistsBySKU(ctx, req.SKU)
	if err != nil {
		return nil, fmt.Errorf("failed to check sku: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: product with sku %q already exists", shared.ErrDuplicateKey, req.SKU)
	}

	price, err := shared.NewMoney(req.Price, req.Currency)
	if err != nil {
		return nil, err
	}
	weight, err := shared.NewQuantity(req.Weight, req.WeightUnit)
	if err != nil {
		return nil, err
	}
	dimensions, err := shared.NewQuantity(req.Dimensions, req.DimensionsUnit)
	if err != nil {
		return nil, err
	}

	prod, err := NewProduct(
		req.SKU, req.Name, req.Description,
		price, weight, dimensions,
		req.ReorderLevel, req.ReorderQuantity,
		req.Category, actor,
	)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Add(ctx, prod); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return prod, nil
}

// UpdateProduct updates name, description and price.
func (s *Service) UpdateProduct(ctx context.Context, id uuid.UUID, req *UpdateProductRequest, actor string) (*Product, error) {
	prod, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	price, err := shared.NewMoney(req.Price, req.Currency)
	if err != nil {
		return nil, err
	}
	if err := prod.UpdateDetails(req.Name, req.Description, price, actor); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, prod); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return prod, nil
}

// UpdateReorderSettings updates the replenishment thresholds.
func (s *Service) UpdateReorderSettings(ctx context.Context, id uuid.UUID, req *ReorderSettingsRequest, actor string) (*Product, error) {
	prod, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := prod.UpdateReorderSettings(req.ReorderLevel, req.ReorderQuantity, actor); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, prod); err != nil {
		return nil, fmt.Errorf("failed to update reorder settings: %w", err)
	}
	return prod, nil
}

// SetActive activates or deactivates a product.
func (s *Service) SetActive(ctx context.Context, id uuid.UUID, active bool, actor string) (*Product, error) {
	prod, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if active {
		prod.Activate(actor)
	} else {
		prod.Deactivate(actor)
	}
	if err := s.repo.Update(ctx, prod); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return prod, nil
}

// DeleteProduct soft-deletes a product. The repository filters deleted rows
// from all queries.
func (s *Service) DeleteProduct(ctx context.Context, id uuid.UUID, actor string) error {
	prod, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	prod.MarkDeleted()
	prod.MarkUpdated(actor)
	if err := s.repo.Update(ctx, prod); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

// GetProduct retrieves one product by id.
func (s *Service) GetProduct(ctx context.Context, id uuid.UUID) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

// GetProductBySKU retrieves one product by its natural key.
func (s *Service) GetProductBySKU(ctx context.Context, sku string) (*Product, error) {
	return s.repo.GetBySKU(ctx, sku)
}

// GetProducts retrieves the catalog, optionally filtered by category.
func (s *Service) GetProducts(ctx context.Context, category string) ([]Product, error) {
	if category != "" {
		return s.repo.GetByCategory(ctx, category)
	}
	return s.repo.GetAll(ctx)
}
