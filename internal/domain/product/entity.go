// internal/domain/product/entity.go
package product

import (
	"fmt"
	"strings"

	"github.com/your-org/wms-backend/internal/domain/shared"
)

const (
	maxSKULength  = 50
	maxNameLength = 200
)

// Product represents a catalog item. SKU uniqueness is enforced at the
// catalog boundary (the service checks the repository before construction),
// not by the entity.
type Product struct {
	shared.Entity

	SKU             string          `gorm:"uniqueIndex;not null;size:50" json:"sku"`
	Name            string          `gorm:"not null;size:200" json:"name"`
	Description     string          `gorm:"size:1000" json:"description"`
	Price           shared.Money    `gorm:"embedded;embeddedPrefix:price_" json:"price"`
	Weight          shared.Quantity `gorm:"embedded;embeddedPrefix:weight_" json:"weight"`
	Dimensions      shared.Quantity `gorm:"embedded;embeddedPrefix:dimensions_" json:"dimensions"`
	ReorderLevel    int             `gorm:"not null;default:0" json:"reorder_level"`
	ReorderQuantity int             `gorm:"not null;default:0" json:"reorder_quantity"`
	Category        string          `gorm:"size:100;index" json:"category"`
	IsActive        bool            `gorm:"not null;default:true" json:"is_active"`
}

// TableName overrides the gorm table name.
func (Product) TableName() string { return "products" }

// NewProduct validates and constructs an active catalog item.
func NewProduct(
	sku, name, description string,
	price shared.Money,
	weight, dimensions shared.Quantity,
	reorderLevel, reorderQuantity int,
	category, createdBy string,
) (*Product, error) {
	if strings.TrimSpace(sku) == "" {
		return nil, fmt.Errorf("%w: sku cannot be empty", shared.ErrInvalidValue)
	}
	if len(sku) > maxSKULength {
		return nil, fmt.Errorf("%w: sku exceeds %d characters", shared.ErrInvalidValue, maxSKULength)
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", shared.ErrInvalidValue)
	}
	if len(name) > maxNameLength {
		return nil, fmt.Errorf("%w: name exceeds %d characters", shared.ErrInvalidValue, maxNameLength)
	}
	if reorderLevel < 0 {
		return nil, fmt.Errorf("%w: reorder level cannot be negative", shared.ErrInvalidValue)
	}
	if reorderQuantity < 0 {
		return nil, fmt.Errorf("%w: reorder quantity cannot be negative", shared.ErrInvalidValue)
	}

	return &Product{
		Entity:          shared.NewEntity(createdBy),
		SKU:             sku,
		Name:            name,
		Description:     description,
		Price:           price,
		Weight:          weight,
		Dimensions:      dimensions,
		ReorderLevel:    reorderLevel,
		ReorderQuantity: reorderQuantity,
		Category:        category,
		IsActive:        true,
	}, nil
}

// UpdateDetails replaces name, description and price.
func (p *Product) UpdateDetails(name, description string, price shared.Money, actor string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name cannot be empty", shared.ErrInvalidValue)
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", shared.ErrInvalidValue, maxNameLength)
	}

	p.Name = name
	p.Description = description
	p.Price = price
	p.MarkUpdated(actor)
	return nil
}

// UpdateReorderSettings replaces the replenishment thresholds.
func (p *Product) UpdateReorderSettings(reorderLevel, reorderQuantity int, actor string) error {
	if reorderLevel < 0 {
		return fmt.Errorf("%w: reorder level cannot be negative", shared.ErrInvalidValue)
	}
	if reorderQuantity < 0 {
		return fmt.Errorf("%w: reorder quantity cannot be negative", shared.ErrInvalidValue)
	}

	p.ReorderLevel = reorderLevel
	p.ReorderQuantity = reorderQuantity
	p.MarkUpdated(actor)
	return nil
}

// Activate flags the product as orderable. Idempotent.
func (p *Product) Activate(actor string) {
	p.IsActive = true
	p.MarkUpdated(actor)
}

// Deactivate removes the product from active use. Idempotent.
func (p *Product) Deactivate(actor string) {
	p.IsActive = false
	p.MarkUpdated(actor)
}
