// internal/domain/order/repository.go
package order

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence contract for orders. GetByID and
// GetByOrderNumber load the order together with its lines; saving persists
// the order and its lines as one unit. Implementations exclude soft-deleted
// rows and report missing rows with shared.ErrNotFound.
type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Order, error)
	GetByOrderNumber(ctx context.Context, orderNumber string) (*Order, error)
	GetAll(ctx context.Context) ([]Order, error)
	GetByWarehouse(ctx context.Context, warehouseID uuid.UUID) ([]Order, error)
	GetByStatus(ctx context.Context, status Status) ([]Order, error)
	ExistsByOrderNumber(ctx context.Context, orderNumber string) (bool, error)
	Add(ctx context.Context, o *Order) error
	Update(ctx context.Context, o *Order) error
	RemoveLine(ctx context.Context, lineID uuid.UUID) error
}
