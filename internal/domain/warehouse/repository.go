// internal/domain/warehouse/repository.go
package warehouse

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence contract for warehouses. GetByID and
// GetByCode load the warehouse together with its locations; implementations
// exclude soft-deleted rows and report missing rows with shared.ErrNotFound.
type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Warehouse, error)
	GetByCode(ctx context.Context, code string) (*Warehouse, error)
	GetAll(ctx context.Context) ([]Warehouse, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	Add(ctx context.Context, wh *Warehouse) error
	Update(ctx context.Context, wh *Warehouse) error
}
