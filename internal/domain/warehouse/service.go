// internal/domain/warehouse/service.go
package warehouse

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/your-org/wms-backend/internal/domain/shared"
)

// Service handles warehouse topology business logic.
type Service struct {
	repo Repository
}

// NewService creates a new warehouse service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateWarehouseRequest represents warehouse creation data.
type CreateWarehouseRequest struct {
	Code         string         `json:"code" binding:"required"`
	Name         string         `json:"name" binding:"required"`
	Address      shared.Address `json:"address"`
	ContactPhone string         `json:"contact_phone"`
	ContactEmail string         `json:"contact_email"`
}

// UpdateWarehouseRequest represents warehouse detail updates.
type UpdateWarehouseRequest struct {
	Name         string         `json:"name" binding:"required"`
	Address      shared.Address `json:"address"`
	ContactPhone string         `json:"contact_phone"`
	ContactEmail string         `json:"contact_email"`
}

// AddLocationRequest represents location creation data.
type AddLocationRequest struct {
	Code     string `json:"code" binding:"required"`
	Aisle    string `json:"aisle"`
	Shelf    string `json:"shelf"`
	Bin      string `json:"bin"`
	Capacity int    `json:"capacity"`
}

// CreateWarehouse creates a warehouse, enforcing code uniqueness against the
// repository.
func (s *Service) CreateWarehouse(ctx context.Context, req *CreateWarehouseRequest, actor string) (*Warehouse, error) {
	exists, err := s.repo.ExistsByCode(ctx, req.Code)
	if err != nil {
		return nil, fmt.Errorf("failed to check code: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: warehouse with code %q already exists", shared.ErrDuplicateKey, req.Code)
	}

	wh, err := NewWarehouse(req.Code, req.Name, req.Address, req.ContactPhone, req.ContactEmail, actor)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Add(ctx, wh); err != nil {
		return nil, fmt.Errorf("failed to create warehouse: %w", err)
	}
	return wh, nil
}

// UpdateWarehouse updates name, address and contact info.
func (s *Service) UpdateWarehouse(ctx context.Context, id uuid.UUID, req *UpdateWarehouseRequest, actor string) (*Warehouse, error) {
	wh, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := wh.UpdateDetails(req.Name, req.Address, req.ContactPhone, req.ContactEmail, actor); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, wh); err != nil {
		return nil, fmt.Errorf("failed to update warehouse: %w", err)
	}
	return wh, nil
}

// AddLocation attaches a new location to the warehouse.
func (s *Service) AddLocation(ctx context.Context, warehouseID uuid.UUID, req *AddLocationRequest, actor string) (*Location, error) {
	wh, err := s.repo.GetByID(ctx, warehouseID)
	if err != nil {
		return nil, err
	}

	loc, err := NewLocation(warehouseID, req.Code, req.Aisle, req.Shelf, req.Bin, req.Capacity, actor)
	if err != nil {
		return nil, err
	}
	if err := wh.AddLocation(loc); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, wh); err != nil {
		return nil, fmt.Errorf("failed to add location: %w", err)
	}
	return loc, nil
}

// SetLocationActive activates or deactivates one location.
func (s *Service) SetLocationActive(ctx context.Context, warehouseID, locationID uuid.UUID, active bool, actor string) (*Location, error) {
	wh, err := s.repo.GetByID(ctx, warehouseID)
	if err != nil {
		return nil, err
	}
	loc, err := wh.FindLocation(locationID)
	if err != nil {
		return nil, err
	}
	if active {
		loc.Activate(actor)
	} else {
		loc.Deactivate(actor)
	}
	if err := s.repo.Update(ctx, wh); err != nil {
		return nil, fmt.Errorf("failed to update location: %w", err)
	}
	return loc, nil
}

// SetActive activates or deactivates a warehouse.
func (s *Service) SetActive(ctx context.Context, id uuid.UUID, active bool, actor string) (*Warehouse, error) {
	wh, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if active {
		wh.Activate(actor)
	} else {
		wh.Deactivate(actor)
	}
	if err := s.repo.Update(ctx, wh); err != nil {
		return nil, fmt.Errorf("failed to update warehouse: %w", err)
	}
	return wh, nil
}

// GetWarehouse retrieves one warehouse with its locations.
func (s *Service) GetWarehouse(ctx context.Context, id uuid.UUID) (*Warehouse, error) {
	return s.repo.GetByID(ctx, id)
}

// GetWarehouseByCode retrieves one warehouse by its natural key.
func (s *Service) GetWarehouseByCode(ctx context.Context, code string) (*Warehouse, error) {
	return s.repo.GetByCode(ctx, code)
}

// GetWarehouses retrieves all warehouses.
func (s *Service) GetWarehouses(ctx context.Context) ([]Warehouse, error) {
	return s.repo.GetAll(ctx)
}
