// internal/domain/warehouse/entity.go
package warehouse

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/your-org/wms-backend/internal/domain/shared"
)

// Warehouse represents a storage site owning a collection of locations.
// Location codes are unique within one warehouse.
type Warehouse struct {
	shared.Entity

	Code         string         `gorm:"uniqueIndex;not null;size:50" json:"code"`
	Name         string         `gorm:"not null;size:200" json:"name"`
	Address      shared.Address `gorm:"embedded" json:"address"`
	ContactPhone string         `gorm:"size:20" json:"contact_phone"`
	ContactEmail string         `gorm:"size:100" json:"contact_email"`
	IsActive     bool           `gorm:"not null;default:true" json:"is_active"`

	Locations []Location `gorm:"foreignKey:WarehouseID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"locations,omitempty"`
}

// Location is a storage slot inside a warehouse, identified by aisle, shelf
// and bin, with integer capacity accounting. Occupancy changes are the only
// mutation path and occupancy never exceeds capacity.
type Location struct {
	shared.Entity

	WarehouseID      uuid.UUID `gorm:"type:uuid;not null;index:idx_locations_warehouse_code,unique" json:"warehouse_id"`
	Code             string    `gorm:"not null;size:50;index:idx_locations_warehouse_code,unique" json:"code"`
	Aisle            string    `gorm:"size:20" json:"aisle"`
	Shelf            string    `gorm:"size:20" json:"shelf"`
	Bin              string    `gorm:"size:20" json:"bin"`
	Capacity         int       `gorm:"not null;default:0" json:"capacity"`
	CurrentOccupancy int       `gorm:"not null;default:0" json:"current_occupancy"`
	IsActive         bool      `gorm:"not null;default:true" json:"is_active"`
}

// TableName overrides
func (Warehouse) TableName() string { return "warehouses" }
func (Location) TableName() string  { return "locations" }

// NewWarehouse validates and constructs an active warehouse.
func NewWarehouse(code, name string, address shared.Address, contactPhone, contactEmail, createdBy string) (*Warehouse, error) {
	if strings.TrimSpace(code) == "" {
		return nil, fmt.Errorf("%w: code cannot be empty", shared.ErrInvalidValue)
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", shared.ErrInvalidValue)
	}

	return &Warehouse{
		Entity:       shared.NewEntity(createdBy),
		Code:         code,
		Name:         name,
		Address:      address,
		ContactPhone: contactPhone,
		ContactEmail: contactEmail,
		IsActive:     true,
	}, nil
}

// AddLocation attaches a location, rejecting duplicate codes within this
// warehouse.
func (w *Warehouse) AddLocation(loc *Location) error {
	if loc == nil {
		return fmt.Errorf("%w: location is required", shared.ErrInvalidValue)
	}
	for i := range w.Locations {
		if w.Locations[i].Code == loc.Code {
			return fmt.Errorf("%w: location with code %q already exists", shared.ErrDuplicateKey, loc.Code)
		}
	}
	w.Locations = append(w.Locations, *loc)
	return nil
}

// FindLocation returns the owned location with the given id.
func (w *Warehouse) FindLocation(locationID uuid.UUID) (*Location, error) {
	for i := range w.Locations {
		if w.Locations[i].ID == locationID {
			return &w.Locations[i], nil
		}
	}
	return nil, fmt.Errorf("%w: location %s", shared.ErrNotFound, locationID)
}

// UpdateDetails replaces name, address and contact info.
func (w *Warehouse) UpdateDetails(name string, address shared.Address, contactPhone, contactEmail, actor string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name cannot be empty", shared.ErrInvalidValue)
	}

	w.Name = name
	w.Address = address
	w.ContactPhone = contactPhone
	w.ContactEmail = contactEmail
	w.MarkUpdated(actor)
	return nil
}

// Activate flags the warehouse as operational. Idempotent.
func (w *Warehouse) Activate(actor string) {
	w.IsActive = true
	w.MarkUpdated(actor)
}

// Deactivate takes the warehouse out of service. Idempotent.
func (w *Warehouse) Deactivate(actor string) {
	w.IsActive = false
	w.MarkUpdated(actor)
}

// NewLocation validates and constructs an empty, active location.
func NewLocation(warehouseID uuid.UUID, code, aisle, shelf, bin string, capacity int, createdBy string) (*Location, error) {
	if warehouseID == uuid.Nil {
		return nil, fmt.Errorf("%w: warehouse id is required", shared.ErrInvalidValue)
	}
	if strings.TrimSpace(code) == "" {
		return nil, fmt.Errorf("%w: code cannot be empty", shared.ErrInvalidValue)
	}
	if capacity < 0 {
		return nil, fmt.Errorf("%w: capacity cannot be negative", shared.ErrInvalidValue)
	}

	return &Location{
		Entity:           shared.NewEntity(createdBy),
		WarehouseID:      warehouseID,
		Code:             code,
		Aisle:            aisle,
		Shelf:            shelf,
		Bin:              bin,
		Capacity:         capacity,
		CurrentOccupancy: 0,
		IsActive:         true,
	}, nil
}

// CanAccommodate reports whether the location is active and has room for the
// given quantity.
func (l *Location) CanAccommodate(quantity int) bool {
	return l.IsActive && l.CurrentOccupancy+quantity <= l.Capacity
}

// IncreaseOccupancy records goods placed into the location.
func (l *Location) IncreaseOccupancy(quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("%w: quantity cannot be negative", shared.ErrInvalidValue)
	}
	if !l.CanAccommodate(quantity) {
		return fmt.Errorf("%w: location %s cannot take %d more units", shared.ErrCapacityExceeded, l.Code, quantity)
	}
	l.CurrentOccupancy += quantity
	return nil
}

// DecreaseOccupancy records goods removed from the location.
func (l *Location) DecreaseOccupancy(quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("%w: quantity cannot be negative", shared.ErrInvalidValue)
	}
	if l.CurrentOccupancy < quantity {
		return fmt.Errorf("%w: occupancy cannot go negative", shared.ErrInvalidValue)
	}
	l.CurrentOccupancy -= quantity
	return nil
}

// Activate flags the location as usable. Idempotent.
func (l *Location) Activate(actor string) {
	l.IsActive = true
	l.MarkUpdated(actor)
}

// Deactivate takes the location out of service. Idempotent.
func (l *Location) Deactivate(actor string) {
	l.IsActive = false
	l.MarkUpdated(actor)
}
