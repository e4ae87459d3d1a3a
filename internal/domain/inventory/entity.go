// internal/domain/inventory/entity.go
package inventory

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/your-org/wms-backend/internal/domain/shared"
)

// Inventory is the stock ledger for one (product, warehouse, location)
// position. On-hand and reserved never go negative on their own; available
// is derived as on-hand minus reserved and stays non-negative after every
// operation except AdjustStock, the physical-count override.
type Inventory struct {
	shared.Entity

	ProductID        uuid.UUID `gorm:"type:uuid;not null;index:idx_inventories_position,unique" json:"product_id"`
	WarehouseID      uuid.UUID `gorm:"type:uuid;not null;index:idx_inventories_position,unique" json:"warehouse_id"`
	LocationID       uuid.UUID `gorm:"type:uuid;not null;index:idx_inventories_position,unique" json:"location_id"`
	QuantityOnHand   int       `gorm:"not null;default:0" json:"quantity_on_hand"`
	QuantityReserved int       `gorm:"not null;default:0" json:"quantity_reserved"`
	LastStockCheck   time.Time `gorm:"not null" json:"last_stock_check"`
}

// TableName overrides the gorm table name.
func (Inventory) TableName() string { return "inventories" }

// NewInventory creates the ledger for a stock position with an initial
// on-hand quantity and no reservations.
func NewInventory(productID, warehouseID, locationID uuid.UUID, initialQuantity int, createdBy string) (*Inventory, error) {
	if productID == uuid.Nil {
		return nil, fmt.Errorf("%w: product id is required", shared.ErrInvalidValue)
	}
	if warehouseID == uuid.Nil {
		return nil, fmt.Errorf("%w: warehouse id is required", shared.ErrInvalidValue)
	}
	if locationID == uuid.Nil {
		return nil, fmt.Errorf("%w: location id is required", shared.ErrInvalidValue)
	}
	if initialQuantity < 0 {
		return nil, fmt.Errorf("%w: initial quantity cannot be negative", shared.ErrInvalidValue)
	}

	return &Inventory{
		Entity:           shared.NewEntity(createdBy),
		ProductID:        productID,
		WarehouseID:      warehouseID,
		LocationID:       locationID,
		QuantityOnHand:   initialQuantity,
		QuantityReserved: 0,
		LastStockCheck:   time.Now().UTC(),
	}, nil
}

// QuantityAvailable is on-hand minus reserved.
func (inv *Inventory) QuantityAvailable() int {
	return inv.QuantityOnHand - inv.QuantityReserved
}

// IsOverReserved reports whether a stock adjustment has pushed on-hand below
// the reserved quantity, leaving available negative.
func (inv *Inventory) IsOverReserved() bool {
	return inv.QuantityReserved > inv.QuantityOnHand
}

// IncreaseStock receives goods into the position.
func (inv *Inventory) IncreaseStock(quantity int, actor string) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", shared.ErrInvalidValue)
	}

	inv.QuantityOnHand += quantity
	inv.MarkUpdated(actor)

	inv.Record(StockIncreased{
		BaseEvent:   shared.NewBaseEvent(),
		InventoryID: inv.ID,
		ProductID:   inv.ProductID,
		Quantity:    quantity,
	})
	return nil
}

// DecreaseStock issues goods out of the position. Reserved stock is
// protected: only available quantity can be decreased.
func (inv *Inventory) DecreaseStock(quantity int, actor string) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", shared.ErrInvalidValue)
	}
	if inv.QuantityAvailable() < quantity {
		return fmt.Errorf("%w: available %d, requested %d", shared.ErrInsufficientStock, inv.QuantityAvailable(), quantity)
	}

	inv.QuantityOnHand -= quantity
	inv.MarkUpdated(actor)

	inv.Record(StockDecreased{
		BaseEvent:   shared.NewBaseEvent(),
		InventoryID: inv.ID,
		ProductID:   inv.ProductID,
		Quantity:    quantity,
	})
	return nil
}

// ReserveStock places a hold against available stock without reducing
// on-hand quantity.
func (inv *Inventory) ReserveStock(quantity int, actor string) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", shared.ErrInvalidValue)
	}
	if inv.QuantityAvailable() < quantity {
		return fmt.Errorf("%w: available %d, requested %d", shared.ErrInsufficientStock, inv.QuantityAvailable(), quantity)
	}

	inv.QuantityReserved += quantity
	inv.MarkUpdated(actor)

	inv.Record(StockReserved{
		BaseEvent:   shared.NewBaseEvent(),
		InventoryID: inv.ID,
		ProductID:   inv.ProductID,
		Quantity:    quantity,
	})
	return nil
}

// ReleaseReservation gives a hold back to available stock.
func (inv *Inventory) ReleaseReservation(quantity int, actor string) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", shared.ErrInvalidValue)
	}
	if inv.QuantityReserved < quantity {
		return fmt.Errorf("%w: reserved %d, requested %d", shared.ErrOverRelease, inv.QuantityReserved, quantity)
	}

	inv.QuantityReserved -= quantity
	inv.MarkUpdated(actor)

	inv.Record(StockReservationReleased{
		BaseEvent:   shared.NewBaseEvent(),
		InventoryID: inv.ID,
		ProductID:   inv.ProductID,
		Quantity:    quantity,
	})
	return nil
}

// AdjustStock overrides on-hand with a physical-count result and stamps the
// stock check. The new quantity may fall below the reserved quantity; the
// emitted event carries old and new values so downstream alerting can react
// to the over-reservation.
func (inv *Inventory) AdjustStock(newQuantity int, reason, actor string) error {
	if newQuantity < 0 {
		return fmt.Errorf("%w: quantity cannot be negative", shared.ErrInvalidValue)
	}

	oldQuantity := inv.QuantityOnHand
	inv.QuantityOnHand = newQuantity
	inv.LastStockCheck = time.Now().UTC()
	inv.MarkUpdated(actor)

	inv.Record(StockAdjusted{
		BaseEvent:   shared.NewBaseEvent(),
		InventoryID: inv.ID,
		ProductID:   inv.ProductID,
		OldQuantity: oldQuantity,
		NewQuantity: newQuantity,
		Reason:      reason,
	})
	return nil
}
