// internal/domain/inventory/events.go
package inventory

import (
	"github.com/google/uuid"

	"github.com/your-org/wms-backend/internal/domain/shared"
)

// StockIncreased records goods received into a position.
type StockIncreased struct {
	shared.BaseEvent
	InventoryID uuid.UUID `json:"inventory_id"`
	ProductID   uuid.UUID `json:"product_id"`
	Quantity    int       `json:"quantity"`
}

func (StockIncreased) EventName() string { return "stock.increased" }

// StockDecreased records goods issued out of a position.
type StockDecreased struct {
	shared.BaseEvent
	InventoryID uuid.UUID `json:"inventory_id"`
	ProductID   uuid.UUID `json:"product_id"`
	Quantity    int       `json:"quantity"`
}

func (StockDecreased) EventName() string { return "stock.decreased" }

// StockReserved records a hold placed against available stock.
type StockReserved struct {
	shared.BaseEvent
	InventoryID uuid.UUID `json:"inventory_id"`
	ProductID   uuid.UUID `json:"product_id"`
	Quantity    int       `json:"quantity"`
}

func (StockReserved) EventName() string { return "stock.reserved" }

// StockReservationReleased records a hold given back to available stock.
type StockReservationReleased struct {
	shared.BaseEvent
	InventoryID uuid.UUID `json:"inventory_id"`
	ProductID   uuid.UUID `json:"product_id"`
	Quantity    int       `json:"quantity"`
}

func (StockReservationReleased) EventName() string { return "stock.reservation_released" }

// StockAdjusted records a physical-count override of on-hand quantity.
type StockAdjusted struct {
	shared.BaseEvent
	InventoryID uuid.UUID `json:"inventory_id"`
	ProductID   uuid.UUID `json:"product_id"`
	OldQuantity int       `json:"old_quantity"`
	NewQuantity int       `json:"new_quantity"`
	Reason      string    `json:"reason"`
}

func (StockAdjusted) EventName() string { return "stock.adjusted" }
