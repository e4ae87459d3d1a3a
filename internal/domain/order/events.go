// internal/domain/order/events.go
package order

import (
	"github.com/google/uuid"

	"github.com/your-org/wms-backend/internal/domain/shared"
)

// StatusChanged records one lifecycle transition of an order.
type StatusChanged struct {
	shared.BaseEvent
	OrderID     uuid.UUID `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	From        Status    `json:"from"`
	To          Status    `json:"to"`
}

func (StatusChanged) EventName() string { return "order.status_changed" }
