// internal/domain/order/entity.go
package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/your-org/wms-backend/internal/domain/shared"
)

// DefaultCurrency is the currency of an order's total before any line is
// added and after the last line is removed.
const DefaultCurrency = "USD"

// Status represents the order lifecycle state.
type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in_progress"
	StatusPacked     Status = "packed"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// Type distinguishes receiving from shipping orders.
type Type string

const (
	TypeInbound  Type = "inbound"
	TypeOutbound Type = "outbound"
)

// Order is the transactional document aggregate: a warehouse-scoped order
// with owned lines, a running Money total and the lifecycle state machine.
// The total always equals the sum of line totals; at most one line exists
// per product.
type Order struct {
	shared.Entity

	OrderNumber       string          `gorm:"uniqueIndex;not null;size:50" json:"order_number"`
	Type              Type            `gorm:"not null;size:20" json:"type"`
	Status            Status          `gorm:"not null;size:20;index" json:"status"`
	WarehouseID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"warehouse_id"`
	OrderDate         time.Time       `gorm:"not null" json:"order_date"`
	ExpectedDate      *time.Time      `json:"expected_date,omitempty"`
	CompletedDate     *time.Time      `json:"completed_date,omitempty"`
	CustomerReference string          `gorm:"size:100" json:"customer_reference"`
	ShippingAddress   *shared.Address `gorm:"embedded;embeddedPrefix:shipping_" json:"shipping_address,omitempty"`
	TotalValue        shared.Money    `gorm:"embedded;embeddedPrefix:total_" json:"total_value"`
	Notes             string          `gorm:"size:1000" json:"notes"`

	Lines []Line `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"lines"`
}

// Line is one product position on an order with pick/ship progress.
// Picked never exceeds ordered; shipped never exceeds picked.
type Line struct {
	shared.Entity

	OrderID         uuid.UUID    `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID       uuid.UUID    `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity        int          `gorm:"not null" json:"quantity"`
	UnitPrice       shared.Money `gorm:"embedded;embeddedPrefix:unit_price_" json:"unit_price"`
	QuantityPicked  int          `gorm:"not null;default:0" json:"quantity_picked"`
	QuantityShipped int          `gorm:"not null;default:0" json:"quantity_shipped"`
}

// TableName overrides
func (Order) TableName() string { return "orders" }
func (Line) TableName() string  { return "order_lines" }

// NewOrder validates and constructs a pending order with a zero total in the
// default currency.
func NewOrder(
	orderNumber string,
	orderType Type,
	warehouseID uuid.UUID,
	expectedDate *time.Time,
	customerReference string,
	shippingAddress *shared.Address,
	createdBy string,
) (*Order, error) {
	if strings.TrimSpace(orderNumber) == "" {
		return nil, fmt.Errorf("%w: order number cannot be empty", shared.ErrInvalidValue)
	}
	if warehouseID == uuid.Nil {
		return nil, fmt.Errorf("%w: warehouse id is required", shared.ErrInvalidValue)
	}

	return &Order{
		Entity:            shared.NewEntity(createdBy),
		OrderNumber:       orderNumber,
		Type:              orderType,
		Status:            StatusPending,
		WarehouseID:       warehouseID,
		OrderDate:         time.Now().UTC(),
		ExpectedDate:      expectedDate,
		CustomerReference: customerReference,
		ShippingAddress:   shippingAddress,
		TotalValue:        shared.ZeroMoney(DefaultCurrency),
	}, nil
}

// AddLine attaches a line, rejecting a second line for the same product, and
// recomputes the total. The line is not attached if recomputation fails
// (e.g. a currency mismatch against existing lines).
func (o *Order) AddLine(line *Line) error {
	if line == nil {
		return fmt.Errorf("%w: order line is required", shared.ErrInvalidValue)
	}
	for i := range o.Lines {
		if o.Lines[i].ProductID == line.ProductID {
			return fmt.Errorf("%w: product %s already exists in this order", shared.ErrDuplicateKey, line.ProductID)
		}
	}

	candidate := append(append([]Line(nil), o.Lines...), *line)
	total, err := sumLines(candidate)
	if err != nil {
		return err
	}

	o.Lines = candidate
	o.TotalValue = total
	return nil
}

// RemoveLine detaches a line by id and recomputes the total. When the last
// line is removed the total resets to zero in the default currency.
func (o *Order) RemoveLine(lineID uuid.UUID) error {
	idx := -1
	for i := range o.Lines {
		if o.Lines[i].ID == lineID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: order line %s", shared.ErrNotFound, lineID)
	}

	remaining := append(append([]Line(nil), o.Lines[:idx]...), o.Lines[idx+1:]...)
	total, err := sumLines(remaining)
	if err != nil {
		return err
	}

	o.Lines = remaining
	o.TotalValue = total
	return nil
}

// FindLine returns the owned line with the given id.
func (o *Order) FindLine(lineID uuid.UUID) (*Line, error) {
	for i := range o.Lines {
		if o.Lines[i].ID == lineID {
			return &o.Lines[i], nil
		}
	}
	return nil, fmt.Errorf("%w: order line %s", shared.ErrNotFound, lineID)
}

// Confirm moves Pending -> Confirmed. An order without lines cannot be
// confirmed.
func (o *Order) Confirm(actor string) error {
	if o.Status != StatusPending {
		return fmt.Errorf("%w: cannot confirm order in %s status", shared.ErrInvalidTransition, o.Status)
	}
	if len(o.Lines) == 0 {
		return fmt.Errorf("%w: cannot confirm order without lines", shared.ErrEmptyOrder)
	}
	o.transition(StatusConfirmed, actor)
	return nil
}

// StartProcessing moves Confirmed -> InProgress.
func (o *Order) StartProcessing(actor string) error {
	if o.Status != StatusConfirmed {
		return fmt.Errorf("%w: cannot start processing order in %s status", shared.ErrInvalidTransition, o.Status)
	}
	o.transition(StatusInProgress, actor)
	return nil
}

// MarkAsPacked moves InProgress -> Packed.
func (o *Order) MarkAsPacked(actor string) error {
	if o.Status != StatusInProgress {
		return fmt.Errorf("%w: cannot pack order in %s status", shared.ErrInvalidTransition, o.Status)
	}
	o.transition(StatusPacked, actor)
	return nil
}

// MarkAsShipped moves Packed -> Shipped.
func (o *Order) MarkAsShipped(actor string) error {
	if o.Status != StatusPacked {
		return fmt.Errorf("%w: cannot ship order in %s status", shared.ErrInvalidTransition, o.Status)
	}
	o.transition(StatusShipped, actor)
	return nil
}

// MarkAsDelivered moves Shipped -> Delivered, the terminal state, and stamps
// the completion date.
func (o *Order) MarkAsDelivered(actor string) error {
	if o.Status != StatusShipped {
		return fmt.Errorf("%w: cannot deliver order in %s status", shared.ErrInvalidTransition, o.Status)
	}
	now := time.Now().UTC()
	o.CompletedDate = &now
	o.transition(StatusDelivered, actor)
	return nil
}

// Cancel moves any non-delivered order to Cancelled and records the reason
// in the notes.
func (o *Order) Cancel(reason, actor string) error {
	if o.Status == StatusDelivered {
		return fmt.Errorf("%w: cannot cancel delivered order", shared.ErrInvalidTransition)
	}
	o.Notes = fmt.Sprintf("Cancelled: %s", reason)
	o.transition(StatusCancelled, actor)
	return nil
}

func (o *Order) transition(next Status, actor string) {
	previous := o.Status
	o.Status = next
	o.MarkUpdated(actor)

	o.Record(StatusChanged{
		BaseEvent:   shared.NewBaseEvent(),
		OrderID:     o.ID,
		OrderNumber: o.OrderNumber,
		From:        previous,
		To:          next,
	})
}

// sumLines totals unit price times quantity across lines. All lines must
// share one currency; an empty set totals to zero in the default currency.
func sumLines(lines []Line) (shared.Money, error) {
	if len(lines) == 0 {
		return shared.ZeroMoney(DefaultCurrency), nil
	}

	total := shared.ZeroMoney(lines[0].UnitPrice.Currency)
	for i := range lines {
		lineTotal, err := lines[i].Total()
		if err != nil {
			return shared.Money{}, err
		}
		total, err = total.Add(lineTotal)
		if err != nil {
			return shared.Money{}, err
		}
	}
	return total, nil
}

// NewLine validates and constructs an order line with no pick/ship progress.
func NewLine(orderID, productID uuid.UUID, quantity int, unitPrice shared.Money, createdBy string) (*Line, error) {
	if orderID == uuid.Nil {
		return nil, fmt.Errorf("%w: order id is required", shared.ErrInvalidValue)
	}
	if productID == uuid.Nil {
		return nil, fmt.Errorf("%w: product id is required", shared.ErrInvalidValue)
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", shared.ErrInvalidValue)
	}

	return &Line{
		Entity:          shared.NewEntity(createdBy),
		OrderID:         orderID,
		ProductID:       productID,
		Quantity:        quantity,
		UnitPrice:       unitPrice,
		QuantityPicked:  0,
		QuantityShipped: 0,
	}, nil
}

// Total is unit price times ordered quantity.
func (l *Line) Total() (shared.Money, error) {
	return l.UnitPrice.Multiply(decimal.NewFromInt(int64(l.Quantity)))
}

// UpdateQuantity replaces the ordered quantity.
func (l *Line) UpdateQuantity(quantity int, actor string) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", shared.ErrInvalidValue)
	}
	l.Quantity = quantity
	l.MarkUpdated(actor)
	return nil
}

// Pick records picked units. Cumulative picks never exceed the ordered
// quantity.
func (l *Line) Pick(quantity int, actor string) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", shared.ErrInvalidValue)
	}
	if l.QuantityPicked+quantity > l.Quantity {
		return fmt.Errorf("%w: ordered %d, picked %d, requested %d", shared.ErrOverPick, l.Quantity, l.QuantityPicked, quantity)
	}
	l.QuantityPicked += quantity
	l.MarkUpdated(actor)
	return nil
}

// Ship records shipped units. Cumulative shipments never exceed the picked
// quantity.
func (l *Line) Ship(quantity int, actor string) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", shared.ErrInvalidValue)
	}
	if l.QuantityShipped+quantity > l.QuantityPicked {
		return fmt.Errorf("%w: picked %d, shipped %d, requested %d", shared.ErrOverShip, l.QuantityPicked, l.QuantityShipped, quantity)
	}
	l.QuantityShipped += quantity
	l.MarkUpdated(actor)
	return nil
}
