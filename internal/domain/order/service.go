// internal/domain/order/service.go
package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/your-org/wms-backend/internal/domain/shared"
)

// Service handles order lifecycle business logic: validate, load, mutate,
// save, then publish the drained events.
type Service struct {
	repo      Repository
	publisher shared.EventPublisher
}

// NewService creates a new order service.
func NewService(repo Repository, publisher shared.EventPublisher) *Service {
	return &Service{repo: repo, publisher: publisher}
}

// CreateOrderLineRequest represents one line of a new order.
type CreateOrderLineRequest struct {
	ProductID uuid.UUID       `json:"product_id" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required"`
	UnitPrice decimal.Decimal `json:"unit_price" binding:"required"`
	Currency  string          `json:"currency" binding:"required"`
}

// CreateOrderRequest represents order creation data.
type CreateOrderRequest struct {
	OrderNumber       string                   `json:"order_number" binding:"required"`
	Type              Type                     `json:"type" binding:"required,oneof=inbound outbound"`
	WarehouseID       uuid.UUID                `json:"warehouse_id" binding:"required"`
	ExpectedDate      *time.Time               `json:"expected_date,omitempty"`
	CustomerReference string                   `json:"customer_reference"`
	ShippingAddress   *shared.Address          `json:"shipping_address,omitempty"`
	Lines             []CreateOrderLineRequest `json:"lines"`
}

// AddLineRequest represents a line added to an existing order.
type AddLineRequest struct {
	ProductID uuid.UUID       `json:"product_id" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required"`
	UnitPrice decimal.Decimal `json:"unit_price" binding:"required"`
	Currency  string          `json:"currency" binding:"required"`
}

// LineProgressRequest represents picked or shipped units on a line.
type LineProgressRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// CancelRequest carries the cancellation reason.
type CancelRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// CreateOrder creates a pending order with its initial lines, enforcing
// order-number uniqueness against the repository.
func (s *Service) CreateOrder(ctx context.Context, req *CreateOrderRequest, actor string) (*Order, error) {
	exists, err := s.repo.ExistsByOrderNumber(ctx, req.OrderNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to check order number: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: order %q already exists", shared.ErrDuplicateKey, req.OrderNumber)
	}

	o, err := NewOrder(req.OrderNumber, req.Type, req.WarehouseID, req.ExpectedDate, req.CustomerReference, req.ShippingAddress, actor)
	if err != nil {
		return nil, err
	}

	for _, lineReq := range req.Lines {
		unitPrice, err := shared.NewMoney(lineReq.UnitPrice, lineReq.Currency)
		if err != nil {
			return nil, err
		}
		line, err := NewLine(o.ID, lineReq.ProductID, lineReq.Quantity, unitPrice, actor)
		if err != nil {
			return nil, err
		}
		if err := o.AddLine(line); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Add(ctx, o); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	s.publisher.Publish(o.DrainEvents()...)
	return o, nil
}

// AddLine attaches a new line to an existing order.
func (s *Service) AddLine(ctx context.Context, orderID uuid.UUID, req *AddLineRequest, actor string) (*Order, error) {
	return s.mutate(ctx, orderID, func(o *Order) error {
		unitPrice, err := shared.NewMoney(req.UnitPrice, req.Currency)
		if err != nil {
			return err
		}
		line, err := NewLine(o.ID, req.ProductID, req.Quantity, unitPrice, actor)
		if err != nil {
			return err
		}
		if err := o.AddLine(line); err != nil {
			return err
		}
		o.MarkUpdated(actor)
		return nil
	})
}

// RemoveLine detaches a line from an order.
func (s *Service) RemoveLine(ctx context.Context, orderID, lineID uuid.UUID, actor string) (*Order, error) {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := o.RemoveLine(lineID); err != nil {
		return nil, err
	}
	o.MarkUpdated(actor)

	if err := s.repo.RemoveLine(ctx, lineID); err != nil {
		return nil, fmt.Errorf("failed to remove order line: %w", err)
	}
	if err := s.repo.Update(ctx, o); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}
	s.publisher.Publish(o.DrainEvents()...)
	return o, nil
}

// PickLine records picked units on a line.
func (s *Service) PickLine(ctx context.Context, orderID, lineID uuid.UUID, req *LineProgressRequest, actor string) (*Order, error) {
	return s.mutate(ctx, orderID, func(o *Order) error {
		line, err := o.FindLine(lineID)
		if err != nil {
			return err
		}
		return line.Pick(req.Quantity, actor)
	})
}

// ShipLine records shipped units on a line.
func (s *Service) ShipLine(ctx context.Context, orderID, lineID uuid.UUID, req *LineProgressRequest, actor string) (*Order, error) {
	return s.mutate(ctx, orderID, func(o *Order) error {
		line, err := o.FindLine(lineID)
		if err != nil {
			return err
		}
		return line.Ship(req.Quantity, actor)
	})
}

// Confirm transitions a pending order with lines to confirmed.
func (s *Service) Confirm(ctx context.Context, orderID uuid.UUID, actor string) (*Order, error) {
	return s.mutate(ctx, orderID, func(o *Order) error { return o.Confirm(actor) })
}

// StartProcessing transitions a confirmed order to in progress.
func (s *Service) StartProcessing(ctx context.Context, orderID uuid.UUID, actor string) (*Order, error) {
	return s.mutate(ctx, orderID, func(o *Order) error { return o.StartProcessing(actor) })
}

// MarkAsPacked transitions an in-progress order to packed.
func (s *Service) MarkAsPacked(ctx context.Context, orderID uuid.UUID, actor string) (*Order, error) {
	return s.mutate(ctx, orderID, func(o *Order) error { return o.MarkAsPacked(actor) })
}

// MarkAsShipped transitions a packed order to shipped.
func (s *Service) MarkAsShipped(ctx context.Context, orderID uuid.UUID, actor string) (*Order, error) {
	return s.mutate(ctx, orderID, func(o *Order) error { return o.MarkAsShipped(actor) })
}

// MarkAsDelivered transitions a shipped order to delivered.
func (s *Service) MarkAsDelivered(ctx context.Context, orderID uuid.UUID, actor string) (*Order, error) {
	return s.mutate(ctx, orderID, func(o *Order) error { return o.MarkAsDelivered(actor) })
}

// Cancel cancels any non-delivered order, recording the reason.
func (s *Service) Cancel(ctx context.Context, orderID uuid.UUID, req *CancelRequest, actor string) (*Order, error) {
	return s.mutate(ctx, orderID, func(o *Order) error { return o.Cancel(req.Reason, actor) })
}

// mutate is the shared load-apply-save-publish path. A failing operation
// aborts before the save, so no partial state reaches the repository.
func (s *Service) mutate(ctx context.Context, orderID uuid.UUID, op func(*Order) error) (*Order, error) {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := op(o); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, o); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}
	s.publisher.Publish(o.DrainEvents()...)
	return o, nil
}

// GetOrder retrieves one order with its lines.
func (s *Service) GetOrder(ctx context.Context, id uuid.UUID) (*Order, error) {
	return s.repo.GetByID(ctx, id)
}

// GetOrderByNumber retrieves one order by its natural key.
func (s *Service) GetOrderByNumber(ctx context.Context, orderNumber string) (*Order, error) {
	return s.repo.GetByOrderNumber(ctx, orderNumber)
}

// GetOrders lists orders, optionally filtered by warehouse or status.
func (s *Service) GetOrders(ctx context.Context, warehouseID uuid.UUID, status Status) ([]Order, error) {
	switch {
	case warehouseID != uuid.Nil:
		return s.repo.GetByWarehouse(ctx, warehouseID)
	case status != "":
		return s.repo.GetByStatus(ctx, status)
	default:
		return s.repo.GetAll(ctx)
	}
}
