// internal/interfaces/http/handlers/order.go
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/your-org/wms-backend/internal/domain/order"
	"github.com/your-org/wms-backend/internal/domain/shared"
	"github.com/your-org/wms-backend/internal/infrastructure/database/postgres"
)

// OrderHandler handles order lifecycle endpoints
type OrderHandler struct {
	orderService *order.Service
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(db *gorm.DB, publisher shared.EventPublisher) *OrderHandler {
	return &OrderHandler{
		orderService: order.NewService(postgres.NewOrderRepository(db), publisher),
	}
}

// CreateOrder handles POST /orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req order.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	o, err := h.orderService.CreateOrder(c.Request.Context(), &req, actor(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order created successfully",
		"data":    o,
	})
}

// GetOrders handles GET /orders with optional warehouse_id/status filters.
func (h *OrderHandler) GetOrders(c *gin.Context) {
	var warehouseID uuid.UUID
	if raw := c.Query("warehouse_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid warehouse_id"})
			return
		}
		warehouseID = id
	}

	orders, err := h.orderService.GetOrders(c.Request.Context(), warehouseID, order.Status(c.Query("status")))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Orders retrieved successfully",
		"data":    orders,
	})
}

// GetOrder handles GET /orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	o, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order retrieved successfully",
		"data":    o,
	})
}

// GetOrderByNumber handles GET /orders/number/:orderNumber
func (h *OrderHandler) GetOrderByNumber(c *gin.Context) {
	o, err := h.orderService.GetOrderByNumber(c.Request.Context(), c.Param("orderNumber"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order retrieved successfully",
		"data":    o,
	})
}

// AddLine handles POST /orders/:id/lines
func (h *OrderHandler) AddLine(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req order.AddLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	o, err := h.orderService.AddLine(c.Request.Context(), id, &req, actor(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order line added successfully",
		"data":    o,
	})
}

// RemoveLine handles DELETE /orders/:id/lines/:lineId
func (h *OrderHandler) RemoveLine(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	lineID, ok := parseID(c, "lineId")
	if !ok {
		return
	}

	o, err := h.orderService.RemoveLine(c.Request.Context(), id, lineID, actor(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order line removed successfully",
		"data":    o,
	})
}

// PickLine handles POST /orders/:id/lines/:lineId/pick
func (h *OrderHandler) PickLine(c *gin.Context) {
	h.applyLineProgress(c, h.orderService.PickLine, "Order line picked successfully")
}

// ShipLine handles POST /orders/:id/lines/:lineId/ship
func (h *OrderHandler) ShipLine(c *gin.Context) {
	h.applyLineProgress(c, h.orderService.ShipLine, "Order line shipped successfully")
}

type lineProgressFn func(ctx context.Context, orderID, lineID uuid.UUID, req *order.LineProgressRequest, actor string) (*order.Order, error)

func (h *OrderHandler) applyLineProgress(c *gin.Context, op lineProgressFn, message string) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	lineID, ok := parseID(c, "lineId")
	if !ok {
		return
	}

	var req order.LineProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	o, err := op(c.Request.Context(), id, lineID, &req, actor(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"data":    o,
	})
}

// ConfirmOrder handles POST /orders/:id/confirm
func (h *OrderHandler) ConfirmOrder(c *gin.Context) {
	h.applyTransition(c, h.orderService.Confirm, "Order confirmed successfully")
}

// StartProcessing handles POST /orders/:id/start-processing
func (h *OrderHandler) StartProcessing(c *gin.Context) {
	h.applyTransition(c, h.orderService.StartProcessing, "Order processing started successfully")
}

// PackOrder handles POST /orders/:id/pack
func (h *OrderHandler) PackOrder(c *gin.Context) {
	h.applyTransition(c, h.orderService.MarkAsPacked, "Order packed successfully")
}

// ShipOrder handles POST /orders/:id/ship
func (h *OrderHandler) ShipOrder(c *gin.Context) {
	h.applyTransition(c, h.orderService.MarkAsShipped, "Order shipped successfully")
}

// DeliverOrder handles POST /orders/:id/deliver
func (h *OrderHandler) DeliverOrder(c *gin.Context) {
	h.applyTransition(c, h.orderService.MarkAsDelivered, "Order delivered successfully")
}

type transitionFn func(ctx context.Context, orderID uuid.UUID, actor string) (*order.Order, error)

func (h *OrderHandler) applyTransition(c *gin.Context, op transitionFn, message string) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	o, err := op(c.Request.Context(), id, actor(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"data":    o,
	})
}

// CancelOrder handles POST /orders/:id/cancel
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req order.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	o, err := h.orderService.Cancel(c.Request.Context(), id, &req, actor(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order cancelled successfully",
		"data":    o,
	})
}
