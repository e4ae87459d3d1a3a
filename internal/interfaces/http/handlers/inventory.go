// internal/interfaces/http/handlers/inventory.go
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/your-org/wms-backend/internal/domain/inventory"
	"github.com/your-org/wms-backend/internal/domain/shared"
	"github.com/your-org/wms-backend/internal/infrastructure/database/postgres"
)

// InventoryHandler handles stock ledger endpoints
type InventoryHandler struct {
	inventoryService *inventory.Service
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(db *gorm.DB, publisher shared.EventPublisher) *InventoryHandler {
	return &InventoryHandler{
		inventoryService: inventory.NewService(postgres.NewInventoryRepository(db), publisher),
	}
}

// CreateInventory handles POST /inventory
func (h *InventoryHandler) CreateInventory(c *gin.Context) {
	var req inventory.CreateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	inv, err := h.inventoryService.CreateInventory(c.Request.Context(), &req, actor(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Inventory created successfully",
		"data":    inv,
	})
}

// GetInventory handles GET /inventory/:id
func (h *InventoryHandler) GetInventory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	inv, err := h.inventoryService.GetInventory(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Inventory retrieved successfully",
		"data":    inv,
	})
}

// GetWarehouseInventory handles GET /inventory/warehouse/:warehouseId
func (h *InventoryHandler) GetWarehouseInventory(c *gin.Context) {
	warehouseID, ok := parseID(c, "warehouseId")
	if !ok {
		return
	}

	items, err := h.inventoryService.GetWarehouseInventory(c.Request.Context(), warehouseID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Inventory retrieved successfully",
		"data":    items,
	})
}

// GetProductInventory handles GET /inventory/product/:productId
func (h *InventoryHandler) GetProductInventory(c *gin.Context) {
	productID, ok := parseID(c, "productId")
	if !ok {
		return
	}

	items, err := h.inventoryService.GetProductInventory(c.Request.Context(), productID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Inventory retrieved successfully",
		"data":    items,
	})
}

// GetInventoryByPosition handles GET /inventory/position with query params.
func (h *InventoryHandler) GetInventoryByPosition(c *gin.Context) {
	productID, err := uuid.Parse(c.Query("product_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
		return
	}
	warehouseID, err := uuid.Parse(c.Query("warehouse_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid warehouse_id"})
		return
	}
	locationID, err := uuid.Parse(c.Query("location_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid location_id"})
		return
	}

	inv, err := h.inventoryService.GetInventoryByPosition(c.Request.Context(), productID, warehouseID, locationID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Inventory retrieved successfully",
		"data":    inv,
	})
}

// GetLowStockItems handles GET /inventory/low-stock
func (h *InventoryHandler) GetLowStockItems(c *gin.Context) {
	items, err := h.inventoryService.GetLowStockItems(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Low stock items retrieved successfully",
		"data":    items,
	})
}

// IncreaseStock handles POST /inventory/:id/increase
func (h *InventoryHandler) IncreaseStock(c *gin.Context) {
	h.applyStockChange(c, h.inventoryService.IncreaseStock, "Stock increased successfully")
}

// DecreaseStock handles POST /inventory/:id/decrease
func (h *InventoryHandler) DecreaseStock(c *gin.Context) {
	h.applyStockChange(c, h.inventoryService.DecreaseStock, "Stock decreased successfully")
}

// ReserveStock handles POST /inventory/:id/reserve
func (h *InventoryHandler) ReserveStock(c *gin.Context) {
	h.applyStockChange(c, h.inventoryService.ReserveStock, "Stock reserved successfully")
}

// ReleaseReservation handles POST /inventory/:id/release
func (h *InventoryHandler) ReleaseReservation(c *gin.Context) {
	h.applyStockChange(c, h.inventoryService.ReleaseReservation, "Reservation released successfully")
}

type stockChangeFn func(ctx context.Context, id uuid.UUID, req *inventory.StockChangeRequest, actor string) (*inventory.Inventory, error)

func (h *InventoryHandler) applyStockChange(c *gin.Context, op stockChangeFn, message string) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req inventory.StockChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	inv, err := op(c.Request.Context(), id, &req, actor(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"data":    inv,
	})
}

// AdjustStock handles POST /inventory/:id/adjust
func (h *InventoryHandler) AdjustStock(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req inventory.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	inv, err := h.inventoryService.AdjustStock(c.Request.Context(), id, &req, actor(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Stock adjusted successfully",
		"data":    inv,
	})
}
