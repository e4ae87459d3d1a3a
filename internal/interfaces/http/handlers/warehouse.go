// internal/interfaces/http/handlers/warehouse.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/your-org/wms-backend/internal/domain/warehouse"
	"github.com/your-org/wms-backend/internal/infrastructure/database/postgres"
)

// WarehouseHandler handles warehouse topology endpoints
type WarehouseHandler struct {
	warehouseService *warehouse.Service
}

// NewWarehouseHandler creates a new warehouse handler
func NewWarehouseHandler(db *gorm.DB) *WarehouseHandler {
	return &WarehouseHandler{
		warehouseService: warehouse.NewService(postgres.NewWarehouseRepository(db)),
	}
}

// CreateWarehouse handles POST /warehouses
func (h *WarehouseHandler) CreateWarehouse(c *gin.Context) {
	var req warehouse.CreateWarehouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	wh, err := h.warehouseService.CreateWarehouse(c.Request.Context(), &req, actor(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Warehouse created successfully",
		"data":    wh,
	})
}

// GetWarehouses handles GET /warehouses
func (h *WarehouseHandler) GetWarehouses(c *gin.Context) {
	warehouses, err := h.warehouseService.GetWarehouses(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Warehouses retrieved successfully",
		"data":    warehouses,
	})
}

// GetWarehouse handles GET /warehouses/:id
func (h *WarehouseHandler) GetWarehouse(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	wh, err := h.warehouseService.GetWarehouse(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Warehouse retrieved successfully",
		"data":    wh,
	})
}

// GetWarehouseByCode handles GET /warehouses/code/:code
func (h *WarehouseHandler) GetWarehouseByCode(c *gin.Context) {
	wh, err := h.warehouseService.GetWarehouseByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Warehouse retrieved successfully",
		"data":    wh,
	})
}

// UpdateWarehouse handles PUT /warehouses/:id
func (h *WarehouseHandler) UpdateWarehouse(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req warehouse.UpdateWarehouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	wh, err := h.warehouseService.UpdateWarehouse(c.Request.Context(), id, &req, actor(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Warehouse updated successfully",
		"data":    wh,
	})
}

// AddLocation handles POST /warehouses/:id/locations
func (h *WarehouseHandler) AddLocation(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req warehouse.AddLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	loc, err := h.warehouseService.AddLocation(c.Request.Context(), id, &req, actor(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Location added successfully",
		"data":    loc,
	})
}

// ActivateLocation handles POST /warehouses/:id/locations/:locationId/activate
func (h *WarehouseHandler) ActivateLocation(c *gin.Context) {
	h.setLocationActive(c, true, "Location activated successfully")
}

// DeactivateLocation handles POST /warehouses/:id/locations/:locationId/deactivate
func (h *WarehouseHandler) DeactivateLocation(c *gin.Context) {
	h.setLocationActive(c, false, "Location deactivated successfully")
}

func (h *WarehouseHandler) setLocationActive(c *gin.Context, active bool, message string) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	locationID, ok := parseID(c, "locationId")
	if !ok {
		return
	}

	loc, err := h.warehouseService.SetLocationActive(c.Request.Context(), id, locationID, active, actor(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"data":    loc,
	})
}

// ActivateWarehouse handles POST /warehouses/:id/activate
func (h *WarehouseHandler) ActivateWarehouse(c *gin.Context) {
	h.setActive(c, true, "Warehouse activated successfully")
}

// DeactivateWarehouse handles POST /warehouses/:id/deactivate
func (h *WarehouseHandler) DeactivateWarehouse(c *gin.Context) {
	h.setActive(c, false, "Warehouse deactivated successfully")
}

func (h *WarehouseHandler) setActive(c *gin.Context, active bool, message string) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	wh, err := h.warehouseService.SetActive(c.Request.Context(), id, active, actor(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"data":    wh,
	})
}
