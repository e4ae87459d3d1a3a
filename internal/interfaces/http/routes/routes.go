// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/your-org/wms-backend/internal/config"
	"github.com/your-org/wms-backend/internal/infrastructure/events"
	"github.com/your-org/wms-backend/internal/interfaces/http/handlers"
)

// SetupRoutes wires every API route group onto the given router group.
func SetupRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {
	logger := logrus.New()
	if cfg.Logging.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	if level, err := logrus.ParseLevel(cfg.Logging.Level); err == nil {
		logger.SetLevel(level)
	}

	publisher := events.NewRedisPublisher(redisClient, logger)

	SetupProductRoutes(rg, db)
	SetupWarehouseRoutes(rg, db)
	SetupInventoryRoutes(rg, db, publisher)
	SetupOrderRoutes(rg, db, publisher)
}

// SetupProductRoutes sets up product catalog routes
func SetupProductRoutes(rg *gin.RouterGroup, db *gorm.DB) {
	productHandler := handlers.NewProductHandler(db)

	products := rg.Group("/products")
	{
		products.POST("", productHandler.CreateProduct)
		products.GET("", productHandler.GetProducts)
		products.GET("/:id", productHandler.GetProduct)
		products.GET("/sku/:sku", productHandler.GetProductBySKU)
		products.PUT("/:id", productHandler.UpdateProduct)
		products.PUT("/:id/reorder-settings", productHandler.UpdateReorderSettings)
		products.POST("/:id/activate", productHandler.ActivateProduct)
		products.POST("/:id/deactivate", productHandler.DeactivateProduct)
		products.DELETE("/:id", productHandler.DeleteProduct)
	}
}

// SetupWarehouseRoutes sets up warehouse topology routes
func SetupWarehouseRoutes(rg *gin.RouterGroup, db *gorm.DB) {
	warehouseHandler := handlers.NewWarehouseHandler(db)

	warehouses := rg.Group("/warehouses")
	{
		warehouses.POST("", warehouseHandler.CreateWarehouse)
		warehouses.GET("", warehouseHandler.GetWarehouses)
		warehouses.GET("/:id", warehouseHandler.GetWarehouse)
		warehouses.GET("/code/:code", warehouseHandler.GetWarehouseByCode)
		warehouses.PUT("/:id", warehouseHandler.UpdateWarehouse)
		warehouses.POST("/:id/activate", warehouseHandler.ActivateWarehouse)
		warehouses.POST("/:id/deactivate", warehouseHandler.DeactivateWarehouse)

		warehouses.POST("/:id/locations", warehouseHandler.AddLocation)
		warehouses.POST("/:id/locations/:locationId/activate", warehouseHandler.ActivateLocation)
		warehouses.POST("/:id/locations/:locationId/deactivate", warehouseHandler.DeactivateLocation)
	}
}

// SetupInventoryRoutes sets up stock ledger routes
func SetupInventoryRoutes(rg *gin.RouterGroup, db *gorm.DB, publisher *events.RedisPublisher) {
	inventoryHandler := handlers.NewInventoryHandler(db, publisher)

	inventory := rg.Group("/inventory")
	{
		inventory.POST("", inventoryHandler.CreateInventory)
		inventory.GET("/position", inventoryHandler.GetInventoryByPosition)
		inventory.GET("/low-stock", inventoryHandler.GetLowStockItems)
		inventory.GET("/warehouse/:warehouseId", inventoryHandler.GetWarehouseInventory)
		inventory.GET("/product/:productId", inventoryHandler.GetProductInventory)
		inventory.GET("/:id", inventoryHandler.GetInventory)

		inventory.POST("/:id/increase", inventoryHandler.IncreaseStock)
		inventory.POST("/:id/decrease", inventoryHandler.DecreaseStock)
		inventory.POST("/:id/reserve", inventoryHandler.ReserveStock)
		inventory.POST("/:id/release", inventoryHandler.ReleaseReservation)
		inventory.POST("/:id/adjust", inventoryHandler.AdjustStock)
	}
}

// SetupOrderRoutes sets up order lifecycle routes
func SetupOrderRoutes(rg *gin.RouterGroup, db *gorm.DB, publisher *events.RedisPublisher) {
	orderHandler := handlers.NewOrderHandler(db, publisher)

	orders := rg.Group("/orders")
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("", orderHandler.GetOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.GET("/number/:orderNumber", orderHandler.GetOrderByNumber)

		orders.POST("/:id/confirm", orderHandler.ConfirmOrder)
		orders.POST("/:id/start-processing", orderHandler.StartProcessing)
		orders.POST("/:id/pack", orderHandler.PackOrder)
		orders.POST("/:id/ship", orderHandler.ShipOrder)
		orders.POST("/:id/deliver", orderHandler.DeliverOrder)
		orders.POST("/:id/cancel", orderHandler.CancelOrder)

		orders.POST("/:id/lines", orderHandler.AddLine)
		orders.DELETE("/:id/lines/:lineId", orderHandler.RemoveLine)
		orders.POST("/:id/lines/:lineId/pick", orderHandler.PickLine)
		orders.POST("/:id/lines/:lineId/ship", orderHandler.ShipLine)
	}
}
