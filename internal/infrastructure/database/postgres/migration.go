// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/your-org/wms-backend/internal/domain/inventory"
	"github.com/your-org/wms-backend/internal/domain/order"
	"github.com/your-org/wms-backend/internal/domain/product"
	"github.com/your-org/wms-backend/internal/domain/warehouse"
)

// Migration handles database migrations
type Migration struct {
	db *gorm.DB
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB) *Migration {
	return &Migration{db: db}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	log.Println("🔄 Running database auto-migrations...")

	// Dependency order: topology first, then catalog, then documents.
	models := []interface{}{
		&warehouse.Warehouse{},
		&warehouse.Location{},

		&product.Product{},

		&inventory.Inventory{},

		&order.Order{},
		&order.Line{},
	}

	for _, model := range models {
		log.Printf("Migrating model: %T", model)
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	log.Println("✅ Database auto-migrations completed successfully")
	return nil
}

// CreateIndexes creates additional indexes for better performance
func (m *Migration) CreateIndexes() error {
	log.Println("🔄 Creating additional database indexes...")

	indexes := []string{
		// Product indexes
		"CREATE INDEX IF NOT EXISTS idx_products_category_active ON products(category, is_active)",
		"CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at DESC)",

		// Location indexes
		"CREATE INDEX IF NOT EXISTS idx_locations_warehouse_active ON locations(warehouse_id, is_active)",

		// Inventory indexes
		"CREATE INDEX IF NOT EXISTS idx_inventories_warehouse ON inventories(warehouse_id)",
		"CREATE INDEX IF NOT EXISTS idx_inventories_product ON inventories(product_id)",
		"CREATE INDEX IF NOT EXISTS idx_inventories_last_stock_check ON inventories(last_stock_check)",

		// Order indexes
		"CREATE INDEX IF NOT EXISTS idx_orders_warehouse_status ON orders(warehouse_id, status)",
		"CREATE INDEX IF NOT EXISTS idx_orders_order_date ON orders(order_date DESC)",
		"CREATE INDEX IF NOT EXISTS idx_order_lines_order ON order_lines(order_id)",
		"CREATE INDEX IF NOT EXISTS idx_order_lines_product ON order_lines(product_id)",
	}

	for _, index := range indexes {
		if err := m.db.Exec(index).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	log.Println("✅ Database indexes created successfully")
	return nil
}
