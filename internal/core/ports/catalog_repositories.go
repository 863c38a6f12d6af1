package ports

import (
	"context"

	"controltower/internal/core/domain/model/product"
	"controltower/internal/core/domain/model/shop"
	"controltower/internal/core/domain/model/warehouse"
)

// ProductRepository defines the persistence contract for catalog products.
type ProductRepository interface {
	// Add persists a new product and assigns its identity on the entity.
	Add(ctx context.Context, entity *product.Product) error

	// Update persists changes to an existing product.
	Update(ctx context.Context, entity *product.Product) error

	// Get retrieves a product by identity; object-not-found when absent.
	Get(ctx context.Context, id int64) (*product.Product, error)

	// GetAll retrieves the whole catalog.
	GetAll(ctx context.Context) ([]*product.Product, error)

	// Delete removes a product; object-not-found when absent.
	Delete(ctx context.Context, id int64) error
}

// ShopRepository defines the persistence contract for shops.
type ShopRepository interface {
	// Add persists a new shop and assigns its identity on the entity.
	Add(ctx context.Context, entity *shop.Shop) error

	// Get retrieves a shop by identity; object-not-found when absent.
	Get(ctx context.Context, id int64) (*shop.Shop, error)

	// Delete removes a shop; object-not-found when absent.
	Delete(ctx context.Context, id int64) error
}

// WarehouseRepository defines the persistence contract for warehouses.
type WarehouseRepository interface {
	// Add persists a new warehouse and assigns its identity on the entity.
	Add(ctx context.Context, entity *warehouse.Warehouse) error

	// Get retrieves a warehouse by identity; object-not-found when absent.
	Get(ctx context.Context, id int64) (*warehouse.Warehouse, error)

	// GetAll retrieves all warehouses.
	GetAll(ctx context.Context) ([]*warehouse.Warehouse, error)
}
