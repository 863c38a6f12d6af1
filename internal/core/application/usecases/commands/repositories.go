// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// remote coordination where required, transaction management, persistence.
package commands

import (
	"context"

	"controltower/internal/core/ports"
	"controltower/internal/pkg/pool"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Handlers declare only the repositories they need.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ProductRepoFactory provides access to the product repository.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// ShopRepoFactory provides access to the shop repository.
	ShopRepoFactory interface {
		ShopRepository() ports.ShopRepository
	}

	// WarehouseRepoFactory provides access to the warehouse repository.
	WarehouseRepoFactory interface {
		WarehouseRepository() ports.WarehouseRepository
	}

	// OrderUoW manages transactions for order-only lifecycle operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CheckoutUoW manages transactions for operations that touch orders,
	// the catalog, and warehouses together (checkout, dispatch).
	CheckoutUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
		WarehouseRepoFactory
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// CatalogUoW manages transactions for catalog write operations.
	CatalogUoW interface {
		TxManager
		ProductRepoFactory
		ShopRepoFactory
	}

	// CatalogUoWFactory creates new catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}
)

// withStore runs fn inside a slot of the bounded store pool. Every blocking
// storage access in a handler goes through here so that at most pool-size
// operations block on the database at once; remote calls stay outside.
func withStore(ctx context.Context, p *pool.Pool, fn func() error) error {
	if err := p.Acquire(ctx); err != nil {
		return err
	}
	defer p.Release()
	return fn()
}
