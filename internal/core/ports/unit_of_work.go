package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and repository access; repositories
// obtained before Begin run against the main connection, repositories
// obtained after Begin run inside the transaction. Client code must
// explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns an error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns an error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current
	// transaction, if one is active.
	OrderRepository() OrderRepository

	// ProductRepository returns a ProductRepository bound to the current
	// transaction, if one is active.
	ProductRepository() ProductRepository

	// ShopRepository returns a ShopRepository bound to the current
	// transaction, if one is active.
	ShopRepository() ShopRepository

	// WarehouseRepository returns a WarehouseRepository bound to the current
	// transaction, if one is active.
	WarehouseRepository() WarehouseRepository
}
