package ports

import (
	"context"

	"controltower/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The store is the sole place order state is durably read back from.
type OrderRepository interface {
	// Add persists a new order aggregate and assigns its identity on the
	// aggregate via AssignID.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. The update
	// carries an optimistic version check: if the stored version no longer
	// matches the aggregate's loaded version, a stale-object error is
	// returned and nothing is written.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate with its line items by identity.
	// Returns an object-not-found error when the order does not exist.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetAll retrieves all orders with their line items.
	GetAll(ctx context.Context) ([]*order.Order, error)
}
