package ports

import "context"

// StockItem is a (product id, quantity) pair submitted for stock verification.
type StockItem struct {
	ProductID int64
	Quantity  int
}

// StockChecker verifies with the warehouse service that the requested
// quantities are available. The client is stateless and performs no retries;
// the retry policy is applied by the orchestration layer.
type StockChecker interface {
	// CheckStock returns whether stock is sufficient for all items, a
	// transport error on network/protocol failure, or a remote-rejection
	// error wrapping a non-2xx response body.
	CheckStock(ctx context.Context, items []StockItem) (bool, error)
}

// DispatchItem is a line item in a dispatch payload, identified by product
// display name. Resolving product ids to names is the caller's job.
type DispatchItem struct {
	Product  string
	Quantity int
}

// DispatchOrder is the payload handed to the delivery service when a prepared
// order is ready for courier assignment.
type DispatchOrder struct {
	OrderID          int64
	CustomerAddress  string
	WarehouseAddress string
	Items            []DispatchItem
}

// DeliveryDispatcher hands a prepared order to the delivery service.
// A single attempt, no retry at this layer: retrying a dispatch that already
// succeeded server-side risks duplicate shipments.
type DeliveryDispatcher interface {
	// Dispatch returns whether the delivery service accepted the order,
	// or a transport/remote error.
	Dispatch(ctx context.Context, dispatch DispatchOrder) (bool, error)
}

// PickupNotifier informs the warehouse that a courier has collected an order.
// A single attempt, no retry at this layer.
type PickupNotifier interface {
	// NotifyPickedUp returns whether the warehouse acknowledged the pickup,
	// or a transport/remote error.
	NotifyPickedUp(ctx context.Context, orderID int64) (bool, error)
}
