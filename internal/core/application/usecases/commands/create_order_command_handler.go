package commands

import (
	"context"
	"errors"
	"fmt"

	"controltower/internal/core/domain/model/order"
	"controltower/internal/core/ports"
	"controltower/internal/pkg/pool"
	"controltower/internal/pkg/retry"
)

var (
	// ErrOrderCreationFailed is the single user-facing error kind for a
	// checkout rejected by stock verification, whatever the underlying cause.
	ErrOrderCreationFailed = errors.New("failed to create order")

	// ErrStockIsNotSufficient is the cause when the warehouse reports the
	// requested quantities are not available.
	ErrStockIsNotSufficient = errors.New("stock is not sufficient")
)

// OrderCreationFailedError wraps the reason a checkout could not produce an
// order. Insufficient stock and retry exhaustion surface as this same kind,
// with the distinct cause preserved for diagnosis.
type OrderCreationFailedError struct {
	Cause error
}

// NewOrderCreationFailedError wraps cause into the order-creation-failed kind.
func NewOrderCreationFailedError(cause error) *OrderCreationFailedError {
	return &OrderCreationFailedError{Cause: cause}
}

func (e *OrderCreationFailedError) Error() string {
	return fmt.Sprintf("failed to create order due to: %s", e.Cause)
}

func (e *OrderCreationFailedError) Unwrap() []error {
	return []error{ErrOrderCreationFailed, e.Cause}
}

// CreateOrderCommandHandler turns a validated checkout request into a durable
// order record. The sequencing is fixed: verify stock with the bounded retry
// policy, resolve the default warehouse and every referenced product, then
// assemble and persist the order in PREPARING.
//
// Stock verification is the only retried remote call. A false result is a
// final business answer, not an error, and ends the retry loop immediately.
type CreateOrderCommandHandler struct {
	uowFactory  CheckoutUoWFactory
	stock       ports.StockChecker
	storePool   *pool.Pool
	retryPolicy retry.Policy
	warehouseID int64
}

// NewCreateOrderCommandHandler creates a handler for checkout requests.
// warehouseID is the default warehouse assigned to every new order.
func NewCreateOrderCommandHandler(
	uowFactory CheckoutUoWFactory,
	stock ports.StockChecker,
	storePool *pool.Pool,
	retryPolicy retry.Policy,
	warehouseID int64,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:  uowFactory,
		stock:       stock,
		storePool:   storePool,
		retryPolicy: retryPolicy,
		warehouseID: warehouseID,
	}
}

// Handle processes the checkout. On verified stock it returns the persisted
// order, identity assigned, in state PREPARING. Stock failures come back as
// an order-creation-failed error carrying the cause; a stale product
// reference is an object-not-found error naming the missing product id.
func (h *CreateOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateOrderCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	items := cmd.Items()
	stockItems := make([]ports.StockItem, 0, len(items))
	for _, item := range items {
		stockItems = append(stockItems, ports.StockItem{
			ProductID: item.ProductID(),
			Quantity:  item.Quantity(),
		})
	}

	var sufficient bool
	err := h.retryPolicy.Do(ctx, func() error {
		ok, checkErr := h.stock.CheckStock(ctx, stockItems)
		if checkErr != nil {
			return checkErr
		}
		sufficient = ok
		return nil
	})
	if err != nil {
		return nil, NewOrderCreationFailedError(err)
	}
	if !sufficient {
		return nil, NewOrderCreationFailedError(ErrStockIsNotSufficient)
	}

	var created *order.Order
	err = withStore(ctx, h.storePool, func() error {
		uow := h.uowFactory.Create()
		if err := uow.Begin(ctx); err != nil {
			return err
		}
		defer func() {
			_ = uow.Rollback(ctx)
		}()

		wh, err := uow.WarehouseRepository().Get(ctx, h.warehouseID)
		if err != nil {
			return err
		}

		productRepo := uow.ProductRepository()
		for _, item := range items {
			if _, err := productRepo.Get(ctx, item.ProductID()); err != nil {
				return err
			}
		}

		created, err = order.NewOrder(cmd.Direction(), wh.ID(), items)
		if err != nil {
			return err
		}

		if err := uow.OrderRepository().Add(ctx, created); err != nil {
			return err
		}

		return uow.Commit(ctx)
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}
