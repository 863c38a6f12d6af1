package commands

import (
	"context"
	"errors"

	"controltower/internal/core/domain/model/order"
	"controltower/internal/core/ports"
	"controltower/internal/pkg/pool"
)

// ErrPickupNotificationFailed is returned when the order moved to IN_DELIVERY
// but the warehouse did not acknowledge the pickup notification.
var ErrPickupNotificationFailed = errors.New(
	"failed to notify warehouse that the order has been picked up",
)

// MarkPickedUpCommandHandler advances a PREPARED order to IN_DELIVERY and
// then notifies the warehouse. The state change is committed first, on
// purpose: the pickup already happened physically, so the record must reflect
// it even if the notification fails. A failed notification therefore surfaces
// as an error on an order that is already IN_DELIVERY; reconciliation with
// the warehouse is the caller's responsibility.
type MarkPickedUpCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.PickupNotifier
	storePool  *pool.Pool
}

// NewMarkPickedUpCommandHandler creates a handler for pickup triggers.
func NewMarkPickedUpCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.PickupNotifier,
	storePool *pool.Pool,
) MarkPickedUpCommandHandler {
	return MarkPickedUpCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		storePool:  storePool,
	}
}

// Handle loads the order, transitions PREPARED -> IN_DELIVERY, persists, and
// only then notifies the warehouse. Returns true only when both the state
// change and the notification succeeded.
func (h *MarkPickedUpCommandHandler) Handle(
	ctx context.Context,
	cmd MarkPickedUpCommand,
) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()

	var ord *order.Order
	err := withStore(ctx, h.storePool, func() error {
		var err error
		ord, err = uow.OrderRepository().Get(ctx, cmd.OrderID())
		if err != nil {
			return err
		}

		if err := ord.StartDelivery(); err != nil {
			return err
		}

		if err := uow.Begin(ctx); err != nil {
			return err
		}
		defer func() {
			_ = uow.Rollback(ctx)
		}()

		if err := uow.OrderRepository().Update(ctx, ord); err != nil {
			return err
		}
		return uow.Commit(ctx)
	})
	if err != nil {
		return false, err
	}

	// From here on the order is durably IN_DELIVERY.
	acked, err := h.notifier.NotifyPickedUp(ctx, ord.ID())
	if err != nil {
		return false, err
	}
	if !acked {
		return false, ErrPickupNotificationFailed
	}

	return true, nil
}
