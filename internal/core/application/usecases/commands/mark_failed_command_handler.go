package commands

import (
	"context"

	"controltower/internal/pkg/pool"
)

// MarkFailedCommandHandler closes an IN_DELIVERY order as FAILED. Like
// delivery completion this is a purely local transition.
type MarkFailedCommandHandler struct {
	uowFactory OrderUoWFactory
	storePool  *pool.Pool
}

// NewMarkFailedCommandHandler creates a handler for delivery failures.
func NewMarkFailedCommandHandler(
	uowFactory OrderUoWFactory,
	storePool *pool.Pool,
) MarkFailedCommandHandler {
	return MarkFailedCommandHandler{
		uowFactory: uowFactory,
		storePool:  storePool,
	}
}

// Handle loads the order, transitions IN_DELIVERY -> FAILED and persists.
// An order in any other state is rejected before anything is written.
func (h *MarkFailedCommandHandler) Handle(ctx context.Context, cmd MarkFailedCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return withStore(ctx, h.storePool, func() error {
		uow := h.uowFactory.Create()

		ord, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
		if err != nil {
			return err
		}

		if err := ord.MarkFailed(); err != nil {
			return err
		}

		return persistOrder(ctx, uow, ord)
	})
}
