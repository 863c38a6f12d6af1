package commands

import (
	"context"

	"controltower/internal/core/domain/model/order"
	"controltower/internal/pkg/pool"
)

// MarkDeliveredCommandHandler closes an IN_DELIVERY order as DELIVERED.
// No remote collaborator is involved; the transition is purely local.
type MarkDeliveredCommandHandler struct {
	uowFactory OrderUoWFactory
	storePool  *pool.Pool
}

// NewMarkDeliveredCommandHandler creates a handler for delivery completions.
func NewMarkDeliveredCommandHandler(
	uowFactory OrderUoWFactory,
	storePool *pool.Pool,
) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{
		uowFactory: uowFactory,
		storePool:  storePool,
	}
}

// Handle loads the order, transitions IN_DELIVERY -> DELIVERED and persists.
// An order in any other state is rejected before anything is written.
func (h *MarkDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkDeliveredCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return withStore(ctx, h.storePool, func() error {
		uow := h.uowFactory.Create()

		ord, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
		if err != nil {
			return err
		}

		if err := ord.MarkDelivered(); err != nil {
			return err
		}

		return persistOrder(ctx, uow, ord)
	})
}

// persistOrder commits a single-aggregate update inside its own transaction.
func persistOrder(ctx context.Context, uow OrderUoW, ord *order.Order) error {
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
}
