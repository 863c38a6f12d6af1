package commands

import (
	"context"
	"fmt"

	"controltower/internal/core/domain/model/order"
	"controltower/internal/core/ports"
	"controltower/internal/pkg/errs"
	"controltower/internal/pkg/pool"
)

// MarkWarehouseReadyCommandHandler advances a PREPARING order to PREPARED by
// offering it to the delivery service. A business refusal from the dispatcher
// is a normal outcome (false, nil) and leaves the order untouched; only
// transport/remote failures surface as errors.
type MarkWarehouseReadyCommandHandler struct {
	uowFactory CheckoutUoWFactory
	dispatcher ports.DeliveryDispatcher
	storePool  *pool.Pool
}

// NewMarkWarehouseReadyCommandHandler creates a handler for warehouse-ready
// triggers.
func NewMarkWarehouseReadyCommandHandler(
	uowFactory CheckoutUoWFactory,
	dispatcher ports.DeliveryDispatcher,
	storePool *pool.Pool,
) MarkWarehouseReadyCommandHandler {
	return MarkWarehouseReadyCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		storePool:  storePool,
	}
}

// Handle loads the order, checks it is still PREPARING, builds the dispatch
// payload (line items carry resolved product display names) and performs a
// single dispatch attempt. On acceptance the order is persisted as PREPARED
// and true is returned.
func (h *MarkWarehouseReadyCommandHandler) Handle(
	ctx context.Context,
	cmd MarkWarehouseReadyCommand,
) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()

	var (
		ord      *order.Order
		dispatch ports.DispatchOrder
	)
	err := withStore(ctx, h.storePool, func() error {
		var err error
		ord, err = uow.OrderRepository().Get(ctx, cmd.OrderID())
		if err != nil {
			return err
		}

		if ord.State() != order.Preparing {
			return errs.NewIllegalStateTransitionError(
				fmt.Sprintf("order %d", ord.ID()), ord.State().String(), order.Prepared.String())
		}

		wh, err := uow.WarehouseRepository().Get(ctx, ord.WarehouseID())
		if err != nil {
			return err
		}

		productRepo := uow.ProductRepository()
		items := make([]ports.DispatchItem, 0, len(ord.Items()))
		for _, li := range ord.Items() {
			p, err := productRepo.Get(ctx, li.ProductID())
			if err != nil {
				return err
			}
			items = append(items, ports.DispatchItem{Product: p.Name(), Quantity: li.Quantity()})
		}

		dispatch = ports.DispatchOrder{
			OrderID:          ord.ID(),
			CustomerAddress:  ord.Address(),
			WarehouseAddress: wh.Address(),
			Items:            items,
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	accepted, err := h.dispatcher.Dispatch(ctx, dispatch)
	if err != nil {
		return false, err
	}
	if !accepted {
		return false, nil
	}

	if err := ord.MarkPrepared(); err != nil {
		return false, err
	}

	err = withStore(ctx, h.storePool, func() error {
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

	return true, nil
}
