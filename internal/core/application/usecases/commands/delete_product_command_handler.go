package commands

import (
	"context"

	"controltower/internal/pkg/pool"
)

// DeleteProductCommandHandler removes a product from the catalog. Existing
// orders keep their line items; only new checkouts are affected.
type DeleteProductCommandHandler struct {
	uowFactory CatalogUoWFactory
	storePool  *pool.Pool
}

// NewDeleteProductCommandHandler creates a handler for product removals.
func NewDeleteProductCommandHandler(
	uowFactory CatalogUoWFactory,
	storePool *pool.Pool,
) DeleteProductCommandHandler {
	return DeleteProductCommandHandler{
		uowFactory: uowFactory,
		storePool:  storePool,
	}
}

// Handle verifies the product exists and deletes it inside a transaction.
func (h *DeleteProductCommandHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return withStore(ctx, h.storePool, func() error {
		uow := h.uowFactory.Create()
		if err := uow.Begin(ctx); err != nil {
			return err
		}
		defer func() {
			_ = uow.Rollback(ctx)
		}()

		p, err := uow.ProductRepository().Get(ctx, cmd.ProductID())
		if err != nil {
			return err
		}

		if err := uow.ProductRepository().Delete(ctx, p.ID()); err != nil {
			return err
		}
		return uow.Commit(ctx)
	})
}
