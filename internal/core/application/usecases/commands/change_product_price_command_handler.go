package commands

import (
	"context"

	"controltower/internal/pkg/pool"
)

// ChangeProductPriceCommandHandler updates the price of a catalog product.
type ChangeProductPriceCommandHandler struct {
	uowFactory CatalogUoWFactory
	storePool  *pool.Pool
}

// NewChangeProductPriceCommandHandler creates a handler for price updates.
func NewChangeProductPriceCommandHandler(
	uowFactory CatalogUoWFactory,
	storePool *pool.Pool,
) ChangeProductPriceCommandHandler {
	return ChangeProductPriceCommandHandler{
		uowFactory: uowFactory,
		storePool:  storePool,
	}
}

// Handle loads the product, applies the new price and persists.
func (h *ChangeProductPriceCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeProductPriceCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return withStore(ctx, h.storePool, func() error {
		uow := h.uowFactory.Create()

		p, err := uow.ProductRepository().Get(ctx, cmd.ProductID())
		if err != nil {
			return err
		}

		if err := p.ChangePrice(cmd.Price()); err != nil {
			return err
		}

		if err := uow.Begin(ctx); err != nil {
			return err
		}
		defer func() {
			_ = uow.Rollback(ctx)
		}()

		if err := uow.ProductRepository().Update(ctx, p); err != nil {
			return err
		}
		return uow.Commit(ctx)
	})
}
