package commands

import (
	"context"

	"controltower/internal/core/domain/model/product"
	"controltower/internal/pkg/pool"
)

// CreateProductCommandHandler adds a product to an existing shop. The shop
// reference is resolved inside the transaction so a product can never point
// at a shop that does not exist.
type CreateProductCommandHandler struct {
	uowFactory CatalogUoWFactory
	storePool  *pool.Pool
}

// NewCreateProductCommandHandler creates a handler for product registrations.
func NewCreateProductCommandHandler(
	uowFactory CatalogUoWFactory,
	storePool *pool.Pool,
) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
		storePool:  storePool,
	}
}

// Handle resolves the owning shop, persists the product and returns it with
// identity assigned.
func (h *CreateProductCommandHandler) Handle(
	ctx context.Context,
	cmd CreateProductCommand,
) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var created *product.Product
	err := withStore(ctx, h.storePool, func() error {
		uow := h.uowFactory.Create()
		if err := uow.Begin(ctx); err != nil {
			return err
		}
		defer func() {
			_ = uow.Rollback(ctx)
		}()

		sh, err := uow.ShopRepository().Get(ctx, cmd.ShopID())
		if err != nil {
			return err
		}

		created, err = product.NewProduct(cmd.Name(), cmd.Price(), sh.ID())
		if err != nil {
			return err
		}

		if err := uow.ProductRepository().Add(ctx, created); err != nil {
			return err
		}
		return uow.Commit(ctx)
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}
