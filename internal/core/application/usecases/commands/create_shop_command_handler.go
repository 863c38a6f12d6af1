package commands

import (
	"context"

	"controltower/internal/core/domain/model/shop"
	"controltower/internal/pkg/pool"
)

// CreateShopCommandHandler registers a new shop in the catalog.
type CreateShopCommandHandler struct {
	uowFactory CatalogUoWFactory
	storePool  *pool.Pool
}

// NewCreateShopCommandHandler creates a handler for shop registrations.
func NewCreateShopCommandHandler(
	uowFactory CatalogUoWFactory,
	storePool *pool.Pool,
) CreateShopCommandHandler {
	return CreateShopCommandHandler{
		uowFactory: uowFactory,
		storePool:  storePool,
	}
}

// Handle persists the shop and returns it with identity assigned.
func (h *CreateShopCommandHandler) Handle(
	ctx context.Context,
	cmd CreateShopCommand,
) (*shop.Shop, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	created, err := shop.NewShop(cmd.Name())
	if err != nil {
		return nil, err
	}

	err = withStore(ctx, h.storePool, func() error {
		uow := h.uowFactory.Create()
		if err := uow.Begin(ctx); err != nil {
			return err
		}
		defer func() {
			_ = uow.Rollback(ctx)
		}()

		if err := uow.ShopRepository().Add(ctx, created); err != nil {
			return err
		}
		return uow.Commit(ctx)
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}
