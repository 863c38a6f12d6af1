package cmd

import (
	"context"
	"errors"
	"fmt"

	httpadapter "controltower/internal/adapters/in/http"
	"controltower/internal/adapters/out/deliverycli"
	"controltower/internal/adapters/out/postgres"
	"controltower/internal/adapters/out/warehousecli"
	"controltower/internal/core/application/usecases/commands"
	"controltower/internal/core/application/usecases/queries"
	"controltower/internal/core/domain/model/warehouse"
	"controltower/internal/pkg/errs"
	"controltower/internal/pkg/httpclient"
	"controltower/internal/pkg/pool"
	"controltower/internal/pkg/retry"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. One instance per
// process; handler factories hand out fresh units of work per call.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	storePool   *pool.Pool
	retryPolicy retry.Policy

	warehouseClient *warehousecli.Client
	deliveryClient  *deliverycli.Client
}

// NewCompositionRoot builds the object graph from config and an open
// database handle.
func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	sharedHTTP := httpclient.New()

	return CompositionRoot{
		config:          config,
		gormDB:          gormDB,
		uowFactory:      *postgres.NewGormUnitOfWorkFactory(gormDB),
		storePool:       pool.New(config.StorePoolSize),
		retryPolicy:     retry.NewPolicy(config.StockCheckMaxRetries, config.StockCheckRetryInterval),
		warehouseClient: warehousecli.NewClient(config.WarehouseBaseURL, sharedHTTP),
		deliveryClient:  deliverycli.NewClient(config.DeliveryBaseURL, sharedHTTP),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(
		f, c.warehouseClient, c.storePool, c.retryPolicy, c.config.DefaultWarehouseID)
}

func (c *CompositionRoot) CreateMarkWarehouseReadyCommandHandler() commands.MarkWarehouseReadyCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkWarehouseReadyCommandHandler(f, c.deliveryClient, c.storePool)
}

func (c *CompositionRoot) CreateMarkPickedUpCommandHandler() commands.MarkPickedUpCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkPickedUpCommandHandler(f, c.warehouseClient, c.storePool)
}

func (c *CompositionRoot) CreateMarkDeliveredCommandHandler() commands.MarkDeliveredCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkDeliveredCommandHandler(f, c.storePool)
}

func (c *CompositionRoot) CreateMarkFailedCommandHandler() commands.MarkFailedCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkFailedCommandHandler(f, c.storePool)
}

func (c *CompositionRoot) CreateCreateShopCommandHandler() commands.CreateShopCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShopCommandHandler(f, c.storePool)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductCommandHandler(f, c.storePool)
}

func (c *CompositionRoot) CreateChangeProductPriceCommandHandler() commands.ChangeProductPriceCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeProductPriceCommandHandler(f, c.storePool)
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() commands.DeleteProductCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteProductCommandHandler(f, c.storePool)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUncompletedOrdersQueryHandler() queries.GetUncompletedOrdersQueryHandler {
	return queries.NewGetUncompletedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllProductsQueryHandler() queries.GetAllProductsQueryHandler {
	return queries.NewGetAllProductsQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the inbound HTTP adapter over all handlers.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateMarkWarehouseReadyCommandHandler(),
		c.CreateMarkPickedUpCommandHandler(),
		c.CreateMarkDeliveredCommandHandler(),
		c.CreateMarkFailedCommandHandler(),
		c.CreateCreateShopCommandHandler(),
		c.CreateCreateProductCommandHandler(),
		c.CreateChangeProductPriceCommandHandler(),
		c.CreateDeleteProductCommandHandler(),
		c.CreateGetAllOrdersQueryHandler(),
		c.CreateGetUncompletedOrdersQueryHandler(),
		c.CreateGetAllProductsQueryHandler(),
	)
}

// SeedDefaultWarehouse ensures the configured default warehouse row exists.
// Checkout assigns every order to this warehouse, so the row must be present
// before the first request. The row is inserted under the configured id so
// the lookup finds it on every subsequent startup.
func (c *CompositionRoot) SeedDefaultWarehouse(ctx context.Context) error {
	uow := c.uowFactory.Create()

	_, err := uow.WarehouseRepository().Get(ctx, c.config.DefaultWarehouseID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return fmt.Errorf("failed to look up default warehouse: %w", err)
	}

	wh, err := warehouse.RestoreWarehouse(c.config.DefaultWarehouseID, c.config.WarehouseAddress)
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.WarehouseRepository().Add(ctx, wh); err != nil {
		return fmt.Errorf("failed to seed default warehouse: %w", err)
	}
	return uow.Commit(ctx)
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}
