package commands_test

import (
	"errors"
	"testing"

	"controltower/internal/core/application/usecases/commands"
	"controltower/internal/core/domain/model/order"
	"controltower/internal/core/domain/model/product"
	"controltower/internal/core/domain/model/warehouse"
	"controltower/internal/core/ports"
	"controltower/internal/pkg/errs"
	"controltower/internal/pkg/pool"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func preparingOrder(t *testing.T) *order.Order {
	t.Helper()
	item, err := order.NewLineItem(1, 2)
	require.NoError(t, err)
	ord, err := order.RestoreOrder(5, "12 Elm St", testWarehouseID, order.Preparing, []order.LineItem{item}, 1)
	require.NoError(t, err)
	return ord
}

func TestMarkWarehouseReadyCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewMarkWarehouseReadyCommand(5)

	ord := preparingOrder(t)
	wh, _ := warehouse.RestoreWarehouse(testWarehouseID, "Warehouse Rd 1")
	apples, _ := product.RestoreProduct(1, "Apples", 2.5, 3)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	whRepo := new(MockWarehouseRepository)
	uow := new(MockCheckoutUoW)
	dispatcher := new(MockDeliveryDispatcher)
	mock.InOrder(
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, int64(5)).Return(ord, nil).Once(),
		uow.On("WarehouseRepository").Return(whRepo).Once(),
		whRepo.On("Get", ctx, testWarehouseID).Return(wh, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", ctx, int64(1)).Return(apples, nil).Once(),
		dispatcher.On("Dispatch", ctx, ports.DispatchOrder{
			OrderID:          5,
			CustomerAddress:  "12 Elm St",
			WarehouseAddress: "Warehouse Rd 1",
			Items:            []ports.DispatchItem{{Product: "Apples", Quantity: 2}},
		}).Return(true, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkWarehouseReadyCommandHandler(factory, dispatcher, pool.New(4))
	ready, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, ready)
	assert.Equal(t, order.Prepared, ord.State())
	orderRepo.AssertExpectations(t)
	dispatcher.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestMarkWarehouseReadyCommandHandler_Handle_IllegalState(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewMarkWarehouseReadyCommand(5)

	item, _ := order.NewLineItem(1, 2)
	ord, _ := order.RestoreOrder(5, "12 Elm St", testWarehouseID, order.InDelivery, []order.LineItem{item}, 1)

	orderRepo := new(MockOrderRepository)
	uow := new(MockCheckoutUoW)
	mock.InOrder(
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, int64(5)).Return(ord, nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockDeliveryDispatcher)

	h := commands.NewMarkWarehouseReadyCommandHandler(factory, dispatcher, pool.New(4))
	ready, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrIllegalStateTransition)
	assert.False(t, ready)
	assert.Equal(t, order.InDelivery, ord.State())
	dispatcher.AssertNotCalled(t, "Dispatch")
	uow.AssertNotCalled(t, "Begin", ctx)
}

func TestMarkWarehouseReadyCommandHandler_Handle_DispatchRefused(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewMarkWarehouseReadyCommand(5)

	ord := preparingOrder(t)
	wh, _ := warehouse.RestoreWarehouse(testWarehouseID, "Warehouse Rd 1")
	apples, _ := product.RestoreProduct(1, "Apples", 2.5, 3)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	whRepo := new(MockWarehouseRepository)
	uow := new(MockCheckoutUoW)
	dispatcher := new(MockDeliveryDispatcher)
	mock.InOrder(
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, int64(5)).Return(ord, nil).Once(),
		uow.On("WarehouseRepository").Return(whRepo).Once(),
		whRepo.On("Get", ctx, testWarehouseID).Return(wh, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", ctx, int64(1)).Return(apples, nil).Once(),
		dispatcher.On("Dispatch", ctx, mock.AnythingOfType("ports.DispatchOrder")).
			Return(false, nil).
			Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkWarehouseReadyCommandHandler(factory, dispatcher, pool.New(4))
	ready, err := h.Handle(ctx, cmd)

	// A refusal is a business answer, not an error; the order stays PREPARING.
	require.NoError(t, err)
	assert.False(t, ready)
	assert.Equal(t, order.Preparing, ord.State())
	uow.AssertNotCalled(t, "Begin", ctx)
	orderRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}

func TestMarkWarehouseReadyCommandHandler_Handle_DispatchTransportError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewMarkWarehouseReadyCommand(5)

	ord := preparingOrder(t)
	wh, _ := warehouse.RestoreWarehouse(testWarehouseID, "Warehouse Rd 1")
	apples, _ := product.RestoreProduct(1, "Apples", 2.5, 3)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	whRepo := new(MockWarehouseRepository)
	uow := new(MockCheckoutUoW)
	dispatcher := new(MockDeliveryDispatcher)
	mock.InOrder(
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, int64(5)).Return(ord, nil).Once(),
		uow.On("WarehouseRepository").Return(whRepo).Once(),
		whRepo.On("Get", ctx, testWarehouseID).Return(wh, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", ctx, int64(1)).Return(apples, nil).Once(),
		dispatcher.On("Dispatch", ctx, mock.AnythingOfType("ports.DispatchOrder")).
			Return(false, errs.NewTransportError("delivery", errors.New("connection refused"))).
			Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkWarehouseReadyCommandHandler(factory, dispatcher, pool.New(4))
	ready, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrTransport)
	assert.False(t, ready)
	assert.Equal(t, order.Preparing, ord.State())
}

func TestMarkWarehouseReadyCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewMarkWarehouseReadyCommand(5)

	orderRepo := new(MockOrderRepository)
	uow := new(MockCheckoutUoW)
	mock.InOrder(
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, int64(5)).
			Return(nil, errs.NewObjectNotFoundError("orderId", int64(5))).
			Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockDeliveryDispatcher)

	h := commands.NewMarkWarehouseReadyCommandHandler(factory, dispatcher, pool.New(4))
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	dispatcher.AssertNotCalled(t, "Dispatch")
}
