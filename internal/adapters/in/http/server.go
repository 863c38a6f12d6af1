// Package http is the inbound HTTP adapter. It exposes checkout, order
// lifecycle triggers and the catalog over echo, translating the error
// taxonomy into HTTP statuses.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"controltower/internal/core/application/usecases/commands"
	"controltower/internal/core/application/usecases/queries"
	"controltower/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler    commands.CreateOrderCommandHandler
	warehouseReadyHandler commands.MarkWarehouseReadyCommandHandler
	pickedUpHandler       commands.MarkPickedUpCommandHandler
	deliveredHandler      commands.MarkDeliveredCommandHandler
	failedHandler         commands.MarkFailedCommandHandler
	createShopHandler     commands.CreateShopCommandHandler
	createProductHandler  commands.CreateProductCommandHandler
	changePriceHandler    commands.ChangeProductPriceCommandHandler
	deleteProductHandler  commands.DeleteProductCommandHandler

	// Query handlers
	getAllOrdersHandler   queries.GetAllOrdersQueryHandler
	uncompletedHandler    queries.GetUncompletedOrdersQueryHandler
	getAllProductsHandler queries.GetAllProductsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	warehouseReadyHandler commands.MarkWarehouseReadyCommandHandler,
	pickedUpHandler commands.MarkPickedUpCommandHandler,
	deliveredHandler commands.MarkDeliveredCommandHandler,
	failedHandler commands.MarkFailedCommandHandler,
	createShopHandler commands.CreateShopCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	changePriceHandler commands.ChangeProductPriceCommandHandler,
	deleteProductHandler commands.DeleteProductCommandHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	uncompletedHandler queries.GetUncompletedOrdersQueryHandler,
	getAllProductsHandler queries.GetAllProductsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:    createOrderHandler,
		warehouseReadyHandler: warehouseReadyHandler,
		pickedUpHandler:       pickedUpHandler,
		deliveredHandler:      deliveredHandler,
		failedHandler:         failedHandler,
		createShopHandler:     createShopHandler,
		createProductHandler:  createProductHandler,
		changePriceHandler:    changePriceHandler,
		deleteProductHandler:  deleteProductHandler,
		getAllOrdersHandler:   getAllOrdersHandler,
		uncompletedHandler:    uncompletedHandler,
		getAllProductsHandler: getAllProductsHandler,
	}
}

// RegisterRoutes attaches all routes and shared middleware to the echo
// instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))

	e.GET("/health", s.Health)

	e.POST("/order/checkout", s.Checkout)
	e.GET("/order/getAll", s.GetAllOrders)
	e.GET("/order/uncompleted", s.GetUncompletedOrders)

	e.PUT("/warehouse/order/ready/:orderId", s.WarehouseOrderReady)

	e.PUT("/delivery/picked", s.DeliveryPicked)
	e.PUT("/delivery/completed", s.DeliveryCompleted)
	e.PUT("/delivery/failed", s.DeliveryFailed)

	e.POST("/shop/add", s.CreateShop)
	e.POST("/shop/product/add", s.CreateProduct)
	e.PUT("/shop/update/product/price", s.UpdateProductPrice)
	e.DELETE("/shop/delete/product", s.DeleteProduct)
	e.GET("/product/getAll", s.GetAllProducts)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// Checkout handles POST /order/checkout - verifies stock and creates an
// order.
func (s *Server) Checkout(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return writeStatus(ctx, http.StatusBadRequest, "Invalid request body")
	}

	products := make([]commands.ProductQuantity, 0, len(req.Products))
	for _, p := range req.Products {
		products = append(products, commands.ProductQuantity{
			ProductID: p.ProductID,
			Quantity:  p.Quantity,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(req.Direction, products)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	resp := orderInfoResponse{
		ID:              created.ID(),
		ClientDirection: created.Address(),
		State:           created.State().String(),
		WarehouseID:     created.WarehouseID(),
		Products:        make([]productQuantityDTO, 0, len(created.Items())),
	}
	for _, item := range created.Items() {
		resp.Products = append(resp.Products, productQuantityDTO{
			ProductID: item.ProductID(),
			Quantity:  item.Quantity(),
		})
	}

	return ctx.JSON(http.StatusOK, resp)
}

// GetAllOrders handles GET /order/getAll.
func (s *Server) GetAllOrders(ctx echo.Context) error {
	query, err := queries.NewGetAllOrdersQuery()
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]orderReadResponse, len(orders))
	for i, ord := range orders {
		items := make([]orderItemDTO, len(ord.Items))
		for j, item := range ord.Items {
			items[j] = orderItemDTO{
				ProductID:   item.ProductID,
				ProductName: item.ProductName,
				Quantity:    item.Quantity,
			}
		}
		response[i] = orderReadResponse{
			ID:          ord.ID,
			Address:     ord.Address,
			WarehouseID: ord.WarehouseID,
			State:       ord.State,
			Items:       items,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetUncompletedOrders handles GET /order/uncompleted - orders not yet
// delivered or failed.
func (s *Server) GetUncompletedOrders(ctx echo.Context) error {
	query, err := queries.NewGetUncompletedOrdersQuery()
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.uncompletedHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]uncompletedOrderResponse, len(orders))
	for i, ord := range orders {
		response[i] = uncompletedOrderResponse{
			ID:      ord.ID,
			Address: ord.Address,
			State:   ord.State,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// WarehouseOrderReady handles PUT /warehouse/order/ready/:orderId - the
// warehouse reports the order is packed and a dispatch attempt is made.
func (s *Server) WarehouseOrderReady(ctx echo.Context) error {
	orderID, err := strconv.ParseInt(ctx.Param("orderId"), 10, 64)
	if err != nil {
		return writeStatus(ctx, http.StatusBadRequest, "Invalid order id")
	}

	cmd, err := commands.NewMarkWarehouseReadyCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	dispatched, err := s.warehouseReadyHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	if !dispatched {
		return writeStatus(ctx, http.StatusServiceUnavailable,
			"Failed to reach delivery service.")
	}

	return writeStatus(ctx, http.StatusOK, "Delivery service was reached successfully.")
}

// DeliveryPicked handles PUT /delivery/picked?orderId= - a courier collected
// the order.
func (s *Server) DeliveryPicked(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return writeStatus(ctx, http.StatusBadRequest, "Invalid order id")
	}

	cmd, err := commands.NewMarkPickedUpCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if _, err := s.pickedUpHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, commands.ErrPickupNotificationFailed) {
			return writeStatus(ctx, http.StatusServiceUnavailable,
				"Failed to update the order status.")
		}
		return writeError(ctx, err)
	}

	return writeStatus(ctx, http.StatusOK, "Order has been picked successfully.")
}

// DeliveryCompleted handles PUT /delivery/completed?orderId=.
func (s *Server) DeliveryCompleted(ctx echo.Context) error {
	return s.closeOrder(ctx, func(orderID int64) error {
		cmd, err := commands.NewMarkDeliveredCommand(orderID)
		if err != nil {
			return err
		}
		return s.deliveredHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// DeliveryFailed handles PUT /delivery/failed?orderId=.
func (s *Server) DeliveryFailed(ctx echo.Context) error {
	return s.closeOrder(ctx, func(orderID int64) error {
		cmd, err := commands.NewMarkFailedCommand(orderID)
		if err != nil {
			return err
		}
		return s.failedHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// closeOrder is the shared shape of the two terminal lifecycle endpoints.
func (s *Server) closeOrder(ctx echo.Context, run func(orderID int64) error) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return writeStatus(ctx, http.StatusBadRequest, "Invalid order id")
	}

	if err := run(orderID); err != nil {
		return writeError(ctx, err)
	}

	return writeStatus(ctx, http.StatusOK, "success")
}

// CreateShop handles POST /shop/add.
func (s *Server) CreateShop(ctx echo.Context) error {
	var req saveShopRequest
	if err := ctx.Bind(&req); err != nil {
		return writeStatus(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewCreateShopCommand(req.ShopName)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createShopHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shopResponse{
		ID:   created.ID(),
		Name: created.Name(),
	})
}

// CreateProduct handles POST /shop/product/add.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var req saveProductRequest
	if err := ctx.Bind(&req); err != nil {
		return writeStatus(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewCreateProductCommand(req.Name, req.Price, req.ShopID)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productResponse{
		ID:     created.ID(),
		Name:   created.Name(),
		Price:  created.Price(),
		ShopID: created.ShopID(),
	})
}

// UpdateProductPrice handles PUT /shop/update/product/price.
func (s *Server) UpdateProductPrice(ctx echo.Context) error {
	var req updateProductPriceRequest
	if err := ctx.Bind(&req); err != nil {
		return writeStatus(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewChangeProductPriceCommand(req.ID, req.Price)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.changePriceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return writeStatus(ctx, http.StatusOK, "Product price updated")
}

// DeleteProduct handles DELETE /shop/delete/product?id=.
func (s *Server) DeleteProduct(ctx echo.Context) error {
	id, err := strconv.ParseInt(ctx.QueryParam("id"), 10, 64)
	if err != nil {
		return writeStatus(ctx, http.StatusBadRequest, "Invalid product id")
	}

	cmd, err := commands.NewDeleteProductCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.deleteProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return writeStatus(ctx, http.StatusOK, "Product deleted")
}

// GetAllProducts handles GET /product/getAll.
func (s *Server) GetAllProducts(ctx echo.Context) error {
	query, err := queries.NewGetAllProductsQuery()
	if err != nil {
		return writeError(ctx, err)
	}

	products, err := s.getAllProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]productResponse, len(products))
	for i, p := range products {
		response[i] = productResponse{
			ID:     p.ID,
			Name:   p.Name,
			Price:  p.Price,
			ShopID: p.ShopID,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func orderIDParam(ctx echo.Context) (int64, error) {
	return strconv.ParseInt(ctx.QueryParam("orderId"), 10, 64)
}

func writeStatus(ctx echo.Context, status int, message string) error {
	return ctx.JSON(status, errorBody{Code: status, Message: message})
}

func writeError(ctx echo.Context, err error) error {
	status := statusFor(err)
	return ctx.JSON(status, errorBody{Code: status, Message: err.Error()})
}

// statusFor maps the error taxonomy onto HTTP statuses. Transport and remote
// failures are checked before the validation bucket so a checkout that died
// on the wire reports 502, not 400.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrIllegalStateTransition),
		errors.Is(err, errs.ErrStaleObject):
		return http.StatusConflict
	case errors.Is(err, errs.ErrTransport),
		errors.Is(err, errs.ErrRemoteRejection):
		return http.StatusBadGateway
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, commands.ErrOrderCreationFailed):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
