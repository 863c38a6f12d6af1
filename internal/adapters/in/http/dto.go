package http

// Wire types for the inbound API. Field names follow the JSON contract the
// storefront already speaks.

type productQuantityDTO struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

type createOrderRequest struct {
	Direction string               `json:"direction"`
	Products  []productQuantityDTO `json:"products"`
}

type orderInfoResponse struct {
	ID              int64                `json:"id"`
	ClientDirection string               `json:"clientDirection"`
	State           string               `json:"state"`
	WarehouseID     int64                `json:"warehouseId"`
	Products        []productQuantityDTO `json:"products"`
}

type orderItemDTO struct {
	ProductID   int64  `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
}

type orderReadResponse struct {
	ID          int64          `json:"id"`
	Address     string         `json:"address"`
	WarehouseID int64          `json:"warehouseId"`
	State       string         `json:"state"`
	Items       []orderItemDTO `json:"items"`
}

type uncompletedOrderResponse struct {
	ID      int64  `json:"id"`
	Address string `json:"address"`
	State   string `json:"state"`
}

type saveShopRequest struct {
	ShopName string `json:"shopName"`
}

type shopResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type saveProductRequest struct {
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	ShopID int64   `json:"shopId"`
}

type productResponse struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	ShopID int64   `json:"shopId"`
}

type updateProductPriceRequest struct {
	ID    int64   `json:"id"`
	Price float64 `json:"price"`
}

type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
