// Package deliverycli is the HTTP adapter for the delivery service. It hands
// prepared orders over for courier assignment. Single attempt per call:
// retrying a dispatch that may already have been accepted server-side risks
// duplicate shipments.
package deliverycli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"controltower/internal/core/ports"
	"controltower/internal/pkg/errs"
)

const serviceName = "delivery"

// Client talks to the delivery service.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a delivery client for the given base URL.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

type dispatchItemRequest struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

type dispatchRequest struct {
	OrderID            int64                 `json:"orderId"`
	UserAddress        string                `json:"userAddress"`
	WarehouseDirection string                `json:"warehouseDirection"`
	Products           []dispatchItemRequest `json:"products"`
}

// Dispatch offers a prepared order to the delivery service. A well-formed
// refusal is (false, nil); transport and non-2xx failures are errors.
func (c *Client) Dispatch(ctx context.Context, dispatch ports.DispatchOrder) (bool, error) {
	payload := dispatchRequest{
		OrderID:            dispatch.OrderID,
		UserAddress:        dispatch.CustomerAddress,
		WarehouseDirection: dispatch.WarehouseAddress,
		Products:           make([]dispatchItemRequest, 0, len(dispatch.Items)),
	}
	for _, item := range dispatch.Items {
		payload.Products = append(payload.Products, dispatchItemRequest{
			Product:  item.Product,
			Quantity: item.Quantity,
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return false, errs.NewTransportError(serviceName, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/order", bytes.NewReader(body))
	if err != nil {
		return false, errs.NewTransportError(serviceName, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return false, errs.NewTransportError(serviceName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return false, errs.NewRemoteRejectionError(serviceName, resp.StatusCode, string(respBody))
	}

	var accepted bool
	if err := json.NewDecoder(resp.Body).Decode(&accepted); err != nil {
		return false, errs.NewTransportError(serviceName, err)
	}

	return accepted, nil
}

var _ ports.DeliveryDispatcher = (*Client)(nil)
