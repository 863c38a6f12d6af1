// Package warehousecli is the HTTP adapter for the warehouse service. It
// implements stock verification and pickup notification over the warehouse's
// JSON API. The adapter is deliberately retry-free: retry policy belongs to
// the orchestration layer.
package warehousecli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"controltower/internal/core/ports"
	"controltower/internal/pkg/errs"
)

const serviceName = "warehouse"

// Client talks to the warehouse service.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a warehouse client for the given base URL.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

type stockItemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

type stockCheckRequest struct {
	ProductList []stockItemRequest `json:"productList"`
}

// CheckStock asks the warehouse whether the requested quantities are
// available. A well-formed negative answer is (false, nil); transport and
// non-2xx failures are errors.
func (c *Client) CheckStock(ctx context.Context, items []ports.StockItem) (bool, error) {
	payload := stockCheckRequest{ProductList: make([]stockItemRequest, 0, len(items))}
	for _, item := range items {
		payload.ProductList = append(payload.ProductList, stockItemRequest{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return false, errs.NewTransportError(serviceName, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/order/create", bytes.NewReader(body))
	if err != nil {
		return false, errs.NewTransportError(serviceName, err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

// NotifyPickedUp tells the warehouse a courier collected the order.
func (c *Client) NotifyPickedUp(ctx context.Context, orderID int64) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut,
		fmt.Sprintf("%s/order/picked-up/%d", c.baseURL, orderID), nil)
	if err != nil {
		return false, errs.NewTransportError(serviceName, err)
	}

	return c.do(req)
}

// do executes the request and decodes the warehouse's boolean answer.
func (c *Client) do(req *http.Request) (bool, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return false, errs.NewTransportError(serviceName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return false, errs.NewRemoteRejectionError(serviceName, resp.StatusCode, string(body))
	}

	var answer bool
	if err := json.NewDecoder(resp.Body).Decode(&answer); err != nil {
		return false, errs.NewTransportError(serviceName, err)
	}

	return answer, nil
}

var _ ports.StockChecker = (*Client)(nil)
var _ ports.PickupNotifier = (*Client)(nil)
