// Package queries contains read-only operations on the data store. They
// bypass the domain model and repositories on purpose: reads have no
// invariants to protect, so they go straight to SQL and return plain
// response structs shaped for the callers.
package queries

import (
	"errors"

	"controltower/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery retrieves every order with its line items.
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query for the full order list.
func NewGetAllOrdersQuery() (GetAllOrdersQuery, error) {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// OrderItemResponse is one line item of an order, with the product name
// resolved for display.
type OrderItemResponse struct {
	ProductID   int64
	ProductName string
	Quantity    int
}

// GetAllOrdersQueryResponse is the read model of one order.
type GetAllOrdersQueryResponse struct {
	ID          int64
	Address     string
	WarehouseID int64
	State       string
	Items       []OrderItemResponse
}
