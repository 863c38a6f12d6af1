package queries

import (
	"errors"

	"controltower/internal/pkg/guard"
)

var ErrGetUncompletedOrdersQueryIsNotConstructed = errors.New(
	"GetUncompletedOrdersQuery must be created via NewGetUncompletedOrdersQuery constructor",
)

// GetUncompletedOrdersQuery retrieves orders that have not reached a terminal
// state yet (neither DELIVERED nor FAILED). Used for workload visibility.
type GetUncompletedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUncompletedOrdersQuery creates a query for in-flight orders.
func NewGetUncompletedOrdersQuery() (GetUncompletedOrdersQuery, error) {
	return GetUncompletedOrdersQuery{guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUncompletedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUncompletedOrdersQueryIsNotConstructed)
}

// GetUncompletedOrdersQueryResponse is the read model of one in-flight order.
type GetUncompletedOrdersQueryResponse struct {
	ID      int64
	Address string
	State   string
}
