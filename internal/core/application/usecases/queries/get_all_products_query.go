package queries

import (
	"errors"

	"controltower/internal/pkg/guard"
)

var ErrGetAllProductsQueryIsNotConstructed = errors.New(
	"GetAllProductsQuery must be created via NewGetAllProductsQuery constructor",
)

// GetAllProductsQuery retrieves the whole product catalog.
type GetAllProductsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllProductsQuery creates a query for the full catalog.
func NewGetAllProductsQuery() (GetAllProductsQuery, error) {
	return GetAllProductsQuery{guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllProductsQueryIsNotConstructed)
}

// GetAllProductsQueryResponse is the read model of one catalog product.
type GetAllProductsQueryResponse struct {
	ID     int64
	Name   string
	Price  float64
	ShopID int64
}
