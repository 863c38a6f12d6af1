package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllProductsQueryHandler retrieves the product catalog.
type GetAllProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllProductsQueryHandler creates a handler for catalog queries.
func NewGetAllProductsQueryHandler(db *gorm.DB) GetAllProductsQueryHandler {
	return GetAllProductsQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by product id.
func (h GetAllProductsQueryHandler) Handle(
	ctx context.Context,
	query GetAllProductsQuery,
) ([]GetAllProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price,
			shop_id
		FROM products
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]GetAllProductsQueryResponse, 0)

	for rows.Next() {
		var resp GetAllProductsQueryResponse
		if err = rows.Scan(&resp.ID, &resp.Name, &resp.Price, &resp.ShopID); err != nil {
			return nil, err
		}
		products = append(products, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
