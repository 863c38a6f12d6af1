package queries

import (
	"context"

	"controltower/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves the full order list with line items.
// Line items join through products so callers see display names; a line item
// whose product was removed from the catalog keeps its id with an empty name.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for full order list queries.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders come back sorted by id, line items in
// insertion order within each order.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.address,
			o.warehouse_id,
			o.state,
			po.product_id,
			COALESCE(p.name, ''),
			po.quantity
		FROM orders o
		JOIN product_orders po ON po.order_id = o.id
		LEFT JOIN products p ON p.id = po.product_id
		ORDER BY o.id, po.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetAllOrdersQueryResponse, 0)
	index := make(map[int64]int)

	for rows.Next() {
		var (
			id          int64
			address     string
			warehouseID int64
			state       int
			item        OrderItemResponse
		)

		err = rows.Scan(&id, &address, &warehouseID, &state, &item.ProductID, &item.ProductName, &item.Quantity)
		if err != nil {
			return nil, err
		}

		i, ok := index[id]
		if !ok {
			orders = append(orders, GetAllOrdersQueryResponse{
				ID:          id,
				Address:     address,
				WarehouseID: warehouseID,
				State:       order.State(state).String(),
			})
			i = len(orders) - 1
			index[id] = i
		}
		orders[i].Items = append(orders[i].Items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
