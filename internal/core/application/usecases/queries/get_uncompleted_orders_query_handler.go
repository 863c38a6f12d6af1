package queries

import (
	"context"

	"controltower/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetUncompletedOrdersQueryHandler retrieves orders still moving through the
// lifecycle, for monitoring and the periodic watch job.
type GetUncompletedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUncompletedOrdersQueryHandler creates a handler for in-flight order
// queries.
func NewGetUncompletedOrdersQueryHandler(db *gorm.DB) GetUncompletedOrdersQueryHandler {
	return GetUncompletedOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by order id.
func (h GetUncompletedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUncompletedOrdersQuery,
) ([]GetUncompletedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			address,
			state
		FROM orders
		WHERE state NOT IN (?, ?)
		ORDER BY id
	`, int(order.Delivered), int(order.Failed)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetUncompletedOrdersQueryResponse, 0)

	for rows.Next() {
		var (
			resp  GetUncompletedOrdersQueryResponse
			state int
		)

		if err = rows.Scan(&resp.ID, &resp.Address, &state); err != nil {
			return nil, err
		}

		resp.State = order.State(state).String()
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
