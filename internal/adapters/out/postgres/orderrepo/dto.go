// Package orderrepo persists order aggregates. It maps the aggregate to an
// orders row plus one product_orders row per line item, and guards updates
// with an optimistic version column.
package orderrepo

import (
	"controltower/internal/core/domain/model/order"
)

// OrderDTO is the database representation of an order aggregate.
type OrderDTO struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	Address     string
	WarehouseID int64 `gorm:"index"`
	State       int   `gorm:"index"`
	Version     int
	Items       []ProductOrderDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ProductOrderDTO is one line item row belonging to an order.
type ProductOrderDTO struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	OrderID   int64 `gorm:"index"`
	ProductID int64
	Quantity  int
}

// TableName overrides GORM's default naming to use "product_orders".
func (ProductOrderDTO) TableName() string {
	return "product_orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]ProductOrderDTO, 0, len(aggregate.Items()))
	for _, li := range aggregate.Items() {
		items = append(items, ProductOrderDTO{
			OrderID:   aggregate.ID(),
			ProductID: li.ProductID(),
			Quantity:  li.Quantity(),
		})
	}

	return OrderDTO{
		ID:          aggregate.ID(),
		Address:     aggregate.Address(),
		WarehouseID: aggregate.WarehouseID(),
		State:       int(aggregate.State()),
		Version:     aggregate.Version(),
		Items:       items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, err := order.NewLineItem(itemDTO.ProductID, itemDTO.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		dto.ID,
		dto.Address,
		dto.WarehouseID,
		order.State(dto.State),
		items,
		dto.Version,
	)
}
