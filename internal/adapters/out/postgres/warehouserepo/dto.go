// Package warehouserepo persists warehouses.
package warehouserepo

import (
	"controltower/internal/core/domain/model/warehouse"
)

// WarehouseDTO is the database representation of a warehouse.
type WarehouseDTO struct {
	ID      int64 `gorm:"primaryKey;autoIncrement"`
	Address string
}

// TableName overrides GORM's default naming to use "warehouses".
func (WarehouseDTO) TableName() string {
	return "warehouses"
}

func fromDomain(entity *warehouse.Warehouse) WarehouseDTO {
	return WarehouseDTO{
		ID:      entity.ID(),
		Address: entity.Address(),
	}
}

func toDomain(dto WarehouseDTO) (*warehouse.Warehouse, error) {
	return warehouse.RestoreWarehouse(dto.ID, dto.Address)
}
