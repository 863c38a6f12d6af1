// Package productrepo persists catalog products.
package productrepo

import (
	"controltower/internal/core/domain/model/product"
)

// ProductDTO is the database representation of a catalog product.
type ProductDTO struct {
	ID     int64 `gorm:"primaryKey;autoIncrement"`
	Name   string
	Price  float64
	ShopID int64 `gorm:"index"`
}

// TableName overrides GORM's default naming to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(entity *product.Product) ProductDTO {
	return ProductDTO{
		ID:     entity.ID(),
		Name:   entity.Name(),
		Price:  entity.Price(),
		ShopID: entity.ShopID(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	return product.RestoreProduct(dto.ID, dto.Name, dto.Price, dto.ShopID)
}
