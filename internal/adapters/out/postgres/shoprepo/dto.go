// Package shoprepo persists shops.
package shoprepo

import (
	"controltower/internal/core/domain/model/shop"
)

// ShopDTO is the database representation of a shop.
type ShopDTO struct {
	ID   int64 `gorm:"primaryKey;autoIncrement"`
	Name string
}

// TableName overrides GORM's default naming to use "shops".
func (ShopDTO) TableName() string {
	return "shops"
}

func fromDomain(entity *shop.Shop) ShopDTO {
	return ShopDTO{
		ID:   entity.ID(),
		Name: entity.Name(),
	}
}

func toDomain(dto ShopDTO) (*shop.Shop, error) {
	return shop.RestoreShop(dto.ID, dto.Name)
}
