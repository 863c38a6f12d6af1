// Package product contains the catalog product entity.
package product

import (
	"errors"
	"fmt"

	"controltower/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is a catalog entry offered by a shop. Name must be non-empty and
// price strictly positive.
type Product struct {
	id            int64
	name          string
	price         float64
	shopID        int64
	isConstructed bool
}

// NewProduct creates a product with no identity assigned yet.
func NewProduct(name string, price float64, shopID int64) (*Product, error) {
	p := &Product{isConstructed: true}

	if err := errors.Join(
		p.setName(name),
		p.setPrice(price),
		p.setShopID(shopID),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a product from persistence.
func RestoreProduct(id int64, name string, price float64, shopID int64) (*Product, error) {
	if id < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause("productId",
			fmt.Errorf("%d is not greater than 0", id))
	}

	p, err := NewProduct(name, price, shopID)
	if err != nil {
		return nil, err
	}
	p.id = id
	return p, nil
}

// Validate ensures the instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product identity, or zero before the first save.
func (p *Product) ID() int64 {
	return p.id
}

// AssignID sets the store-assigned identity exactly once.
func (p *Product) AssignID(id int64) error {
	if id < 1 {
		return errs.NewValueIsInvalidErrorWithCause("productId",
			fmt.Errorf("%d is not greater than 0", id))
	}
	if p.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("productId",
			fmt.Errorf("product %d already has an identity", p.id))
	}
	p.id = id
	return nil
}

// Name returns the display name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the unit price.
func (p *Product) Price() float64 {
	return p.price
}

// ShopID returns the owning shop reference.
func (p *Product) ShopID() int64 {
	return p.shopID
}

// ChangePrice updates the unit price; the new price must be positive.
func (p *Product) ChangePrice(price float64) error {
	return p.setPrice(price)
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%v is not greater than 0", price))
	}
	p.price = price
	return nil
}

func (p *Product) setShopID(shopID int64) error {
	if shopID < 1 {
		return errs.NewValueIsInvalidErrorWithCause("shopId",
			fmt.Errorf("%d is not greater than 0", shopID))
	}
	p.shopID = shopID
	return nil
}
