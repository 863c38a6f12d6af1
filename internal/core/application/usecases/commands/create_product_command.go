package commands

import (
	"errors"
	"fmt"

	"controltower/internal/pkg/errs"
	"controltower/internal/pkg/guard"
)

// ErrCreateProductCommandIsNotConstructed is returned when the command was
// not created via NewCreateProductCommand.
var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand adds a product to an existing shop's catalog.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	name   string
	price  float64
	shopID int64

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates the command. Name must be non-empty, price
// strictly positive and the shop reference positive.
func NewCreateProductCommand(name string, price float64, shopID int64) (CreateProductCommand, error) {
	c := CreateProductCommand{}

	if err := errors.Join(
		c.setName(name),
		c.setPrice(price),
		c.setShopID(shopID),
	); err != nil {
		return CreateProductCommand{}, err
	}

	c.guard = guard.NewConstructorGuard()
	return c, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// Name returns the product display name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Price returns the unit price.
func (c CreateProductCommand) Price() float64 {
	return c.price
}

// ShopID returns the owning shop reference.
func (c CreateProductCommand) ShopID() int64 {
	return c.shopID
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	c.name = name
	return nil
}

func (c *CreateProductCommand) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%v is not greater than 0", price))
	}
	c.price = price
	return nil
}

func (c *CreateProductCommand) setShopID(shopID int64) error {
	if shopID < 1 {
		return errs.NewValueIsInvalidErrorWithCause("shopId",
			fmt.Errorf("%d is not greater than 0", shopID))
	}
	c.shopID = shopID
	return nil
}
