package commands

import (
	"errors"
	"fmt"

	"controltower/internal/pkg/errs"
	"controltower/internal/pkg/guard"
)

// ErrChangeProductPriceCommandIsNotConstructed is returned when the command
// was not created via NewChangeProductPriceCommand.
var ErrChangeProductPriceCommandIsNotConstructed = errors.New(
	"ChangeProductPriceCommand must be created via NewChangeProductPriceCommand constructor",
)

// ChangeProductPriceCommand updates the unit price of a catalog product.
type ChangeProductPriceCommand struct { //nolint:recvcheck //using for validation
	productID int64
	price     float64

	guard guard.ConstructorGuard
}

// NewChangeProductPriceCommand creates the command. The product reference
// must be positive and the new price strictly positive.
func NewChangeProductPriceCommand(productID int64, price float64) (ChangeProductPriceCommand, error) {
	c := ChangeProductPriceCommand{}

	if err := errors.Join(
		c.setProductID(productID),
		c.setPrice(price),
	); err != nil {
		return ChangeProductPriceCommand{}, err
	}

	c.guard = guard.NewConstructorGuard()
	return c, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeProductPriceCommand) Validate() error {
	return c.guard.Validate(ErrChangeProductPriceCommandIsNotConstructed)
}

// ProductID returns the product to reprice.
func (c ChangeProductPriceCommand) ProductID() int64 {
	return c.productID
}

// Price returns the new unit price.
func (c ChangeProductPriceCommand) Price() float64 {
	return c.price
}

func (c *ChangeProductPriceCommand) setProductID(productID int64) error {
	if productID < 1 {
		return errs.NewValueIsInvalidErrorWithCause("productId",
			fmt.Errorf("%d is not greater than 0", productID))
	}
	c.productID = productID
	return nil
}

func (c *ChangeProductPriceCommand) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%v is not greater than 0", price))
	}
	c.price = price
	return nil
}
