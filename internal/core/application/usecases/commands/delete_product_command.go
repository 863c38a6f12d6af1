package commands

import (
	"errors"
	"fmt"

	"controltower/internal/pkg/errs"
	"controltower/internal/pkg/guard"
)

// ErrDeleteProductCommandIsNotConstructed is returned when the command was
// not created via NewDeleteProductCommand.
var ErrDeleteProductCommandIsNotConstructed = errors.New(
	"DeleteProductCommand must be created via NewDeleteProductCommand constructor",
)

// DeleteProductCommand removes a product from the catalog.
type DeleteProductCommand struct { //nolint:recvcheck //using for validation
	productID int64

	guard guard.ConstructorGuard
}

// NewDeleteProductCommand creates the command; the product id must be positive.
func NewDeleteProductCommand(productID int64) (DeleteProductCommand, error) {
	if productID < 1 {
		return DeleteProductCommand{}, errs.NewValueIsInvalidErrorWithCause("productId",
			fmt.Errorf("%d is not greater than 0", productID))
	}

	return DeleteProductCommand{
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteProductCommand) Validate() error {
	return c.guard.Validate(ErrDeleteProductCommandIsNotConstructed)
}

// ProductID returns the product to remove.
func (c DeleteProductCommand) ProductID() int64 {
	return c.productID
}
