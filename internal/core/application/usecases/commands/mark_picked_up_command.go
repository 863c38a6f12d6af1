package commands

import (
	"errors"
	"fmt"

	"controltower/internal/pkg/errs"
	"controltower/internal/pkg/guard"
)

// ErrMarkPickedUpCommandIsNotConstructed is returned when the command was not
// created via NewMarkPickedUpCommand.
var ErrMarkPickedUpCommandIsNotConstructed = errors.New(
	"MarkPickedUpCommand must be created via NewMarkPickedUpCommand constructor",
)

// MarkPickedUpCommand signals that a courier has physically collected an
// order from the warehouse.
type MarkPickedUpCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewMarkPickedUpCommand creates the command; the order id must be positive.
func NewMarkPickedUpCommand(orderID int64) (MarkPickedUpCommand, error) {
	if orderID < 1 {
		return MarkPickedUpCommand{}, errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("%d is not greater than 0", orderID))
	}

	return MarkPickedUpCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkPickedUpCommand) Validate() error {
	return c.guard.Validate(ErrMarkPickedUpCommandIsNotConstructed)
}

// OrderID returns the order to advance.
func (c MarkPickedUpCommand) OrderID() int64 {
	return c.orderID
}
