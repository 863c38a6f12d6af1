package commands

import (
	"errors"
	"fmt"

	"controltower/internal/pkg/errs"
	"controltower/internal/pkg/guard"
)

// ErrMarkFailedCommandIsNotConstructed is returned when the command was not
// created via NewMarkFailedCommand.
var ErrMarkFailedCommandIsNotConstructed = errors.New(
	"MarkFailedCommand must be created via NewMarkFailedCommand constructor",
)

// MarkFailedCommand closes an in-delivery order as failed.
type MarkFailedCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewMarkFailedCommand creates the command; the order id must be positive.
func NewMarkFailedCommand(orderID int64) (MarkFailedCommand, error) {
	if orderID < 1 {
		return MarkFailedCommand{}, errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("%d is not greater than 0", orderID))
	}

	return MarkFailedCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkFailedCommand) Validate() error {
	return c.guard.Validate(ErrMarkFailedCommandIsNotConstructed)
}

// OrderID returns the order to close.
func (c MarkFailedCommand) OrderID() int64 {
	return c.orderID
}
