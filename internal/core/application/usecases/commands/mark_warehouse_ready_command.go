package commands

import (
	"errors"
	"fmt"

	"controltower/internal/pkg/errs"
	"controltower/internal/pkg/guard"
)

// ErrMarkWarehouseReadyCommandIsNotConstructed is returned when the command
// was not created via NewMarkWarehouseReadyCommand.
var ErrMarkWarehouseReadyCommandIsNotConstructed = errors.New(
	"MarkWarehouseReadyCommand must be created via NewMarkWarehouseReadyCommand constructor",
)

// MarkWarehouseReadyCommand signals that the warehouse finished assembling
// an order and it can be handed to the delivery service.
type MarkWarehouseReadyCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewMarkWarehouseReadyCommand creates the command; the order id must be
// positive.
func NewMarkWarehouseReadyCommand(orderID int64) (MarkWarehouseReadyCommand, error) {
	if orderID < 1 {
		return MarkWarehouseReadyCommand{}, errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("%d is not greater than 0", orderID))
	}

	return MarkWarehouseReadyCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkWarehouseReadyCommand) Validate() error {
	return c.guard.Validate(ErrMarkWarehouseReadyCommandIsNotConstructed)
}

// OrderID returns the order to advance.
func (c MarkWarehouseReadyCommand) OrderID() int64 {
	return c.orderID
}
