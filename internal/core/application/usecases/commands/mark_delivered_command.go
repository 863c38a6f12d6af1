package commands

import (
	"errors"
	"fmt"

	"controltower/internal/pkg/errs"
	"controltower/internal/pkg/guard"
)

// ErrMarkDeliveredCommandIsNotConstructed is returned when the command was
// not created via NewMarkDeliveredCommand.
var ErrMarkDeliveredCommandIsNotConstructed = errors.New(
	"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
)

// MarkDeliveredCommand closes an in-delivery order as successfully delivered.
type MarkDeliveredCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewMarkDeliveredCommand creates the command; the order id must be positive.
func NewMarkDeliveredCommand(orderID int64) (MarkDeliveredCommand, error) {
	if orderID < 1 {
		return MarkDeliveredCommand{}, errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("%d is not greater than 0", orderID))
	}

	return MarkDeliveredCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}

// OrderID returns the order to close.
func (c MarkDeliveredCommand) OrderID() int64 {
	return c.orderID
}
