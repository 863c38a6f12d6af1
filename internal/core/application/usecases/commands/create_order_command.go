package commands

import (
	"errors"

	"controltower/internal/core/domain/model/order"
	"controltower/internal/pkg/errs"
	"controltower/internal/pkg/guard"
)

// ErrCreateOrderCommandIsNotConstructed is returned when a CreateOrderCommand
// was not created via NewCreateOrderCommand.
var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// ProductQuantity is the raw (product id, quantity) pair of a checkout request.
type ProductQuantity struct {
	ProductID int64
	Quantity  int
}

// CreateOrderCommand represents a checkout request: a delivery address plus
// the requested line items. All input validation happens here, before any
// remote call is made.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("12 Elm St", []ProductQuantity{{ProductID: 1, Quantity: 2}})
//	if err != nil {
//	    return err // malformed request, nothing was called
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	direction string
	items     []order.LineItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a checkout command. The direction (delivery
// address) must be non-empty, at least one product is required, and every
// product reference and quantity must be positive.
func NewCreateOrderCommand(direction string, products []ProductQuantity) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDirection(direction),
		cmd.setItems(products),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Direction returns the client delivery address.
func (c CreateOrderCommand) Direction() string {
	return c.direction
}

// Items returns the validated line items, in request order.
func (c CreateOrderCommand) Items() []order.LineItem {
	items := make([]order.LineItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c *CreateOrderCommand) setDirection(direction string) error {
	if direction == "" {
		return errs.NewValueIsRequiredError("direction")
	}
	c.direction = direction
	return nil
}

func (c *CreateOrderCommand) setItems(products []ProductQuantity) error {
	if len(products) == 0 {
		return errs.NewValueIsRequiredError("products")
	}

	items := make([]order.LineItem, 0, len(products))
	for _, pq := range products {
		item, err := order.NewLineItem(pq.ProductID, pq.Quantity)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	c.items = items
	return nil
}
