package commands

import (
	"errors"

	"controltower/internal/pkg/errs"
	"controltower/internal/pkg/guard"
)

// ErrCreateShopCommandIsNotConstructed is returned when the command was not
// created via NewCreateShopCommand.
var ErrCreateShopCommandIsNotConstructed = errors.New(
	"CreateShopCommand must be created via NewCreateShopCommand constructor",
)

// CreateShopCommand registers a new storefront in the catalog.
type CreateShopCommand struct { //nolint:recvcheck //using for validation
	name string

	guard guard.ConstructorGuard
}

// NewCreateShopCommand creates the command; the shop name must be non-empty.
func NewCreateShopCommand(name string) (CreateShopCommand, error) {
	if name == "" {
		return CreateShopCommand{}, errs.NewValueIsRequiredError("shop name")
	}

	return CreateShopCommand{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShopCommand) Validate() error {
	return c.guard.Validate(ErrCreateShopCommandIsNotConstructed)
}

// Name returns the shop name.
func (c CreateShopCommand) Name() string {
	return c.name
}
