package commands_test

import (
	"testing"

	"controltower/internal/core/application/usecases/commands"
	"controltower/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMarkWarehouseReadyCommand(t *testing.T) {
	cmd, err := commands.NewMarkWarehouseReadyCommand(5)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, int64(5), cmd.OrderID())

	_, err = commands.NewMarkWarehouseReadyCommand(0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	empty := commands.MarkWarehouseReadyCommand{}
	require.ErrorIs(t, empty.Validate(), commands.ErrMarkWarehouseReadyCommandIsNotConstructed)
}

func TestNewMarkPickedUpCommand(t *testing.T) {
	cmd, err := commands.NewMarkPickedUpCommand(5)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, int64(5), cmd.OrderID())

	_, err = commands.NewMarkPickedUpCommand(-1)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	empty := commands.MarkPickedUpCommand{}
	require.ErrorIs(t, empty.Validate(), commands.ErrMarkPickedUpCommandIsNotConstructed)
}

func TestNewMarkDeliveredCommand(t *testing.T) {
	cmd, err := commands.NewMarkDeliveredCommand(5)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, int64(5), cmd.OrderID())

	_, err = commands.NewMarkDeliveredCommand(0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewMarkFailedCommand(t *testing.T) {
	cmd, err := commands.NewMarkFailedCommand(5)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, int64(5), cmd.OrderID())

	_, err = commands.NewMarkFailedCommand(0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewCreateProductCommand(t *testing.T) {
	cmd, err := commands.NewCreateProductCommand("Apples", 2.5, 3)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "Apples", cmd.Name())
	assert.InEpsilon(t, 2.5, cmd.Price(), 1e-9)
	assert.Equal(t, int64(3), cmd.ShopID())

	_, err = commands.NewCreateProductCommand("", 2.5, 3)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewCreateProductCommand("Apples", 0, 3)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewCreateProductCommand("Apples", 2.5, 0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewChangeProductPriceCommand(t *testing.T) {
	cmd, err := commands.NewChangeProductPriceCommand(1, 3.75)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, int64(1), cmd.ProductID())
	assert.InEpsilon(t, 3.75, cmd.Price(), 1e-9)

	_, err = commands.NewChangeProductPriceCommand(0, 3.75)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewChangeProductPriceCommand(1, -1)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewCreateShopCommand(t *testing.T) {
	cmd, err := commands.NewCreateShopCommand("Corner Grocery")
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "Corner Grocery", cmd.Name())

	_, err = commands.NewCreateShopCommand("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewDeleteProductCommand(t *testing.T) {
	cmd, err := commands.NewDeleteProductCommand(1)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, int64(1), cmd.ProductID())

	_, err = commands.NewDeleteProductCommand(0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
