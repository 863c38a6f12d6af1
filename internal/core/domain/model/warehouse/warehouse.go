// Package warehouse contains the warehouse entity orders are assembled in.
package warehouse

import (
	"errors"
	"fmt"

	"controltower/internal/pkg/errs"
)

// ErrWarehouseIsNotConstructed is returned when a Warehouse instance was not
// created through NewWarehouse or RestoreWarehouse.
var ErrWarehouseIsNotConstructed = errors.New("Warehouse must be created via NewWarehouse constructor")

// Warehouse is a stock location. Orders reference exactly one warehouse,
// assigned at creation and never changed.
type Warehouse struct {
	id            int64
	address       string
	isConstructed bool
}

// NewWarehouse creates a warehouse with no identity assigned yet.
// Address must be non-empty.
func NewWarehouse(address string) (*Warehouse, error) {
	if address == "" {
		return nil, errs.NewValueIsRequiredError("warehouse direction")
	}
	return &Warehouse{address: address, isConstructed: true}, nil
}

// RestoreWarehouse reconstructs a warehouse from persistence.
func RestoreWarehouse(id int64, address string) (*Warehouse, error) {
	if id < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause("warehouseId",
			fmt.Errorf("%d is not greater than 0", id))
	}

	w, err := NewWarehouse(address)
	if err != nil {
		return nil, err
	}
	w.id = id
	return w, nil
}

// Validate ensures the instance was properly constructed.
func (w *Warehouse) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWarehouseIsNotConstructed
	}
	return nil
}

// ID returns the warehouse identity, or zero before the first save.
func (w *Warehouse) ID() int64 {
	return w.id
}

// AssignID sets the store-assigned identity exactly once.
func (w *Warehouse) AssignID(id int64) error {
	if id < 1 {
		return errs.NewValueIsInvalidErrorWithCause("warehouseId",
			fmt.Errorf("%d is not greater than 0", id))
	}
	if w.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("warehouseId",
			fmt.Errorf("warehouse %d already has an identity", w.id))
	}
	w.id = id
	return nil
}

// Address returns the warehouse pickup address.
func (w *Warehouse) Address() string {
	return w.address
}
