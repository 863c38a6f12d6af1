// Package shop contains the shop entity owning catalog products.
package shop

import (
	"errors"
	"fmt"

	"controltower/internal/pkg/errs"
)

// ErrShopIsNotConstructed is returned when a Shop instance was not created
// through NewShop or RestoreShop.
var ErrShopIsNotConstructed = errors.New("Shop must be created via NewShop constructor")

// Shop is a storefront whose products can be ordered through the control tower.
type Shop struct {
	id            int64
	name          string
	isConstructed bool
}

// NewShop creates a shop with no identity assigned yet. Name must be non-empty.
func NewShop(name string) (*Shop, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("shop name")
	}
	return &Shop{name: name, isConstructed: true}, nil
}

// RestoreShop reconstructs a shop from persistence.
func RestoreShop(id int64, name string) (*Shop, error) {
	if id < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause("shopId",
			fmt.Errorf("%d is not greater than 0", id))
	}

	s, err := NewShop(name)
	if err != nil {
		return nil, err
	}
	s.id = id
	return s, nil
}

// Validate ensures the instance was properly constructed.
func (s *Shop) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShopIsNotConstructed
	}
	return nil
}

// ID returns the shop identity, or zero before the first save.
func (s *Shop) ID() int64 {
	return s.id
}

// AssignID sets the store-assigned identity exactly once.
func (s *Shop) AssignID(id int64) error {
	if id < 1 {
		return errs.NewValueIsInvalidErrorWithCause("shopId",
			fmt.Errorf("%d is not greater than 0", id))
	}
	if s.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("shopId",
			fmt.Errorf("shop %d already has an identity", s.id))
	}
	s.id = id
	return nil
}

// Name returns the shop name.
func (s *Shop) Name() string {
	return s.name
}
