package order

import (
	"controltower/internal/pkg/errs"
)

// State represents the lifecycle state of an order.
// It implements a state machine with defined transitions:
//
//	PREPARING ──> PREPARED ──> IN_DELIVERY ──┬──> DELIVERED
//	                                         └──> FAILED
//
// DELIVERED and FAILED are terminal; no state is re-enterable.
type State int

const (
	// Unknown represents an invalid or undefined state.
	// This value (0) helps catch uninitialized State values.
	Unknown State = iota

	// Preparing is the initial state: stock is verified and the warehouse
	// is assembling the order.
	Preparing

	// Prepared indicates the warehouse finished assembly and the delivery
	// service accepted the dispatch.
	Prepared

	// InDelivery indicates a courier has collected the order.
	InDelivery

	// Delivered is the successful terminal state.
	Delivered

	// Failed is the unsuccessful terminal state, reachable only from
	// InDelivery.
	Failed
)

var stateStrings = map[State]string{
	Unknown:    "UNKNOWN",
	Preparing:  "PREPARING",
	Prepared:   "PREPARED",
	InDelivery: "IN_DELIVERY",
	Delivered:  "DELIVERED",
	Failed:     "FAILED",
}

// Validate checks that the State value is one of the defined lifecycle states.
// Unknown (0) and out-of-range values are invalid. Used when reconstructing
// orders from external sources such as the database.
func (s State) Validate() error {
	if s < Preparing || s > Failed {
		return errs.NewValueIsInvalidError("state")
	}
	return nil
}

// String returns the wire-level name of the state ("PREPARING", "PREPARED",
// "IN_DELIVERY", "DELIVERED", "FAILED"), or "UNKNOWN" for invalid values.
// Implements fmt.Stringer.
func (s State) String() string {
	if str, ok := stateStrings[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transitions are possible.
func (s State) IsTerminal() bool {
	return s == Delivered || s == Failed
}

// Prepare transitions PREPARING -> PREPARED.
// Any other source state is an illegal transition.
func (s State) Prepare() (State, error) {
	if s != Preparing {
		return Unknown, errs.NewIllegalStateTransitionError("order", s.String(), Prepared.String())
	}
	return Prepared, nil
}

// StartDelivery transitions PREPARED -> IN_DELIVERY.
// Any other source state is an illegal transition.
func (s State) StartDelivery() (State, error) {
	if s != Prepared {
		return Unknown, errs.NewIllegalStateTransitionError("order", s.String(), InDelivery.String())
	}
	return InDelivery, nil
}

// Complete transitions IN_DELIVERY -> DELIVERED.
// Any other source state is an illegal transition.
func (s State) Complete() (State, error) {
	if s != InDelivery {
		return Unknown, errs.NewIllegalStateTransitionError("order", s.String(), Delivered.String())
	}
	return Delivered, nil
}

// Fail transitions IN_DELIVERY -> FAILED.
// Any other source state is an illegal transition.
func (s State) Fail() (State, error) {
	if s != InDelivery {
		return Unknown, errs.NewIllegalStateTransitionError("order", s.String(), Failed.String())
	}
	return Failed, nil
}
