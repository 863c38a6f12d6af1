package order

import (
	"errors"
	"fmt"

	"controltower/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// LineItem binds a product reference to a positive quantity within an order.
// It is an immutable value object validated at construction.
type LineItem struct {
	productID int64
	quantity  int
}

// NewLineItem creates a line item. Product id and quantity must both be at
// least 1; whether the product actually exists is checked once, at order
// creation time, by the orchestration layer.
func NewLineItem(productID int64, quantity int) (LineItem, error) {
	if productID < 1 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("productId",
			fmt.Errorf("%d is not greater than 0", productID))
	}
	if quantity < 1 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	return LineItem{productID: productID, quantity: quantity}, nil
}

// ProductID returns the referenced product id.
func (li LineItem) ProductID() int64 {
	return li.productID
}

// Quantity returns the ordered quantity.
func (li LineItem) Quantity() int {
	return li.quantity
}

// Order represents one customer checkout tracked through the delivery
// lifecycle. It is the aggregate root for the order state machine.
//
// Order maintains these invariants:
//   - Always has at least one line item and a non-empty delivery address
//   - The warehouse reference is set exactly once, at creation
//   - State only moves forward through the defined transition graph
//   - Identity is assigned exactly once, by the record store on first save
//   - Can only be created via NewOrder or RestoreOrder
type Order struct {
	// id is assigned by the record store on first save; zero until then.
	id int64

	// address is the client's delivery address.
	address string

	// warehouseID references the warehouse assembling the order.
	warehouseID int64

	// state is the current position in the lifecycle state machine.
	state State

	// items are the order's line items, in request order.
	items []LineItem

	// version is the optimistic-concurrency token maintained by the store.
	version int

	// isConstructed ensures the order was created via a factory method.
	isConstructed bool
}

// NewOrder creates an order in the PREPARING state with no identity assigned.
// The address must be non-empty, the warehouse id positive, and at least one
// line item is required.
func NewOrder(address string, warehouseID int64, items []LineItem) (*Order, error) {
	o := &Order{
		state:         Preparing,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setAddress(address),
		o.setWarehouseID(warehouseID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence, including its assigned
// identity, current state, and version. All invariants are re-validated.
func RestoreOrder(
	id int64,
	address string,
	warehouseID int64,
	state State,
	items []LineItem,
	version int,
) (*Order, error) {
	if id < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("%d is not greater than 0", id))
	}
	if err := state.Validate(); err != nil {
		return nil, err
	}

	o, err := NewOrder(address, warehouseID, items)
	if err != nil {
		return nil, err
	}

	o.id = id
	o.state = state
	o.version = version
	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. Called when the aggregate crosses the persistence boundary.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order's identity, or zero if it has not been persisted yet.
func (o *Order) ID() int64 {
	return o.id
}

// AssignID sets the store-assigned identity. It can be called exactly once;
// a second call is a programming error and is rejected.
func (o *Order) AssignID(id int64) error {
	if id < 1 {
		return errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("%d is not greater than 0", id))
	}
	if o.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("order %d already has an identity", o.id))
	}
	o.id = id
	return nil
}

// Address returns the client delivery address.
func (o *Order) Address() string {
	return o.address
}

// WarehouseID returns the assigned warehouse reference.
func (o *Order) WarehouseID() int64 {
	return o.warehouseID
}

// State returns the current lifecycle state.
func (o *Order) State() State {
	return o.state
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// Version returns the optimistic-concurrency token loaded from the store.
func (o *Order) Version() int {
	return o.version
}

// MarkPrepared transitions the order from PREPARING to PREPARED, recording
// that the delivery service accepted the dispatch.
func (o *Order) MarkPrepared() error {
	return o.transition(State.Prepare)
}

// StartDelivery transitions the order from PREPARED to IN_DELIVERY, recording
// that a courier collected it.
func (o *Order) StartDelivery() error {
	return o.transition(State.StartDelivery)
}

// MarkDelivered transitions the order from IN_DELIVERY to the terminal
// DELIVERED state.
func (o *Order) MarkDelivered() error {
	return o.transition(State.Complete)
}

// MarkFailed transitions the order from IN_DELIVERY to the terminal FAILED
// state.
func (o *Order) MarkFailed() error {
	return o.transition(State.Fail)
}

func (o *Order) transition(step func(State) (State, error)) error {
	next, err := step(o.state)
	if err != nil {
		return err
	}
	o.state = next
	return nil
}

func (o *Order) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("direction")
	}
	o.address = address
	return nil
}

func (o *Order) setWarehouseID(warehouseID int64) error {
	if warehouseID < 1 {
		return errs.NewValueIsInvalidErrorWithCause("warehouseId",
			fmt.Errorf("%d is not greater than 0", warehouseID))
	}
	o.warehouseID = warehouseID
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("products")
	}
	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	return nil
}
