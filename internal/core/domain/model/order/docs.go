// Package order contains the order aggregate and its lifecycle state machine.
//
// An order is created in PREPARING once stock has been verified, advances to
// PREPARED when the delivery service accepts the dispatch, to IN_DELIVERY when
// a courier collects it, and terminates in DELIVERED or FAILED. No state is
// re-enterable and FAILED is reachable only from IN_DELIVERY.
//
// The aggregate is the sole owner of its state: transitions happen through
// its methods, which delegate the legality check to the State machine, and
// persistence identity is assigned exactly once by the record store.
package order
