package services

import (
	"errors"

	"orderhub/internal/core/domain/model/courier"
	"orderhub/internal/core/domain/model/order"
)

// ErrNoCourierAvailable is returned when no active courier exists at
// assignment time. The condition is transient: callers may retry once a
// courier finishes a delivery.
var ErrNoCourierAvailable = errors.New("no courier available")

// CourierDispatcher selects the best available courier for a ready order
// using the least-load policy.
//
// Selection sorts active couriers by ascending activeOrders with ties broken
// by their position in the input slice, which repositories populate in
// courier registration order. The tie-break is deterministic by contract,
// not an accident of iteration order.
type CourierDispatcher struct{}

// NewCourierDispatcher creates a new CourierDispatcher instance.
func NewCourierDispatcher() CourierDispatcher {
	return CourierDispatcher{}
}

// Dispatch assigns the least-loaded active courier to the order.
//
// On success the chosen courier's load is incremented (it becomes busy) and
// the order transitions Ready -> Courier with the courier's id; the two
// mutations happen together, and any validation failure leaves both
// aggregates untouched.
//
// Returns ErrNoCourierAvailable if no courier is active; the order and all
// couriers are left unchanged in that case.
func (d CourierDispatcher) Dispatch(o *order.Order, couriers []*courier.Courier) (*courier.Courier, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if err := o.ValidateAssign(); err != nil {
		return nil, err
	}

	chosen, err := d.findLeastLoaded(couriers)
	if err != nil {
		return nil, err
	}

	if err := o.AssignCourier(chosen.ID()); err != nil {
		return nil, err
	}
	chosen.AcceptOrder()

	return chosen, nil
}

// findLeastLoaded scans the couriers for the active one with the minimum
// load. The first encountered wins on ties (stable on input order).
func (d CourierDispatcher) findLeastLoaded(couriers []*courier.Courier) (*courier.Courier, error) {
	var best *courier.Courier

	for _, c := range couriers {
		if err := c.Validate(); err != nil {
			return nil, err
		}

		if !c.IsAvailable() {
			continue
		}

		if best == nil || c.ActiveOrders() < best.ActiveOrders() {
			best = c
		}
	}

	if best == nil {
		return nil, ErrNoCourierAvailable
	}
	return best, nil
}
