package order

import (
	"fmt"

	"orderhub/internal/pkg/errs"
)

// Status represents the fulfillment lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Preparing ──> Ready ──> Courier ──> Delivered
//	                            │                      ▲
//	                            └──────────────────────┘
//	                          (courier-less handover)
//
// Next covers the kitchen-side steps (Pending -> Preparing -> Ready). Leaving
// Ready requires either courier assignment (Assign) or a courier-less
// handover (Deliver). Delivered is terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every ingested order.
	Pending

	// Preparing means the kitchen has started working on the order.
	Preparing

	// Ready means the order is packed and waiting for handover or dispatch.
	Ready

	// Courier means a courier has been assigned and is carrying the order.
	Courier

	// Delivered is the terminal status; no transition leaves it.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "pending",
		Preparing: "preparing",
		Ready:     "ready",
		Courier:   "courier",
		Delivered: "delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Preparing: "preparing",
		Ready:     "ready",
		Courier:   "courier",
		Delivered: "delivered",
	}
}

// Validate checks if the Status value is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase wire name of the status, or "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Next returns the single-step advance target.
//
// Valid transitions:
//   - Pending -> Preparing
//   - Preparing -> Ready
//
// Ready, Courier and Delivered are rejected: Ready leaves only through
// assignment or delivery, Courier only through delivery, and Delivered is
// terminal.
func (s Status) Next() (Status, error) {
	switch s {
	case Pending:
		return Preparing, nil
	case Preparing:
		return Ready, nil
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s cannot be advanced", s.String()))
	}
}

// ValidateAssign checks whether a courier can be assigned from the current
// status. Only Ready orders are dispatchable.
func (s Status) ValidateAssign() error {
	if s != Ready {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to assign a courier", s.String()))
	}
	return nil
}

// Assign transitions the status to Courier. Valid only from Ready.
func (s Status) Assign() (Status, error) {
	if err := s.ValidateAssign(); err != nil {
		return 0, err
	}
	return Courier, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Courier -> Delivered (courier handover)
//   - Ready -> Delivered (courier-less handover, e.g. pickup)
func (s Status) Deliver() (Status, error) {
	if s != Courier && s != Ready {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to deliver", s.String()))
	}
	return Delivered, nil
}
