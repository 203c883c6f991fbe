package courier

import (
	"fmt"

	"orderhub/internal/pkg/errs"
)

// Status represents a courier's availability. It is fully derived from the
// courier's active order count: a courier carrying at least one undelivered
// order is Busy, otherwise Active.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Active means the courier has no undelivered orders and can be assigned.
	Active

	// Busy means the courier is carrying at least one undelivered order.
	Busy
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown: "Unknown",
		Active:  "active",
		Busy:    "busy",
	}
}

// statusForLoad derives the status from an active order count.
func statusForLoad(activeOrders int) Status {
	if activeOrders > 0 {
		return Busy
	}
	return Active
}

// Validate checks that the Status is one of the defined availability states.
func (s Status) Validate() error {
	if s != Active && s != Busy {
		return errs.NewValueIsInvalidErrorWithCause("courier status",
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
