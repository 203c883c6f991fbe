package courier

import (
	"errors"
	"fmt"

	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/pkg/errs"
	"orderhub/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrNameIsRequired is returned when creating a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPhoneIsRequired is returned when creating a courier without a phone number.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
)

// Courier represents a delivery agent. It is an aggregate root tracking the
// courier's identity and current workload.
//
// Invariants:
//   - activeOrders never goes below zero
//   - status is Busy exactly when activeOrders > 0, Active otherwise
//
// Couriers are provisioned once at process start; the aggregate exposes no
// way to change identity attributes afterwards.
type Courier struct {
	id    kernel.UUID
	name  string
	phone string

	// activeOrders counts currently assigned, undelivered orders.
	activeOrders int
	status       Status

	guard guard.ConstructorGuard
}

// NewCourier creates a courier with no workload.
// Returns joined validation errors if the id, name or phone is invalid.
func NewCourier(id kernel.UUID, name, phone string) (*Courier, error) {
	c := &Courier{
		status: Active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCourier reconstructs a courier from persistent storage, including its
// workload at the time of persistence. The status is re-derived from the load
// count so a stored inconsistency cannot survive rehydration.
func RestoreCourier(id kernel.UUID, name, phone string, activeOrders int) (*Courier, error) {
	c := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setPhone(phone),
		c.setActiveOrders(activeOrders),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks the courier was created through a constructor.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// IsEqual compares two couriers by identity.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the courier's name.
func (c *Courier) Name() string {
	return c.name
}

// Phone returns the courier's phone number, used for dispatch notifications.
func (c *Courier) Phone() string {
	return c.phone
}

// Status returns the courier's availability, derived from the workload.
func (c *Courier) Status() Status {
	return c.status
}

// ActiveOrders returns the number of currently assigned, undelivered orders.
func (c *Courier) ActiveOrders() int {
	return c.activeOrders
}

// IsAvailable reports whether the courier can take another assignment.
func (c *Courier) IsAvailable() bool {
	return c.status == Active
}

// AcceptOrder records a new assignment: the load counter goes up by one and
// the status is re-derived (the courier becomes Busy).
func (c *Courier) AcceptOrder() {
	c.activeOrders++
	c.status = statusForLoad(c.activeOrders)
}

// ReleaseOrder records a completed delivery: the load counter goes down by
// one, floored at zero, and the status is re-derived.
func (c *Courier) ReleaseOrder() {
	if c.activeOrders > 0 {
		c.activeOrders--
	}
	c.status = statusForLoad(c.activeOrders)
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Courier) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}
	c.phone = phone
	return nil
}

func (c *Courier) setActiveOrders(activeOrders int) error {
	if activeOrders < 0 {
		return errs.NewValueIsInvalidErrorWithCause("activeOrders",
			fmt.Errorf("%d is negative", activeOrders))
	}
	c.activeOrders = activeOrders
	c.status = statusForLoad(activeOrders)
	return nil
}
