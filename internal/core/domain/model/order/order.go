package order

import (
	"encoding/json"
	"errors"
	"time"

	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/core/domain/model/platform"
	"orderhub/internal/pkg/errs"
	"orderhub/internal/pkg/guard"
)

const (
	// DefaultCustomerName is attached when a payload carries no customer at all.
	DefaultCustomerName = "Unknown Customer"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through a constructor.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrPlatformIsRequired is returned when constructing an order without a platform snapshot.
	ErrPlatformIsRequired = errs.NewValueIsRequiredError("platform")
)

// Order is the canonical representation every intake path converges to.
// It is the aggregate root managing the fulfillment lifecycle from ingestion
// through courier handover.
//
// Invariants:
//   - must have a valid identifier and a platform snapshot
//   - total is never negative; it is independent of the item price sum
//     (deliberate simplification carried over from the source system)
//   - the courier reference is non-nil exactly when a courier was assigned,
//     which implies status Courier or Delivered
//   - status transitions follow the rules in Status
type Order struct {
	id       kernel.OrderID
	customer string

	// platform is a value copy of the channel identity at ingestion time.
	// Registry changes never rewrite it.
	platform platform.Platform

	items []Item
	total float64

	status    Status
	courierID *kernel.UUID

	createdAt time.Time

	// raw is the untouched webhook payload, kept for audit only.
	// Manual orders have none.
	raw json.RawMessage

	guard guard.ConstructorGuard
}

// NewOrder creates an order in Pending status with no courier.
//
// A missing customer falls back to DefaultCustomerName, a negative total is
// clamped to zero and a zero createdAt falls back to the current time; the
// id and platform must be valid. The items slice may be empty. The raw
// payload may be nil (manual intake).
func NewOrder(
	id kernel.OrderID,
	customer string,
	p platform.Platform,
	items []Item,
	total float64,
	createdAt time.Time,
	raw json.RawMessage,
) (*Order, error) {
	o := &Order{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setPlatform(p),
	); err != nil {
		return nil, err
	}

	o.setCustomer(customer)
	o.setItems(items)
	o.setTotal(total)
	o.setCreatedAt(createdAt)
	o.raw = raw

	return o, nil
}

// RestoreOrder reconstructs an order from persistent storage, including its
// lifecycle position and courier reference.
func RestoreOrder(
	id kernel.OrderID,
	customer string,
	p platform.Platform,
	items []Item,
	total float64,
	status Status,
	courierID *kernel.UUID,
	createdAt time.Time,
	raw json.RawMessage,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setPlatform(p),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
	}

	o.setCustomer(customer)
	o.setItems(items)
	o.setTotal(total)
	o.setCreatedAt(createdAt)
	o.status = status
	o.courierID = courierID
	o.raw = raw

	return o, nil
}

// Validate checks the order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// Customer returns the customer display name.
func (o *Order) Customer() string {
	return o.customer
}

// Platform returns the channel identity snapshot taken at ingestion.
func (o *Order) Platform() platform.Platform {
	return o.platform
}

// Items returns the order lines in display order. The returned slice is a
// copy to keep the aggregate encapsulated.
func (o *Order) Items() []Item {
	out := make([]Item, len(o.items))
	copy(out, o.items)
	return out
}

// Total returns the order total as supplied by the source. It is not
// validated against the item price sum.
func (o *Order) Total() float64 {
	return o.total
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Courier returns the assigned courier's ID, or nil when no courier was ever
// assigned. Delivered orders retain their last courier reference.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// CreatedAt returns the ingestion timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Raw returns the original webhook payload, or nil for manual orders.
func (o *Order) Raw() json.RawMessage {
	return o.raw
}

// Advance moves the order one step along the kitchen-side lifecycle
// (Pending -> Preparing -> Ready). Any other starting status is rejected.
func (o *Order) Advance() error {
	next, err := o.status.Next()
	if err != nil {
		return err
	}

	o.status = next
	return nil
}

// ValidateAssign checks whether a courier can be assigned right now.
func (o *Order) ValidateAssign() error {
	return o.status.ValidateAssign()
}

// AssignCourier links the order to a courier and moves it to Courier status.
// The order must be Ready and the courier ID must be valid.
func (o *Order) AssignCourier(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.courierID = &courierID
	return nil
}

// Deliver marks the order as Delivered. Valid from Courier status, or from
// Ready when no courier is assigned (pickup-style handover). The courier
// reference, if any, is retained.
func (o *Order) Deliver() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setPlatform(p platform.Platform) error {
	if p.IsZero() {
		return ErrPlatformIsRequired
	}
	o.platform = p
	return nil
}

func (o *Order) setCustomer(customer string) {
	if customer == "" {
		customer = DefaultCustomerName
	}
	o.customer = customer
}

func (o *Order) setItems(items []Item) {
	o.items = make([]Item, len(items))
	copy(o.items, items)
}

func (o *Order) setTotal(total float64) {
	if total < 0 {
		total = 0
	}
	o.total = total
}

func (o *Order) setCreatedAt(createdAt time.Time) {
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	o.createdAt = createdAt
}
