package commands

import (
	"errors"

	"orderhub/internal/core/domain/model/order"
	"orderhub/internal/pkg/errs"
	"orderhub/internal/pkg/guard"
)

var ErrCreateManualOrderCommandIsNotConstructed = errors.New(
	"CreateManualOrderCommand must be created via NewCreateManualOrderCommand constructor",
)

// CreateManualOrderCommand represents an operator-entered order. Unlike
// webhook ingestion, manual intake is strict: the customer name, at least
// one item and a positive total are all required up front.
type CreateManualOrderCommand struct { //nolint:recvcheck //using for validation
	customer string
	items    []order.Item
	total    float64

	guard guard.ConstructorGuard
}

// NewCreateManualOrderCommand creates a command for manual order intake.
// Returns errs.ValueIsRequiredError when the customer is empty, the item
// list is empty, or the total is not positive.
func NewCreateManualOrderCommand(customer string, items []order.Item, total float64) (CreateManualOrderCommand, error) {
	cmd := CreateManualOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomer(customer),
		cmd.setItems(items),
		cmd.setTotal(total),
	); err != nil {
		return CreateManualOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateManualOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateManualOrderCommandIsNotConstructed)
}

// Customer returns the customer name.
func (c CreateManualOrderCommand) Customer() string {
	return c.customer
}

// Items returns the ordered items.
func (c CreateManualOrderCommand) Items() []order.Item {
	items := make([]order.Item, len(c.items))
	copy(items, c.items)
	return items
}

// Total returns the order total.
func (c CreateManualOrderCommand) Total() float64 {
	return c.total
}

func (c *CreateManualOrderCommand) setCustomer(customer string) error {
	if customer == "" {
		return errs.NewValueIsRequiredError("customer")
	}
	c.customer = customer
	return nil
}

func (c *CreateManualOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	c.items = make([]order.Item, len(items))
	copy(c.items, items)
	return nil
}

func (c *CreateManualOrderCommand) setTotal(total float64) error {
	if total <= 0 {
		return errs.NewValueIsInvalidError("total")
	}
	c.total = total
	return nil
}
