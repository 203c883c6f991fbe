package commands

import (
	"errors"

	"orderhub/internal/pkg/guard"
)

// DispatchNextOrderCommand triggers one auto-dispatch cycle: find the oldest
// ready order and assign the least loaded courier to it.
//
// Example:
//
//	cmd := NewDispatchNextOrderCommand()
//	handler := NewDispatchNextOrderCommandHandler(uowFactory, notifier)
//
//	// Run periodically from the dispatch job
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Dispatch cycle failed: %v", err)
//	}
type DispatchNextOrderCommand struct {
	guard guard.ConstructorGuard
}

var ErrDispatchNextOrderCommandIsNotConstructed = errors.New(
	"DispatchNextOrderCommand must be created via NewDispatchNextOrderCommand constructor",
)

// NewDispatchNextOrderCommand creates a command to trigger one dispatch cycle.
// This is a parameterless command; the handler selects the order itself.
func NewDispatchNextOrderCommand() DispatchNextOrderCommand {
	return DispatchNextOrderCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrDispatchNextOrderCommandIsNotConstructed if validation fails.
func (c *DispatchNextOrderCommand) Validate() error {
	return c.guard.Validate(ErrDispatchNextOrderCommandIsNotConstructed)
}
