package commands

import (
	"context"

	"orderhub/internal/core/domain/model/order"
	"orderhub/internal/core/domain/services"
	"orderhub/internal/core/ports"
)

// AssignCourierCommandHandler dispatches a courier to a ready order.
// The order's status change and the courier's load increment commit in the
// same transaction; the courier notification runs after the commit and its
// failure never fails the assignment.
//
// Example:
//
//	handler := NewAssignCourierCommandHandler(uowFactory, notifier)
//	cmd, _ := NewAssignCourierCommand(orderID)
//
//	assigned, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, services.ErrNoCourierAvailable):
//	    log.Println("All couriers are busy")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	default:
//	    log.Printf("Courier assigned to %s", assigned.ID())
//	}
type AssignCourierCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.AssignmentNotifier
}

// NewAssignCourierCommandHandler creates a handler for courier assignment.
// Requires a UoWFactory for the cross-aggregate transaction and a notifier
// for the dispatch message.
func NewAssignCourierCommandHandler(
	uowFactory UoWFactory,
	notifier ports.AssignmentNotifier,
) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the assignment command and returns the updated order.
// Fails with errs.ObjectNotFoundError for unknown orders, with
// errs.ValueIsInvalidError when the order is not ready, and with
// services.ErrNoCourierAvailable when every courier is saturated.
func (h AssignCourierCommandHandler) Handle(ctx context.Context, cmd AssignCourierCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	courierRepo := uow.CourierRepository()

	target, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	couriers, err := courierRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	assigned, err := services.NewCourierDispatcher().Dispatch(target, couriers)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return nil, err
	}

	if err = courierRepo.Update(ctx, assigned); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	_ = h.notifier.NotifyAssigned(ctx, ports.AssignmentNotice{
		OrderID:      target.ID().String(),
		CourierName:  assigned.Name(),
		CourierPhone: assigned.Phone(),
	})

	return target, nil
}
