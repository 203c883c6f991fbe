package commands

import (
	"context"
	"errors"

	"orderhub/internal/core/domain/services"
	"orderhub/internal/core/ports"
	"orderhub/internal/pkg/errs"
)

var ErrNoReadyOrderFound = errors.New("no ready order found")

// DispatchNextOrderCommandHandler runs one auto-dispatch cycle. It picks the
// oldest ready order and hands it to the dispatcher, committing the order
// and courier mutations in a single transaction.
//
// Example:
//
//	handler := NewDispatchNextOrderCommandHandler(uowFactory, notifier)
//	err := handler.Handle(ctx, NewDispatchNextOrderCommand())
//	switch {
//	case errors.Is(err, ErrNoReadyOrderFound):
//	    // nothing to dispatch, try again next tick
//	case errors.Is(err, services.ErrNoCourierAvailable):
//	    // every courier is saturated, try again next tick
//	case err != nil:
//	    log.Printf("Dispatch failed: %v", err)
//	}
type DispatchNextOrderCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.AssignmentNotifier
}

// NewDispatchNextOrderCommandHandler creates a handler for the dispatch cycle.
func NewDispatchNextOrderCommandHandler(
	uowFactory UoWFactory,
	notifier ports.AssignmentNotifier,
) DispatchNextOrderCommandHandler {
	return DispatchNextOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes one dispatch cycle.
// Returns ErrNoReadyOrderFound when no order awaits dispatch and
// services.ErrNoCourierAvailable when every courier is saturated. Both are
// expected idle-cycle outcomes, not failures.
func (h DispatchNextOrderCommandHandler) Handle(ctx context.Context, cmd DispatchNextOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	courierRepo := uow.CourierRepository()

	target, err := orderRepo.GetFirstInReadyStatus(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoReadyOrderFound
	}
	if err != nil {
		return err
	}

	couriers, err := courierRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	assigned, err := services.NewCourierDispatcher().Dispatch(target, couriers)
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return err
	}

	if err = courierRepo.Update(ctx, assigned); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.notifier.NotifyAssigned(ctx, ports.AssignmentNotice{
		OrderID:      target.ID().String(),
		CourierName:  assigned.Name(),
		CourierPhone: assigned.Phone(),
	})

	return nil
}
