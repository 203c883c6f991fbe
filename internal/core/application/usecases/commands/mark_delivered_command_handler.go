package commands

import (
	"context"

	"orderhub/internal/core/domain/model/order"
)

// MarkDeliveredCommandHandler completes an order's lifecycle. When the order
// is carried by a courier, the delivery and the courier's load release
// commit in one transaction so the courier's availability always reflects
// persisted order state.
type MarkDeliveredCommandHandler struct {
	uowFactory UoWFactory
}

// NewMarkDeliveredCommandHandler creates a handler for delivery completion.
func NewMarkDeliveredCommandHandler(uowFactory UoWFactory) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery command and returns the updated order.
//
// Orders in Courier status deliver and release their courier. Orders in
// Ready status deliver courier-less (pickup handover). Orders still in
// preparation advance one step instead, matching the board's single
// "next step" action. Delivered orders are rejected.
func (h MarkDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkDeliveredCommand) (*order.Order, error) {
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

	target, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	switch {
	case target.Courier() != nil:
		courierRepo := uow.CourierRepository()

		carrier, err := courierRepo.Get(ctx, *target.Courier())
		if err != nil {
			return nil, err
		}

		if err = target.Deliver(); err != nil {
			return nil, err
		}
		carrier.ReleaseOrder()

		if err = courierRepo.Update(ctx, carrier); err != nil {
			return nil, err
		}
	case target.Status() == order.Ready:
		if err = target.Deliver(); err != nil {
			return nil, err
		}
	default:
		if err = target.Advance(); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return target, nil
}
