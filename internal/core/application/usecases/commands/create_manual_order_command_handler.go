package commands

import (
	"context"
	"time"

	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/core/domain/model/order"
	"orderhub/internal/core/domain/model/platform"
)

// CreateManualOrderCommandHandler persists operator-entered orders. Manual
// orders use the same id generator as webhook fallbacks and carry the Manual
// platform tag so the board renders them alongside platform orders.
type CreateManualOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateManualOrderCommandHandler creates a handler for manual order intake.
func NewCreateManualOrderCommandHandler(uowFactory OrderUoWFactory) CreateManualOrderCommandHandler {
	return CreateManualOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the manual intake command and returns the created order.
func (h CreateManualOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateManualOrderCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(
		kernel.NewOrderID(),
		cmd.Customer(),
		platform.Manual(),
		cmd.Items(),
		cmd.Total(),
		time.Now(),
		nil,
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
