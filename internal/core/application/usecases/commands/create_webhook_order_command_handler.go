package commands

import (
	"context"

	"orderhub/internal/core/domain/model/order"
	"orderhub/internal/core/domain/services"
)

// CreateWebhookOrderCommandHandler turns an incoming platform webhook into a
// persisted order. The normalizer maps the platform-specific payload shape
// onto the canonical order model; the handler only deals with persistence.
//
// Example:
//
//	handler := NewCreateWebhookOrderCommandHandler(uowFactory, normalizer)
//	cmd, _ := NewCreateWebhookOrderCommand("getir", payload)
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("webhook ingestion failed: %w", err)
//	}
//	log.Printf("accepted order %s", created.ID())
type CreateWebhookOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	normalizer services.OrderNormalizer
}

// NewCreateWebhookOrderCommandHandler creates a handler for webhook ingestion.
// Requires an OrderUoWFactory for transactional persistence and the
// normalizer configured with the platform registry.
func NewCreateWebhookOrderCommandHandler(
	uowFactory OrderUoWFactory,
	normalizer services.OrderNormalizer,
) CreateWebhookOrderCommandHandler {
	return CreateWebhookOrderCommandHandler{
		uowFactory: uowFactory,
		normalizer: normalizer,
	}
}

// Handle processes the webhook command. Normalization happens before the
// transaction opens: an unsupported platform or malformed payload never
// touches the database. Returns the created order for the HTTP response.
func (h CreateWebhookOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateWebhookOrderCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newOrder, err := h.normalizer.Normalize(cmd.PlatformKey(), cmd.Payload())
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
