package commands

import (
	"errors"

	"orderhub/internal/pkg/errs"
	"orderhub/internal/pkg/guard"
)

var ErrCreateWebhookOrderCommandIsNotConstructed = errors.New(
	"CreateWebhookOrderCommand must be created via NewCreateWebhookOrderCommand constructor",
)

// CreateWebhookOrderCommand represents an incoming platform webhook: a raw,
// schema-varying payload plus the platform key taken from the request path.
//
// Example:
//
//	cmd, err := NewCreateWebhookOrderCommand("trendyol", payload)
//	if err != nil {
//	    return err
//	}
//	order, err := handler.Handle(ctx, cmd)
type CreateWebhookOrderCommand struct { //nolint:recvcheck //using for validation
	platformKey string
	payload     map[string]any

	guard guard.ConstructorGuard
}

// NewCreateWebhookOrderCommand creates a command carrying a webhook payload.
// The platform key must be non-empty; whether it is supported is decided by
// the normalizer against the registry.
func NewCreateWebhookOrderCommand(platformKey string, payload map[string]any) (CreateWebhookOrderCommand, error) {
	cmd := CreateWebhookOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPlatformKey(platformKey),
		cmd.setPayload(payload),
	); err != nil {
		return CreateWebhookOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateWebhookOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateWebhookOrderCommandIsNotConstructed)
}

// PlatformKey returns the platform key from the webhook path.
func (c CreateWebhookOrderCommand) PlatformKey() string {
	return c.platformKey
}

// Payload returns the decoded webhook body.
func (c CreateWebhookOrderCommand) Payload() map[string]any {
	return c.payload
}

func (c *CreateWebhookOrderCommand) setPlatformKey(platformKey string) error {
	if platformKey == "" {
		return errs.NewValueIsRequiredError("platformKey")
	}
	c.platformKey = platformKey
	return nil
}

func (c *CreateWebhookOrderCommand) setPayload(payload map[string]any) error {
	if payload == nil {
		return errs.NewValueIsRequiredError("payload")
	}
	c.payload = payload
	return nil
}
