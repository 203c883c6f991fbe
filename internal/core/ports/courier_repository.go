package ports

import (
	"context"

	"orderhub/internal/core/domain/model/courier"
	"orderhub/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier aggregates.
type CourierRepository interface {
	// Add persists a new courier aggregate. Couriers are only added during
	// startup seeding; there is no runtime provisioning.
	Add(ctx context.Context, aggregate *courier.Courier) error

	// Update persists changes to an existing courier aggregate.
	// Fails with errs.ObjectNotFoundError when the courier does not exist.
	Update(ctx context.Context, aggregate *courier.Courier) error

	// Get retrieves a courier by its identifier.
	// Fails with errs.ObjectNotFoundError for unknown ids.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetAll retrieves every courier in registration order. The ordering is
	// part of the contract: the dispatcher's least-load tie-break is stable
	// on registration order.
	GetAll(ctx context.Context) ([]*courier.Courier, error)
}
