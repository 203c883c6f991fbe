// Package ports defines the interfaces between the core and the
// infrastructure adapters, enabling dependency inversion and testability.
package ports

import (
	"context"

	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate.
	// Fails when an order with the same id already exists.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Fails with errs.ObjectNotFoundError when the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier.
	// Fails with errs.ObjectNotFoundError for unknown ids.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// GetFirstInReadyStatus retrieves the oldest order waiting for dispatch.
	// Used by the auto-dispatch job to pick its next assignment.
	GetFirstInReadyStatus(ctx context.Context) (*order.Order, error)
}
