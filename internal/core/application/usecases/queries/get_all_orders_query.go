// Package queries contains read operations for the CQRS architecture.
// Query handlers bypass the domain model and read directly from the
// database, returning flat read models shaped for the HTTP layer.
package queries

import (
	"errors"
	"time"

	"orderhub/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery retrieves every order, newest first, for the order board.
//
// Example:
//
//	query := NewGetAllOrdersQuery()
//	handler := NewGetAllOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//	fmt.Printf("Found %d orders\n", len(orders))
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query to retrieve all orders.
// This is a parameterless query; filtering happens client-side on the board.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllOrdersQueryIsNotConstructed if validation fails.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// OrderItemResponse represents one order line in the read model.
type OrderItemResponse struct {
	Name  string
	Price float64
}

// GetAllOrdersQueryResponse represents one order row on the board, with its
// platform snapshot and line items denormalized in.
type GetAllOrdersQueryResponse struct {
	ID           string
	Customer     string
	PlatformKey  string
	PlatformName string
	ColorTag     string
	Items        []OrderItemResponse
	Total        float64
	Status       string
	CourierID    *string
	CreatedAt    time.Time
}
