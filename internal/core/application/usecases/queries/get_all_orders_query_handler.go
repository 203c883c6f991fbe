package queries

import (
	"context"

	"orderhub/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler reads the order board straight from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetAllOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, NewGetAllOrdersQuery())
//	if err != nil {
//	    log.Printf("Failed to list orders: %v", err)
//	    return err
//	}
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order board queries.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders, newest first.
// Line items are loaded in one pass and grouped onto their orders in memory,
// preserving the stored line order.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, index, err := h.readOrders(ctx)
	if err != nil {
		return nil, err
	}

	if err = h.attachItems(ctx, orders, index); err != nil {
		return nil, err
	}

	return orders, nil
}

// readOrders returns the order rows newest first plus an index from order id
// to position in the slice.
func (h GetAllOrdersQueryHandler) readOrders(
	ctx context.Context,
) ([]GetAllOrdersQueryResponse, map[string]int, error) {
	orders := make([]GetAllOrdersQueryResponse, 0)
	index := make(map[string]int)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer,
			platform_key,
			platform_name,
			color_tag,
			total,
			status,
			courier_id,
			created_at
		FROM orders
		ORDER BY created_at DESC, id
	`).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAllOrdersQueryResponse
		var status int

		err = rows.Scan(
			&resp.ID,
			&resp.Customer,
			&resp.PlatformKey,
			&resp.PlatformName,
			&resp.ColorTag,
			&resp.Total,
			&status,
			&resp.CourierID,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, nil, err
		}

		resp.Status = order.Status(status).String()
		resp.Items = make([]OrderItemResponse, 0)

		index[resp.ID] = len(orders)
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	return orders, index, nil
}

// attachItems loads every order line and appends it to its parent row.
func (h GetAllOrdersQueryHandler) attachItems(
	ctx context.Context,
	orders []GetAllOrdersQueryResponse,
	index map[string]int,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			name,
			price
		FROM order_items
		ORDER BY order_id, sort_index
	`).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID string
		var item OrderItemResponse

		if err = rows.Scan(&orderID, &item.Name, &item.Price); err != nil {
			return err
		}

		if pos, ok := index[orderID]; ok {
			orders[pos].Items = append(orders[pos].Items, item)
		}
	}

	return rows.Err()
}
