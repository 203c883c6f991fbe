package http

import (
	"time"

	"orderhub/internal/core/application/usecases/queries"
	"orderhub/internal/core/domain/model/order"
)

// ErrorResponse is the uniform error body for all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// PlatformResponse is the platform snapshot embedded in order responses.
type PlatformResponse struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	ColorTag string `json:"color_tag"`
}

// ItemResponse is one order line.
type ItemResponse struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// OrderResponse is the canonical order representation returned by every
// order endpoint, whether sourced from the aggregate or the read model.
type OrderResponse struct {
	ID        string           `json:"id"`
	Customer  string           `json:"customer"`
	Platform  PlatformResponse `json:"platform"`
	Items     []ItemResponse   `json:"items"`
	Total     float64          `json:"total"`
	Status    string           `json:"status"`
	CourierID *string          `json:"courier_id,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

// CourierResponse is one courier on the roster.
type CourierResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	ActiveOrders int    `json:"active_orders"`
	Status       string `json:"status"`
}

// ManualOrderRequest is the body of POST /manual-order.
type ManualOrderRequest struct {
	Customer string            `json:"customer"`
	Items    []ManualOrderItem `json:"items"`
	Total    float64           `json:"total"`
}

// ManualOrderItem is one line of a manual order request.
type ManualOrderItem struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// orderToResponse maps an order aggregate to its HTTP representation.
func orderToResponse(o *order.Order) OrderResponse {
	items := make([]ItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, ItemResponse{Name: item.Name(), Price: item.Price()})
	}

	var courierID *string
	if id := o.Courier(); id != nil {
		s := id.String()
		courierID = &s
	}

	return OrderResponse{
		ID:       o.ID().String(),
		Customer: o.Customer(),
		Platform: PlatformResponse{
			Key:      o.Platform().Key(),
			Name:     o.Platform().DisplayName(),
			ColorTag: o.Platform().ColorTag(),
		},
		Items:     items,
		Total:     o.Total(),
		Status:    o.Status().String(),
		CourierID: courierID,
		CreatedAt: o.CreatedAt(),
	}
}

// queryOrderToResponse maps a read-model row to the same HTTP representation.
func queryOrderToResponse(row queries.GetAllOrdersQueryResponse) OrderResponse {
	items := make([]ItemResponse, 0, len(row.Items))
	for _, item := range row.Items {
		items = append(items, ItemResponse{Name: item.Name, Price: item.Price})
	}

	return OrderResponse{
		ID:       row.ID,
		Customer: row.Customer,
		Platform: PlatformResponse{
			Key:      row.PlatformKey,
			Name:     row.PlatformName,
			ColorTag: row.ColorTag,
		},
		Items:     items,
		Total:     row.Total,
		Status:    row.Status,
		CourierID: row.CourierID,
		CreatedAt: row.CreatedAt,
	}
}
