// Package http exposes the order system over REST using echo.
// It coordinates between HTTP handlers and application use cases.
package http

import (
	"errors"
	"net/http"

	"orderhub/internal/core/application/usecases/commands"
	"orderhub/internal/core/application/usecases/queries"
	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/core/domain/model/order"
	"orderhub/internal/core/domain/model/platform"
	"orderhub/internal/core/domain/services"
	"orderhub/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server wires the HTTP routes to command and query handlers.
type Server struct {
	// Command handlers
	createWebhookOrderHandler commands.CreateWebhookOrderCommandHandler
	createManualOrderHandler  commands.CreateManualOrderCommandHandler
	advanceOrderHandler       commands.AdvanceOrderCommandHandler
	assignCourierHandler      commands.AssignCourierCommandHandler
	markDeliveredHandler      commands.MarkDeliveredCommandHandler

	// Query handlers
	getAllOrdersHandler   queries.GetAllOrdersQueryHandler
	getAllCouriersHandler queries.GetAllCouriersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createWebhookOrderHandler commands.CreateWebhookOrderCommandHandler,
	createManualOrderHandler commands.CreateManualOrderCommandHandler,
	advanceOrderHandler commands.AdvanceOrderCommandHandler,
	assignCourierHandler commands.AssignCourierCommandHandler,
	markDeliveredHandler commands.MarkDeliveredCommandHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getAllCouriersHandler queries.GetAllCouriersQueryHandler,
) *Server {
	return &Server{
		createWebhookOrderHandler: createWebhookOrderHandler,
		createManualOrderHandler:  createManualOrderHandler,
		advanceOrderHandler:       advanceOrderHandler,
		assignCourierHandler:      assignCourierHandler,
		markDeliveredHandler:      markDeliveredHandler,
		getAllOrdersHandler:       getAllOrdersHandler,
		getAllCouriersHandler:     getAllCouriersHandler,
	}
}

// RegisterRoutes binds every endpoint onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/webhooks/:platform", s.IngestWebhook)
	e.POST("/manual-order", s.CreateManualOrder)
	e.POST("/orders/:id/advance", s.AdvanceOrder)
	e.POST("/orders/:id/assign", s.AssignCourier)
	e.POST("/orders/:id/delivered", s.MarkDelivered)
	e.GET("/orders", s.GetOrders)
	e.GET("/couriers", s.GetCouriers)
	e.GET("/health", s.Health)
}

// IngestWebhook handles POST /webhooks/:platform - accepts a platform order payload.
func (s *Server) IngestWebhook(ctx echo.Context) error {
	var payload map[string]any
	if err := ctx.Bind(&payload); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateWebhookOrderCommand(ctx.Param("platform"), payload)
	if err != nil {
		return badRequest(ctx, "Invalid webhook data: "+err.Error())
	}

	created, err := s.createWebhookOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, platform.ErrUnsupportedPlatform) {
			return badRequest(ctx, "Unsupported platform: "+ctx.Param("platform"))
		}
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(created))
}

// CreateManualOrder handles POST /manual-order - accepts an operator-entered order.
func (s *Server) CreateManualOrder(ctx echo.Context) error {
	var req ManualOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	items := make([]order.Item, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, order.NewItem(item.Name, item.Price))
	}

	cmd, err := commands.NewCreateManualOrderCommand(req.Customer, items, req.Total)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	created, err := s.createManualOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(created))
}

// AdvanceOrder handles POST /orders/:id/advance - moves an order one lifecycle step.
func (s *Server) AdvanceOrder(ctx echo.Context) error {
	id, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewAdvanceOrderCommand(id)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	updated, err := s.advanceOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// AssignCourier handles POST /orders/:id/assign - dispatches a courier to a ready order.
func (s *Server) AssignCourier(ctx echo.Context) error {
	id, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewAssignCourierCommand(id)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	updated, err := s.assignCourierHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// MarkDelivered handles POST /orders/:id/delivered - completes an order.
func (s *Server) MarkDelivered(ctx echo.Context) error {
	id, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewMarkDeliveredCommand(id)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	updated, err := s.markDeliveredHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// GetOrders handles GET /orders - retrieves the order board, newest first.
func (s *Server) GetOrders(ctx echo.Context) error {
	rows, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return internalError(ctx, "Failed to retrieve orders")
	}

	response := make([]OrderResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, queryOrderToResponse(row))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCouriers handles GET /couriers - retrieves the courier roster.
func (s *Server) GetCouriers(ctx echo.Context) error {
	rows, err := s.getAllCouriersHandler.Handle(ctx.Request().Context(), queries.NewGetAllCouriersQuery())
	if err != nil {
		return internalError(ctx, "Failed to retrieve couriers")
	}

	response := make([]CourierResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, CourierResponse{
			ID:           row.ID.String(),
			Name:         row.Name,
			Phone:        row.Phone,
			ActiveOrders: row.ActiveOrders,
			Status:       row.Status,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// commandError translates handler failures onto HTTP status codes:
// unknown aggregates map to 404, rejected state transitions and courier
// saturation map to 409, everything else is a 500.
func commandError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, services.ErrNoCourierAvailable):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return internalError(ctx, "Internal error")
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
