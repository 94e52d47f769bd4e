package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/checklist"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const healthCheckTimeout = 2 * time.Second

// Server implements ServerInterface by translating requests into commands and
// queries. Caller identity comes from the X-Staff-ID header; authentication
// happens in front of this service.
type Server struct {
	useCases UseCases
	db       Pinger
	service  string
	logger   *slog.Logger
	now      func() time.Time
}

func NewServer(useCases UseCases, db Pinger, service string, logger *slog.Logger) *Server {
	return &Server{
		useCases: useCases,
		db:       db,
		service:  service,
		logger:   logger.With("component", "HTTPServer"),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "Invalid request body"})
	}

	lines := make([]commands.OrderLine, 0, len(body.Items))
	for _, item := range body.Items {
		product, err := kernel.NewProductRef(kernel.ProductKind(item.ProductKind), item.ProductID)
		if err != nil {
			return s.fail(ctx, err)
		}
		price, err := kernel.NewMoney(item.UnitPrice)
		if err != nil {
			return s.fail(ctx, err)
		}
		lines = append(lines, commands.OrderLine{
			ItemID:            kernel.NewUUID(),
			Product:           product,
			Quantity:          item.Quantity,
			UnitPrice:         price,
			ResourcesUploaded: item.ResourcesUploaded,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), lines)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.useCases.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	resp := OrderCreated{
		ID:      o.ID().Bytes(),
		Number:  o.Number(),
		Status:  o.Status().String(),
		ItemIDs: make([]uuid.UUID, 0, len(o.Items())),
	}
	for _, item := range o.Items() {
		resp.ItemIDs = append(resp.ItemIDs, item.ID().Bytes())
	}
	return ctx.JSON(http.StatusCreated, resp)
}

// ConfirmPayment handles POST /api/v1/orders/{orderId}/payment-confirmation.
func (s *Server) ConfirmPayment(ctx echo.Context, orderID uuid.UUID) error {
	id, err := toKernel(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewConfirmPaymentCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.useCases.ConfirmPayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// MarkResourcesUploaded handles POST /api/v1/orders/{orderId}/items/{itemId}/resources.
func (s *Server) MarkResourcesUploaded(ctx echo.Context, orderID uuid.UUID, itemID uuid.UUID) error {
	oid, err := toKernel(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}
	iid, err := toKernel(itemID)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewMarkResourcesUploadedCommand(oid, iid)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.useCases.MarkResourcesUploaded.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// AssignOrder handles POST /api/v1/orders/{orderId}/assignment. A 502 means
// the order was assigned but has no checklist yet.
func (s *Server) AssignOrder(ctx echo.Context, orderID uuid.UUID) error {
	oid, sid, err := s.bindAssignment(ctx, orderID)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewAssignOrderCommand(oid, sid)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.useCases.AssignOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ReassignOrder handles PUT /api/v1/orders/{orderId}/assignment.
func (s *Server) ReassignOrder(ctx echo.Context, orderID uuid.UUID) error {
	oid, sid, err := s.bindAssignment(ctx, orderID)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewReassignOrderCommand(oid, sid)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.useCases.ReassignOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderChecklist handles GET /api/v1/orders/{orderId}/checklist.
func (s *Server) GetOrderChecklist(ctx echo.Context, orderID uuid.UUID) error {
	id, err := toKernel(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetOrderChecklistQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.useCases.GetOrderChecklist.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	resp := Checklist{
		OrderID:     view.OrderID.Bytes(),
		OrderNumber: view.OrderNumber,
		Status:      view.Status,
		AssignedTo:  fromKernelPtr(view.AssignedTo),
		Items:       make([]ChecklistItem, 0, len(view.Items)),
		Progress:    fromProgress(view.Progress),
	}
	for _, item := range view.Items {
		resp.Items = append(resp.Items, ChecklistItem{
			ID:          item.ID.Bytes(),
			Description: item.Description,
			OrderIndex:  item.OrderIndex,
			IsOptional:  item.IsOptional,
			Completed:   item.Completed,
			CompletedAt: item.CompletedAt,
			CompletedBy: fromKernelPtr(item.CompletedBy),
		})
	}
	return ctx.JSON(http.StatusOK, resp)
}

// GenerateChecklist handles POST /api/v1/orders/{orderId}/checklist.
func (s *Server) GenerateChecklist(ctx echo.Context, orderID uuid.UUID) error {
	id, err := toKernel(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewGenerateChecklistCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	count, err := s.useCases.GenerateChecklist.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, ChecklistGenerated{Items: count})
}

// ToggleChecklistItems handles PATCH /api/v1/orders/{orderId}/checklist.
func (s *Server) ToggleChecklistItems(ctx echo.Context, orderID uuid.UUID, params StaffParams) error {
	var body ChecklistToggles
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "Invalid request body"})
	}

	oid, err := toKernel(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}
	sid, err := toKernel(params.XStaffID)
	if err != nil {
		return s.fail(ctx, err)
	}

	toggles := make([]commands.ItemToggle, 0, len(body.Items))
	for _, t := range body.Items {
		itemID, idErr := toKernel(t.ItemID)
		if idErr != nil {
			return s.fail(ctx, idErr)
		}
		toggles = append(toggles, commands.ItemToggle{ItemID: itemID, Completed: t.Completed})
	}

	cmd, err := commands.NewToggleChecklistItemsCommand(oid, sid, toggles)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.useCases.ToggleChecklistItems.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, progressUpdate(result))
}

// CompleteOrder handles POST /api/v1/orders/{orderId}/completion.
func (s *Server) CompleteOrder(ctx echo.Context, orderID uuid.UUID, params StaffParams) error {
	oid, err := toKernel(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}
	sid, err := toKernel(params.XStaffID)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewCompleteOrderCommand(oid, sid)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.useCases.CompleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetMyOrders handles GET /api/v1/staff/me/orders.
func (s *Server) GetMyOrders(ctx echo.Context, params GetMyOrdersParams) error {
	sid, err := toKernel(params.XStaffID)
	if err != nil {
		return s.fail(ctx, err)
	}
	includeCompleted := params.IncludeCompleted != nil && *params.IncludeCompleted
	query, err := queries.NewGetStaffOrdersQuery(sid, includeCompleted)
	if err != nil {
		return s.fail(ctx, err)
	}

	orders, err := s.useCases.GetStaffOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	resp := make([]StaffOrder, len(orders))
	for i, o := range orders {
		resp[i] = StaffOrder{
			ID:             o.ID.Bytes(),
			Number:         o.Number,
			Status:         o.Status,
			TotalItems:     o.TotalItems,
			CompletedItems: o.CompletedItems,
			Percentage:     o.Percentage,
			UpdatedAt:      o.UpdatedAt,
		}
	}
	return ctx.JSON(http.StatusOK, resp)
}

// ListNotifications handles GET /api/v1/notifications.
func (s *Server) ListNotifications(ctx echo.Context, params ListNotificationsParams) error {
	sid, err := toKernel(params.XStaffID)
	if err != nil {
		return s.fail(ctx, err)
	}
	unread := params.Unread != nil && *params.Unread
	limit := 0
	if params.Limit != nil {
		limit = *params.Limit
	}
	query, err := queries.NewListNotificationsQuery(sid, unread, limit)
	if err != nil {
		return s.fail(ctx, err)
	}

	notifications, err := s.useCases.ListNotifications.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	resp := make([]Notification, len(notifications))
	for i, n := range notifications {
		resp[i] = Notification{
			ID:        n.ID.Bytes(),
			Kind:      n.Kind,
			OrderID:   n.OrderID.Bytes(),
			Message:   n.Message,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		}
	}
	return ctx.JSON(http.StatusOK, resp)
}

// MarkNotificationRead handles POST /api/v1/notifications/{notificationId}/read.
func (s *Server) MarkNotificationRead(ctx echo.Context, notificationID uuid.UUID, params StaffParams) error {
	nid, err := toKernel(notificationID)
	if err != nil {
		return s.fail(ctx, err)
	}
	sid, err := toKernel(params.XStaffID)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewMarkNotificationReadCommand(nid, sid)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.useCases.MarkNotificationRead.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// Health handles GET /api/v1/health. The service is healthy when the database
// answers a ping.
func (s *Server) Health(ctx echo.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx.Request().Context(), healthCheckTimeout)
	defer cancel()

	resp := Health{
		Status:    "healthy",
		Service:   s.service,
		Database:  "connected",
		Timestamp: s.now(),
	}
	status := http.StatusOK

	if err := s.db.PingContext(pingCtx); err != nil {
		s.logger.Warn("database ping failed", "error", err)
		resp.Status = "unhealthy"
		resp.Database = "disconnected"
		status = http.StatusServiceUnavailable
	}
	return ctx.JSON(status, resp)
}

func (s *Server) bindAssignment(ctx echo.Context, orderID uuid.UUID) (kernel.UUID, kernel.UUID, error) {
	var body Assignment
	if err := ctx.Bind(&body); err != nil {
		return kernel.UUID{}, kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("request body", err)
	}
	oid, err := toKernel(orderID)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	sid, err := toKernel(body.StaffID)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	return oid, sid, nil
}

func progressUpdate(result services.RecomputeResult) ProgressUpdate {
	milestones := make([]int, 0, len(result.Crossed))
	for _, m := range result.Crossed {
		milestones = append(milestones, int(m))
	}
	return ProgressUpdate{
		Progress:   fromProgress(result.Progress),
		Milestones: milestones,
		Completed:  result.Completed,
	}
}

func fromProgress(p checklist.Progress) Progress {
	return Progress{
		TotalItems:        p.TotalItems,
		RequiredItems:     p.RequiredItems,
		CompletedItems:    p.CompletedItems,
		CompletedRequired: p.CompletedRequired,
		Percentage:        p.Percentage,
		HasChecklist:      p.HasChecklist(),
	}
}

func toKernel(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func fromKernelPtr(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}
