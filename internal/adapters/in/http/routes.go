package http

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

const (
	BasePath      = "/api/v1"
	StaffIDHeader = "X-Staff-ID"
)

// ServerInterface lists the operations of api/openapi.yaml with their bound
// parameters.
type ServerInterface interface {
	CreateOrder(ctx echo.Context) error
	ConfirmPayment(ctx echo.Context, orderID uuid.UUID) error
	MarkResourcesUploaded(ctx echo.Context, orderID uuid.UUID, itemID uuid.UUID) error
	AssignOrder(ctx echo.Context, orderID uuid.UUID) error
	ReassignOrder(ctx echo.Context, orderID uuid.UUID) error
	GetOrderChecklist(ctx echo.Context, orderID uuid.UUID) error
	GenerateChecklist(ctx echo.Context, orderID uuid.UUID) error
	ToggleChecklistItems(ctx echo.Context, orderID uuid.UUID, params StaffParams) error
	CompleteOrder(ctx echo.Context, orderID uuid.UUID, params StaffParams) error
	GetMyOrders(ctx echo.Context, params GetMyOrdersParams) error
	ListNotifications(ctx echo.Context, params ListNotificationsParams) error
	MarkNotificationRead(ctx echo.Context, notificationID uuid.UUID, params StaffParams) error
	Health(ctx echo.Context) error
}

// ServerInterfaceWrapper binds path, query and header parameters before
// calling the handler.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

func (w *ServerInterfaceWrapper) ConfirmPayment(ctx echo.Context) error {
	orderID, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.ConfirmPayment(ctx, orderID)
}

func (w *ServerInterfaceWrapper) MarkResourcesUploaded(ctx echo.Context) error {
	orderID, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	itemID, err := bindPathUUID(ctx, "itemId")
	if err != nil {
		return err
	}
	return w.Handler.MarkResourcesUploaded(ctx, orderID, itemID)
}

func (w *ServerInterfaceWrapper) AssignOrder(ctx echo.Context) error {
	orderID, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.AssignOrder(ctx, orderID)
}

func (w *ServerInterfaceWrapper) ReassignOrder(ctx echo.Context) error {
	orderID, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.ReassignOrder(ctx, orderID)
}

func (w *ServerInterfaceWrapper) GetOrderChecklist(ctx echo.Context) error {
	orderID, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.GetOrderChecklist(ctx, orderID)
}

func (w *ServerInterfaceWrapper) GenerateChecklist(ctx echo.Context) error {
	orderID, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.GenerateChecklist(ctx, orderID)
}

func (w *ServerInterfaceWrapper) ToggleChecklistItems(ctx echo.Context) error {
	orderID, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	staffID, err := bindStaffHeader(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ToggleChecklistItems(ctx, orderID, StaffParams{XStaffID: staffID})
}

func (w *ServerInterfaceWrapper) CompleteOrder(ctx echo.Context) error {
	orderID, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	staffID, err := bindStaffHeader(ctx)
	if err != nil {
		return err
	}
	return w.Handler.CompleteOrder(ctx, orderID, StaffParams{XStaffID: staffID})
}

func (w *ServerInterfaceWrapper) GetMyOrders(ctx echo.Context) error {
	var params GetMyOrdersParams
	staffID, err := bindStaffHeader(ctx)
	if err != nil {
		return err
	}
	params.XStaffID = staffID

	err = runtime.BindQueryParameter("form", true, false, "include_completed", ctx.QueryParams(), &params.IncludeCompleted)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter include_completed: %s", err))
	}
	return w.Handler.GetMyOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) ListNotifications(ctx echo.Context) error {
	var params ListNotificationsParams
	staffID, err := bindStaffHeader(ctx)
	if err != nil {
		return err
	}
	params.XStaffID = staffID

	err = runtime.BindQueryParameter("form", true, false, "unread", ctx.QueryParams(), &params.Unread)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter unread: %s", err))
	}
	err = runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}
	return w.Handler.ListNotifications(ctx, params)
}

func (w *ServerInterfaceWrapper) MarkNotificationRead(ctx echo.Context) error {
	notificationID, err := bindPathUUID(ctx, "notificationId")
	if err != nil {
		return err
	}
	staffID, err := bindStaffHeader(ctx)
	if err != nil {
		return err
	}
	return w.Handler.MarkNotificationRead(ctx, notificationID, StaffParams{XStaffID: staffID})
}

func (w *ServerInterfaceWrapper) Health(ctx echo.Context) error {
	return w.Handler.Health(ctx)
}

// EchoRouter is satisfied by *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlersWithBaseURL mounts every operation under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	w := ServerInterfaceWrapper{Handler: si}

	router.POST(baseURL+"/orders", w.CreateOrder)
	router.POST(baseURL+"/orders/:orderId/payment-confirmation", w.ConfirmPayment)
	router.POST(baseURL+"/orders/:orderId/items/:itemId/resources", w.MarkResourcesUploaded)
	router.POST(baseURL+"/orders/:orderId/assignment", w.AssignOrder)
	router.PUT(baseURL+"/orders/:orderId/assignment", w.ReassignOrder)
	router.GET(baseURL+"/orders/:orderId/checklist", w.GetOrderChecklist)
	router.POST(baseURL+"/orders/:orderId/checklist", w.GenerateChecklist)
	router.PATCH(baseURL+"/orders/:orderId/checklist", w.ToggleChecklistItems)
	router.POST(baseURL+"/orders/:orderId/completion", w.CompleteOrder)
	router.GET(baseURL+"/staff/me/orders", w.GetMyOrders)
	router.GET(baseURL+"/notifications", w.ListNotifications)
	router.POST(baseURL+"/notifications/:notificationId/read", w.MarkNotificationRead)
	router.GET(baseURL+"/health", w.Health)
}

func bindPathUUID(ctx echo.Context, name string) (uuid.UUID, error) {
	var id uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return uuid.UUID{}, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return id, nil
}

func bindStaffHeader(ctx echo.Context) (uuid.UUID, error) {
	values, found := ctx.Request().Header[http.CanonicalHeaderKey(StaffIDHeader)]
	if !found {
		return uuid.UUID{}, echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("Header parameter %s is required, but not found", StaffIDHeader))
	}
	if n := len(values); n != 1 {
		return uuid.UUID{}, echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("Expected one value for %s, got %d", StaffIDHeader, n))
	}

	var id uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", StaffIDHeader, values[0], &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Explode: false, Required: true})
	if err != nil {
		return uuid.UUID{}, echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("Invalid format for parameter %s: %s", StaffIDHeader, err))
	}
	return id, nil
}
