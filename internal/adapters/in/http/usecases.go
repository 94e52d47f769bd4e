package http

import (
	"context"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
)

// The interfaces below are satisfied by the command and query handlers.

type OrderCreator interface {
	Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
}

type PaymentConfirmer interface {
	Handle(ctx context.Context, cmd commands.ConfirmPaymentCommand) error
}

type ResourceUploadMarker interface {
	Handle(ctx context.Context, cmd commands.MarkResourcesUploadedCommand) error
}

type OrderAssigner interface {
	Handle(ctx context.Context, cmd commands.AssignOrderCommand) error
}

type OrderReassigner interface {
	Handle(ctx context.Context, cmd commands.ReassignOrderCommand) error
}

type ChecklistGenerator interface {
	Handle(ctx context.Context, cmd commands.GenerateChecklistCommand) (int, error)
}

type ChecklistToggler interface {
	Handle(ctx context.Context, cmd commands.ToggleChecklistItemsCommand) (services.RecomputeResult, error)
}

type OrderCompleter interface {
	Handle(ctx context.Context, cmd commands.CompleteOrderCommand) error
}

type NotificationReader interface {
	Handle(ctx context.Context, cmd commands.MarkNotificationReadCommand) error
}

type ChecklistViewer interface {
	Handle(ctx context.Context, q queries.GetOrderChecklistQuery) (queries.GetOrderChecklistQueryResponse, error)
}

type StaffOrdersLister interface {
	Handle(ctx context.Context, q queries.GetStaffOrdersQuery) ([]queries.GetStaffOrdersQueryResponse, error)
}

type NotificationsLister interface {
	Handle(ctx context.Context, q queries.ListNotificationsQuery) ([]queries.ListNotificationsQueryResponse, error)
}

// Pinger is the database connection probed by the health endpoint.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// UseCases groups everything the Server dispatches to.
type UseCases struct {
	CreateOrder           OrderCreator
	ConfirmPayment        PaymentConfirmer
	MarkResourcesUploaded ResourceUploadMarker
	AssignOrder           OrderAssigner
	ReassignOrder         OrderReassigner
	GenerateChecklist     ChecklistGenerator
	ToggleChecklistItems  ChecklistToggler
	CompleteOrder         OrderCompleter
	MarkNotificationRead  NotificationReader
	GetOrderChecklist     ChecklistViewer
	GetStaffOrders        StaffOrdersLister
	ListNotifications     NotificationsLister
}
