package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"
)

type NotificationRepository interface {
	AddAll(ctx context.Context, notifications []*notification.Notification) error
	Update(ctx context.Context, n *notification.Notification) error
	Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error)
}
