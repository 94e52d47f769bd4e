package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
)

// dispatchEvents turns the order's pending events into notifications and adds
// them to the current transaction.
func dispatchEvents(ctx context.Context, uow UoW, events []order.Event, now time.Time) error {
	if len(events) == 0 {
		return nil
	}

	admins, err := uow.StaffDirectory().Administrators(ctx)
	if err != nil {
		return err
	}

	notifications, err := services.NewNotificationDispatcher().DispatchAll(events, admins, now)
	if err != nil {
		return err
	}
	if len(notifications) == 0 {
		return nil
	}

	return uow.NotificationRepository().AddAll(ctx, notifications)
}

// retryOnConflict runs fn a second time when the first attempt lost an
// optimistic-locking race. fn must open its own unit of work.
func retryOnConflict(fn func() error) error {
	err := fn()
	if errors.Is(err, errs.ErrConcurrentUpdate) {
		return fn()
	}
	return err
}

func now() time.Time {
	return time.Now().UTC()
}
