package services

import (
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/domain/model/order"
)

// NotificationDispatcher resolves the audience of an order event and builds
// the notification to persist.
//
// Audience:
//   - ready_for_processing, progress milestones, completed: all administrators
//   - assigned (and reassigned): the assigned staff member
//   - anything else: nobody
type NotificationDispatcher struct{}

func NewNotificationDispatcher() NotificationDispatcher {
	return NotificationDispatcher{}
}

// Dispatch returns nil without error when the event has no audience.
func (NotificationDispatcher) Dispatch(
	evt order.Event,
	administrators []kernel.UUID,
	now time.Time,
) (*notification.Notification, error) {
	kind, ok := kindFor(evt)
	if !ok {
		return nil, nil
	}

	var recipients []kernel.UUID
	switch kind {
	case notification.KindAssigned:
		if evt.Assignee == nil {
			return nil, nil
		}
		recipients = []kernel.UUID{*evt.Assignee}
	default:
		recipients = administrators
	}
	if len(recipients) == 0 {
		return nil, nil
	}

	return notification.NewNotification(kernel.NewUUID(), kind, evt.OrderID, recipients, messageFor(kind, evt), now)
}

// DispatchAll dispatches every event and drops the ones without audience.
func (d NotificationDispatcher) DispatchAll(
	events []order.Event,
	administrators []kernel.UUID,
	now time.Time,
) ([]*notification.Notification, error) {
	var out []*notification.Notification
	for _, evt := range events {
		n, err := d.Dispatch(evt, administrators, now)
		if err != nil {
			return nil, err
		}
		if n != nil {
			out = append(out, n)
		}
	}
	return out, nil
}

func kindFor(evt order.Event) (notification.Kind, bool) {
	switch evt.Kind {
	case order.EventReassigned:
		return notification.KindAssigned, true
	case order.EventMilestoneReached:
		switch evt.Milestone {
		case 25:
			return notification.KindProgress25, true
		case 50:
			return notification.KindProgress50, true
		case 75:
			return notification.KindProgress75, true
		case 100:
			return notification.KindProgress100, true
		}
	case order.EventStatusChanged:
		//nolint:exhaustive // other states have no audience
		switch evt.Status {
		case order.ReadyForProcessing:
			return notification.KindReadyForProcessing, true
		case order.Assigned:
			return notification.KindAssigned, true
		case order.Completed:
			return notification.KindCompleted, true
		}
	}
	return "", false
}

func messageFor(kind notification.Kind, evt order.Event) string {
	switch kind {
	case notification.KindReadyForProcessing:
		return fmt.Sprintf("Order %s is ready for processing and needs a staff assignment", evt.OrderNumber)
	case notification.KindAssigned:
		return fmt.Sprintf("You have been assigned order %s", evt.OrderNumber)
	case notification.KindCompleted:
		return fmt.Sprintf("Order %s has been completed", evt.OrderNumber)
	default:
		return fmt.Sprintf("Order %s is %d%% complete", evt.OrderNumber, evt.Milestone)
	}
}
