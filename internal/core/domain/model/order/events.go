package order

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

// EventKind tags what happened to an order.
type EventKind string

const (
	// EventStatusChanged is recorded by every successful transition.
	EventStatusChanged EventKind = "status_changed"

	// EventReassigned is recorded when an assigned order changes hands.
	EventReassigned EventKind = "reassigned"

	// EventMilestoneReached is recorded once per progress milestone.
	EventMilestoneReached EventKind = "milestone_reached"
)

// Event is a domain event waiting to be turned into notifications by the
// command that produced it, inside the same transaction.
type Event struct {
	Kind        EventKind
	OrderID     kernel.UUID
	OrderNumber string
	Status      Status
	Assignee    *kernel.UUID
	Milestone   int
	OccurredAt  time.Time
}
