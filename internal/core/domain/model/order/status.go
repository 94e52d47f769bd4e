package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status is the lifecycle state of an order. Transitions form a directed
// acyclic graph; the only fork is the skip over PendingResources when no
// resources are outstanding at payment time.
//
// State transitions:
//
//	PendingPayment ──> PendingResources ──> ReadyForProcessing ──> Assigned ──> InProgress ──> Completed
//	      │                                        ▲
//	      └────────────────────────────────────────┘
//	            (no resources outstanding)
//
// Status values are persisted by name (see String) so read-only consumers of
// the orders table can filter without a lookup table.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota

	// PendingPayment is the initial state set at checkout.
	PendingPayment

	// PendingResources waits for the customer to upload campaign resources.
	PendingResources

	// ReadyForProcessing waits for an administrator to assign staff.
	ReadyForProcessing

	// Assigned has a staff member and (normally) a materialized checklist.
	Assigned

	// InProgress has at least one required checklist item done.
	InProgress

	// Completed is terminal.
	Completed
)

// getStatusStrings returns a map of Status values to their persisted names.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:            "unknown",
		PendingPayment:     "pending_payment",
		PendingResources:   "pending_resources",
		ReadyForProcessing: "ready_for_processing",
		Assigned:           "assigned",
		InProgress:         "in_progress",
		Completed:          "completed",
	}
}

// getSuccessors returns the edges of the status graph.
func getSuccessors() map[Status][]Status {
	//nolint:exhaustive // Unknown and Completed have no outgoing edges
	return map[Status][]Status{
		PendingPayment:     {PendingResources, ReadyForProcessing},
		PendingResources:   {ReadyForProcessing},
		ReadyForProcessing: {Assigned},
		Assigned:           {InProgress},
		InProgress:         {Completed},
	}
}

// AllStatuses lists every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{PendingPayment, PendingResources, ReadyForProcessing, Assigned, InProgress, Completed}
}

// ParseStatus converts a persisted name back into a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the lifecycle states.
//
// Returns:
//   - nil if the status is valid
//   - ValueIsInvalidError for Unknown and out-of-range values
func (s Status) Validate() error {
	if s <= Unknown || s > Completed {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status, "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no transition leaves this status.
func (s Status) IsTerminal() bool {
	return s == Completed
}

// Successors returns the statuses directly reachable from s.
func (s Status) Successors() []Status {
	next := getSuccessors()[s]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

// CanTransitionTo reports whether target is a direct successor of s.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range getSuccessors()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo returns target if the edge s -> target exists in the graph.
//
// Returns:
//   - (target, nil) on a legal edge
//   - (s, InvalidTransitionError) naming the illegal edge otherwise
//
// Example:
//
//	next, err := order.ReadyForProcessing.TransitionTo(order.Completed)
//	// err: invalid transition: ready_for_processing -> completed
func (s Status) TransitionTo(target Status) (Status, error) {
	if !s.CanTransitionTo(target) {
		return s, errs.NewInvalidTransitionError(s, target)
	}
	return target, nil
}

// ValidateCanHaveAssignee checks consistency between status and staff assignment.
//
// Business Rules:
//   - Orders before Assigned must not have a staff member
//   - Assigned, InProgress and Completed orders must have one
func (s Status) ValidateCanHaveAssignee(assigned bool) error {
	needsAssignee := s == Assigned || s == InProgress || s == Completed
	if assigned && !needsAssignee {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have an assignee", s),
		)
	}
	if !assigned && needsAssignee {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no assignee", s),
		)
	}
	return nil
}
