// Package services provides domain services that span the order, checklist and
// notification aggregates of the fulfillment core.
//
// The package includes:
//   - ChecklistGenerator: materializes an order's checklist from catalog templates
//   - ProgressTracker: recomputes checklist progress and advances the order status
//   - NotificationDispatcher: turns order events into addressed notifications
//
// Services are pure: they never touch ports. Command handlers load the data,
// call a service, and persist the result inside one unit of work.
package services
