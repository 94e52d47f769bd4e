// Package order implements the Order aggregate and its status state machine.
//
// The package includes:
//   - Order: the aggregate root owning items, assignee, status and milestones
//   - Item: a purchased product line with its resources-uploaded flag
//   - Status: the directed acyclic graph of legal lifecycle transitions
//   - Event: what a command must turn into notifications before committing
//
// Key business rules:
//   - Status moves forward only, one edge at a time
//   - PendingResources is skipped when nothing is left to upload at payment time
//   - Assignment is only possible from ReadyForProcessing; reassignment keeps status
//   - Completed orders are locked
package order
