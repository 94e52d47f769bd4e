// Package ports defines the contracts between the fulfillment core and its
// infrastructure: repositories, the template catalog, the staff directory and
// the unit of work that binds them to one transaction.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order together with its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes status, assignee, milestone and item flags. The write is
	// conditional on the version the order was read with; a lost race returns
	// errs.ConcurrentUpdateError and leaves the aggregate's version untouched.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order without locking it.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order and holds its row lock until the
	// surrounding transaction ends. Every command that may change the order's
	// status reads it this way, which serializes work per order.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
