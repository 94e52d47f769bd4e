package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/checklist"
	"fulfillment/internal/core/domain/model/kernel"
)

// ChecklistRepository stores the materialized checklist items of orders.
type ChecklistRepository interface {
	// AddAll inserts a freshly generated checklist in one statement.
	AddAll(ctx context.Context, items []*checklist.Item) error

	// Update writes the completion fields of one item.
	Update(ctx context.Context, item *checklist.Item) error

	// GetByOrder returns the order's items sorted by order index. An order
	// without a checklist yields an empty slice, not an error.
	GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*checklist.Item, error)
}
