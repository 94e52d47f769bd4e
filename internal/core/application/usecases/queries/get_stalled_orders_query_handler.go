package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetStalledOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetStalledOrdersQueryHandler(db *gorm.DB) GetStalledOrdersQueryHandler {
	return GetStalledOrdersQueryHandler{db: db}
}

// Handle returns stalled orders oldest first.
func (h GetStalledOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetStalledOrdersQuery,
) ([]GetStalledOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.number,
			o.assigned_to,
			o.updated_at
		FROM orders o
		WHERE o.status = ?
			AND o.updated_at <= ?
			AND NOT EXISTS (SELECT 1 FROM checklist_items c WHERE c.order_id = o.id)
		ORDER BY o.updated_at, o.id
	`, order.Assigned.String(), query.Cutoff()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stalled := make([]GetStalledOrdersQueryResponse, 0)
	for rows.Next() {
		var (
			resp           GetStalledOrdersQueryResponse
			id, assignedTo uuid.UUID
		)
		if err = rows.Scan(&id, &resp.Number, &assignedTo, &resp.UpdatedAt); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.AssignedTo, err = kernel.UUIDFromBytes(assignedTo[:]); err != nil {
			return nil, err
		}
		resp.UpdatedAt = fromTimestamp(resp.UpdatedAt)
		stalled = append(stalled, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return stalled, nil
}
