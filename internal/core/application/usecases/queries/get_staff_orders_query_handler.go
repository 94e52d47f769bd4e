package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetStaffOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetStaffOrdersQueryHandler(db *gorm.DB) GetStaffOrdersQueryHandler {
	return GetStaffOrdersQueryHandler{db: db}
}

// Handle aggregates checklist counts per order in one statement.
func (h GetStaffOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetStaffOrdersQuery,
) ([]GetStaffOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.number,
			o.status,
			o.updated_at,
			COUNT(c.id) AS total,
			COUNT(c.id) FILTER (WHERE c.completed) AS completed,
			COUNT(c.id) FILTER (WHERE NOT c.is_optional) AS required,
			COUNT(c.id) FILTER (WHERE NOT c.is_optional AND c.completed) AS completed_required
		FROM orders o
		LEFT JOIN checklist_items c ON c.order_id = o.id
		WHERE o.assigned_to = ?
			AND (? OR o.status <> ?)
		GROUP BY o.id
		ORDER BY o.updated_at DESC, o.id
	`, query.StaffID().Bytes(), query.IncludeCompleted(), order.Completed.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetStaffOrdersQueryResponse, 0)
	for rows.Next() {
		var (
			resp                        GetStaffOrdersQueryResponse
			id                          uuid.UUID
			required, completedRequired int
		)
		if err = rows.Scan(
			&id,
			&resp.Number,
			&resp.Status,
			&resp.UpdatedAt,
			&resp.TotalItems,
			&resp.CompletedItems,
			&required,
			&completedRequired,
		); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		resp.UpdatedAt = fromTimestamp(resp.UpdatedAt)
		resp.Percentage = percentage(resp.TotalItems, completedRequired, required)
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}
