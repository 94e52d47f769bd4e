package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListNotificationsQueryHandler struct {
	db *gorm.DB
}

func NewListNotificationsQueryHandler(db *gorm.DB) ListNotificationsQueryHandler {
	return ListNotificationsQueryHandler{db: db}
}

// Handle matches the recipient against the text[] recipients column.
func (h ListNotificationsQueryHandler) Handle(
	ctx context.Context,
	query ListNotificationsQuery,
) ([]ListNotificationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			kind,
			order_id,
			message,
			read,
			created_at
		FROM notifications
		WHERE ? = ANY(recipients)
			AND (NOT ? OR NOT read)
		ORDER BY created_at DESC, id
		LIMIT ?
	`, query.RecipientID().String(), query.UnreadOnly(), query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := make([]ListNotificationsQueryResponse, 0)
	for rows.Next() {
		var (
			resp        ListNotificationsQueryResponse
			id, orderID uuid.UUID
		)
		if err = rows.Scan(&id, &resp.Kind, &orderID, &resp.Message, &resp.Read, &resp.CreatedAt); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		resp.CreatedAt = fromTimestamp(resp.CreatedAt)
		notifications = append(notifications, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return notifications, nil
}
