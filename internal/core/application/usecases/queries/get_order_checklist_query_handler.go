package queries

import (
	"context"
	"database/sql"
	"errors"

	"fulfillment/internal/core/domain/model/checklist"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderChecklistQueryHandler reads straight from the tables, bypassing the
// repositories. Progress uses the same rules as the command side.
type GetOrderChecklistQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderChecklistQueryHandler(db *gorm.DB) GetOrderChecklistQueryHandler {
	return GetOrderChecklistQueryHandler{db: db}
}

// Handle returns ObjectNotFoundError for unknown orders. An order without a
// checklist yet comes back with no items.
func (h GetOrderChecklistQueryHandler) Handle(
	ctx context.Context,
	query GetOrderChecklistQuery,
) (GetOrderChecklistQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderChecklistQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)
	resp := GetOrderChecklistQueryResponse{OrderID: query.OrderID()}

	var assignedTo uuid.NullUUID
	row := db.Raw(`
		SELECT number, status, assigned_to
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()
	if err := row.Scan(&resp.OrderNumber, &resp.Status, &assignedTo); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderChecklistQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return GetOrderChecklistQueryResponse{}, err
	}
	assignee, err := nullableID(assignedTo)
	if err != nil {
		return GetOrderChecklistQueryResponse{}, err
	}
	resp.AssignedTo = assignee

	rows, err := db.Raw(`
		SELECT
			id,
			description,
			order_index,
			is_optional,
			completed,
			completed_at,
			completed_by
		FROM checklist_items
		WHERE order_id = ?
		ORDER BY order_index
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return GetOrderChecklistQueryResponse{}, err
	}
	defer rows.Close()

	resp.Items = make([]ChecklistItemView, 0)
	domainItems := make([]*checklist.Item, 0)
	for rows.Next() {
		var (
			id          uuid.UUID
			completedAt sql.NullTime
			completedBy uuid.NullUUID
			view        ChecklistItemView
		)
		if err = rows.Scan(
			&id,
			&view.Description,
			&view.OrderIndex,
			&view.IsOptional,
			&view.Completed,
			&completedAt,
			&completedBy,
		); err != nil {
			return GetOrderChecklistQueryResponse{}, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return GetOrderChecklistQueryResponse{}, err
		}
		if view.CompletedBy, err = nullableID(completedBy); err != nil {
			return GetOrderChecklistQueryResponse{}, err
		}
		if completedAt.Valid {
			at := completedAt.Time
			view.CompletedAt = &at
		}

		item, restoreErr := checklist.RestoreItem(view.ID, query.OrderID(), nil, view.Description,
			view.OrderIndex, view.IsOptional, view.Completed, view.CompletedAt, view.CompletedBy)
		if restoreErr != nil {
			return GetOrderChecklistQueryResponse{}, restoreErr
		}

		resp.Items = append(resp.Items, view)
		domainItems = append(domainItems, item)
	}
	if err = rows.Err(); err != nil {
		return GetOrderChecklistQueryResponse{}, err
	}

	resp.Progress = checklist.ComputeProgress(domainItems)
	return resp, nil
}
