package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/checklist"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetOrderChecklistQueryIsNotConstructed = errors.New(
	"GetOrderChecklistQuery must be created via NewGetOrderChecklistQuery constructor",
)

// GetOrderChecklistQuery reads one order's checklist together with its progress
// breakdown.
//
// Example:
//
//	query, err := NewGetOrderChecklistQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	view, err := handler.Handle(ctx, query)
//	fmt.Printf("%s: %d%%\n", view.OrderNumber, view.Progress.Percentage)
type GetOrderChecklistQuery struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewGetOrderChecklistQuery(orderID kernel.UUID) (GetOrderChecklistQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderChecklistQuery{}, err
	}
	return GetOrderChecklistQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderChecklistQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderChecklistQueryIsNotConstructed)
}

func (q GetOrderChecklistQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderChecklistQueryResponse is the order header, its items by order index
// and the progress computed over them.
type GetOrderChecklistQueryResponse struct {
	OrderID     kernel.UUID
	OrderNumber string
	Status      string
	AssignedTo  *kernel.UUID
	Items       []ChecklistItemView
	Progress    checklist.Progress
}

type ChecklistItemView struct {
	ID          kernel.UUID
	Description string
	OrderIndex  int
	IsOptional  bool
	Completed   bool
	CompletedAt *time.Time
	CompletedBy *kernel.UUID
}
