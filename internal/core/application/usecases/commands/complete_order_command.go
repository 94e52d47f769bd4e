package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand closes an order whose required checklist items are all
// done. staffID must be the assignee.
type CompleteOrderCommand struct {
	orderID kernel.UUID
	staffID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCompleteOrderCommand(orderID kernel.UUID, staffID kernel.UUID) (CompleteOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), staffID.Validate()); err != nil {
		return CompleteOrderCommand{}, err
	}
	return CompleteOrderCommand{
		orderID: orderID,
		staffID: staffID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

func (c CompleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CompleteOrderCommand) StaffID() kernel.UUID {
	return c.staffID
}
