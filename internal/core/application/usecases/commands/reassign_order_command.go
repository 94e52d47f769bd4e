package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrReassignOrderCommandIsNotConstructed = errors.New(
	"ReassignOrderCommand must be created via NewReassignOrderCommand constructor",
)

// ReassignOrderCommand moves an assigned or in-progress order to another staff
// member. staffID is the new assignee.
type ReassignOrderCommand struct {
	orderID kernel.UUID
	staffID kernel.UUID

	guard guard.ConstructorGuard
}

func NewReassignOrderCommand(orderID kernel.UUID, staffID kernel.UUID) (ReassignOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), staffID.Validate()); err != nil {
		return ReassignOrderCommand{}, err
	}
	return ReassignOrderCommand{
		orderID: orderID,
		staffID: staffID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ReassignOrderCommand) Validate() error {
	return c.guard.Validate(ErrReassignOrderCommandIsNotConstructed)
}

func (c ReassignOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ReassignOrderCommand) StaffID() kernel.UUID {
	return c.staffID
}
