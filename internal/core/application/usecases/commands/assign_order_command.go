package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrAssignOrderCommandIsNotConstructed = errors.New(
	"AssignOrderCommand must be created via NewAssignOrderCommand constructor",
)

// AssignOrderCommand hands a ready order to a staff member.
//
// Example:
//
//	cmd, err := NewAssignOrderCommand(orderID, staffID)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrGenerationFailed) {
//	    // the order is assigned; regenerate the checklist later
//	}
type AssignOrderCommand struct {
	orderID kernel.UUID
	staffID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignOrderCommand(orderID kernel.UUID, staffID kernel.UUID) (AssignOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), staffID.Validate()); err != nil {
		return AssignOrderCommand{}, err
	}
	return AssignOrderCommand{
		orderID: orderID,
		staffID: staffID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}

func (c AssignOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AssignOrderCommand) StaffID() kernel.UUID {
	return c.staffID
}
