package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrMarkResourcesUploadedCommandIsNotConstructed = errors.New(
	"MarkResourcesUploadedCommand must be created via NewMarkResourcesUploadedCommand constructor",
)

// MarkResourcesUploadedCommand reports that the customer uploaded the
// resources of one order item.
type MarkResourcesUploadedCommand struct {
	orderID kernel.UUID
	itemID  kernel.UUID

	guard guard.ConstructorGuard
}

func NewMarkResourcesUploadedCommand(orderID kernel.UUID, itemID kernel.UUID) (MarkResourcesUploadedCommand, error) {
	if err := errors.Join(orderID.Validate(), itemID.Validate()); err != nil {
		return MarkResourcesUploadedCommand{}, err
	}
	return MarkResourcesUploadedCommand{
		orderID: orderID,
		itemID:  itemID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c MarkResourcesUploadedCommand) Validate() error {
	return c.guard.Validate(ErrMarkResourcesUploadedCommandIsNotConstructed)
}

func (c MarkResourcesUploadedCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c MarkResourcesUploadedCommand) ItemID() kernel.UUID {
	return c.itemID
}
