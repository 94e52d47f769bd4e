package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGenerateChecklistCommandIsNotConstructed = errors.New(
	"GenerateChecklistCommand must be created via NewGenerateChecklistCommand constructor",
)

// GenerateChecklistCommand asks for an order's checklist to be materialized.
// It is safe to repeat: an order that already has a checklist keeps it.
type GenerateChecklistCommand struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGenerateChecklistCommand(orderID kernel.UUID) (GenerateChecklistCommand, error) {
	if err := orderID.Validate(); err != nil {
		return GenerateChecklistCommand{}, err
	}
	return GenerateChecklistCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c GenerateChecklistCommand) Validate() error {
	return c.guard.Validate(ErrGenerateChecklistCommandIsNotConstructed)
}

func (c GenerateChecklistCommand) OrderID() kernel.UUID {
	return c.orderID
}
