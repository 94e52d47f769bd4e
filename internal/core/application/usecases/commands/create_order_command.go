package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderLine is one purchased product in a checkout hand-off.
type OrderLine struct {
	ItemID            kernel.UUID
	Product           kernel.ProductRef
	Quantity          int
	UnitPrice         kernel.Money
	ResourcesUploaded bool
}

// CreateOrderCommand registers a checked-out order in PendingPayment.
//
// Example:
//
//	ref, _ := kernel.NewProductRef(kernel.ProductKindPackage, 3)
//	price, _ := kernel.NewMoney(150000)
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), []OrderLine{
//	    {ItemID: kernel.NewUUID(), Product: ref, Quantity: 1, UnitPrice: price},
//	})
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	lines   []OrderLine

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(orderID kernel.UUID, lines []OrderLine) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Lines returns a copy of the order lines.
func (c CreateOrderCommand) Lines() []OrderLine {
	out := make([]OrderLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("order lines")
	}
	c.lines = make([]OrderLine, len(lines))
	copy(c.lines, lines)
	return nil
}
