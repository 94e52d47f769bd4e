package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// CreateOrderCommandHandler persists a new order handed over by checkout. New
// orders emit no events, so no notification is written.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the created order so callers can report its number.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		item, err := order.RestoreItem(line.ItemID, line.Product, line.Quantity, line.UnitPrice, line.ResourcesUploaded)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	o, err := order.NewOrder(cmd.OrderID(), items, now())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
