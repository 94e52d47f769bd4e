package commands

import (
	"context"
	"fmt"

	"fulfillment/internal/core/domain/model/checklist"
)

// CompleteOrderCommandHandler closes an order whose checklist is already at
// 100%, which happens when the checklist has no required items and no toggle
// ever triggers a recompute. An order without checklist items is refused with
// checklist.ErrChecklistIsMissing.
type CompleteOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewCompleteOrderCommandHandler(uowFactory UoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return retryOnConflict(func() error {
		return h.handle(ctx, cmd)
	})
}

func (h CompleteOrderCommandHandler) handle(ctx context.Context, cmd CompleteOrderCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if err = o.EnsureChecklistIsOpen(); err != nil {
		return err
	}
	if err = o.EnsureAssignee(cmd.StaffID()); err != nil {
		return err
	}

	items, err := uow.ChecklistRepository().GetByOrder(ctx, o.ID())
	if err != nil {
		return err
	}

	progress := checklist.ComputeProgress(items)
	if !progress.HasChecklist() {
		return fmt.Errorf("%w: order %s", checklist.ErrChecklistIsMissing, o.Number())
	}
	if !progress.IsComplete() {
		return fmt.Errorf("%w: %d of %d required items done",
			checklist.ErrChecklistIsIncomplete, progress.CompletedRequired, progress.RequiredItems)
	}

	if _, err = applyProgress(ctx, uow, o, items, now()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
