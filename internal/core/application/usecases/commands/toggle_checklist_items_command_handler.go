package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/checklist"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
)

// ToggleChecklistItemsCommandHandler applies a batch of checklist toggles and
// recomputes the order's progress once.
//
// Business rules:
//   - Only the assignee may toggle
//   - Every item must belong to the order
//   - A completed order's checklist is locked
//   - Progress above 0% starts the order, 100% completes it
//   - Milestones crossed by the batch are announced once each
type ToggleChecklistItemsCommandHandler struct {
	uowFactory UoWFactory
}

func NewToggleChecklistItemsCommandHandler(uowFactory UoWFactory) ToggleChecklistItemsCommandHandler {
	return ToggleChecklistItemsCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h ToggleChecklistItemsCommandHandler) Handle(
	ctx context.Context,
	cmd ToggleChecklistItemsCommand,
) (services.RecomputeResult, error) {
	if err := cmd.Validate(); err != nil {
		return services.RecomputeResult{}, err
	}

	var result services.RecomputeResult
	err := retryOnConflict(func() error {
		var err error
		result, err = h.handle(ctx, cmd)
		return err
	})
	return result, err
}

func (h ToggleChecklistItemsCommandHandler) handle(
	ctx context.Context,
	cmd ToggleChecklistItemsCommand,
) (services.RecomputeResult, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.RecomputeResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return services.RecomputeResult{}, err
	}
	if err = o.EnsureChecklistIsOpen(); err != nil {
		return services.RecomputeResult{}, err
	}
	if err = o.EnsureAssignee(cmd.StaffID()); err != nil {
		return services.RecomputeResult{}, err
	}

	checklistRepo := uow.ChecklistRepository()
	items, err := checklistRepo.GetByOrder(ctx, o.ID())
	if err != nil {
		return services.RecomputeResult{}, err
	}

	byID := make(map[string]*checklist.Item, len(items))
	for _, item := range items {
		byID[item.ID().String()] = item
	}

	ts := now()
	for _, toggle := range cmd.Toggles() {
		item, ok := byID[toggle.ItemID.String()]
		if !ok {
			return services.RecomputeResult{}, errs.NewObjectNotFoundError("checklist item", toggle.ItemID.String())
		}

		changed, err := item.SetCompleted(toggle.Completed, cmd.StaffID(), ts)
		if err != nil {
			return services.RecomputeResult{}, err
		}
		if !changed {
			continue
		}
		if err = checklistRepo.Update(ctx, item); err != nil {
			return services.RecomputeResult{}, err
		}
	}

	result, err := applyProgress(ctx, uow, o, items, ts)
	if err != nil {
		return services.RecomputeResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return services.RecomputeResult{}, err
	}

	return result, nil
}
