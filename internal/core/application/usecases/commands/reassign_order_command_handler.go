package commands

import (
	"context"

	"fulfillment/internal/pkg/errs"
)

// ReassignOrderCommandHandler changes the assignee of an order in fulfillment.
// Status and checklist stay as they are; the new assignee is notified.
type ReassignOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewReassignOrderCommandHandler(uowFactory UoWFactory) ReassignOrderCommandHandler {
	return ReassignOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h ReassignOrderCommandHandler) Handle(ctx context.Context, cmd ReassignOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return retryOnConflict(func() error {
		return h.handle(ctx, cmd)
	})
}

func (h ReassignOrderCommandHandler) handle(ctx context.Context, cmd ReassignOrderCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	isStaff, err := uow.StaffDirectory().IsStaff(ctx, cmd.StaffID())
	if err != nil {
		return err
	}
	if !isStaff {
		return errs.NewObjectNotFoundError("staff", cmd.StaffID().String())
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	ts := now()
	if err = o.Reassign(cmd.StaffID(), ts); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = dispatchEvents(ctx, uow, o.PullEvents(), ts); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
