package commands

import (
	"context"
)

// MarkResourcesUploadedCommandHandler flags an item's resources as uploaded.
// The last upload of an order waiting in PendingResources makes it
// ReadyForProcessing.
type MarkResourcesUploadedCommandHandler struct {
	uowFactory UoWFactory
}

func NewMarkResourcesUploadedCommandHandler(uowFactory UoWFactory) MarkResourcesUploadedCommandHandler {
	return MarkResourcesUploadedCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h MarkResourcesUploadedCommandHandler) Handle(ctx context.Context, cmd MarkResourcesUploadedCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return retryOnConflict(func() error {
		return h.handle(ctx, cmd)
	})
}

func (h MarkResourcesUploadedCommandHandler) handle(ctx context.Context, cmd MarkResourcesUploadedCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	ts := now()
	if _, err = o.MarkResourcesUploaded(cmd.ItemID(), ts); err != nil {
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
