package commands

import (
	"context"
)

// ConfirmPaymentCommandHandler moves a paid order to PendingResources or, when
// nothing is left to upload, to ReadyForProcessing. The latter notifies the
// administrators.
type ConfirmPaymentCommandHandler struct {
	uowFactory UoWFactory
}

func NewConfirmPaymentCommandHandler(uowFactory UoWFactory) ConfirmPaymentCommandHandler {
	return ConfirmPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h ConfirmPaymentCommandHandler) Handle(ctx context.Context, cmd ConfirmPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return retryOnConflict(func() error {
		return h.handle(ctx, cmd)
	})
}

func (h ConfirmPaymentCommandHandler) handle(ctx context.Context, cmd ConfirmPaymentCommand) error {
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
	if err = o.ConfirmPayment(ts); err != nil {
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
