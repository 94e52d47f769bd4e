package commands

import (
	"context"
)

type MarkNotificationReadCommandHandler struct {
	uowFactory NotificationUoWFactory
}

func NewMarkNotificationReadCommandHandler(uowFactory NotificationUoWFactory) MarkNotificationReadCommandHandler {
	return MarkNotificationReadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle marks the notification read on behalf of one of its recipients.
func (h MarkNotificationReadCommandHandler) Handle(ctx context.Context, cmd MarkNotificationReadCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.NotificationRepository()
	n, err := repo.Get(ctx, cmd.NotificationID())
	if err != nil {
		return err
	}

	if n.Read() && n.IsAddressedTo(cmd.RecipientID()) {
		return nil
	}
	if err = n.MarkRead(cmd.RecipientID()); err != nil {
		return err
	}

	if err = repo.Update(ctx, n); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
