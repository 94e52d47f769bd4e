package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrMarkNotificationReadCommandIsNotConstructed = errors.New(
	"MarkNotificationReadCommand must be created via NewMarkNotificationReadCommand constructor",
)

type MarkNotificationReadCommand struct {
	notificationID kernel.UUID
	recipientID    kernel.UUID

	guard guard.ConstructorGuard
}

func NewMarkNotificationReadCommand(notificationID kernel.UUID, recipientID kernel.UUID) (MarkNotificationReadCommand, error) {
	if err := errors.Join(notificationID.Validate(), recipientID.Validate()); err != nil {
		return MarkNotificationReadCommand{}, err
	}
	return MarkNotificationReadCommand{
		notificationID: notificationID,
		recipientID:    recipientID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c MarkNotificationReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkNotificationReadCommandIsNotConstructed)
}

func (c MarkNotificationReadCommand) NotificationID() kernel.UUID {
	return c.notificationID
}

func (c MarkNotificationReadCommand) RecipientID() kernel.UUID {
	return c.recipientID
}
