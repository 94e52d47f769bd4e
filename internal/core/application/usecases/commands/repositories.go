// Package commands contains the business operations that modify fulfillment
// state. Every handler validates its command, opens one unit of work, reads the
// order under its row lock, applies domain rules, persists the order together
// with the notifications its events produce, and commits.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	ChecklistRepoFactory interface {
		ChecklistRepository() ports.ChecklistRepository
	}

	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	StaffDirectoryFactory interface {
		StaffDirectory() ports.StaffDirectory
	}

	// OrderUoW is used by commands that only write orders and emit no events.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// NotificationUoW is used by commands that only touch notifications.
	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
	}

	NotificationUoWFactory interface {
		Create() NotificationUoW
	}

	// UoW spans the order, its checklist and the notifications it produces.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().GetForUpdate(ctx, id)
	//   // ... apply domain rules
	//   err = uow.OrderRepository().Update(ctx, o)
	//   err = dispatchEvents(ctx, uow, o.PullEvents(), now)
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		ChecklistRepoFactory
		NotificationRepoFactory
		StaffDirectoryFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
