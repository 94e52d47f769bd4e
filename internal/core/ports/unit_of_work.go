package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is one business transaction. Repositories obtained after Begin
// share its transaction, so a state change and the notifications reporting
// it commit or roll back together.
//
// TemplateCatalog is not part of the unit of work: handlers read it before
// Begin, so a failed or slow catalog read neither aborts the transaction that
// records an assignment nor holds the order row lock.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	ChecklistRepository() ChecklistRepository
	NotificationRepository() NotificationRepository
	StaffDirectory() StaffDirectory
}
