package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
)

// StaffDirectory answers who may receive work and notifications.
type StaffDirectory interface {
	// Administrators returns every active administrator.
	Administrators(ctx context.Context) ([]kernel.UUID, error)

	// IsStaff reports whether id is an active staff member or administrator.
	IsStaff(ctx context.Context, id kernel.UUID) (bool, error)
}
