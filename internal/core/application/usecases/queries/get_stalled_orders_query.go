package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrGetStalledOrdersQueryIsNotConstructed = errors.New(
	"GetStalledOrdersQuery must be created via NewGetStalledOrdersQuery constructor",
)

// GetStalledOrdersQuery finds orders still in assigned status without a single
// checklist item, last touched at or before the cutoff. These are orders whose
// checklist generation failed and was never retried.
type GetStalledOrdersQuery struct {
	cutoff time.Time
	guard  guard.ConstructorGuard
}

func NewGetStalledOrdersQuery(cutoff time.Time) (GetStalledOrdersQuery, error) {
	if cutoff.IsZero() {
		return GetStalledOrdersQuery{}, errs.NewValueIsRequiredError("cutoff")
	}
	return GetStalledOrdersQuery{cutoff: cutoff, guard: guard.NewConstructorGuard()}, nil
}

func (q GetStalledOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetStalledOrdersQueryIsNotConstructed)
}

func (q GetStalledOrdersQuery) Cutoff() time.Time {
	return q.cutoff
}

type GetStalledOrdersQueryResponse struct {
	ID         kernel.UUID
	Number     string
	AssignedTo kernel.UUID
	UpdatedAt  time.Time
}
