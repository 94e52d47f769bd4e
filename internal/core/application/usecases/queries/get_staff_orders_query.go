package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetStaffOrdersQueryIsNotConstructed = errors.New(
	"GetStaffOrdersQuery must be created via NewGetStaffOrdersQuery constructor",
)

// GetStaffOrdersQuery lists the orders held by one staff member, most recently
// touched first. Completed orders are left out unless includeCompleted is set.
type GetStaffOrdersQuery struct {
	staffID          kernel.UUID
	includeCompleted bool
	guard            guard.ConstructorGuard
}

func NewGetStaffOrdersQuery(staffID kernel.UUID, includeCompleted bool) (GetStaffOrdersQuery, error) {
	if err := staffID.Validate(); err != nil {
		return GetStaffOrdersQuery{}, err
	}
	return GetStaffOrdersQuery{
		staffID:          staffID,
		includeCompleted: includeCompleted,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

func (q GetStaffOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetStaffOrdersQueryIsNotConstructed)
}

func (q GetStaffOrdersQuery) StaffID() kernel.UUID {
	return q.staffID
}

func (q GetStaffOrdersQuery) IncludeCompleted() bool {
	return q.includeCompleted
}

type GetStaffOrdersQueryResponse struct {
	ID             kernel.UUID
	Number         string
	Status         string
	TotalItems     int
	CompletedItems int
	Percentage     int
	UpdatedAt      time.Time
}
