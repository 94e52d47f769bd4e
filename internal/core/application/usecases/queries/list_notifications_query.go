package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

const (
	DefaultNotificationsLimit = 50
	MaxNotificationsLimit     = 200
)

var ErrListNotificationsQueryIsNotConstructed = errors.New(
	"ListNotificationsQuery must be created via NewListNotificationsQuery constructor",
)

// ListNotificationsQuery reads one recipient's notifications, newest first.
// A limit of 0 means DefaultNotificationsLimit.
type ListNotificationsQuery struct {
	recipientID kernel.UUID
	unreadOnly  bool
	limit       int
	guard       guard.ConstructorGuard
}

func NewListNotificationsQuery(recipientID kernel.UUID, unreadOnly bool, limit int) (ListNotificationsQuery, error) {
	if err := recipientID.Validate(); err != nil {
		return ListNotificationsQuery{}, err
	}
	if limit == 0 {
		limit = DefaultNotificationsLimit
	}
	if limit < 0 || limit > MaxNotificationsLimit {
		return ListNotificationsQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxNotificationsLimit)
	}
	return ListNotificationsQuery{
		recipientID: recipientID,
		unreadOnly:  unreadOnly,
		limit:       limit,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (q ListNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrListNotificationsQueryIsNotConstructed)
}

func (q ListNotificationsQuery) RecipientID() kernel.UUID { return q.recipientID }
func (q ListNotificationsQuery) UnreadOnly() bool         { return q.unreadOnly }
func (q ListNotificationsQuery) Limit() int               { return q.limit }

type ListNotificationsQueryResponse struct {
	ID        kernel.UUID
	Kind      string
	OrderID   kernel.UUID
	Message   string
	Read      bool
	CreatedAt time.Time
}
