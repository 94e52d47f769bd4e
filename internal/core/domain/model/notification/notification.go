package notification

import (
	"errors"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrNotificationIsNotConstructed is returned for Notification literals.
var ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification constructor")

// Kind is the persisted notification type.
type Kind string

const (
	KindReadyForProcessing Kind = "ready_for_processing"
	KindAssigned           Kind = "assigned"
	KindProgress25         Kind = "progress_25"
	KindProgress50         Kind = "progress_50"
	KindProgress75         Kind = "progress_75"
	KindProgress100        Kind = "progress_100"
	KindCompleted          Kind = "completed"
)

// AllKinds lists the kinds in lifecycle order.
func AllKinds() []Kind {
	return []Kind{
		KindReadyForProcessing, KindAssigned,
		KindProgress25, KindProgress50, KindProgress75, KindProgress100,
		KindCompleted,
	}
}

func (k Kind) Validate() error {
	for _, known := range AllKinds() {
		if k == known {
			return nil
		}
	}
	return errs.NewValueIsInvalidError("notification kind " + string(k))
}

// Notification is addressed to a fixed set of staff members.
type Notification struct {
	id         kernel.UUID
	kind       Kind
	orderID    kernel.UUID
	recipients []kernel.UUID
	message    string
	read       bool
	createdAt  time.Time

	isConstructed bool
}

// NewNotification creates an unread notification. Duplicate recipients are
// collapsed.
func NewNotification(
	id kernel.UUID,
	kind Kind,
	orderID kernel.UUID,
	recipients []kernel.UUID,
	message string,
	now time.Time,
) (*Notification, error) {
	var recipientsErr, messageErr error
	if len(recipients) == 0 {
		recipientsErr = errs.NewValueIsRequiredError("notification recipients")
	}
	if strings.TrimSpace(message) == "" {
		messageErr = errs.NewValueIsRequiredError("notification message")
	}
	if err := errors.Join(id.Validate(), kind.Validate(), orderID.Validate(), recipientsErr, messageErr); err != nil {
		return nil, err
	}

	unique := make([]kernel.UUID, 0, len(recipients))
	seen := make(map[string]struct{}, len(recipients))
	for _, r := range recipients {
		if err := r.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seen[r.String()]; ok {
			continue
		}
		seen[r.String()] = struct{}{}
		unique = append(unique, r)
	}

	return &Notification{
		id:            id,
		kind:          kind,
		orderID:       orderID,
		recipients:    unique,
		message:       message,
		createdAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreNotification rebuilds a notification from persistence.
func RestoreNotification(
	id kernel.UUID,
	kind Kind,
	orderID kernel.UUID,
	recipients []kernel.UUID,
	message string,
	read bool,
	createdAt time.Time,
) (*Notification, error) {
	n, err := NewNotification(id, kind, orderID, recipients, message, createdAt)
	if err != nil {
		return nil, err
	}
	n.read = read
	return n, nil
}

func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

func (n *Notification) ID() kernel.UUID      { return n.id }
func (n *Notification) Kind() Kind           { return n.kind }
func (n *Notification) OrderID() kernel.UUID { return n.orderID }
func (n *Notification) Message() string      { return n.message }
func (n *Notification) Read() bool           { return n.read }
func (n *Notification) CreatedAt() time.Time { return n.createdAt }

// Recipients returns a copy of the recipient set.
func (n *Notification) Recipients() []kernel.UUID {
	out := make([]kernel.UUID, len(n.recipients))
	copy(out, n.recipients)
	return out
}

// IsAddressedTo reports whether staffID is a recipient.
func (n *Notification) IsAddressedTo(staffID kernel.UUID) bool {
	for _, r := range n.recipients {
		if r.IsEqual(staffID) {
			return true
		}
	}
	return false
}

// MarkRead flags the notification as read. Only a recipient may do it, and
// repeating the call is a no-op.
func (n *Notification) MarkRead(staffID kernel.UUID) error {
	if !n.IsAddressedTo(staffID) {
		return errs.NewPermissionDeniedError(
			"staff "+staffID.String(),
			"notification "+n.id.String(),
			"not a recipient",
		)
	}
	n.read = true
	return nil
}
