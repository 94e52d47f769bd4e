package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIsNotInFulfillment is returned when checklist work is attempted on an
	// order that is neither assigned nor in progress.
	ErrOrderIsNotInFulfillment = errors.New("order is not assigned or in progress")

	// ErrOrderIsCompleted is returned for any checklist change on a completed order.
	// Reopening a completed order is an administrative override this service does not offer.
	ErrOrderIsCompleted = errors.New("order is completed and its checklist is locked")
)

// Order is the aggregate root of the fulfillment core. Its status only moves
// along the edges of the Status graph, and every move is recorded as an Event.
//
// Order follows these invariants:
//   - Must have a valid identifier and at least one item
//   - Status transitions follow the Status graph, never backwards
//   - An assignee is present exactly when status is Assigned or later
//   - Each progress milestone is recorded at most once
//
// version is the optimistic-locking counter of the persisted row.
type Order struct {
	id          kernel.UUID
	number      string
	status      Status
	totalAmount kernel.Money
	assignedTo  *kernel.UUID
	items       []*Item

	// lastMilestone is the highest progress milestone already announced.
	lastMilestone int

	version   int
	createdAt time.Time
	updatedAt time.Time

	events []Event

	isConstructed bool
}

// NewOrder creates an order at checkout in PendingPayment status. The total
// is the sum of the item subtotals.
//
// Example:
//
//	ref, _ := kernel.NewProductRef(kernel.ProductKindPackage, 3)
//	price, _ := kernel.NewMoney(100000)
//	item, _ := order.NewItem(kernel.NewUUID(), ref, 1, price)
//	o, err := order.NewOrder(kernel.NewUUID(), []*order.Item{item}, time.Now())
func NewOrder(id kernel.UUID, items []*Item, now time.Time) (*Order, error) {
	o := &Order{
		status:        PendingPayment,
		number:        generateOrderNumber(now),
		version:       1,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from persistence without recording events.
func RestoreOrder(
	id kernel.UUID,
	number string,
	status Status,
	totalAmount kernel.Money,
	assignedTo *kernel.UUID,
	items []*Item,
	lastMilestone int,
	version int,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	if strings.TrimSpace(number) == "" {
		return nil, errs.NewValueIsRequiredError("order number")
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := status.ValidateCanHaveAssignee(assignedTo != nil); err != nil {
		return nil, err
	}

	o := &Order{
		number:        number,
		status:        status,
		assignedTo:    assignedTo,
		lastMilestone: lastMilestone,
		version:       version,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}
	if err := errors.Join(o.setID(id), o.setItems(items)); err != nil {
		return nil, err
	}
	o.totalAmount = totalAmount

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number is the human-facing order number, e.g. "EC-20261015-1A2B3C4D".
func (o *Order) Number() string {
	return o.number
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// AssignedTo returns the staff member holding the order, nil before assignment.
func (o *Order) AssignedTo() *kernel.UUID {
	return o.assignedTo
}

// Items returns a copy of the order lines.
func (o *Order) Items() []*Item {
	out := make([]*Item, len(o.items))
	copy(out, o.items)
	return out
}

func (o *Order) LastMilestone() int {
	return o.lastMilestone
}

func (o *Order) Version() int {
	return o.version
}

// AdvanceVersion is called by the repository after a successful versioned write.
func (o *Order) AdvanceVersion() {
	o.version++
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// TransitionTo moves the order along one edge of the status graph and records
// an EventStatusChanged tagged with the new status. On failure the order is
// left untouched.
func (o *Order) TransitionTo(target Status, now time.Time) error {
	next, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}
	if err = next.ValidateCanHaveAssignee(o.assignedTo != nil); err != nil {
		return err
	}

	o.status = next
	o.touch(now)
	o.record(Event{Kind: EventStatusChanged, Status: next, OccurredAt: now})
	return nil
}

// ConfirmPayment handles the payment collaborator's confirmation. Orders with
// outstanding resources wait in PendingResources, the rest skip straight to
// ReadyForProcessing.
func (o *Order) ConfirmPayment(now time.Time) error {
	if o.AllResourcesUploaded() {
		return o.TransitionTo(ReadyForProcessing, now)
	}
	return o.TransitionTo(PendingResources, now)
}

// MarkResourcesUploaded flags one item as having its resources. Repeating the
// call is harmless. Once every item is flagged while the order waits in
// PendingResources, the order becomes ReadyForProcessing.
//
// Returns true when the call advanced the order.
func (o *Order) MarkResourcesUploaded(itemID kernel.UUID, now time.Time) (bool, error) {
	item, err := o.Item(itemID)
	if err != nil {
		return false, err
	}

	if !item.ResourcesUploaded() {
		item.markResourcesUploaded()
		o.touch(now)
	}

	if o.status != PendingResources || !o.AllResourcesUploaded() {
		return false, nil
	}
	if err = o.TransitionTo(ReadyForProcessing, now); err != nil {
		return false, err
	}
	return true, nil
}

// AllResourcesUploaded reports whether every item has its resources.
func (o *Order) AllResourcesUploaded() bool {
	for _, item := range o.items {
		if !item.ResourcesUploaded() {
			return false
		}
	}
	return true
}

// ResourceUploadProgress is the share of items with resources, 0-100.
func (o *Order) ResourceUploadProgress() int {
	if len(o.items) == 0 {
		return 100
	}
	uploaded := 0
	for _, item := range o.items {
		if item.ResourcesUploaded() {
			uploaded++
		}
	}
	return uploaded * 100 / len(o.items)
}

// Item finds an order line by id.
func (o *Order) Item(itemID kernel.UUID) (*Item, error) {
	for _, item := range o.items {
		if item.ID().IsEqual(itemID) {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("order item", itemID.String())
}

// Products returns the distinct products of the order in item order.
func (o *Order) Products() []kernel.ProductRef {
	seen := make(map[string]struct{}, len(o.items))
	products := make([]kernel.ProductRef, 0, len(o.items))
	for _, item := range o.items {
		key := item.Product().Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		products = append(products, item.Product())
	}
	return products
}

// Assign hands a ReadyForProcessing order to a staff member and moves it to Assigned.
//
// Business rules:
//   - The staff id must be valid
//   - Only ReadyForProcessing orders can be assigned; use Reassign afterwards
func (o *Order) Assign(staffID kernel.UUID, now time.Time) error {
	if err := staffID.Validate(); err != nil {
		return err
	}
	if !o.status.CanTransitionTo(Assigned) {
		return errs.NewInvalidTransitionError(o.status, Assigned)
	}

	previous := o.assignedTo
	o.assignedTo = &staffID
	if err := o.TransitionTo(Assigned, now); err != nil {
		o.assignedTo = previous
		return err
	}
	return nil
}

// Reassign changes the staff member of an Assigned or InProgress order. The
// status and the checklist are left as they are.
func (o *Order) Reassign(staffID kernel.UUID, now time.Time) error {
	if err := staffID.Validate(); err != nil {
		return err
	}
	if o.status != Assigned && o.status != InProgress {
		return fmt.Errorf("%w: cannot reassign a %s order", ErrOrderIsNotInFulfillment, o.status)
	}
	if o.assignedTo != nil && o.assignedTo.IsEqual(staffID) {
		return nil
	}

	o.assignedTo = &staffID
	o.touch(now)
	o.record(Event{Kind: EventReassigned, Status: o.status, OccurredAt: now})
	return nil
}

// EnsureAssignee returns a PermissionDeniedError unless staffID holds the order.
func (o *Order) EnsureAssignee(staffID kernel.UUID) error {
	if o.assignedTo == nil || !o.assignedTo.IsEqual(staffID) {
		return errs.NewPermissionDeniedError(
			"staff "+staffID.String(),
			"order "+o.number,
			"order is not assigned to this staff member",
		)
	}
	return nil
}

// EnsureChecklistIsOpen allows checklist work only while the order is being fulfilled.
func (o *Order) EnsureChecklistIsOpen() error {
	switch o.status {
	case Assigned, InProgress:
		return nil
	case Completed:
		return ErrOrderIsCompleted
	default:
		return fmt.Errorf("%w: order %s is %s", ErrOrderIsNotInFulfillment, o.number, o.status)
	}
}

// RecordMilestone stores a reached progress milestone and records an event for
// it. Milestones at or below the stored one are ignored, so each is announced
// once per order even when progress drops and climbs again.
func (o *Order) RecordMilestone(milestone int, now time.Time) bool {
	if milestone <= o.lastMilestone {
		return false
	}
	o.lastMilestone = milestone
	o.touch(now)
	o.record(Event{Kind: EventMilestoneReached, Status: o.status, Milestone: milestone, OccurredAt: now})
	return true
}

// PullEvents returns and clears the recorded events.
func (o *Order) PullEvents() []Event {
	events := o.events
	o.events = nil
	return events
}

func (o *Order) record(evt Event) {
	evt.OrderID = o.id
	evt.OrderNumber = o.number
	if o.assignedTo != nil {
		assignee := *o.assignedTo
		evt.Assignee = &assignee
	}
	o.events = append(o.events, evt)
}

func (o *Order) touch(now time.Time) {
	o.updatedAt = now
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}
	total := kernel.Money{}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		total = total.Add(item.Subtotal())
	}
	o.items = make([]*Item, len(items))
	copy(o.items, items)
	o.totalAmount = total
	return nil
}

// generateOrderNumber builds "EC-YYYYMMDD-XXXXXXXX" from the checkout date and
// eight random hex digits.
func generateOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("EC-%s-%s", now.Format("20060102"), suffix)
}
