package checklist

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned for Item literals.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// maxDescriptionLength matches the width of the description column.
const maxDescriptionLength = 500

// Item is one materialized checklist entry of an order. The optional flag and
// description are copied at creation; templateItemID is kept for traceability
// only and is nil for default steps.
type Item struct {
	id             kernel.UUID
	orderID        kernel.UUID
	templateItemID *kernel.UUID
	description    string
	completed      bool
	completedAt    *time.Time
	completedBy    *kernel.UUID
	orderIndex     int
	isOptional     bool

	isConstructed bool
}

// NewItem creates an open checklist entry.
func NewItem(
	id kernel.UUID,
	orderID kernel.UUID,
	templateItemID *kernel.UUID,
	description string,
	orderIndex int,
	isOptional bool,
) (*Item, error) {
	description = strings.TrimSpace(description)

	var descriptionErr, indexErr error
	switch {
	case description == "":
		descriptionErr = errs.NewValueIsRequiredError("checklist item description")
	case len(description) > maxDescriptionLength:
		descriptionErr = errs.NewValueIsOutOfRangeError("description length", len(description), 1, maxDescriptionLength)
	}
	if orderIndex < 0 {
		indexErr = errs.NewValueIsInvalidErrorWithCause("order index", fmt.Errorf("%d is negative", orderIndex))
	}

	if err := errors.Join(id.Validate(), orderID.Validate(), descriptionErr, indexErr); err != nil {
		return nil, err
	}

	var templateRef *kernel.UUID
	if templateItemID != nil {
		ref := *templateItemID
		templateRef = &ref
	}

	return &Item{
		id:             id,
		orderID:        orderID,
		templateItemID: templateRef,
		description:    description,
		orderIndex:     orderIndex,
		isOptional:     isOptional,
		isConstructed:  true,
	}, nil
}

// NewItemFromTemplate snapshots a template item. The template name becomes
// the description.
func NewItemFromTemplate(id kernel.UUID, orderID kernel.UUID, tpl *TemplateItem, orderIndex int) (*Item, error) {
	if err := tpl.Validate(); err != nil {
		return nil, err
	}
	templateID := tpl.ID()
	return NewItem(id, orderID, &templateID, tpl.Name(), orderIndex, tpl.IsOptional())
}

// RestoreItem rebuilds an item from persistence.
func RestoreItem(
	id kernel.UUID,
	orderID kernel.UUID,
	templateItemID *kernel.UUID,
	description string,
	orderIndex int,
	isOptional bool,
	completed bool,
	completedAt *time.Time,
	completedBy *kernel.UUID,
) (*Item, error) {
	item, err := NewItem(id, orderID, templateItemID, description, orderIndex, isOptional)
	if err != nil {
		return nil, err
	}
	item.completed = completed
	item.completedAt = completedAt
	item.completedBy = completedBy
	return item, nil
}

func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

func (i *Item) ID() kernel.UUID              { return i.id }
func (i *Item) OrderID() kernel.UUID         { return i.orderID }
func (i *Item) TemplateItemID() *kernel.UUID { return i.templateItemID }
func (i *Item) Description() string          { return i.description }
func (i *Item) Completed() bool              { return i.completed }
func (i *Item) CompletedAt() *time.Time      { return i.completedAt }
func (i *Item) CompletedBy() *kernel.UUID    { return i.completedBy }
func (i *Item) OrderIndex() int              { return i.orderIndex }
func (i *Item) IsOptional() bool             { return i.isOptional }

// IsRequired is the inverse of IsOptional.
func (i *Item) IsRequired() bool { return !i.isOptional }

// SetCompleted toggles the item. Completing stamps who and when; reopening
// clears both. Returns false when the item already had the requested state.
func (i *Item) SetCompleted(completed bool, by kernel.UUID, now time.Time) (bool, error) {
	if i.completed == completed {
		return false, nil
	}
	if completed {
		if err := by.Validate(); err != nil {
			return false, err
		}
		at := now
		who := by
		i.completedAt = &at
		i.completedBy = &who
	} else {
		i.completedAt = nil
		i.completedBy = nil
	}
	i.completed = completed
	return true, nil
}
