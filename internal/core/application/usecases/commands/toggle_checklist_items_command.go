package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrToggleChecklistItemsCommandIsNotConstructed = errors.New(
	"ToggleChecklistItemsCommand must be created via NewToggleChecklistItemsCommand constructor",
)

// ItemToggle sets one checklist item to Completed.
type ItemToggle struct {
	ItemID    kernel.UUID
	Completed bool
}

// ToggleChecklistItemsCommand applies a batch of toggles to one order's
// checklist. The batch is recomputed once, so milestones crossed by several
// toggles are announced together.
type ToggleChecklistItemsCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	staffID kernel.UUID
	toggles []ItemToggle

	guard guard.ConstructorGuard
}

func NewToggleChecklistItemsCommand(
	orderID kernel.UUID,
	staffID kernel.UUID,
	toggles []ItemToggle,
) (ToggleChecklistItemsCommand, error) {
	cmd := ToggleChecklistItemsCommand{
		orderID: orderID,
		staffID: staffID,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		staffID.Validate(),
		cmd.setToggles(toggles),
	); err != nil {
		return ToggleChecklistItemsCommand{}, err
	}

	return cmd, nil
}

func (c ToggleChecklistItemsCommand) Validate() error {
	return c.guard.Validate(ErrToggleChecklistItemsCommandIsNotConstructed)
}

func (c ToggleChecklistItemsCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ToggleChecklistItemsCommand) StaffID() kernel.UUID {
	return c.staffID
}

func (c ToggleChecklistItemsCommand) Toggles() []ItemToggle {
	out := make([]ItemToggle, len(c.toggles))
	copy(out, c.toggles)
	return out
}

// setToggles rejects empty batches and keeps the last toggle per item.
func (c *ToggleChecklistItemsCommand) setToggles(toggles []ItemToggle) error {
	if len(toggles) == 0 {
		return errs.NewValueIsRequiredError("checklist toggles")
	}

	position := make(map[string]int, len(toggles))
	for _, t := range toggles {
		if err := t.ItemID.Validate(); err != nil {
			return err
		}
		if i, ok := position[t.ItemID.String()]; ok {
			c.toggles[i] = t
			continue
		}
		position[t.ItemID.String()] = len(c.toggles)
		c.toggles = append(c.toggles, t)
	}
	return nil
}
