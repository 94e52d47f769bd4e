package services

import (
	"cmp"
	"slices"

	"fulfillment/internal/core/domain/model/checklist"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// DefaultStep is a checklist entry used when none of an order's products
// carries templates.
type DefaultStep struct {
	Description string `toml:"description"`
	Optional    bool   `toml:"optional"`
}

// DefaultSteps returns the built-in fallback checklist.
func DefaultSteps() []DefaultStep {
	return []DefaultStep{
		{Description: "Review order details and requirements"},
		{Description: "Prepare campaign materials"},
		{Description: "Deliver campaign materials"},
		{Description: "Confirm completion with customer"},
	}
}

// ProductTemplates maps ProductRef.Key() to the template items of that product.
type ProductTemplates map[string][]*checklist.TemplateItem

// ChecklistGenerator builds the materialized checklist of an order.
//
// Business rules:
//   - Products are visited in order-item order; a product bought twice
//     contributes its templates once
//   - Templates of one product are sorted by order index, ties keep catalog order
//   - Materialized items are renumbered from 0 across the whole checklist
//   - When no product has templates, the default steps are used
//   - An order that already has a checklist keeps it untouched
//
// Example usage:
//
//	generator := services.NewChecklistGenerator(nil)
//	items, created, err := generator.Generate(o, existing, templates)
//	if err != nil {
//	    return err
//	}
//	if created {
//	    // persist items
//	}
type ChecklistGenerator struct {
	defaults []DefaultStep
}

// NewChecklistGenerator creates a generator. An empty defaults slice falls
// back to DefaultSteps.
func NewChecklistGenerator(defaults []DefaultStep) ChecklistGenerator {
	if len(defaults) == 0 {
		defaults = DefaultSteps()
	}
	steps := make([]DefaultStep, len(defaults))
	copy(steps, defaults)
	return ChecklistGenerator{defaults: steps}
}

// Defaults returns a copy of the fallback steps in use.
func (g ChecklistGenerator) Defaults() []DefaultStep {
	out := make([]DefaultStep, len(g.defaults))
	copy(out, g.defaults)
	return out
}

// Generate returns the order's checklist.
//
// Parameters:
//   - o: the order the checklist belongs to
//   - existing: the items already persisted for the order
//   - templates: catalog templates keyed by product
//
// Returns:
//   - []*checklist.Item: existing when non-empty, otherwise the new items
//   - bool: true when new items were built and must be persisted
//   - error: validation errors from the order or the items
func (g ChecklistGenerator) Generate(
	o *order.Order,
	existing []*checklist.Item,
	templates ProductTemplates,
) ([]*checklist.Item, bool, error) {
	if err := o.Validate(); err != nil {
		return nil, false, err
	}
	if len(existing) > 0 {
		return existing, false, nil
	}

	var items []*checklist.Item
	for _, product := range o.Products() {
		sorted := slices.Clone(templates[product.Key()])
		slices.SortStableFunc(sorted, func(a, b *checklist.TemplateItem) int {
			return cmp.Compare(a.OrderIndex(), b.OrderIndex())
		})

		for _, tpl := range sorted {
			item, err := checklist.NewItemFromTemplate(kernel.NewUUID(), o.ID(), tpl, len(items))
			if err != nil {
				return nil, false, err
			}
			items = append(items, item)
		}
	}

	if len(items) > 0 {
		return items, true, nil
	}

	for i, step := range g.defaults {
		item, err := checklist.NewItem(kernel.NewUUID(), o.ID(), nil, step.Description, i, step.Optional)
		if err != nil {
			return nil, false, err
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return nil, false, errs.NewValueIsRequiredError("default checklist steps")
	}
	return items, true, nil
}
