package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/checklist"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// loadTemplates reads the catalog templates of every product of the order.
// Any catalog failure is reported as a GenerationFailedError.
func loadTemplates(ctx context.Context, catalog ports.TemplateCatalog, o *order.Order) (services.ProductTemplates, error) {
	templates := make(services.ProductTemplates)
	for _, product := range o.Products() {
		items, err := catalog.ItemsFor(ctx, product)
		if err != nil {
			return nil, errs.NewGenerationFailedError(o.ID().String(), err)
		}
		templates[product.Key()] = items
	}
	return templates, nil
}

// prefetchTemplates reads the order without locking it and loads its
// templates. It runs before the command's transaction opens so that a slow
// catalog never holds the order row lock.
func prefetchTemplates(
	ctx context.Context,
	orders ports.OrderRepository,
	catalog ports.TemplateCatalog,
	orderID kernel.UUID,
) (services.ProductTemplates, error) {
	o, err := orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return loadTemplates(ctx, catalog, o)
}

// materializeChecklist generates the order's checklist unless it already has
// one and adds the new items to the current transaction.
func materializeChecklist(
	ctx context.Context,
	repo ports.ChecklistRepository,
	generator services.ChecklistGenerator,
	o *order.Order,
	templates services.ProductTemplates,
) ([]*checklist.Item, error) {
	existing, err := repo.GetByOrder(ctx, o.ID())
	if err != nil {
		return nil, err
	}

	items, created, err := generator.Generate(o, existing, templates)
	if err != nil {
		return nil, errs.NewGenerationFailedError(o.ID().String(), err)
	}
	if !created {
		return items, nil
	}

	if err = repo.AddAll(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

// applyProgress recomputes the order's progress and persists the order with
// the notifications its events produce.
func applyProgress(
	ctx context.Context,
	uow UoW,
	o *order.Order,
	items []*checklist.Item,
	ts time.Time,
) (services.RecomputeResult, error) {
	result, err := services.NewProgressTracker().Recompute(o, items, ts)
	if err != nil {
		return services.RecomputeResult{}, err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return services.RecomputeResult{}, err
	}

	if err = dispatchEvents(ctx, uow, o.PullEvents(), ts); err != nil {
		return services.RecomputeResult{}, err
	}

	return result, nil
}
