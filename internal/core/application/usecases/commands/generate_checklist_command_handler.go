package commands

import (
	"context"

	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// GenerateChecklistCommandHandler materializes the checklist of an assigned
// order that has none, typically after a failed generation during assignment.
// Orders that already have a checklist are left alone. The catalog is read
// before the transaction opens; the order row lock then keeps two concurrent
// calls from both inserting items.
type GenerateChecklistCommandHandler struct {
	uowFactory UoWFactory
	catalog    ports.TemplateCatalog
	generator  services.ChecklistGenerator
}

func NewGenerateChecklistCommandHandler(
	uowFactory UoWFactory,
	catalog ports.TemplateCatalog,
	generator services.ChecklistGenerator,
) GenerateChecklistCommandHandler {
	return GenerateChecklistCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		generator:  generator,
	}
}

// Handle returns the number of checklist items the order has afterwards.
func (h GenerateChecklistCommandHandler) Handle(ctx context.Context, cmd GenerateChecklistCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	current, err := h.uowFactory.Create().OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return 0, err
	}
	if err = current.EnsureChecklistIsOpen(); err != nil {
		return 0, err
	}
	templates, err := loadTemplates(ctx, h.catalog, current)
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return 0, err
	}
	if err = o.EnsureChecklistIsOpen(); err != nil {
		return 0, err
	}

	items, err := materializeChecklist(ctx, uow.ChecklistRepository(), h.generator, o, templates)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(items), nil
}
