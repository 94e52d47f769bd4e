package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// AssignOrderCommandHandler coordinates staff assignment.
//
// Workflow:
//   - read the order unlocked and load its catalog templates
//   - in one transaction: check the staff member exists, lock the order,
//     assign it, materialize the checklist and notify the assignee
//
// Products never change after checkout, so the templates read before the
// transaction still match the locked order.
//
// When the catalog cannot be read or the templates cannot be materialized, the
// assignment is still committed and the handler returns a
// GenerationFailedError. The checklist can then be produced later with
// GenerateChecklistCommand.
//
// Example:
//
//	handler := NewAssignOrderCommandHandler(uowFactory, catalog, services.NewChecklistGenerator(nil))
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrInvalidTransition):
//	    // order is not ready for processing
//	case errors.Is(err, errs.ErrGenerationFailed):
//	    // assigned without checklist
//	}
type AssignOrderCommandHandler struct {
	uowFactory UoWFactory
	catalog    ports.TemplateCatalog
	generator  services.ChecklistGenerator
}

func NewAssignOrderCommandHandler(
	uowFactory UoWFactory,
	catalog ports.TemplateCatalog,
	generator services.ChecklistGenerator,
) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		generator:  generator,
	}
}

func (h AssignOrderCommandHandler) Handle(ctx context.Context, cmd AssignOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var generationErr error
	templates, err := prefetchTemplates(ctx, h.uowFactory.Create().OrderRepository(), h.catalog, cmd.OrderID())
	switch {
	case errors.Is(err, errs.ErrGenerationFailed):
		generationErr = err
	case err != nil:
		return err
	}

	return retryOnConflict(func() error {
		return h.handle(ctx, cmd, templates, generationErr)
	})
}

func (h AssignOrderCommandHandler) handle(
	ctx context.Context,
	cmd AssignOrderCommand,
	templates services.ProductTemplates,
	generationErr error,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	isStaff, err := uow.StaffDirectory().IsStaff(ctx, cmd.StaffID())
	if err != nil {
		return err
	}
	if !isStaff {
		return errs.NewObjectNotFoundError("staff", cmd.StaffID().String())
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	ts := now()
	if err = o.Assign(cmd.StaffID(), ts); err != nil {
		return err
	}

	if generationErr == nil {
		_, err = materializeChecklist(ctx, uow.ChecklistRepository(), h.generator, o, templates)
		switch {
		case errors.Is(err, errs.ErrGenerationFailed):
			generationErr = err
		case err != nil:
			return err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = dispatchEvents(ctx, uow, o.PullEvents(), ts); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return generationErr
}
