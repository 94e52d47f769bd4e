package commands_test

import (
	"errors"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/checklist"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAssignHandler(f *fixture) commands.AssignOrderCommandHandler {
	return commands.NewAssignOrderCommandHandler(f.factory, f.catalog, services.NewChecklistGenerator(nil))
}

func TestAssignOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	staff := kernel.NewUUID()
	o := readyOrder(t, 1, 1)
	cmd, err := commands.NewAssignOrderCommand(o.ID(), staff)
	require.NoError(t, err)

	tpl, err := checklist.NewTemplateItem(kernel.NewUUID(), productRef(t, 1), "Design banner", "", 0, false, 0)
	require.NoError(t, err)

	f := newFixture()
	mock.InOrder(
		f.orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		f.catalog.On("ItemsFor", ctx, productRef(t, 1)).Return([]*checklist.TemplateItem{tpl}, nil).Once(),
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.staff.On("IsStaff", ctx, staff).Return(true, nil).Once(),
		f.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
		f.checklists.On("GetByOrder", ctx, o.ID()).Return([]*checklist.Item{}, nil).Once(),
		f.checklists.On("AddAll", ctx, mock.MatchedBy(func(items []*checklist.Item) bool {
			return len(items) == 1 && items[0].Description() == "Design banner"
		})).Return(nil).Once(),
		f.orders.On("Update", ctx, o).Return(nil).Once(),
		f.staff.On("Administrators", ctx).Return([]kernel.UUID{kernel.NewUUID()}, nil).Once(),
		f.notifications.On("AddAll", ctx, notificationKinds(notification.KindAssigned)).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
	)

	err = newAssignHandler(f).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Assigned, o.Status())
	assert.True(t, o.AssignedTo().IsEqual(staff))
	f.assertExpectations(t)
}

func TestAssignOrderCommandHandler_Handle_GenerationFailureStillAssigns(t *testing.T) {
	ctx := t.Context()
	staff := kernel.NewUUID()
	o := readyOrder(t, 1)
	cmd, _ := commands.NewAssignOrderCommand(o.ID(), staff)

	f := newFixture()
	f.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	f.catalog.On("ItemsFor", ctx, mock.Anything).Return(nil, errors.New("catalog unavailable")).Once()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.staff.On("IsStaff", ctx, staff).Return(true, nil).Once()
	f.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
	f.orders.On("Update", ctx, o).Return(nil).Once()
	f.staff.On("Administrators", ctx).Return([]kernel.UUID{}, nil).Once()
	f.notifications.On("AddAll", ctx, notificationKinds(notification.KindAssigned)).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()

	err := newAssignHandler(f).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrGenerationFailed)
	assert.Contains(t, err.Error(), "catalog unavailable")
	assert.Equal(t, order.Assigned, o.Status())
	f.checklists.AssertNotCalled(t, "AddAll", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestAssignOrderCommandHandler_Handle_UnknownStaff(t *testing.T) {
	ctx := t.Context()
	staff := kernel.NewUUID()
	o := readyOrder(t, 1)
	cmd, _ := commands.NewAssignOrderCommand(o.ID(), staff)

	f := newFixture()
	f.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	f.catalog.On("ItemsFor", ctx, mock.Anything).Return([]*checklist.TemplateItem{}, nil).Once()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.staff.On("IsStaff", ctx, staff).Return(false, nil).Once()

	err := newAssignHandler(f).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	f.assertExpectations(t)
}

func TestAssignOrderCommandHandler_Handle_NotReady(t *testing.T) {
	ctx := t.Context()
	staff := kernel.NewUUID()
	o := newTestOrder(t, false, 1)
	cmd, _ := commands.NewAssignOrderCommand(o.ID(), staff)

	f := newFixture()
	f.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	f.catalog.On("ItemsFor", ctx, mock.Anything).Return([]*checklist.TemplateItem{}, nil).Once()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.staff.On("IsStaff", ctx, staff).Return(true, nil).Once()
	f.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()

	err := newAssignHandler(f).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.PendingPayment, o.Status())
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	f.assertExpectations(t)
}

func TestAssignOrderCommandHandler_Handle_RetriesConcurrentUpdateOnce(t *testing.T) {
	ctx := t.Context()
	staff := kernel.NewUUID()
	first := readyOrder(t, 1)
	second := readyOrder(t, 1)
	cmd, _ := commands.NewAssignOrderCommand(first.ID(), staff)

	f := newFixture()
	f.orders.On("Get", ctx, first.ID()).Return(first, nil).Once()
	f.catalog.On("ItemsFor", ctx, mock.Anything).Return([]*checklist.TemplateItem{}, nil).Once()
	f.uow.On("Begin", ctx).Return(nil).Twice()
	f.staff.On("IsStaff", ctx, staff).Return(true, nil).Twice()
	f.orders.On("GetForUpdate", ctx, first.ID()).Return(first, nil).Once()
	f.orders.On("GetForUpdate", ctx, first.ID()).Return(second, nil).Once()
	f.checklists.On("GetByOrder", ctx, mock.Anything).Return([]*checklist.Item{}, nil)
	f.checklists.On("AddAll", ctx, mock.Anything).Return(nil)
	f.orders.On("Update", ctx, first).Return(errs.NewConcurrentUpdateError("order", first.ID().String())).Once()
	f.orders.On("Update", ctx, second).Return(nil).Once()
	f.staff.On("Administrators", ctx).Return([]kernel.UUID{}, nil).Once()
	f.notifications.On("AddAll", ctx, mock.Anything).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()

	err := newAssignHandler(f).Handle(ctx, cmd)

	require.NoError(t, err)
	f.assertExpectations(t)
}

func TestAssignOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	f := newFixture()

	err := newAssignHandler(f).Handle(t.Context(), commands.AssignOrderCommand{})

	require.ErrorIs(t, err, commands.ErrAssignOrderCommandIsNotConstructed)
	f.factory.AssertNotCalled(t, "Create")
}

func TestAssignOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	o := readyOrder(t, 1)
	cmd, _ := commands.NewAssignOrderCommand(o.ID(), kernel.NewUUID())

	f := newFixture()
	f.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	f.catalog.On("ItemsFor", ctx, mock.Anything).Return([]*checklist.TemplateItem{}, nil).Once()
	f.uow.On("Begin", ctx).Return(errors.New("begin error")).Once()

	err := newAssignHandler(f).Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
}

func TestAssignOrderCommandHandler_Handle_ReadsCatalogOutsideTransaction(t *testing.T) {
	ctx := t.Context()
	staff := kernel.NewUUID()
	o := readyOrder(t, 1, 2)
	cmd, _ := commands.NewAssignOrderCommand(o.ID(), staff)

	f := newFixture()
	f.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	f.catalog.On("ItemsFor", ctx, mock.Anything).
		Run(func(mock.Arguments) {
			f.uow.AssertNotCalled(t, "Begin", mock.Anything)
			f.orders.AssertNotCalled(t, "GetForUpdate", mock.Anything, mock.Anything)
		}).
		Return([]*checklist.TemplateItem{}, nil).Twice()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.staff.On("IsStaff", ctx, staff).Return(true, nil).Once()
	f.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
	f.checklists.On("GetByOrder", ctx, o.ID()).Return([]*checklist.Item{}, nil).Once()
	f.checklists.On("AddAll", ctx, mock.Anything).Return(nil).Maybe()
	f.orders.On("Update", ctx, o).Return(nil).Once()
	f.staff.On("Administrators", ctx).Return([]kernel.UUID{}, nil).Once()
	f.notifications.On("AddAll", ctx, mock.Anything).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()

	err := newAssignHandler(f).Handle(ctx, cmd)

	require.NoError(t, err)
	f.assertExpectations(t)
}

func TestAssignOrderCommandHandler_Handle_UnknownOrder(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewAssignOrderCommand(id, kernel.NewUUID())

	f := newFixture()
	f.orders.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("order", id.String())).Once()

	err := newAssignHandler(f).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	f.catalog.AssertNotCalled(t, "ItemsFor", mock.Anything, mock.Anything)
	f.uow.AssertNotCalled(t, "Begin", mock.Anything)
}
