package commands_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/checklist"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockChecklistRepository struct{ mock.Mock }

func (m *MockChecklistRepository) AddAll(ctx context.Context, items []*checklist.Item) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *MockChecklistRepository) Update(ctx context.Context, item *checklist.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockChecklistRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*checklist.Item, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*checklist.Item), args.Error(1)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) AddAll(ctx context.Context, n []*notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notification.Notification), args.Error(1)
}

type MockStaffDirectory struct{ mock.Mock }

func (m *MockStaffDirectory) Administrators(ctx context.Context) ([]kernel.UUID, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

func (m *MockStaffDirectory) IsStaff(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockTemplateCatalog struct{ mock.Mock }

func (m *MockTemplateCatalog) ItemsFor(ctx context.Context, product kernel.ProductRef) ([]*checklist.TemplateItem, error) {
	args := m.Called(ctx, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*checklist.TemplateItem), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ChecklistRepository() ports.ChecklistRepository {
	args := m.Called()
	return args.Get(0).(ports.ChecklistRepository)
}

func (m *MockUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

func (m *MockUoW) StaffDirectory() ports.StaffDirectory {
	args := m.Called()
	return args.Get(0).(ports.StaffDirectory)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockNotificationUoWFactory struct{ mock.Mock }

func (m *MockNotificationUoWFactory) Create() commands.NotificationUoW {
	args := m.Called()
	return args.Get(0).(commands.NotificationUoW)
}

// fixture wires a MockUoW to fresh repository mocks. Accessors may be called
// any number of times.
type fixture struct {
	factory       *MockUoWFactory
	uow           *MockUoW
	orders        *MockOrderRepository
	checklists    *MockChecklistRepository
	notifications *MockNotificationRepository
	staff         *MockStaffDirectory
	catalog       *MockTemplateCatalog
}

func newFixture() *fixture {
	f := &fixture{
		factory:       new(MockUoWFactory),
		uow:           new(MockUoW),
		orders:        new(MockOrderRepository),
		checklists:    new(MockChecklistRepository),
		notifications: new(MockNotificationRepository),
		staff:         new(MockStaffDirectory),
		catalog:       new(MockTemplateCatalog),
	}
	f.factory.On("Create").Return(f.uow)
	f.uow.On("OrderRepository").Return(f.orders).Maybe()
	f.uow.On("ChecklistRepository").Return(f.checklists).Maybe()
	f.uow.On("NotificationRepository").Return(f.notifications).Maybe()
	f.uow.On("StaffDirectory").Return(f.staff).Maybe()
	f.uow.On("Rollback", mock.Anything).Return(nil).Maybe()
	return f
}

func (f *fixture) assertExpectations(t *testing.T) {
	t.Helper()
	f.factory.AssertExpectations(t)
	f.uow.AssertExpectations(t)
	f.orders.AssertExpectations(t)
	f.checklists.AssertExpectations(t)
	f.notifications.AssertExpectations(t)
	f.staff.AssertExpectations(t)
	f.catalog.AssertExpectations(t)
}

var fixedNow = time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)

func productRef(t *testing.T, id int64) kernel.ProductRef {
	t.Helper()
	ref, err := kernel.NewProductRef(kernel.ProductKindPackage, id)
	require.NoError(t, err)
	return ref
}

func newTestOrder(t *testing.T, uploaded bool, products ...int64) *order.Order {
	t.Helper()
	price, err := kernel.NewMoney(1000)
	require.NoError(t, err)
	items := make([]*order.Item, 0, len(products))
	for _, p := range products {
		item, err := order.RestoreItem(kernel.NewUUID(), productRef(t, p), 1, price, uploaded)
		require.NoError(t, err)
		items = append(items, item)
	}
	o, err := order.NewOrder(kernel.NewUUID(), items, fixedNow)
	require.NoError(t, err)
	return o
}

func readyOrder(t *testing.T, products ...int64) *order.Order {
	t.Helper()
	o := newTestOrder(t, true, products...)
	require.NoError(t, o.ConfirmPayment(fixedNow))
	o.PullEvents()
	return o
}

func assignedOrder(t *testing.T, staff kernel.UUID, products ...int64) *order.Order {
	t.Helper()
	o := readyOrder(t, products...)
	require.NoError(t, o.Assign(staff, fixedNow))
	o.PullEvents()
	return o
}

func checklistItems(t *testing.T, orderID kernel.UUID, optional ...bool) []*checklist.Item {
	t.Helper()
	items := make([]*checklist.Item, 0, len(optional))
	for i, opt := range optional {
		item, err := checklist.NewItem(kernel.NewUUID(), orderID, nil, "step", i, opt)
		require.NoError(t, err)
		items = append(items, item)
	}
	return items
}

// notificationKinds matches an AddAll argument by the kinds it carries.
func notificationKinds(kinds ...notification.Kind) any {
	return mock.MatchedBy(func(ns []*notification.Notification) bool {
		if len(ns) != len(kinds) {
			return false
		}
		for i, n := range ns {
			if n.Kind() != kinds[i] {
				return false
			}
		}
		return true
	})
}
