package notificationrepo_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/notificationrepo"
	"fulfillment/internal/adapters/out/postgres/pgtest"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type NotificationRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg      *pgtest.Database
	tracker *MockAggregateTracker
	repo    *notificationrepo.GormNotificationRepository
	now     time.Time
}

func (suite *NotificationRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg

	suite.Require().NoError(postgres.Migrate(pg.DB))
	suite.now = time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)
}

func (suite *NotificationRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate("notifications"))

	suite.tracker = &MockAggregateTracker{}
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repo = notificationrepo.NewGormNotificationRepository(suite.pg.DB, suite.tracker)
}

func (suite *NotificationRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestAddAll_Get_RoundTripsRecipients() {
	ctx := context.Background()
	admins := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}
	n := suite.newNotification(notification.KindReadyForProcessing, admins...)
	other := suite.newNotification(notification.KindAssigned, kernel.NewUUID())

	suite.Require().NoError(suite.repo.AddAll(ctx, []*notification.Notification{n, other}))

	loaded, err := suite.repo.Get(ctx, n.ID())
	suite.Require().NoError(err)
	suite.Equal(notification.KindReadyForProcessing, loaded.Kind())
	suite.True(loaded.OrderID().IsEqual(n.OrderID()))
	suite.Equal(n.Message(), loaded.Message())
	suite.False(loaded.Read())
	suite.Require().Len(loaded.Recipients(), 2)
	suite.True(loaded.IsAddressedTo(admins[0]))
	suite.True(loaded.IsAddressedTo(admins[1]))
	suite.True(loaded.CreatedAt().Equal(suite.now))
	suite.tracker.AssertNumberOfCalls(suite.T(), "TrackAggregate", 2)
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestUpdate_PersistsReadFlag() {
	ctx := context.Background()
	recipient := kernel.NewUUID()
	n := suite.newNotification(notification.KindAssigned, recipient)
	suite.Require().NoError(suite.repo.AddAll(ctx, []*notification.Notification{n}))

	suite.Require().NoError(n.MarkRead(recipient))
	suite.Require().NoError(suite.repo.Update(ctx, n))

	loaded, err := suite.repo.Get(ctx, n.ID())
	suite.Require().NoError(err)
	suite.True(loaded.Read())
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestGet_Missing_ReturnsNotFound() {
	_, err := suite.repo.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestUpdate_Missing_ReturnsNotFound() {
	n := suite.newNotification(notification.KindCompleted, kernel.NewUUID())

	err := suite.repo.Update(context.Background(), n)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *NotificationRepositoryIntegrationTestSuite) newNotification(kind notification.Kind, recipients ...kernel.UUID) *notification.Notification {
	n, err := notification.NewNotification(kernel.NewUUID(), kind, kernel.NewUUID(), recipients, "Order EC-20261015-0000AAAA update", suite.now)
	suite.Require().NoError(err)
	return n
}

func TestNotificationRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationRepositoryIntegrationTestSuite))
}
