package cmd

import (
	"fmt"
	"log/slog"

	"fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/in/kafka"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/templaterepo"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	catalog    ports.TemplateCatalog
	generator  services.ChecklistGenerator
	logger     *slog.Logger
}

// NewCompositionRoot wires the service. defaults may be nil for the built-in
// checklist.
func NewCompositionRoot(
	configs Config,
	gormDB *gorm.DB,
	defaults []services.DefaultStep,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		catalog:    templaterepo.NewGormTemplateCatalog(gormDB),
		generator:  services.NewChecklistGenerator(defaults),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateConfirmPaymentCommandHandler() commands.ConfirmPaymentCommandHandler {
	return commands.NewConfirmPaymentCommandHandler(c.uowFactoryFunc())
}

func (c *CompositionRoot) CreateMarkResourcesUploadedCommandHandler() commands.MarkResourcesUploadedCommandHandler {
	return commands.NewMarkResourcesUploadedCommandHandler(c.uowFactoryFunc())
}

func (c *CompositionRoot) CreateAssignOrderCommandHandler() commands.AssignOrderCommandHandler {
	return commands.NewAssignOrderCommandHandler(c.uowFactoryFunc(), c.catalog, c.generator)
}

func (c *CompositionRoot) CreateReassignOrderCommandHandler() commands.ReassignOrderCommandHandler {
	return commands.NewReassignOrderCommandHandler(c.uowFactoryFunc())
}

func (c *CompositionRoot) CreateGenerateChecklistCommandHandler() commands.GenerateChecklistCommandHandler {
	return commands.NewGenerateChecklistCommandHandler(c.uowFactoryFunc(), c.catalog, c.generator)
}

func (c *CompositionRoot) CreateToggleChecklistItemsCommandHandler() commands.ToggleChecklistItemsCommandHandler {
	return commands.NewToggleChecklistItemsCommandHandler(c.uowFactoryFunc())
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.uowFactoryFunc())
}

func (c *CompositionRoot) CreateMarkNotificationReadCommandHandler() commands.MarkNotificationReadCommandHandler {
	var f commands.NotificationUoWFactory = FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkNotificationReadCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderChecklistQueryHandler() queries.GetOrderChecklistQueryHandler {
	return queries.NewGetOrderChecklistQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStaffOrdersQueryHandler() queries.GetStaffOrdersQueryHandler {
	return queries.NewGetStaffOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListNotificationsQueryHandler() queries.ListNotificationsQueryHandler {
	return queries.NewListNotificationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStalledOrdersQueryHandler() queries.GetStalledOrdersQueryHandler {
	return queries.NewGetStalledOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateUseCases() http.UseCases {
	return http.UseCases{
		CreateOrder:           c.CreateCreateOrderCommandHandler(),
		ConfirmPayment:        c.CreateConfirmPaymentCommandHandler(),
		MarkResourcesUploaded: c.CreateMarkResourcesUploadedCommandHandler(),
		AssignOrder:           c.CreateAssignOrderCommandHandler(),
		ReassignOrder:         c.CreateReassignOrderCommandHandler(),
		GenerateChecklist:     c.CreateGenerateChecklistCommandHandler(),
		ToggleChecklistItems:  c.CreateToggleChecklistItemsCommandHandler(),
		CompleteOrder:         c.CreateCompleteOrderCommandHandler(),
		MarkNotificationRead:  c.CreateMarkNotificationReadCommandHandler(),
		GetOrderChecklist:     c.CreateGetOrderChecklistQueryHandler(),
		GetStaffOrders:        c.CreateGetStaffOrdersQueryHandler(),
		ListNotifications:     c.CreateListNotificationsQueryHandler(),
	}
}

func (c *CompositionRoot) CreateHTTPServer(service string) (*http.Server, error) {
	sqlDB, err := c.gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}
	return http.NewServer(c.CreateUseCases(), sqlDB, service, c.logger), nil
}

// CreateKafkaConsumer returns nil when no brokers are configured.
func (c *CompositionRoot) CreateKafkaConsumer() (*kafka.Consumer, error) {
	brokers := c.configs.KafkaBrokers()
	if len(brokers) == 0 {
		return nil, nil
	}

	topics := kafka.Topics{
		PaymentConfirmed:  c.configs.KafkaPaymentConfirmedTopic,
		ResourcesUploaded: c.configs.KafkaResourcesUploadedTopic,
	}
	handler := kafka.NewHandler(
		topics,
		c.CreateConfirmPaymentCommandHandler(),
		c.CreateMarkResourcesUploadedCommandHandler(),
		c.logger,
	)
	return kafka.NewConsumer(brokers, c.configs.KafkaConsumerGroup, topics, handler, c.logger)
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	threshold, err := c.configs.StalledThreshold()
	if err != nil {
		return nil, err
	}
	job := jobs.NewStalledChecklistJob(
		c.CreateGetStalledOrdersQueryHandler(),
		c.configs.StalledSchedule(),
		threshold,
		c.logger,
	)
	return jobs.NewJobManager(job, c.logger), nil
}

func (c *CompositionRoot) uowFactoryFunc() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
