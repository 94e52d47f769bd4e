package postgres

import (
	"fulfillment/internal/adapters/out/postgres/checklistrepo"
	"fulfillment/internal/adapters/out/postgres/notificationrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/staffrepo"
	"fulfillment/internal/adapters/out/postgres/templaterepo"

	"gorm.io/gorm"
)

// Models lists every table the service owns or reads, in dependency order.
func Models() []any {
	return []any{
		&staffrepo.StaffMemberDTO{},
		&templaterepo.TemplateItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&checklistrepo.ChecklistItemDTO{},
		&notificationrepo.NotificationDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
