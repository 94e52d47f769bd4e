package notificationrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormNotificationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormNotificationRepository(db *gorm.DB, tracker aggregateTracker) *GormNotificationRepository {
	return &GormNotificationRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormNotificationRepository) AddAll(ctx context.Context, notifications []*notification.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	dtos := make([]NotificationDTO, 0, len(notifications))
	for _, n := range notifications {
		if err := n.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(n))
	}

	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		return err
	}

	for _, n := range notifications {
		r.tracker.TrackAggregate(n.ID(), n)
	}
	return nil
}

// Update writes the read flag, the only mutable column.
func (r *GormNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&NotificationDTO{}).
		Where("id = ?", n.ID().Bytes()).
		Update("read", n.Read())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("notification", n.ID().String())
	}

	r.tracker.TrackAggregate(n.ID(), n)
	return nil
}

func (r *GormNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto NotificationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("notification", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
