package notificationrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// NotificationDTO is the notifications row. Recipients are a text[] column so
// "my notifications" is a single ANY() lookup.
type NotificationDTO struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Kind       string         `gorm:"type:varchar(32);not null"`
	OrderID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Recipients pq.StringArray `gorm:"type:text[];not null"`
	Message    string         `gorm:"type:text;not null"`
	Read       bool           `gorm:"not null;default:false"`
	CreatedAt  time.Time      `gorm:"not null;index"`
}

func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(n *notification.Notification) NotificationDTO {
	recipients := make(pq.StringArray, 0, len(n.Recipients()))
	for _, r := range n.Recipients() {
		recipients = append(recipients, r.String())
	}

	return NotificationDTO{
		ID:         n.ID().Bytes(),
		Kind:       string(n.Kind()),
		OrderID:    n.OrderID().Bytes(),
		Recipients: recipients,
		Message:    n.Message(),
		Read:       n.Read(),
		CreatedAt:  n.CreatedAt(),
	}
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	recipients := make([]kernel.UUID, 0, len(dto.Recipients))
	for _, raw := range dto.Recipients {
		r, parseErr := kernel.UUIDFromString(raw)
		if parseErr != nil {
			return nil, parseErr
		}
		recipients = append(recipients, r)
	}

	return notification.RestoreNotification(id, notification.Kind(dto.Kind), orderID, recipients,
		dto.Message, dto.Read, dto.CreatedAt)
}
