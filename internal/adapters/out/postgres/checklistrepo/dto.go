package checklistrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/checklist"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ChecklistItemDTO is the checklist_items row. The unique (order_id,
// order_index) pair stops a second generation of the same checklist.
type ChecklistItemDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_checklist_items_order_position,priority:1"`
	TemplateItemID *uuid.UUID `gorm:"type:uuid"`
	Description    string     `gorm:"type:varchar(500);not null"`
	Completed      bool       `gorm:"not null;default:false"`
	CompletedAt    *time.Time
	CompletedBy    *uuid.UUID `gorm:"type:uuid"`
	OrderIndex     int        `gorm:"type:int;not null;uniqueIndex:idx_checklist_items_order_position,priority:2"`
	IsOptional     bool       `gorm:"not null;default:false"`
}

func (ChecklistItemDTO) TableName() string {
	return "checklist_items"
}

func fromDomain(item *checklist.Item) ChecklistItemDTO {
	return ChecklistItemDTO{
		ID:             item.ID().Bytes(),
		OrderID:        item.OrderID().Bytes(),
		TemplateItemID: optionalID(item.TemplateItemID()),
		Description:    item.Description(),
		Completed:      item.Completed(),
		CompletedAt:    item.CompletedAt(),
		CompletedBy:    optionalID(item.CompletedBy()),
		OrderIndex:     item.OrderIndex(),
		IsOptional:     item.IsOptional(),
	}
}

func toDomain(dto ChecklistItemDTO) (*checklist.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	templateItemID, err := restoreID(dto.TemplateItemID)
	if err != nil {
		return nil, err
	}
	completedBy, err := restoreID(dto.CompletedBy)
	if err != nil {
		return nil, err
	}

	return checklist.RestoreItem(id, orderID, templateItemID, dto.Description, dto.OrderIndex,
		dto.IsOptional, dto.Completed, dto.CompletedAt, completedBy)
}

func optionalID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func restoreID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
