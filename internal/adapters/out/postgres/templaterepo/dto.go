package templaterepo

import (
	"time"

	"fulfillment/internal/core/domain/model/checklist"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// TemplateItemDTO is the checklist_template_items row owned by the catalog.
type TemplateItemDTO struct {
	ID                       uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductKind              string    `gorm:"type:varchar(16);not null;index:idx_template_items_product,priority:1"`
	ProductID                int64     `gorm:"type:bigint;not null;index:idx_template_items_product,priority:2"`
	Name                     string    `gorm:"type:varchar(255);not null"`
	Description              string    `gorm:"type:text;not null;default:''"`
	OrderIndex               int       `gorm:"type:int;not null;default:0"`
	IsOptional               bool      `gorm:"not null;default:false"`
	EstimatedDurationMinutes int       `gorm:"type:int;not null;default:0"`
	CreatedAt                time.Time `gorm:"not null"`
}

func (TemplateItemDTO) TableName() string {
	return "checklist_template_items"
}

// FromDomain is exported for seeding the catalog from tools and tests.
func FromDomain(t *checklist.TemplateItem, createdAt time.Time) TemplateItemDTO {
	return TemplateItemDTO{
		ID:                       t.ID().Bytes(),
		ProductKind:              string(t.Product().Kind()),
		ProductID:                t.Product().ID(),
		Name:                     t.Name(),
		Description:              t.Description(),
		OrderIndex:               t.OrderIndex(),
		IsOptional:               t.IsOptional(),
		EstimatedDurationMinutes: int(t.EstimatedDuration() / time.Minute),
		CreatedAt:                createdAt,
	}
}

func toDomain(dto TemplateItemDTO) (*checklist.TemplateItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	product, err := kernel.NewProductRef(kernel.ProductKind(dto.ProductKind), dto.ProductID)
	if err != nil {
		return nil, err
	}
	return checklist.NewTemplateItem(id, product, dto.Name, dto.Description, dto.OrderIndex,
		dto.IsOptional, time.Duration(dto.EstimatedDurationMinutes)*time.Minute)
}
