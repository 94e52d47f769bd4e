package templaterepo

import (
	"context"

	"fulfillment/internal/core/domain/model/checklist"
	"fulfillment/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormTemplateCatalog reads checklist templates outside any command
// transaction.
type GormTemplateCatalog struct {
	db *gorm.DB
}

func NewGormTemplateCatalog(db *gorm.DB) *GormTemplateCatalog {
	return &GormTemplateCatalog{db: db}
}

// ItemsFor returns the product's templates in catalog insertion order.
func (c *GormTemplateCatalog) ItemsFor(ctx context.Context, product kernel.ProductRef) ([]*checklist.TemplateItem, error) {
	if err := product.Validate(); err != nil {
		return nil, err
	}

	var dtos []TemplateItemDTO
	if err := c.db.WithContext(ctx).
		Where("product_kind = ? AND product_id = ?", string(product.Kind()), product.ID()).
		Order("created_at").
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	items := make([]*checklist.TemplateItem, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
