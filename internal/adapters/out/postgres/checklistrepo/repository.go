package checklistrepo

import (
	"context"

	"fulfillment/internal/core/domain/model/checklist"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormChecklistRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormChecklistRepository(db *gorm.DB, tracker aggregateTracker) *GormChecklistRepository {
	return &GormChecklistRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddAll inserts a whole checklist in one batch.
func (r *GormChecklistRepository) AddAll(ctx context.Context, items []*checklist.Item) error {
	if len(items) == 0 {
		return nil
	}

	dtos := make([]ChecklistItemDTO, 0, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(item))
	}

	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		return err
	}

	for _, item := range items {
		r.tracker.TrackAggregate(item.ID(), item)
	}
	return nil
}

// Update writes the completion columns of one item.
func (r *GormChecklistRepository) Update(ctx context.Context, item *checklist.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	result := r.db.WithContext(ctx).Model(&ChecklistItemDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"completed":    dto.Completed,
			"completed_at": dto.CompletedAt,
			"completed_by": dto.CompletedBy,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("checklist item", item.ID().String())
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

func (r *GormChecklistRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*checklist.Item, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ChecklistItemDTO
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("order_index").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	items := make([]*checklist.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
