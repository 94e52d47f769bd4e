package staffrepo

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleStaff = "staff"
	RoleAdmin = "admin"
)

// StaffMemberDTO is the staff_members row, maintained by the account service.
type StaffMemberDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"type:varchar(255);not null"`
	Email    string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Role     string    `gorm:"type:varchar(16);not null;index"`
	IsActive bool      `gorm:"not null"`
}

func (StaffMemberDTO) TableName() string {
	return "staff_members"
}

type GormStaffDirectory struct {
	db *gorm.DB
}

func NewGormStaffDirectory(db *gorm.DB) *GormStaffDirectory {
	return &GormStaffDirectory{db: db}
}

// Administrators returns active administrators ordered by id.
func (d *GormStaffDirectory) Administrators(ctx context.Context) ([]kernel.UUID, error) {
	var ids []uuid.UUID
	if err := d.db.WithContext(ctx).
		Model(&StaffMemberDTO{}).
		Where("role = ? AND is_active", RoleAdmin).
		Order("id").
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}

	out := make([]kernel.UUID, 0, len(ids))
	for _, raw := range ids {
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

// IsStaff accepts active staff members and administrators.
func (d *GormStaffDirectory) IsStaff(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var count int64
	if err := d.db.WithContext(ctx).
		Model(&StaffMemberDTO{}).
		Where("id = ? AND is_active AND role IN ?", id.Bytes(), []string{RoleStaff, RoleAdmin}).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
