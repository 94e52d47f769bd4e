package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the orders row. Status is stored by name.
type OrderDTO struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Number        string         `gorm:"type:varchar(32);not null;uniqueIndex"`
	Status        string         `gorm:"type:varchar(32);not null;index"`
	TotalAmount   int64          `gorm:"type:bigint;not null"`
	AssignedTo    *uuid.UUID     `gorm:"type:uuid;index"`
	LastMilestone int            `gorm:"type:smallint;not null;default:0"`
	Version       int            `gorm:"type:int;not null;default:1"`
	CreatedAt     time.Time      `gorm:"not null"`
	UpdatedAt     time.Time      `gorm:"not null"`
	Items         []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is the order_items row. Position keeps the checkout order of
// the lines, which decides checklist order.
type OrderItemDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID           uuid.UUID `gorm:"type:uuid;not null;index"`
	Position          int       `gorm:"type:int;not null"`
	ProductKind       string    `gorm:"type:varchar(16);not null"`
	ProductID         int64     `gorm:"type:bigint;not null"`
	Quantity          int       `gorm:"type:int;not null"`
	UnitPrice         int64     `gorm:"type:bigint;not null"`
	ResourcesUploaded bool      `gorm:"not null;default:false"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	var assignedTo *uuid.UUID
	if id := o.AssignedTo(); id != nil {
		raw := id.Bytes()
		assignedTo = &raw
	}

	items := make([]OrderItemDTO, 0, len(o.Items()))
	for i, item := range o.Items() {
		items = append(items, OrderItemDTO{
			ID:                item.ID().Bytes(),
			OrderID:           o.ID().Bytes(),
			Position:          i,
			ProductKind:       string(item.Product().Kind()),
			ProductID:         item.Product().ID(),
			Quantity:          item.Quantity(),
			UnitPrice:         item.Price().Minor(),
			ResourcesUploaded: item.ResourcesUploaded(),
		})
	}

	return OrderDTO{
		ID:            o.ID().Bytes(),
		Number:        o.Number(),
		Status:        o.Status().String(),
		TotalAmount:   o.TotalAmount().Minor(),
		AssignedTo:    assignedTo,
		LastMilestone: o.LastMilestone(),
		Version:       o.Version(),
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
		Items:         items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var assignedTo *kernel.UUID
	if dto.AssignedTo != nil {
		staffID, staffErr := kernel.UUIDFromBytes((*dto.AssignedTo)[:])
		if staffErr != nil {
			return nil, staffErr
		}
		assignedTo = &staffID
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, dto.Number, status, total, assignedTo, items,
		dto.LastMilestone, dto.Version, dto.CreatedAt, dto.UpdatedAt)
}

func itemToDomain(dto OrderItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	product, err := kernel.NewProductRef(kernel.ProductKind(dto.ProductKind), dto.ProductID)
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}
	return order.RestoreItem(id, product, dto.Quantity, price, dto.ResourcesUploaded)
}
