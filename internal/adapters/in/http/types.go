package http

import (
	"time"

	"github.com/google/uuid"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type NewOrderItem struct {
	ProductKind       string `json:"product_kind"`
	ProductID         int64  `json:"product_id"`
	Quantity          int    `json:"quantity"`
	UnitPrice         int64  `json:"unit_price"`
	ResourcesUploaded bool   `json:"resources_uploaded"`
}

type NewOrder struct {
	Items []NewOrderItem `json:"items"`
}

type OrderCreated struct {
	ID      uuid.UUID   `json:"id"`
	Number  string      `json:"number"`
	Status  string      `json:"status"`
	ItemIDs []uuid.UUID `json:"item_ids"`
}

type Assignment struct {
	StaffID uuid.UUID `json:"staff_id"`
}

type ChecklistGenerated struct {
	Items int `json:"items"`
}

type ChecklistToggle struct {
	ItemID    uuid.UUID `json:"item_id"`
	Completed bool      `json:"completed"`
}

type ChecklistToggles struct {
	Items []ChecklistToggle `json:"items"`
}

type Progress struct {
	TotalItems        int  `json:"total_items"`
	RequiredItems     int  `json:"required_items"`
	CompletedItems    int  `json:"completed_items"`
	CompletedRequired int  `json:"completed_required"`
	Percentage        int  `json:"percentage"`
	HasChecklist      bool `json:"has_checklist"`
}

type ProgressUpdate struct {
	Progress   Progress `json:"progress"`
	Milestones []int    `json:"milestones"`
	Completed  bool     `json:"completed"`
}

type ChecklistItem struct {
	ID          uuid.UUID  `json:"id"`
	Description string     `json:"description"`
	OrderIndex  int        `json:"order_index"`
	IsOptional  bool       `json:"is_optional"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CompletedBy *uuid.UUID `json:"completed_by,omitempty"`
}

type Checklist struct {
	OrderID     uuid.UUID       `json:"order_id"`
	OrderNumber string          `json:"order_number"`
	Status      string          `json:"status"`
	AssignedTo  *uuid.UUID      `json:"assigned_to,omitempty"`
	Items       []ChecklistItem `json:"items"`
	Progress    Progress        `json:"progress"`
}

type StaffOrder struct {
	ID             uuid.UUID `json:"id"`
	Number         string    `json:"number"`
	Status         string    `json:"status"`
	TotalItems     int       `json:"total_items"`
	CompletedItems int       `json:"completed_items"`
	Percentage     int       `json:"percentage"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type Notification struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	OrderID   uuid.UUID `json:"order_id"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

type Health struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}

// StaffParams carries the caller identity header.
type StaffParams struct {
	XStaffID uuid.UUID
}

type GetMyOrdersParams struct {
	XStaffID         uuid.UUID
	IncludeCompleted *bool
}

type ListNotificationsParams struct {
	XStaffID uuid.UUID
	Unread   *bool
	Limit    *int
}
