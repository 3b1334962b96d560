package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

type Order struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SellerID uuid.UUID `gorm:"type:uuid;not null;index" json:"seller_id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Total    float64   `gorm:"type:numeric(10,2);not null" json:"total"`
	Status   string    `gorm:"size:20;not null;default:'pending'" json:"status"`

	Items  []OrderItem `gorm:"foreignkey:OrderID" json:"items"`
	Seller User        `gorm:"foreignkey:SellerID" json:"seller,omitempty"`
	User   User        `gorm:"foreignkey:UserID" json:"user,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrderItem snapshots the product name and price at purchase time so later
// product edits don't rewrite order history.
type OrderItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null" json:"product_id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Price     float64   `gorm:"type:numeric(10,2);not null" json:"price"`
	Quantity  int       `gorm:"not null" json:"quantity"`
}
