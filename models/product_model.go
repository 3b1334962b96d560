package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Product struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SellerID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"seller_id"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	Description *string        `gorm:"type:text" json:"description,omitempty"`
	Category    *string        `gorm:"size:100" json:"category,omitempty"`
	Price       float64        `gorm:"type:numeric(10,2);not null" json:"price"`
	Images      pq.StringArray `gorm:"type:text[]" json:"images"`
	Stock       int            `gorm:"not null;default:0" json:"stock"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`

	Seller User `gorm:"foreignkey:SellerID" json:"seller,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
