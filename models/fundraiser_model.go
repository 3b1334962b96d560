package models

import (
	"time"

	"github.com/google/uuid"
)

type Fundraiser struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	Goal        float64   `gorm:"type:numeric(12,2);not null" json:"goal"`
	Raised      float64   `gorm:"type:numeric(12,2);not null;default:0" json:"raised"`
	CreatorID   uuid.UUID `gorm:"type:uuid;not null" json:"creator_id"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`

	Donations []Donation `gorm:"foreignkey:FundraiserID" json:"donations,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Donation struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	FundraiserID uuid.UUID `gorm:"type:uuid;not null;index" json:"fundraiser_id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	Amount       float64   `gorm:"type:numeric(12,2);not null" json:"amount"`

	CreatedAt time.Time `json:"created_at"`
}
