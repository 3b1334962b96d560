package models

import (
	"time"

	"github.com/google/uuid"
)

type Place struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"size:255;not null;uniqueIndex:idx_place_name_city_state" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Country     string    `gorm:"size:100;not null" json:"country"`
	State       string    `gorm:"size:100;not null;uniqueIndex:idx_place_name_city_state" json:"state"`
	City        string    `gorm:"size:100;not null;uniqueIndex:idx_place_name_city_state" json:"city"`
	Image       *string   `gorm:"size:512" json:"image,omitempty"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
