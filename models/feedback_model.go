package models

import (
	"time"

	"github.com/google/uuid"
)

type Feedback struct {
	ID       uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SellerID uuid.UUID  `gorm:"type:uuid;not null;index" json:"seller_id"`
	UserID   *uuid.UUID `gorm:"type:uuid" json:"user_id,omitempty"`
	Rating   int        `gorm:"not null" json:"rating"`
	Comment  *string    `gorm:"type:text" json:"comment,omitempty"`

	User *User `gorm:"foreignkey:UserID" json:"user,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
