package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	UserTypeNewbie     = "newbie"
	UserTypeVeteran    = "veteran"
	UserTypeLocalAdmin = "local_admin"
	UserTypeAdmin      = "admin"
	UserTypeLocalShop  = "local_shop"
	UserTypeRestaurant = "restaurant"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name     string    `gorm:"size:255;not null" json:"name"`
	Email    string    `gorm:"size:255;not null;unique" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	UserType string    `gorm:"size:20;not null;default:'newbie'" json:"user_type"`

	PlaceID *uuid.UUID `gorm:"type:uuid" json:"place_id"`
	Phone   *string    `gorm:"size:30" json:"phone,omitempty"`

	BusinessName        *string `gorm:"size:255" json:"business_name,omitempty"`
	BusinessDescription *string `gorm:"type:text" json:"business_description,omitempty"`
	BusinessAddress     *string `gorm:"size:255" json:"business_address,omitempty"`
	BusinessPhone       *string `gorm:"size:30" json:"business_phone,omitempty"`
	BusinessHours       *string `gorm:"size:255" json:"business_hours,omitempty"`

	Description       *string `gorm:"type:text" json:"description,omitempty"`
	ProfilePictureURL *string `gorm:"size:255" json:"profile_picture_url,omitempty"`
	IsActive          bool    `gorm:"default:true" json:"is_active"`

	Place *Place `gorm:"foreignkey:PlaceID" json:"place,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsBusiness reports whether the account sells products (shop or restaurant).
func (u *User) IsBusiness() bool {
	return u.UserType == UserTypeLocalShop || u.UserType == UserTypeRestaurant
}
