package models

import (
	"time"

	"github.com/google/uuid"
)

// Review is user-to-user (newbie reviewing a veteran, shop or restaurant).
// Reviewer name and picture are snapshotted so renames don't rewrite history.
type Review struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	FromID             uuid.UUID `gorm:"type:uuid;not null" json:"from_id"`
	ToID               uuid.UUID `gorm:"type:uuid;not null;index" json:"to_id"`
	FromName           *string   `gorm:"size:255" json:"from_name,omitempty"`
	FromProfilePicture *string   `gorm:"size:255" json:"from_profile_picture,omitempty"`
	Rating             int       `gorm:"not null" json:"rating"`
	Comment            *string   `gorm:"type:text" json:"comment,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
