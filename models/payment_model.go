package models

import (
	"time"

	"github.com/google/uuid"
)

// Payment is the immutable receipt of a tour payment. The unique index on
// TourRequestID enforces at most one receipt per request at the storage
// layer, on top of the engine's state guard.
type Payment struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	TourRequestID uuid.UUID `gorm:"type:uuid;not null;unique" json:"tour_request_id"`
	CardNumber    string    `gorm:"size:20;not null" json:"card_number"`
	CardName      string    `gorm:"size:255;not null" json:"card_name"`
	Expiry        string    `gorm:"size:10;not null" json:"expiry"`
	CVV           string    `gorm:"size:4;not null" json:"-"`
	Amount        float64   `gorm:"type:numeric(10,2);not null" json:"amount"`

	TourRequest TourRequest `gorm:"foreignkey:TourRequestID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
