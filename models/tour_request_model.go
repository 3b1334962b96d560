package models

import (
	"time"

	"github.com/google/uuid"
)

// TourRequest is the negotiation between a newbie (tourist) and a veteran
// (guide) over a tour of a place. The Offers association is the authoritative
// append-only negotiation log; NewbieOffer and VeteranOffer cache the last
// log entry per party for display and are always re-derived from the log.
type TourRequest struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	NewbieID  uuid.UUID `gorm:"type:uuid;not null;index" json:"newbie_id"`
	VeteranID uuid.UUID `gorm:"type:uuid;not null;index" json:"veteran_id"`
	PlaceID   uuid.UUID `gorm:"type:uuid;not null" json:"place_id"`

	StartTime time.Time `gorm:"not null" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`

	EstimatePrice *float64 `gorm:"type:numeric(10,2)" json:"estimate_price,omitempty"`
	NewbieOffer   *float64 `gorm:"type:numeric(10,2)" json:"newbie_offer,omitempty"`
	VeteranOffer  *float64 `gorm:"type:numeric(10,2)" json:"veteran_offer,omitempty"`

	Status string `gorm:"size:20;not null;default:'requested'" json:"status"`

	Offers  []TourOffer `gorm:"foreignkey:TourRequestID" json:"offers"`
	Newbie  User        `gorm:"foreignkey:NewbieID" json:"newbie,omitempty"`
	Veteran User        `gorm:"foreignkey:VeteranID" json:"veteran,omitempty"`
	Place   Place       `gorm:"foreignkey:PlaceID" json:"place,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TourOffer is one entry of the negotiation log. Rows are inserted in
// negotiation order and never updated or deleted; the serial primary key
// keeps that order stable even when timestamps collide.
type TourOffer struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	TourRequestID uuid.UUID `gorm:"type:uuid;not null;index" json:"tour_request_id"`
	Who           string    `gorm:"size:10;not null" json:"who"`
	Amount        float64   `gorm:"type:numeric(10,2);not null" json:"amount"`
	At            time.Time `gorm:"not null" json:"at"`
}
