package model

import (
	"time"

	"github.com/google/uuid"
)

// slots — one row per court × date × hourly time label.
//
// IsBooked transitions false→true exactly once, through the conditional
// update in the slot repository. No code path sets it back to false:
// cancelling a booking changes the booking's status, not the slot.
type Slot struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	CourtID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_slots_court_date_time" json:"courtId"`

	// Calendar date in "2006-01-02" form. Opaque to the claim path,
	// only availability queries filter on it.
	Date string `gorm:"type:varchar(10);not null;uniqueIndex:idx_slots_court_date_time" json:"date"`
	// Hourly label from the fixed enumeration, e.g. "10:00 AM".
	Time string `gorm:"type:varchar(16);not null;uniqueIndex:idx_slots_court_date_time" json:"time"`

	IsBooked bool       `gorm:"not null;default:false;index" json:"isBooked"`
	BookedBy *uuid.UUID `gorm:"type:uuid" json:"bookedBy,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"-"`
	UpdatedAt time.Time `gorm:"not null" json:"-"`

	Court *Court `gorm:"foreignKey:CourtID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}
