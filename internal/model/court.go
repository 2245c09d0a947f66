package model

import (
	"time"

	"github.com/google/uuid"
)

// courts — immutable reference data, created at provisioning time.
// The booking flow never mutates a court.
type Court struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Name      string `gorm:"type:varchar(255);not null" json:"name"`
	Location  string `gorm:"type:varchar(255)" json:"location"`
	SportType string `gorm:"type:varchar(64);index" json:"sportType"`

	PricePerHour float64 `gorm:"not null" json:"pricePerHour"`

	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
}
