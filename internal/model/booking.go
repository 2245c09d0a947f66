package model

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// bookings — created only as the result of a successful slot claim.
// Court name and price are denormalized for display.
type Booking struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	SlotID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"slotId"`

	CourtID   uuid.UUID `gorm:"type:uuid;not null;index" json:"courtId"`
	CourtName string    `gorm:"type:varchar(255);not null" json:"courtName"`

	Date  string  `gorm:"type:varchar(10);not null" json:"date"`
	Time  string  `gorm:"type:varchar(16);not null" json:"time"`
	Price float64 `gorm:"not null" json:"price"`

	Status      BookingStatus `gorm:"type:varchar(32);not null;index" json:"status"`
	CancelledAt *time.Time    `gorm:"type:timestamp with time zone" json:"cancelledAt,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"bookedAt"`
	UpdatedAt time.Time `gorm:"not null" json:"-"`

	User *User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Slot *Slot `gorm:"foreignKey:SlotID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}
