package repository

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/courtbook/courtbook/internal/model"
)

type EventRepository interface {
	// Record appends an audit event. Details must be JSON-marshalable.
	Record(ctx context.Context, typ model.EventType, userID, bookingID *uuid.UUID, details any) error
	ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]model.Event, error)
}

type GormEventRepository struct {
	db *gorm.DB
}

func NewGormEventRepository(db *gorm.DB) *GormEventRepository {
	return &GormEventRepository{db: db}
}

func (r *GormEventRepository) Record(ctx context.Context, typ model.EventType, userID, bookingID *uuid.UUID, details any) error {
	var payload datatypes.JSON
	if details != nil {
		b, err := json.Marshal(details)
		if err != nil {
			return err
		}
		payload = datatypes.JSON(b)
	}

	ev := model.Event{
		ID:        uuid.New(),
		EventType: typ,
		UserID:    userID,
		BookingID: bookingID,
		Details:   payload,
	}
	return r.db.WithContext(ctx).Create(&ev).Error
}

func (r *GormEventRepository) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]model.Event, error) {
	var events []model.Event
	err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("created_at ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}
