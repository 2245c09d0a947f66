package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/courtbook/courtbook/internal/model"
)

var (
	ErrBookingNotFound  = errors.New("booking not found")
	ErrBookingNotOwned  = errors.New("booking belongs to another user")
	ErrBookingFinalized = errors.New("booking is already cancelled")
)

type BookingRepository interface {
	// Create a booking record. Only called after a successful slot claim.
	Create(ctx context.Context, booking *model.Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Booking, error)
	// The user's booking history, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Booking, error)
	// Flip an owned, confirmed booking to cancelled. The underlying slot
	// is deliberately left untouched.
	Cancel(ctx context.Context, bookingID, userID uuid.UUID, at time.Time) (*model.Booking, error)
}

type GormBookingRepository struct {
	db *gorm.DB
}

func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

func (r *GormBookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *GormBookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	var b model.Booking
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *GormBookingRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Booking, error) {
	var bookings []model.Booking
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *GormBookingRepository) Cancel(ctx context.Context, bookingID, userID uuid.UUID, at time.Time) (*model.Booking, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Booking{}).
		Where("id = ? AND user_id = ? AND status = ?", bookingID, userID, model.BookingStatusConfirmed).
		Updates(map[string]any{
			"status":       model.BookingStatusCancelled,
			"cancelled_at": at,
		})
	if res.Error != nil {
		return nil, res.Error
	}

	if res.RowsAffected == 0 {
		b, err := r.GetByID(ctx, bookingID)
		if err != nil {
			return nil, err
		}
		if b.UserID != userID {
			return nil, ErrBookingNotOwned
		}
		return nil, ErrBookingFinalized
	}

	return r.GetByID(ctx, bookingID)
}
