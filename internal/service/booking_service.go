package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/courtbook/courtbook/internal/logger"
	"github.com/courtbook/courtbook/internal/model"
	"github.com/courtbook/courtbook/internal/repository"
	"github.com/courtbook/courtbook/internal/schedule"
	"github.com/courtbook/courtbook/pkg/metrics"
	"github.com/courtbook/courtbook/pkg/mq"
)

// BookingService orchestrates slot lookup, the atomic claim and
// booking-record creation. It holds no locks of its own; correctness
// derives entirely from the slot repository's conditional update.
type BookingService struct {
	slots    repository.SlotRepository
	courts   repository.CourtRepository
	bookings repository.BookingRepository
	events   repository.EventRepository
	pub      *mq.Publisher // nil when messaging is disabled
	tracer   trace.Tracer
}

func NewBookingService(
	slots repository.SlotRepository,
	courts repository.CourtRepository,
	bookings repository.BookingRepository,
	events repository.EventRepository,
	pub *mq.Publisher,
) *BookingService {
	return &BookingService{
		slots:    slots,
		courts:   courts,
		bookings: bookings,
		events:   events,
		pub:      pub,
		tracer:   otel.Tracer("courtbook/booking"),
	}
}

// AvailableSlots returns the unbooked slots for a court/date pair,
// chronologically ordered. Read-only and safe to call unauthenticated.
// The result is a point-in-time view; it may be stale by the time a
// client claims a slot, which the claim itself resolves.
func (s *BookingService) AvailableSlots(ctx context.Context, courtID, date string) ([]model.Slot, error) {
	if courtID == "" || !schedule.ValidDate(date) {
		return nil, ErrInvalidInput
	}
	cid, err := uuid.Parse(courtID)
	if err != nil {
		return nil, ErrInvalidInput
	}

	slots, err := s.slots.ListAvailable(ctx, cid, date)
	if err != nil {
		logger.Log.Error("list available slots", "court_id", courtID, "date", date, "err", err)
		return nil, ErrStoreUnavailable
	}
	return slots, nil
}

// Courts returns the immutable court catalogue.
func (s *BookingService) Courts(ctx context.Context) ([]model.Court, error) {
	courts, err := s.courts.List(ctx)
	if err != nil {
		logger.Log.Error("list courts", "err", err)
		return nil, ErrStoreUnavailable
	}
	return courts, nil
}

// Book claims a slot for the authenticated user and records the booking.
// The conditional update inside Claim is the single serialization point:
// a failed claim leaves no state behind, and the booking record is only
// written after the claim has committed.
func (s *BookingService) Book(ctx context.Context, userID, slotID string) (*model.Booking, *model.Slot, error) {
	if userID == "" {
		return nil, nil, ErrUnauthenticated
	}
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, nil, ErrUnauthenticated
	}
	sid, err := uuid.Parse(slotID)
	if err != nil {
		return nil, nil, ErrInvalidInput
	}

	ctx, span := s.tracer.Start(ctx, "booking.Book",
		trace.WithAttributes(
			attribute.String("slot.id", slotID),
			attribute.String("user.id", userID),
		))
	defer span.End()

	slot, err := s.slots.Claim(ctx, sid, uid)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrSlotAlreadyBooked):
			// Lost race: normal outcome, not a fault.
			metrics.ClaimConflictsTotal.Inc()
			metrics.BookingsTotal.WithLabelValues("conflict").Inc()
			logger.Log.Debug("claim lost race", "slot_id", slotID, "user_id", userID)
			return nil, nil, ErrSlotUnavailable
		case errors.Is(err, repository.ErrSlotNotFound):
			metrics.BookingsTotal.WithLabelValues("not_found").Inc()
			return nil, nil, ErrSlotUnavailable
		default:
			metrics.BookingsTotal.WithLabelValues("error").Inc()
			logger.Log.Error("claim slot", "slot_id", slotID, "err", err)
			return nil, nil, ErrStoreUnavailable
		}
	}

	court, err := s.courts.GetByID(ctx, slot.CourtID)
	if err != nil {
		logger.Log.Error("load court after claim", "slot_id", slotID, "court_id", slot.CourtID, "err", err)
		return nil, nil, ErrStoreUnavailable
	}

	booking := &model.Booking{
		UserID:    uid,
		SlotID:    slot.ID,
		CourtID:   court.ID,
		CourtName: court.Name,
		Date:      slot.Date,
		Time:      slot.Time,
		Price:     court.PricePerHour,
		Status:    model.BookingStatusConfirmed,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		// The claim has committed; the slot stays booked and the gap is
		// surfaced loudly instead of silently unwinding slot state.
		logger.Log.Error("create booking after claim", "slot_id", slotID, "user_id", userID, "err", err)
		metrics.BookingsTotal.WithLabelValues("error").Inc()
		return nil, nil, ErrStoreUnavailable
	}

	metrics.BookingsTotal.WithLabelValues("confirmed").Inc()
	s.recordEvent(ctx, model.EventTypeBookingCreated, uid, booking)
	s.publish(ctx, "booking.created", map[string]any{
		"booking_id": booking.ID.String(),
		"user_id":    userID,
		"court_id":   court.ID.String(),
		"slot_id":    slot.ID.String(),
		"date":       slot.Date,
		"time":       slot.Time,
	})

	return booking, slot, nil
}

// Cancel flips a confirmed booking owned by the user to cancelled.
// The underlying slot is left booked: cancellation changes booking
// status only.
func (s *BookingService) Cancel(ctx context.Context, userID, bookingID string) (*model.Booking, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	bid, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, ErrInvalidInput
	}

	booking, err := s.bookings.Cancel(ctx, bid, uid, time.Now().UTC())
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrBookingNotFound):
			return nil, ErrBookingNotFound
		case errors.Is(err, repository.ErrBookingNotOwned):
			return nil, ErrForbidden
		case errors.Is(err, repository.ErrBookingFinalized):
			return nil, ErrAlreadyCancelled
		default:
			logger.Log.Error("cancel booking", "booking_id", bookingID, "err", err)
			return nil, ErrStoreUnavailable
		}
	}

	metrics.CancellationsTotal.Inc()
	s.recordEvent(ctx, model.EventTypeBookingCancelled, uid, booking)
	s.publish(ctx, "booking.cancelled", map[string]any{
		"booking_id": booking.ID.String(),
		"user_id":    userID,
	})

	return booking, nil
}

// UserBookings returns the user's booking history, newest first.
func (s *BookingService) UserBookings(ctx context.Context, userID string) ([]model.Booking, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	bookings, err := s.bookings.ListByUser(ctx, uid)
	if err != nil {
		logger.Log.Error("list user bookings", "user_id", userID, "err", err)
		return nil, ErrStoreUnavailable
	}
	return bookings, nil
}

func (s *BookingService) recordEvent(ctx context.Context, typ model.EventType, userID uuid.UUID, b *model.Booking) {
	details := map[string]any{
		"court_name": b.CourtName,
		"date":       b.Date,
		"time":       b.Time,
	}
	if err := s.events.Record(ctx, typ, &userID, &b.ID, details); err != nil {
		logger.Log.Warn("record audit event", "type", string(typ), "err", err)
	}
}

func (s *BookingService) publish(ctx context.Context, key string, payload map[string]any) {
	if s.pub == nil {
		return
	}
	if err := s.pub.PublishJSON(ctx, key, payload); err != nil {
		logger.Log.Warn("publish event", "key", key, "err", err)
	}
}
