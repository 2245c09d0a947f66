package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/courtbook/courtbook/internal/model"
	"github.com/courtbook/courtbook/internal/schedule"
)

var (
	ErrSlotNotFound      = errors.New("slot not found")
	ErrSlotAlreadyBooked = errors.New("slot already booked")
)

type SlotRepository interface {
	// Unbooked slots for a court/date pair, chronologically by time label.
	ListAvailable(ctx context.Context, courtID uuid.UUID, date string) ([]model.Slot, error)
	// Find a slot by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Slot, error)
	// Bulk insert at provisioning time; existing (court, date, time) rows are kept.
	CreateBatch(ctx context.Context, slots []model.Slot) error
	// Claim atomically books a free slot for a user. The sole code path
	// that sets IsBooked.
	Claim(ctx context.Context, slotID, userID uuid.UUID) (*model.Slot, error)
}

type GormSlotRepository struct {
	db *gorm.DB
}

func NewGormSlotRepository(db *gorm.DB) *GormSlotRepository {
	return &GormSlotRepository{db: db}
}

func (r *GormSlotRepository) ListAvailable(ctx context.Context, courtID uuid.UUID, date string) ([]model.Slot, error) {
	var slots []model.Slot
	err := r.db.WithContext(ctx).
		Where("court_id = ?", courtID).
		Where("date = ?", date).
		Where("is_booked = ?", false).
		Find(&slots).Error
	if err != nil {
		return nil, err
	}

	// "10:00 AM" sorts before "6:00 AM" lexically; order by label rank instead.
	schedule.SortChronological(slots, func(s model.Slot) string { return s.Time })

	return slots, nil
}

func (r *GormSlotRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Slot, error) {
	var slot model.Slot
	if err := r.db.WithContext(ctx).First(&slot, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}
	return &slot, nil
}

func (r *GormSlotRepository) CreateBatch(ctx context.Context, slots []model.Slot) error {
	if len(slots) == 0 {
		return nil
	}
	for i := range slots {
		if slots[i].ID == uuid.Nil {
			slots[i].ID = uuid.New()
		}
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(slots, 100).Error
}

// Claim performs the single conditional write that decides booking races:
// "set booked WHERE id = ? AND is_booked = false". Under concurrent claims
// on one slot, exactly one update matches a row; the rest see zero rows
// affected and get ErrSlotAlreadyBooked. A read-check-write sequence here
// would reintroduce the race.
func (r *GormSlotRepository) Claim(ctx context.Context, slotID, userID uuid.UUID) (*model.Slot, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Slot{}).
		Where("id = ? AND is_booked = ?", slotID, false).
		Updates(map[string]any{
			"is_booked": true,
			"booked_by": userID,
		})
	if res.Error != nil {
		return nil, res.Error
	}

	if res.RowsAffected == 0 {
		// Zero rows: either the slot does not exist or another claim won.
		var count int64
		if err := r.db.WithContext(ctx).Model(&model.Slot{}).
			Where("id = ?", slotID).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, ErrSlotNotFound
		}
		return nil, ErrSlotAlreadyBooked
	}

	var slot model.Slot
	if err := r.db.WithContext(ctx).First(&slot, "id = ?", slotID).Error; err != nil {
		return nil, err
	}
	return &slot, nil
}
