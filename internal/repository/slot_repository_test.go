package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/courtbook/courtbook/internal/model"
	"github.com/courtbook/courtbook/internal/schedule"
)

func TestClaim_BooksFreeSlot(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormSlotRepository(db)
	court := seedCourt(t, db)
	slots := seedSlots(t, db, court.ID, "2026-01-05")
	target := slotByTime(t, slots, "10:00 AM")
	userID := uuid.New()

	claimed, err := repo.Claim(context.Background(), target.ID, userID)
	if err != nil {
		t.Fatalf("Claim: %v", err)
	}
	if !claimed.IsBooked {
		t.Fatalf("claimed slot not marked booked")
	}
	if claimed.BookedBy == nil || *claimed.BookedBy != userID {
		t.Fatalf("claimed slot owner = %v, want %s", claimed.BookedBy, userID)
	}

	var stored model.Slot
	if err := db.First(&stored, "id = ?", target.ID).Error; err != nil {
		t.Fatalf("load slot: %v", err)
	}
	if !stored.IsBooked || stored.BookedBy == nil || *stored.BookedBy != userID {
		t.Fatalf("store state not updated: booked=%v owner=%v", stored.IsBooked, stored.BookedBy)
	}
}

func TestClaim_AlreadyBooked_KeepsFirstOwner(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormSlotRepository(db)
	court := seedCourt(t, db)
	slots := seedSlots(t, db, court.ID, "2026-01-05")
	target := slotByTime(t, slots, "10:00 AM")

	first := uuid.New()
	second := uuid.New()

	if _, err := repo.Claim(context.Background(), target.ID, first); err != nil {
		t.Fatalf("first claim: %v", err)
	}

	_, err := repo.Claim(context.Background(), target.ID, second)
	if !errors.Is(err, ErrSlotAlreadyBooked) {
		t.Fatalf("second claim err = %v, want ErrSlotAlreadyBooked", err)
	}

	var stored model.Slot
	if err := db.First(&stored, "id = ?", target.ID).Error; err != nil {
		t.Fatalf("load slot: %v", err)
	}
	if stored.BookedBy == nil || *stored.BookedBy != first {
		t.Fatalf("owner = %v, want first claimer %s", stored.BookedBy, first)
	}
}

func TestClaim_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormSlotRepository(db)

	_, err := repo.Claim(context.Background(), uuid.New(), uuid.New())
	if !errors.Is(err, ErrSlotNotFound) {
		t.Fatalf("err = %v, want ErrSlotNotFound", err)
	}
}

func TestClaim_Exclusivity_ConcurrentClaimers(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormSlotRepository(db)
	court := seedCourt(t, db)
	slots := seedSlots(t, db, court.ID, "2026-01-05")
	target := slotByTime(t, slots, "10:00 AM")

	const claimers = 16

	var wg sync.WaitGroup
	errs := make([]error, claimers)
	users := make([]uuid.UUID, claimers)
	for i := 0; i < claimers; i++ {
		users[i] = uuid.New()
	}

	for i := 0; i < claimers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = repo.Claim(context.Background(), target.ID, users[i])
		}(i)
	}
	wg.Wait()

	winners := 0
	var winner uuid.UUID
	for i, err := range errs {
		switch {
		case err == nil:
			winners++
			winner = users[i]
		case errors.Is(err, ErrSlotAlreadyBooked):
		default:
			t.Fatalf("claimer %d unexpected err: %v", i, err)
		}
	}
	if winners != 1 {
		t.Fatalf("winners = %d, want exactly 1", winners)
	}

	var stored model.Slot
	if err := db.First(&stored, "id = ?", target.ID).Error; err != nil {
		t.Fatalf("load slot: %v", err)
	}
	if stored.BookedBy == nil || *stored.BookedBy != winner {
		t.Fatalf("owner = %v, want winner %s", stored.BookedBy, winner)
	}
}

func TestListAvailable_ChronologicalAndIdempotent(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormSlotRepository(db)
	court := seedCourt(t, db)
	seedSlots(t, db, court.ID, "2026-01-05")

	first, err := repo.ListAvailable(context.Background(), court.ID, "2026-01-05")
	if err != nil {
		t.Fatalf("ListAvailable: %v", err)
	}
	if len(first) != len(schedule.TimeLabels) {
		t.Fatalf("len = %d, want %d", len(first), len(schedule.TimeLabels))
	}
	for i, s := range first {
		if s.Time != schedule.TimeLabels[i] {
			t.Fatalf("slot %d label = %q, want %q", i, s.Time, schedule.TimeLabels[i])
		}
		if s.IsBooked {
			t.Fatalf("slot %q returned as booked", s.Time)
		}
	}

	second, err := repo.ListAvailable(context.Background(), court.ID, "2026-01-05")
	if err != nil {
		t.Fatalf("ListAvailable again: %v", err)
	}
	if len(second) != len(first) {
		t.Fatalf("repeated read len = %d, want %d", len(second), len(first))
	}
}

func TestListAvailable_ExcludesClaimedSlot(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormSlotRepository(db)
	court := seedCourt(t, db)
	slots := seedSlots(t, db, court.ID, "2026-01-05")
	target := slotByTime(t, slots, "10:00 AM")

	if _, err := repo.Claim(context.Background(), target.ID, uuid.New()); err != nil {
		t.Fatalf("claim: %v", err)
	}

	available, err := repo.ListAvailable(context.Background(), court.ID, "2026-01-05")
	if err != nil {
		t.Fatalf("ListAvailable: %v", err)
	}
	if len(available) != len(schedule.TimeLabels)-1 {
		t.Fatalf("len = %d, want %d", len(available), len(schedule.TimeLabels)-1)
	}
	for _, s := range available {
		if s.ID == target.ID {
			t.Fatalf("claimed slot still listed as available")
		}
	}
}

func TestListAvailable_UnknownCourtIsEmpty(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormSlotRepository(db)

	slots, err := repo.ListAvailable(context.Background(), uuid.New(), "2026-01-05")
	if err != nil {
		t.Fatalf("ListAvailable: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("len = %d, want 0", len(slots))
	}
}

func TestCreateBatch_KeepsExistingRows(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormSlotRepository(db)
	court := seedCourt(t, db)

	batch := make([]model.Slot, 0, len(schedule.TimeLabels))
	for _, label := range schedule.TimeLabels {
		batch = append(batch, model.Slot{CourtID: court.ID, Date: "2026-01-05", Time: label})
	}
	if err := repo.CreateBatch(context.Background(), batch); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}

	// Same court/date/labels again: the unique index swallows them.
	again := make([]model.Slot, 0, len(schedule.TimeLabels))
	for _, label := range schedule.TimeLabels {
		again = append(again, model.Slot{CourtID: court.ID, Date: "2026-01-05", Time: label})
	}
	if err := repo.CreateBatch(context.Background(), again); err != nil {
		t.Fatalf("CreateBatch again: %v", err)
	}

	var count int64
	if err := db.Model(&model.Slot{}).Where("court_id = ?", court.ID).Count(&count).Error; err != nil {
		t.Fatalf("count slots: %v", err)
	}
	if count != int64(len(schedule.TimeLabels)) {
		t.Fatalf("count = %d, want %d", count, len(schedule.TimeLabels))
	}
}
