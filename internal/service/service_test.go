package service

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/courtbook/courtbook/internal/model"
	"github.com/courtbook/courtbook/internal/repository"
	"github.com/courtbook/courtbook/internal/schedule"
)

type fixture struct {
	db       *gorm.DB
	slots    *repository.GormSlotRepository
	courts   *repository.GormCourtRepository
	bookings *repository.GormBookingRepository
	users    *repository.GormUserRepository
	events   *repository.GormEventRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := model.AutoMigrate(db); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}

	return &fixture{
		db:       db,
		slots:    repository.NewGormSlotRepository(db),
		courts:   repository.NewGormCourtRepository(db),
		bookings: repository.NewGormBookingRepository(db),
		users:    repository.NewGormUserRepository(db),
		events:   repository.NewGormEventRepository(db),
	}
}

func (f *fixture) bookingService() *BookingService {
	return NewBookingService(f.slots, f.courts, f.bookings, f.events, nil)
}

func (f *fixture) addCourt(t *testing.T) model.Court {
	t.Helper()

	court := model.Court{
		ID:           uuid.New(),
		Name:         "Downtown Basketball Court",
		Location:     "123 Main St, Downtown",
		SportType:    "Basketball",
		PricePerHour: 45,
	}
	if err := f.db.Create(&court).Error; err != nil {
		t.Fatalf("create court: %v", err)
	}
	return court
}

func (f *fixture) addSlots(t *testing.T, courtID uuid.UUID, date string) []model.Slot {
	t.Helper()

	slots := make([]model.Slot, 0, len(schedule.TimeLabels))
	for _, label := range schedule.TimeLabels {
		slots = append(slots, model.Slot{
			ID:      uuid.New(),
			CourtID: courtID,
			Date:    date,
			Time:    label,
		})
	}
	if err := f.db.Create(&slots).Error; err != nil {
		t.Fatalf("create slots: %v", err)
	}
	return slots
}

func (f *fixture) addUser(t *testing.T, email string) model.User {
	t.Helper()

	user := model.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: "x",
		Name:         "Test User",
	}
	if err := f.db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func pickSlot(t *testing.T, slots []model.Slot, label string) model.Slot {
	t.Helper()
	for _, s := range slots {
		if s.Time == label {
			return s
		}
	}
	t.Fatalf("no slot with label %q", label)
	return model.Slot{}
}
