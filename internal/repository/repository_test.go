package repository

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/courtbook/courtbook/internal/model"
	"github.com/courtbook/courtbook/internal/schedule"
)

// openTestDB returns an in-memory sqlite database limited to a single
// connection, so concurrent claims serialize the way a shared server
// database would.
func openTestDB(t *testing.T) *gorm.DB {
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
	return db
}

func seedCourt(t *testing.T, db *gorm.DB) model.Court {
	t.Helper()

	court := model.Court{
		ID:           uuid.New(),
		Name:         "Downtown Basketball Court",
		Location:     "123 Main St, Downtown",
		SportType:    "Basketball",
		PricePerHour: 45,
	}
	if err := db.Create(&court).Error; err != nil {
		t.Fatalf("seed court: %v", err)
	}
	return court
}

func seedSlots(t *testing.T, db *gorm.DB, courtID uuid.UUID, date string) []model.Slot {
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
	if err := db.Create(&slots).Error; err != nil {
		t.Fatalf("seed slots: %v", err)
	}
	return slots
}

func slotByTime(t *testing.T, slots []model.Slot, label string) model.Slot {
	t.Helper()
	for _, s := range slots {
		if s.Time == label {
			return s
		}
	}
	t.Fatalf("no slot with label %q", label)
	return model.Slot{}
}
