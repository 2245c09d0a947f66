package seed

import (
	"context"
	"fmt"

	"github.com/courtbook/courtbook/internal/logger"
	"github.com/courtbook/courtbook/internal/model"
	"github.com/courtbook/courtbook/internal/repository"
	"github.com/courtbook/courtbook/internal/schedule"
	"github.com/courtbook/courtbook/pkg/metrics"
)

// The court catalogue provisioned for a fresh installation.
var Courts = []model.Court{
	{Name: "Downtown Basketball Court", Location: "123 Main St, Downtown", SportType: "Basketball", PricePerHour: 45},
	{Name: "Elite Tennis Center", Location: "456 Oak Ave, Uptown", SportType: "Tennis", PricePerHour: 60},
	{Name: "Prime Soccer Turf", Location: "789 Pine Rd, Westside", SportType: "Soccer", PricePerHour: 80},
	{Name: "Ace Badminton Arena", Location: "321 Elm St, Eastside", SportType: "Badminton", PricePerHour: 35},
	{Name: "Pro Volleyball Arena", Location: "555 Beach Blvd, Coastal", SportType: "Volleyball", PricePerHour: 40},
	{Name: "Champion Cricket Ground", Location: "888 Stadium Road, Sports Complex", SportType: "Cricket", PricePerHour: 100},
	{Name: "Urban Squash Club", Location: "234 City Center, Midtown", SportType: "Squash", PricePerHour: 30},
	{Name: "Victory Hockey Turf", Location: "777 Sports Avenue, North District", SportType: "Hockey", PricePerHour: 70},
}

// Run provisions the court catalogue and one slot per court × hourly
// time label for the given date. Idempotent: courts already present are
// reused and existing (court, date, time) slots are kept.
func Run(ctx context.Context, courts repository.CourtRepository, slots repository.SlotRepository, date string) error {
	if !schedule.ValidDate(date) {
		return fmt.Errorf("seed: invalid date %q", date)
	}

	existing, err := courts.List(ctx)
	if err != nil {
		return fmt.Errorf("seed: list courts: %w", err)
	}

	if len(existing) == 0 {
		batch := make([]model.Court, len(Courts))
		copy(batch, Courts)
		if err := courts.CreateBatch(ctx, batch); err != nil {
			return fmt.Errorf("seed: create courts: %w", err)
		}
		existing = batch
		logger.Log.Info("seeded courts", "count", len(batch))
	}

	var slotBatch []model.Slot
	for _, c := range existing {
		for _, label := range schedule.TimeLabels {
			slotBatch = append(slotBatch, model.Slot{
				CourtID: c.ID,
				Date:    date,
				Time:    label,
			})
		}
	}
	if err := slots.CreateBatch(ctx, slotBatch); err != nil {
		return fmt.Errorf("seed: create slots: %w", err)
	}

	metrics.SlotsProvisioned.Add(float64(len(slotBatch)))
	logger.Log.Info("seeded slots", "date", date, "count", len(slotBatch))
	return nil
}
