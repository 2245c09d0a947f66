package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "courtbook_bookings_total",
			Help: "Booking attempts by outcome",
		},
		[]string{"outcome"},
	)

	// Lost claim races are normal operation, tracked separately from faults.
	ClaimConflictsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "courtbook_claim_conflicts_total",
			Help: "Claims that lost the conditional-update race",
		},
	)

	CancellationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "courtbook_cancellations_total",
			Help: "User-initiated booking cancellations",
		},
	)

	SlotsProvisioned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "courtbook_slots_provisioned_total",
			Help: "Slots created by provisioning",
		},
	)

	UserRegistrations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "courtbook_user_registrations_total",
			Help: "Registered users",
		},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "courtbook_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "status"},
	)
)
