package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DonationsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kindmeals_donations_created_total",
		Help: "Total number of live donations successfully created.",
	})

	DonationsAcceptedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kindmeals_donations_accepted_total",
		Help: "Total number of donations accepted by recipients.",
	})

	DonationsExpiredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kindmeals_donations_expired_total",
		Help: "Total number of live donations swept into the expired archive.",
	})

	VolunteerAssignmentsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kindmeals_volunteer_assignments_total",
		Help: "Total number of successful volunteer assignments.",
	})

	DeliveriesCompletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kindmeals_deliveries_completed_total",
		Help: "Total number of deliveries marked completed by volunteers.",
	})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kindmeals_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)

	ProfileCacheItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "kindmeals_profile_cache_items",
		Help: "Current number of profiles held in the auth profile cache.",
	})
)
