// Package metrics provides Prometheus metrics for the Wayfarer service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MutationsTotal tracks itinerary mutations by operation and status
	MutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wayfarer",
			Subsystem: "itinerary",
			Name:      "mutations_total",
			Help:      "Total number of itinerary mutations by operation and status",
		},
		[]string{"operation", "status"},
	)

	// GeocodeResultsTotal tracks geocoding results by the provider tier that answered
	GeocodeResultsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wayfarer",
			Subsystem: "geocode",
			Name:      "results_total",
			Help:      "Total number of geocoding results by answering provider tier",
		},
		[]string{"source"},
	)

	// ReconciliationsTotal tracks cost reconciliations by status
	ReconciliationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wayfarer",
			Subsystem: "costs",
			Name:      "reconciliations_total",
			Help:      "Total number of cost reconciliations by status",
		},
		[]string{"status"},
	)

	// OrphanedCostItems tracks cost items retained with unresolvable destinations
	OrphanedCostItems = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "wayfarer",
			Subsystem: "costs",
			Name:      "orphaned_items_total",
			Help:      "Total number of cost items flagged as orphaned",
		},
	)

	// AssistantTurnsTotal tracks conversational turns by outcome
	AssistantTurnsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wayfarer",
			Subsystem: "assistant",
			Name:      "turns_total",
			Help:      "Total number of assistant turns by outcome",
		},
		[]string{"status"},
	)

	// TripStoreRequestDuration tracks outbound trip store request duration
	TripStoreRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "wayfarer",
			Subsystem: "tripstore",
			Name:      "request_duration_seconds",
			Help:      "Duration of outbound trip store requests in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method"},
	)
)
