// Package metrics declares the Prometheus collectors exposed on /metrics.
// Collectors are registered on the default registry via promauto, so importing
// a collector is enough to have it scraped.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AssignmentsTotal counts drone-to-order assignment attempts by outcome.
	AssignmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dispatch_assignments_total",
			Help: "Total number of drone assignment attempts",
		},
		[]string{"outcome"},
	)

	// ActiveFlights tracks the number of flight simulations currently running.
	ActiveFlights = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dispatch_active_flights",
			Help: "Number of drone flight simulations currently in progress",
		},
	)

	// FlightsStartedTotal counts launched flight simulations by direction.
	FlightsStartedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dispatch_flights_started_total",
			Help: "Total number of flight simulations launched",
		},
		[]string{"direction"},
	)

	// MovementTicksTotal counts processed movement ticks by result.
	MovementTicksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dispatch_movement_ticks_total",
			Help: "Total number of drone movement ticks processed",
		},
		[]string{"result"},
	)
)
