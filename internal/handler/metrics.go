package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ordersPlaced = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "marketplace_orders",
			Subsystem: "orders",
			Name:      "placed_total",
			Help:      "Total number of successfully placed orders",
		},
	)

	ordersRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "marketplace_orders",
			Subsystem: "orders",
			Name:      "rejected_total",
			Help:      "Total number of rejected order placements by reason",
		},
		[]string{"reason"},
	)

	orderPlacementDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "marketplace_orders",
			Subsystem: "orders",
			Name:      "placement_duration_seconds",
			Help:      "Histogram of order placement durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	inventoryConflicts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "marketplace_orders",
			Subsystem: "orders",
			Name:      "inventory_conflicts_total",
			Help:      "Total number of placements rejected by the inventory floor check",
		},
	)

	statusTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "marketplace_orders",
			Subsystem: "orders",
			Name:      "status_transitions_total",
			Help:      "Total number of applied order status transitions",
		},
		[]string{"to"},
	)

	illegalTransitions = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "marketplace_orders",
			Subsystem: "orders",
			Name:      "illegal_transitions_total",
			Help:      "Total number of rejected order status transitions",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		ordersPlaced,
		ordersRejected,
		orderPlacementDuration,
		inventoryConflicts,
		statusTransitions,
		illegalTransitions,
	)
}
