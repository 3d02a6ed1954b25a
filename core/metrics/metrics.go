// Package metrics holds the Prometheus collectors of the card-timers service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SwipesTotal counts reconciled swipes by outcome ("applied", "duplicate").
	SwipesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cardtimers_swipes_total",
			Help: "Total swipe events reconciled",
		},
		[]string{"outcome"},
	)

	// MessagesIgnored counts feed messages dropped before reconciliation.
	MessagesIgnored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cardtimers_messages_ignored_total",
			Help: "Total feed messages ignored",
		},
		[]string{"reason"}, // "channel", "author", "no_match"
	)

	StoreErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cardtimers_store_errors_total",
			Help: "Total state store failures",
		},
		[]string{"op"},
	)

	ResetsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cardtimers_resets_total",
			Help: "Total reset epochs written",
		},
	)

	NextReset = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cardtimers_next_reset_timestamp_seconds",
			Help: "Unix time of the next scheduled reset",
		},
	)
)
