package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SpinsStarted counts spins that passed all preconditions.
	SpinsStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "prizewheel_spins_started_total",
		Help: "Number of started spins",
	})

	// SpinsRefused counts spin calls that were no-ops, by reason.
	SpinsRefused = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "prizewheel_spins_refused_total",
		Help: "Number of refused spins",
	}, []string{"reason"})

	SpinsSettled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "prizewheel_spins_settled_total",
		Help: "Number of settled spins",
	})

	// PersistErrors counts failed store operations by document key.
	PersistErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "prizewheel_persist_errors_total",
		Help: "Number of failed persistence operations",
	}, []string{"key", "op"})

	Items = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "prizewheel_items",
		Help: "Number of registered wheel items",
	})
)

const (
	RefusedSpinning  = "spinning"
	RefusedTooFew    = "too_few_items"
	RefusedNoWeights = "no_weights"
)
