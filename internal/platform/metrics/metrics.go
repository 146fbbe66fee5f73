// Package metrics provides Prometheus metrics for the matching pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MatchDecisions counts matcher decisions.
	// Labels: decision (auto_linked, review, new_product, needs_category, skipped)
	MatchDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "catalog_linker",
			Subsystem: "matcher",
			Name:      "decisions_total",
			Help:      "Total number of matcher decisions by outcome",
		},
		[]string{"decision"},
	)

	// ClaimConflicts counts claim attempts lost to another worker.
	ClaimConflicts = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "catalog_linker",
			Subsystem: "matcher",
			Name:      "claim_conflicts_total",
			Help:      "Total number of item claims yielded to a concurrent worker",
		},
	)

	// Recomputations counts aggregate recomputations.
	// Labels: result (success, locked, error)
	Recomputations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "catalog_linker",
			Subsystem: "aggregator",
			Name:      "recomputations_total",
			Help:      "Total number of product aggregate recomputations",
		},
		[]string{"result"},
	)

	// Retries counts transient failures re-published for another attempt.
	Retries = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "catalog_linker",
			Subsystem: "handler",
			Name:      "retries_total",
			Help:      "Total number of messages re-published after a transient failure",
		},
	)

	// DeadLettered counts messages moved to the dead-letter routing key.
	DeadLettered = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "catalog_linker",
			Subsystem: "handler",
			Name:      "dead_lettered_total",
			Help:      "Total number of messages moved to the dead-letter queue",
		},
	)

	// UnmatchedBacklog tracks the current number of unmatched supplier items.
	UnmatchedBacklog = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "catalog_linker",
			Subsystem: "monitor",
			Name:      "unmatched_backlog",
			Help:      "Current number of supplier items waiting for matching",
		},
	)

	// ReviewEntriesExpired counts review entries expired by the sweep.
	ReviewEntriesExpired = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "catalog_linker",
			Subsystem: "review",
			Name:      "entries_expired_total",
			Help:      "Total number of review entries expired without admin action",
		},
	)
)
