// Package metrics defines and registers all custom Prometheus metrics
// for the cleaning dashboard API. It is the single source of truth for
// metric names, labels, and help strings; everything registers with the
// default registry at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "cleaning"

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok", "invalid_credentials" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// JobsUpdatedTotal counts dashboard status changes on cleaning jobs.
// Label:
//   - status: the target status applied (e.g. "completed")
var JobsUpdatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "jobs_updated_total",
		Help:      "Total number of cleaning job status updates, by target status.",
	},
	[]string{"status"},
)

// SyncRunsTotal counts synchronization runs against Smoobu.
// Label:
//   - result: "ok", "locked" or "error"
var SyncRunsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sync_runs_total",
		Help:      "Total number of Smoobu synchronization runs, by result.",
	},
	[]string{"result"},
)

// SyncErrorsTotal counts per-property failures inside a run.
// Label:
//   - reason: "smoobu_fetch", "reservation_upsert", "job_upsert" or
//     "stale_link"
var SyncErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sync_errors_total",
		Help:      "Total number of per-property synchronization failures.",
	},
	[]string{"reason"},
)

// SyncDuration measures how long a full synchronization run takes.
var SyncDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "sync_duration_seconds",
		Help:      "Duration of a full Smoobu synchronization run.",
		Buckets:   prometheus.DefBuckets,
	},
)

// TokenRejectionsTotal counts bearer tokens rejected by the auth middleware.
// Label:
//   - reason: "missing" or "invalid"
var TokenRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_rejections_total",
		Help:      "Total number of rejected bearer tokens, by reason.",
	},
	[]string{"reason"},
)
