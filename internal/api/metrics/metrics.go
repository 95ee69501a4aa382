// Package metrics defines all custom Prometheus metrics for the portal
// API. It is the single source of truth for metric names, labels, and
// help strings; metrics register themselves with the default registry at
// init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// AuthAttemptsTotal counts identity operations by outcome.
// Labels:
//   - operation: "register", "login", "simulate_login", "logout"
//   - result: "success" or the failure reason (e.g. "weak_password")
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of identity provider operations, by outcome.",
	},
	[]string{"operation", "result"},
)

// SessionsActive tracks whether the session slot is occupied (0 or 1 per
// instance).
var SessionsActive = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "sessions_active",
		Help:      "Whether a session currently occupies the session slot.",
	},
)

// GuardDecisionsTotal counts route guard evaluations.
// Label:
//   - outcome: "authorized", "redirect_login", "redirect_role_home"
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Total number of route guard decisions, by outcome.",
	},
	[]string{"outcome"},
)

// SessionCorruptionTotal counts persisted sessions that failed to decode
// and were silently treated as absent.
var SessionCorruptionTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_corruption_total",
		Help:      "Total number of unreadable persisted sessions recovered as logged-out.",
	},
)

// AuditQueueDepth tracks pending audit events per dispatcher worker.
// Label:
//   - worker_id: numeric worker index ("0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// AuditEventsDroppedTotal counts audit events discarded because their
// worker buffer was full at publish time.
var AuditEventsDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_dropped_total",
		Help:      "Total number of audit events dropped due to a full worker buffer.",
	},
)

// AuditProcessingDuration measures how long recording a single audit
// event takes.
var AuditProcessingDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "audit_processing_duration_seconds",
		Help:      "Duration of audit event recording from dequeue to persistence.",
		Buckets:   prometheus.DefBuckets,
	},
)
