// Package metrics defines and registers all custom Prometheus metrics for the
// agency platform API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "agency"

// ── Project lifecycle metrics ─────────────────────────────────────────────────

// ProjectsCreatedTotal counts new project requests.
// Label:
//   - type: the requested project type (e.g. "website", "ecommerce")
var ProjectsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "projects_created_total",
		Help:      "Total number of project requests created, by project type.",
	},
	[]string{"type"},
)

// TransitionsTotal counts lifecycle transitions that were persisted.
// Label:
//   - to: the status the project moved into (e.g. "approved", "rejected")
var TransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "project_transitions_total",
		Help:      "Total number of project status transitions applied, by target status.",
	},
	[]string{"to"},
)

// TransitionsRejectedTotal counts transitions refused by the state machine.
var TransitionsRejectedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "project_transitions_rejected_total",
		Help:      "Total number of project status transitions refused as invalid.",
	},
)

// ── View cache metrics ────────────────────────────────────────────────────────

// ViewCacheRequestsTotal counts project list view cache lookups.
// Labels:
//   - view: "owner" or "admin"
//   - result: "hit" or "miss"
var ViewCacheRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "view_cache_requests_total",
		Help:      "Total number of project view cache lookups, by view and result.",
	},
	[]string{"view", "result"},
)

// ViewCacheInvalidationsTotal counts explicit view invalidations.
// Label:
//   - view: "owner" or "admin"
var ViewCacheInvalidationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "view_cache_invalidations_total",
		Help:      "Total number of project view cache invalidations, by view.",
	},
	[]string{"view"},
)

// ── Side-channel metrics ──────────────────────────────────────────────────────

// NotificationsCreatedTotal counts notification rows written.
// Label:
//   - type: notification type ("info", "success", "destructive")
var NotificationsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_created_total",
		Help:      "Total number of notifications created, by type.",
	},
	[]string{"type"},
)

// NotificationsDroppedTotal counts notification inserts that failed and were
// discarded (the side-channel is best-effort).
var NotificationsDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_dropped_total",
		Help:      "Total number of notifications lost to insert failures.",
	},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts successful sign-ins.
// Label:
//   - method: "password" or "federated"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of successful logins, by method.",
	},
	[]string{"method"},
)

// UploadsTotal counts project file uploads persisted end-to-end.
var UploadsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "file_uploads_total",
		Help:      "Total number of project files uploaded and recorded.",
	},
)
