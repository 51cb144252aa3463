// Package metrics defines and registers all custom Prometheus metrics for the
// content API. It is the single source of truth for metric names, labels, and
// help strings. Metrics register with the default registry at import time via
// promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "content_api"

// AuthResolutionsTotal counts principal resolutions by the authentication
// middleware.
// Labels:
//   - mode: "json" (bearer token) or "html" (session cookie)
//   - result: "authenticated", "anonymous" or "rejected"
var AuthResolutionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_resolutions_total",
		Help:      "Total number of request principal resolutions, by mode and result.",
	},
	[]string{"mode", "result"},
)

// PolicyDecisionsTotal counts authorization decisions made by the policy
// engine consumers.
// Labels:
//   - resource: "post" or "user"
//   - action: "show", "create", "update", "destroy" or "index"
//   - result: "allow" or "deny"
var PolicyDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "policy_decisions_total",
		Help:      "Total number of policy authorization decisions.",
	},
	[]string{"resource", "action", "result"},
)

// ActivityQueueDepth tracks the number of audit entries waiting in each
// dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var ActivityQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "activity_queue_depth",
		Help:      "Current number of audit entries pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ActivityErrorsTotal counts audit entries that failed to persist.
var ActivityErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_errors_total",
		Help:      "Total number of audit entries that failed to persist.",
	},
)

// ActivityDroppedTotal counts audit entries discarded because the worker
// channel was full.
var ActivityDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_dropped_total",
		Help:      "Total number of audit entries dropped due to a full worker channel.",
	},
)
