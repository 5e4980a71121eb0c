// Package metrics defines and registers all custom Prometheus metrics
// for the taskboard API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time
// via promauto; the /metrics route exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "taskboard"

// SignupsTotal counts successfully registered identities.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of identities registered.",
	},
)

// SigninsTotal counts sign-in attempts.
// Label:
//   - result: "ok" or "failed"
var SigninsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signins_total",
		Help:      "Total number of sign-in attempts, by result.",
	},
	[]string{"result"},
)

// TasksCreatedTotal counts created tasks.
// Label:
//   - priority: "low", "medium", or "high"
var TasksCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_created_total",
		Help:      "Total number of tasks created, by priority.",
	},
	[]string{"priority"},
)

// PolicyDenialsTotal counts operations rejected by the access policy.
// Labels:
//   - resource: "task", "profile", or "role"
//   - reason: "not_owner" or "not_admin"
var PolicyDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "policy_denials_total",
		Help:      "Total number of operations denied by access policy checks.",
	},
	[]string{"resource", "reason"},
)

// RoleChangesTotal counts role assignment mutations through the admin surface.
// Label:
//   - role: the role written ("user" or "admin")
var RoleChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_changes_total",
		Help:      "Total number of role assignment updates, by new role.",
	},
	[]string{"role"},
)
