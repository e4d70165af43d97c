// Package metrics defines and registers the custom Prometheus metrics of the
// directory API. HTTP request metrics come from the echoprometheus middleware;
// this package only holds the domain counters.
//
// Metrics are registered with the default registry through promauto when the
// package is loaded.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "directory"

// ── Authentication ────────────────────────────────────────────────────────────

// AuthDecisionsTotal counts authentication gate outcomes.
// Labels:
//   - scope: "user" or "admin", depending on whether the route requires ADMIN
//   - result: "allowed", "unauthorized", "forbidden" or "error"
var AuthDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_decisions_total",
		Help:      "Total number of authentication gate decisions.",
	},
	[]string{"scope", "result"},
)

// SignInsTotal counts sign-in attempts.
// Label:
//   - result: "success", "invalid_credentials" or "error"
var SignInsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sign_ins_total",
		Help:      "Total number of sign-in attempts, by result.",
	},
	[]string{"result"},
)

// SignUpsTotal counts accounts created through sign up.
var SignUpsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sign_ups_total",
		Help:      "Total number of accounts created.",
	},
)

// ── Directory ────────────────────────────────────────────────────────────────

// WritesTotal counts successful writes to the directory.
// Labels:
//   - entity: "user", "company" or "service"
//   - operation: "create", "update" or "delete"
var WritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "writes_total",
		Help:      "Total number of successful directory writes.",
	},
	[]string{"entity", "operation"},
)
