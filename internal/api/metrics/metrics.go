// Package metrics defines and registers all custom Prometheus metrics for the
// user management API. HTTP request metrics come from echoprometheus; the
// counters here cover authentication and the user lifecycle.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "usermgmt"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginAttemptsTotal counts login attempts.
// Labels:
//   - scope: "user" or "admin"
//   - result: "success", "unauthorized", "invalid" or "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by scope and result.",
	},
	[]string{"scope", "result"},
)

// SessionChecksTotal counts session gate decisions on protected routes.
// Labels:
//   - scope: "user" or "admin"
//   - result: "ok", "refreshed" or "rejected"
var SessionChecksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_checks_total",
		Help:      "Total number of session checks on protected routes.",
	},
	[]string{"scope", "result"},
)

// LogoutsTotal counts logouts by scope.
var LogoutsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logouts_total",
		Help:      "Total number of logouts, by scope.",
	},
	[]string{"scope"},
)

// ── User metrics ──────────────────────────────────────────────────────────────

// UsersCreatedTotal counts newly created accounts.
// Label:
//   - source: "register" or "admin"
var UsersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of user accounts created, by source.",
	},
	[]string{"source"},
)

// UsersDeletedTotal counts accounts removed by admins.
var UsersDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_deleted_total",
		Help:      "Total number of user accounts deleted by admins.",
	},
)
