// Package metrics defines and registers all custom Prometheus metrics for the
// bank client API. It is the single source of truth for metric names, labels,
// and help strings. Registration happens at package init via promauto; the
// router additionally exposes the standard HTTP metrics through the
// echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bankclient"

// ── Client directory metrics ──────────────────────────────────────────────────

// ClientsCreatedTotal counts successfully created client records.
// Label:
//   - account_type: the free-form account category (e.g. "Savings")
var ClientsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "clients_created_total",
		Help:      "Total number of client records created, by account type.",
	},
	[]string{"account_type"},
)

// ClientsDeletedTotal counts soft deletions (records flipped to inactive).
var ClientsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "clients_deleted_total",
		Help:      "Total number of client records soft-deleted.",
	},
)

// ClientSearchesTotal counts accepted search requests (non-empty term).
var ClientSearchesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "client_searches_total",
		Help:      "Total number of client search queries executed.",
	},
)

// ── External directory metrics ────────────────────────────────────────────────

// ExternalRequestsTotal counts proxy calls to the external user directory.
// Labels:
//   - endpoint: "list" or "get"
//   - outcome: "ok", "not_found", or "error"
var ExternalRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "external_requests_total",
		Help:      "Total number of outbound calls to the external user directory.",
	},
	[]string{"endpoint", "outcome"},
)

// ExternalRequestDuration measures the latency of a single upstream call.
// Label:
//   - endpoint: "list" or "get"
var ExternalRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "external_request_duration_seconds",
		Help:      "Duration of outbound calls to the external user directory.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"endpoint"},
)
