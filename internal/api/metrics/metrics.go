// Package metrics defines and registers all custom Prometheus metrics for
// the Bill Pie gateway. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "billpie"

// ── Payment flow metrics ─────────────────────────────────────────────────────

// PaymentsSubmittedTotal counts pay-bill attempts that passed all
// preconditions and reached the collaborator.
// Label:
//   - result: "success" or "collaborator_error"
var PaymentsSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_submitted_total",
		Help:      "Total number of payment submissions sent to the collaborator, by result.",
	},
	[]string{"result"},
)

// PaymentRejectionsTotal counts pay-bill attempts rejected before any
// collaborator call.
// Label:
//   - reason: "not_authenticated", "not_payable", "missing_field", "invalid_phone"
var PaymentRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payment_rejections_total",
		Help:      "Total number of payment submissions rejected by a precondition, by reason.",
	},
	[]string{"reason"},
)

// PaymentsDeletedTotal counts confirmed history deletions.
var PaymentsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_deleted_total",
		Help:      "Total number of payment records deleted from the collaborator.",
	},
)

// ── Collaborator metrics ─────────────────────────────────────────────────────

// CollaboratorRequestsTotal counts outbound requests to the catalog
// collaborator.
// Labels:
//   - operation: logical operation name (e.g. "list bills", "create payment")
//   - outcome: "ok", "http_error", or "transport_error"
var CollaboratorRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "collaborator_requests_total",
		Help:      "Total number of requests issued to the catalog collaborator, by operation and outcome.",
	},
	[]string{"operation", "outcome"},
)

// CollaboratorRequestDuration measures outbound request latency.
// Label:
//   - operation: logical operation name
var CollaboratorRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "collaborator_request_duration_seconds",
		Help:      "Duration of catalog collaborator requests.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"operation"},
)
