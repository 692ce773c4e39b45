// Package metrics holds the Prometheus instruments of the service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Event kinds.
const (
	KindMessage = "message"
	KindModlog  = "modlog"
)

// Append outcomes.
const (
	OutcomeStored    = "stored"
	OutcomeDuplicate = "duplicate"
	OutcomeRejected  = "rejected"
	OutcomeFailed    = "failed"
)

// Escalation outcomes.
const (
	EscalationDelivered = "delivered"
	EscalationFailed    = "failed"
)

var (
	// eventsAppended counts append attempts.
	// Labels: kind (message, modlog), outcome (stored, duplicate, rejected, failed)
	eventsAppended = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bigsister",
		Subsystem: "events",
		Name:      "appended_total",
		Help:      "Event append attempts by kind and outcome",
	}, []string{"kind", "outcome"})

	// escalations counts fired escalations by delivery outcome.
	escalations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bigsister",
		Name:      "escalations_total",
		Help:      "Escalation notifications by delivery outcome",
	}, []string{"outcome"})

	// queryDuration measures query engine operations, store time included.
	queryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "bigsister",
		Subsystem: "query",
		Name:      "duration_seconds",
		Help:      "Query engine operation latency in seconds",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}, []string{"op"})
)

// RecordAppend counts one append attempt.
func RecordAppend(kind, outcome string) {
	eventsAppended.WithLabelValues(kind, outcome).Inc()
}

// RecordEscalation counts one fired escalation.
func RecordEscalation(outcome string) {
	escalations.WithLabelValues(outcome).Inc()
}

// ObserveQuery records the time elapsed since start for op.
func ObserveQuery(op string, start time.Time) {
	queryDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
