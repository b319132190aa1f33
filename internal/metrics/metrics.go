// Package metrics defines the Prometheus counters of the checker service.
//
// Metrics are registered on an injected registry so that tests and the
// server can each own one.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "kirchhoff"

// Log results.
const (
	LogSent    = "sent"
	LogFailed  = "failed"
	LogDropped = "dropped"
)

type Metrics struct {
	// SubmissionsTotal counts graded submissions.
	// Labels: kind (currents, equations), outcome (exact, within_tolerance, mismatch, invalid)
	SubmissionsTotal *prometheus.CounterVec

	// SubmissionLogTotal counts submission log deliveries.
	// Labels: result (sent, failed, dropped)
	SubmissionLogTotal *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		SubmissionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "submissions_total",
				Help:      "Graded submissions by kind and outcome.",
			},
			[]string{"kind", "outcome"},
		),
		SubmissionLogTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "submission_log_total",
				Help:      "Submission log deliveries by result.",
			},
			[]string{"result"},
		),
	}
}

func (m *Metrics) RecordSubmission(kind, outcome string) {
	m.SubmissionsTotal.WithLabelValues(kind, outcome).Inc()
}

func (m *Metrics) RecordLog(result string) {
	m.SubmissionLogTotal.WithLabelValues(result).Inc()
}
