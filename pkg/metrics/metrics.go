package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Submission outcomes
const (
	OutcomeAccepted = "accepted"
	OutcomeFailed   = "failed"
)

// SubmissionMetrics records what happens to form submissions
type SubmissionMetrics interface {
	IncSubmission(kind, outcome string)
	ObserveInsert(kind string, d time.Duration)
}

type submissionMetrics struct {
	submissions     *prometheus.CounterVec
	insertDurations *prometheus.HistogramVec
}

// NewSubmissionMetrics registers submission metrics on registry
func NewSubmissionMetrics(registry prometheus.Registerer) SubmissionMetrics {
	return &submissionMetrics{
		submissions: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "submissions_total",
				Help: "The total number of form submissions by kind and outcome",
			},
			[]string{"kind", "outcome"},
		),
		insertDurations: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "store_insert_duration_seconds",
				Help:    "Latency of inserts against the external store",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"kind"},
		),
	}
}

func (m *submissionMetrics) IncSubmission(kind, outcome string) {
	m.submissions.WithLabelValues(kind, outcome).Inc()
}

func (m *submissionMetrics) ObserveInsert(kind string, d time.Duration) {
	m.insertDurations.WithLabelValues(kind).Observe(d.Seconds())
}

// HTTPMetrics records request counts and latencies
type HTTPMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewHTTPMetrics registers HTTP metrics on registry
func NewHTTPMetrics(registry prometheus.Registerer) *HTTPMetrics {
	return &HTTPMetrics{
		requests: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "The total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		duration: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latencies",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
}

// Observe records one finished request
func (m *HTTPMetrics) Observe(method, route, status string, d time.Duration) {
	m.requests.WithLabelValues(method, route, status).Inc()
	m.duration.WithLabelValues(method, route).Observe(d.Seconds())
}
