// Package metrics holds the Prometheus collectors exported at /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "fitness_center"

// Outcome labels.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

var (
	repositoryOperations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "repository",
		Name:      "operations_total",
		Help:      "Repository operations, labeled by entity, operation and outcome.",
	}, []string{"entity", "operation", "outcome"})

	repositoryDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "repository",
		Name:      "operation_duration_seconds",
		Help:      "Time spent in a repository operation, including connection acquisition.",
		Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
	}, []string{"entity", "operation"})

	welcomeEmails = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "jobs",
		Name:      "welcome_emails_total",
		Help:      "Member welcome email jobs, labeled by outcome (sent, skipped, error).",
	}, []string{"outcome"})

	rateLimitHits = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "rate_limit_hits_total",
		Help:      "Requests rejected by the rate limiter, labeled by route.",
	}, []string{"route"})
)

func init() {
	prometheus.MustRegister(repositoryOperations, repositoryDuration, welcomeEmails, rateLimitHits)
}

// ObserveRepository records one repository operation that began at start.
//
// A nil err counts as success.
func ObserveRepository(entity, operation string, start time.Time, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}

	repositoryOperations.WithLabelValues(entity, operation, outcome).Inc()
	repositoryDuration.WithLabelValues(entity, operation).Observe(time.Since(start).Seconds())
}

// RecordWelcomeEmail counts a processed welcome email job.
func RecordWelcomeEmail(outcome string) {
	welcomeEmails.WithLabelValues(outcome).Inc()
}

// RecordRateLimitHit counts a request rejected by the rate limiter.
func RecordRateLimitHit(route string) {
	rateLimitHits.WithLabelValues(route).Inc()
}
