package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pescart_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pescart_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// RecordEvents counts fishing record lifecycle transitions.
	RecordEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pescart_record_events_total",
		Help: "Fishing record lifecycle events by type",
	}, []string{"event"})

	// AuthEvents counts authentication outcomes.
	AuthEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pescart_auth_events_total",
		Help: "Authentication events by type and outcome",
	}, []string{"event", "outcome"})
)

// Record lifecycle event labels.
const (
	RecordSubmitted = "submitted"
	RecordVerified  = "verified"
	RecordRejected  = "rejected"
)

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}

// RecordAuth increments the auth event counter.
func RecordAuth(event string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	AuthEvents.WithLabelValues(event, outcome).Inc()
}
