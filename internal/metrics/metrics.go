// Package metrics holds zecid's Prometheus instruments.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Record kinds used as the "kind" label.
const (
	KindPeople    = "people"
	KindCompanies = "companies"
)

// Metrics holds all Prometheus metrics for the generator.
type Metrics struct {
	RecordsGenerated *prometheus.CounterVec
	GenerationErrors *prometheus.CounterVec
	Duration         *prometheus.HistogramVec
}

// New creates the metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		RecordsGenerated: f.NewCounterVec(prometheus.CounterOpts{
			Name: "zecid_records_generated_total",
			Help: "Total number of synthetic records generated",
		}, []string{"kind"}),
		GenerationErrors: f.NewCounterVec(prometheus.CounterOpts{
			Name: "zecid_generation_errors_total",
			Help: "Total number of generation calls that failed",
		}, []string{"kind"}),
		Duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "zecid_generation_duration_seconds",
			Help:    "Time spent generating one batch",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 8),
		}, []string{"kind"}),
	}
}

// Observe records the outcome of one generation call.
func (m *Metrics) Observe(kind string, n int, elapsed time.Duration, err error) {
	m.Duration.WithLabelValues(kind).Observe(elapsed.Seconds())
	if err != nil {
		m.GenerationErrors.WithLabelValues(kind).Inc()
		return
	}
	m.RecordsGenerated.WithLabelValues(kind).Add(float64(n))
}
