package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	validationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cdh_validations_total",
			Help: "Total number of topology validations by operation and result",
		},
		[]string{"operation", "result"},
	)

	validationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cdh_validation_duration_seconds",
			Help:    "Topology validation duration in seconds",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1},
		},
		[]string{"operation"},
	)
)

// ObserveValidation records one validation verdict.
func ObserveValidation(operation, result string, d time.Duration) {
	validationsTotal.WithLabelValues(operation, result).Inc()
	validationDuration.WithLabelValues(operation).Observe(d.Seconds())
}
