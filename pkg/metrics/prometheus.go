package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.service.Metrics using Prometheus.
type Recorder struct {
	evaluations *prometheus.CounterVec
	errorsTotal *prometheus.CounterVec
	lastScore   prometheus.Gauge
	latency     *prometheus.HistogramVec
}

// New creates a recorder registered on the default Prometheus registry.
func New() *Recorder {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith creates a recorder registered on the given registerer. Tests use
// this with a fresh registry to avoid duplicate-registration panics.
func NewWith(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		evaluations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "advisor_evaluations_total",
				Help: "Total number of scoring evaluations by component",
			},
			[]string{"component"},
		),
		errorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "advisor_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		lastScore: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "advisor_last_stress_score",
				Help: "Most recently computed stress score",
			},
		),
		latency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "advisor_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordEvaluation counts one evaluation of a scoring component.
func (r *Recorder) RecordEvaluation(component string) {
	r.evaluations.WithLabelValues(component).Inc()
}

// RecordStressScore records the most recent stress score.
func (r *Recorder) RecordStressScore(score int) {
	r.lastScore.Set(float64(score))
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
