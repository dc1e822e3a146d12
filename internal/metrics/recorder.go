package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/common/expfmt"
)

// Executor label values.
const (
	Foreground = "foreground"
	Background = "background"
)

// Recorder counts executor runs. The zero value is not usable; use
// NewRecorder. A nil *Recorder ignores every call.
type Recorder struct {
	registry   *prometheus.Registry
	runs       *prometheus.CounterVec
	failures   *prometheus.CounterVec
	superseded prometheus.Counter
	duration   *prometheus.HistogramVec
}

// NewRecorder creates a recorder with its own registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fibworker",
			Name:      "runs_total",
			Help:      "Completed computations by executor.",
		}, []string{"executor"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fibworker",
			Name:      "failures_total",
			Help:      "Failed computations by executor.",
		}, []string{"executor"}),
		superseded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fibworker",
			Name:      "superseded_total",
			Help:      "Background computations discarded by a newer dispatch.",
		}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "fibworker",
			Name:      "run_duration_seconds",
			Help:      "Computation time reported by each executor.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{"executor"}),
	}
	r.registry.MustRegister(
		r.runs, r.failures, r.superseded, r.duration,
		collectors.NewGoCollector(),
	)
	return r
}

// ObserveRun records a completed computation.
func (r *Recorder) ObserveRun(executor string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.runs.WithLabelValues(executor).Inc()
	r.duration.WithLabelValues(executor).Observe(elapsed.Seconds())
}

// ObserveFailure records a failed computation.
func (r *Recorder) ObserveFailure(executor string) {
	if r == nil {
		return
	}
	r.failures.WithLabelValues(executor).Inc()
}

// ObserveSuperseded records a discarded background computation.
func (r *Recorder) ObserveSuperseded() {
	if r == nil {
		return
	}
	r.superseded.Inc()
}

// WriteText writes the fibworker_ families in the Prometheus text format.
func (r *Recorder) WriteText(w io.Writer) error {
	if r == nil {
		return nil
	}
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}
