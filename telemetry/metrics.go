package telemetry

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/roach88/scenario"
)

// Metrics is a scenario.Observer that records Prometheus metrics.
//
// Metrics exposed (namespace "scenario"):
//   - steps_total (counter): finished steps. Labels: category, status.
//   - step_duration_seconds (histogram): step duration. Labels: category.
//   - runs_total (counter): finished playbacks. Labels: status.
//
// Thread-safety: Metrics is safe for concurrent use by several runners.
type Metrics struct {
	steps    *prometheus.CounterVec
	duration *prometheus.HistogramVec
	runs     *prometheus.CounterVec
}

var _ scenario.Observer = (*Metrics)(nil)

// NewMetrics creates and registers the scenario metrics with registry.
// A nil registry uses prometheus.DefaultRegisterer.
func NewMetrics(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &Metrics{
		steps: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "scenario",
			Name:      "steps_total",
			Help:      "Number of finished scenario steps",
		}, []string{"category", "status"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "scenario",
			Name:      "step_duration_seconds",
			Help:      "Duration of scenario steps in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"category"}),
		runs: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "scenario",
			Name:      "runs_total",
			Help:      "Number of finished scenario playbacks",
		}, []string{"status"}),
	}
}

// StepStarted implements scenario.Observer.
func (m *Metrics) StepStarted(ctx context.Context, _ scenario.StepEvent) context.Context {
	return ctx
}

// StepFinished implements scenario.Observer.
func (m *Metrics) StepFinished(_ context.Context, ev scenario.StepEvent) {
	category := ev.Category.String()
	m.steps.WithLabelValues(category, string(ev.Status)).Inc()
	m.duration.WithLabelValues(category).Observe(ev.Duration.Seconds())
}

// ScenarioFinished implements scenario.Observer.
func (m *Metrics) ScenarioFinished(_ context.Context, sum scenario.Summary) {
	m.runs.WithLabelValues(string(sum.Status)).Inc()
}
