package telemetry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/scenario"
	"github.com/roach88/scenario/internal/testutil"
)

func TestMetrics_CountsStepsAndRuns(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)

	play := func(fail bool) {
		r, err := scenario.New("measured", scenario.NewRecorder(),
			scenario.WithObserver(metrics),
			scenario.WithClock(testutil.NewStepClock(10*time.Millisecond)),
		)
		require.NoError(t, err)
		r.Given("a", scenario.Action(func() {})).
			And("b", scenario.Action(func() {})).
			Then("c", scenario.AsyncAction(func(context.Context) error {
				if fail {
					return errors.New("nope")
				}
				return nil
			}))
		_ = r.Play(context.Background())
	}

	play(false)
	play(true)

	assert.Equal(t, 2.0, promtest.ToFloat64(metrics.steps.WithLabelValues("Scenario", "passed")))
	assert.Equal(t, 4.0, promtest.ToFloat64(metrics.steps.WithLabelValues("Given", "passed")))
	assert.Equal(t, 1.0, promtest.ToFloat64(metrics.steps.WithLabelValues("Then", "passed")))
	assert.Equal(t, 1.0, promtest.ToFloat64(metrics.steps.WithLabelValues("Then", "failed")))
	assert.Equal(t, 1.0, promtest.ToFloat64(metrics.runs.WithLabelValues("passed")))
	assert.Equal(t, 1.0, promtest.ToFloat64(metrics.runs.WithLabelValues("failed")))

	assert.Equal(t, 3, promtest.CollectAndCount(metrics.duration))
}

func TestMetrics_RegistersWithRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMetrics(reg)

	assert.Panics(t, func() { NewMetrics(reg) }, "duplicate registration")
}
