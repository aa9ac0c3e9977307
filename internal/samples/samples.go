// Package samples holds runnable example narratives. They double as
// documentation of the scenario API and back the gwt samples command.
package samples

import (
	"context"
	"fmt"
	"path"
	"slices"

	"github.com/roach88/scenario"
)

// Threshold is the temperature difference above which we stay inside.
const Threshold = 20

// Params are the temperatures every sample reasons about.
type Params struct {
	Inside  int
	Outside int
}

// DefaultParams are the temperatures of the original narratives.
var DefaultParams = Params{Inside: 19, Outside: -5}

// Sample is a named narrative.
type Sample struct {
	// Name identifies the sample on the command line.
	Name string

	// Title is the scenario title.
	Title string

	// Seeded samples receive Params.Inside as the runner seed.
	Seeded bool

	// Build appends the narrative's steps.
	Build func(r *scenario.Runner, p Params)
}

// All returns every sample in a stable order.
func All() []Sample {
	return []Sample{
		basics,
		parametersAndResults,
		executionMethods,
		wellNamedMethods,
	}
}

// Match returns the samples whose name matches the glob pattern. An empty
// pattern matches everything.
func Match(pattern string) ([]Sample, error) {
	if pattern == "" {
		return All(), nil
	}
	var out []Sample
	for _, s := range All() {
		ok, err := path.Match(pattern, s.Name)
		if err != nil {
			return nil, fmt.Errorf("bad filter %q: %w", pattern, err)
		}
		if ok {
			out = append(out, s)
		}
	}
	return out, nil
}

// Names lists the sample names.
func Names() []string {
	var names []string
	for _, s := range All() {
		names = append(names, s.Name)
	}
	slices.Sort(names)
	return names
}

// Play builds and plays the sample, writing its transcript to out. The
// report is returned even when a step fails.
func (s Sample) Play(ctx context.Context, out scenario.Output, p Params, opts ...scenario.Option) (scenario.Report, error) {
	collector := scenario.NewCollector()
	opts = append(opts, scenario.WithObserver(collector))
	if s.Seeded {
		opts = append(opts, scenario.WithSeed(p.Inside))
	}

	r, err := scenario.New(s.Title, out, opts...)
	if err != nil {
		return scenario.Report{}, err
	}
	s.Build(r, p)

	playErr := r.Play(ctx)
	report, _ := collector.Report()
	return report, playErr
}

// stayInside fails unless the difference is large enough.
func stayInside(inside, outside int) error {
	if diff := inside - outside; diff <= Threshold {
		return fmt.Errorf("temperature difference %d°C is not greater than %d°C", diff, Threshold)
	}
	return nil
}
