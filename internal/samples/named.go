package samples

import (
	"context"

	"github.com/roach88/scenario"
	"github.com/roach88/scenario/internal/narrate"
)

// namedHelpers carries Params to helpers that only take a StepRunner.
type namedHelpers struct {
	p Params
}

var wellNamedMethods = Sample{
	Name:  "well-named",
	Title: narrate.Sentence("WhenTheWeatherIsTooCold"),
	Build: func(r *scenario.Runner, p Params) {
		h := namedHelpers{p: p}
		r.GivenSteps(h.IWantToGoPlayOutside).
			WhenSteps(h.TheTemperatureIsBelow0c).
			ThenSteps(h.IStayInsideIfTheTemperatureDifferenceIsGreaterThan20c)
	},
}

func (h namedHelpers) IWantToGoPlayOutside(s *scenario.StepRunner) {
	s.ExecuteNamed(scenario.Action(func() {
		s.SetContextData(keyInside, h.p.Inside)
	}))
}

func (h namedHelpers) TheTemperatureIsBelow0c(s *scenario.StepRunner) {
	s.ExecuteNamed(scenario.Action(func() {
		s.SetContextData(keyOutside, h.p.Outside)
	}))
}

func (h namedHelpers) IStayInsideIfTheTemperatureDifferenceIsGreaterThan20c(s *scenario.StepRunner) {
	s.ExecuteNamed(scenario.AsyncAction(func(context.Context) error {
		return compareContext(s)
	}))
}
