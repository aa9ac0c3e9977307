package samples

import (
	"context"

	"github.com/roach88/scenario"
)

const (
	keyInside  = "temperatureInside"
	keyOutside = "temperatureOutside"
)

var executionMethods = Sample{
	Name:  "execution-methods",
	Title: "when the weather is too cold",
	Build: func(r *scenario.Runner, p Params) {
		r.GivenSteps(playOutside(p.Inside)).
			WhenSteps(temperatureBelowZero(p.Outside)).
			ThenSteps(stayInsideStep)
	},
}

func playOutside(inside int) func(*scenario.StepRunner) {
	return func(s *scenario.StepRunner) {
		s.Execute("I want to go play outside", scenario.Action(func() {
			s.SetContextData(keyInside, inside)
		}))
	}
}

func temperatureBelowZero(outside int) func(*scenario.StepRunner) {
	return func(s *scenario.StepRunner) {
		s.Execute("the temperature is below 0C", scenario.Action(func() {
			s.SetContextData(keyOutside, outside)
		}))
	}
}

func stayInsideStep(s *scenario.StepRunner) {
	s.Execute("I stay inside if the temperature difference is greater than 20C",
		scenario.AsyncAction(func(context.Context) error {
			return compareContext(s)
		}))
}

func compareContext(r scenario.ContextReader) error {
	inside, err := scenario.ContextValue[int](r, keyInside)
	if err != nil {
		return err
	}
	outside, err := scenario.ContextValue[int](r, keyOutside)
	if err != nil {
		return err
	}
	return stayInside(inside, outside)
}
