package samples

import (
	"context"

	"github.com/roach88/scenario"
)

var basics = Sample{
	Name:  "basics",
	Title: "when the weather is too cold",
	Build: func(r *scenario.Runner, p Params) {
		var inside, outside int

		r.Given("I want to go play outside", scenario.Action(func() { inside = p.Inside })).
			When("the temperature is below 0C", scenario.Action(func() { outside = p.Outside })).
			Then("I stay inside if the temperature difference is greater than 20C",
				scenario.AsyncAction(func(context.Context) error {
					return stayInside(inside, outside)
				}))
	},
}
