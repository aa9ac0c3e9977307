package samples

import (
	"context"

	"github.com/roach88/scenario"
)

// Temperatures pairs the two readings threaded between steps.
type Temperatures struct {
	Inside  int
	Outside int
}

var parametersAndResults = Sample{
	Name:   "parameters",
	Title:  "when the weather is too cold",
	Seeded: true,
	Build: func(r *scenario.Runner, p Params) {
		r.Given("I want to go play outside",
			scenario.AsyncFuncOf(func(_ context.Context, inside scenario.Ensure[int]) (Temperatures, error) {
				v, err := inside.Value()
				if err != nil {
					return Temperatures{}, err
				}
				return Temperatures{Inside: v, Outside: p.Outside}, nil
			})).
			When("the temperature difference is great",
				scenario.AsyncFuncOf(func(_ context.Context, t scenario.Ensure[Temperatures]) (int, error) {
					v, err := t.Value()
					if err != nil {
						return 0, err
					}
					return v.Inside - v.Outside, nil
				})).
			Then("I stay inside if the temperature difference is greater than 20C",
				scenario.AsyncActionOf(func(_ context.Context, diff scenario.Ensure[int]) error {
					v, err := diff.Value()
					if err != nil {
						return err
					}
					return stayInside(v, 0)
				}))
	},
}
