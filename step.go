package scenario

import (
	"context"
	"strings"
)

// Step is one record of a scenario ledger. Steps are immutable; the runner
// stores a copy whose display text carries the rendered keyword.
type Step struct {
	category    Category
	description string
	display     string
	run         stepFunc
}

// newStep validates and builds a user step.
func newStep(category Category, description string, body Body) (Step, error) {
	if strings.TrimSpace(description) == "" {
		return Step{}, newInvalidArgument("please explain your intent by documenting your test")
	}
	if body.run == nil {
		return Step{}, newInvalidArgument("step body is required")
	}
	return Step{
		category:    category,
		description: description,
		display:     description,
		run:         body.run,
	}, nil
}

// scenarioStep builds the synthetic opening record. It produces the seed.
func scenarioStep(title string, seed any) Step {
	return Step{
		category:    CategoryScenario,
		description: title,
		display:     renderScenario(title),
		run: func(context.Context, any) (any, error) {
			return seed, nil
		},
	}
}

// Category returns the step's category.
func (s Step) Category() Category { return s.category }

// Description returns the description as supplied or derived.
func (s Step) Description() string { return s.description }

// Display returns the transcript text, e.g. "GIVEN a counter" or
// "and it is incremented".
func (s Step) Display() string { return s.display }

func (s Step) withDisplay(display string) Step {
	s.display = display
	return s
}
