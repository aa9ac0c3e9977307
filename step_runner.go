package scenario

// StepRunner appends steps of one category on behalf of a helper.
// GivenSteps, WhenSteps, ThenSteps and AndSteps create it.
type StepRunner struct {
	runner   *Runner
	category Category
}

// Category returns the category this StepRunner appends.
func (s *StepRunner) Category() Category {
	return s.category
}

// Execute appends a step under the bound category.
func (s *StepRunner) Execute(description string, body Body) *StepRunner {
	s.runner.add(s.category, description, body)
	return s
}

// ExecuteNamed appends a step described by the body's function name. A body
// declared as a closure inside a helper takes the helper's name.
func (s *StepRunner) ExecuteNamed(body Body) *StepRunner {
	s.runner.add(s.category, describe(body), body)
	return s
}

// SetContextData stores data in the scenario's context.
func (s *StepRunner) SetContextData(key string, data any) {
	s.runner.SetContextData(key, data)
}

// ContextData reads data from the scenario's context.
func (s *StepRunner) ContextData(key string) (any, error) {
	return s.runner.ContextData(key)
}
