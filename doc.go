// Package scenario executes Given/When/Then narratives written as a fluent
// chain of named steps.
//
// A Runner keeps an ordered ledger of steps. Each step has a category, a
// human-readable description and a body. Playing the runner walks the ledger
// once, feeding every step's result into the next step as an Ensure carrier,
// and writes one line per step outcome to an Output sink.
//
// # Building a scenario
//
//	count := 0
//	r, err := scenario.New("counting steps", scenario.WriterOutput(os.Stdout))
//	if err != nil {
//	    return err
//	}
//	r.Given("a counter", scenario.Func(func() int { count++; return count })).
//	    And("it is incremented", scenario.FuncOf(func(n scenario.Ensure[int]) int {
//	        return n.MustValue() + 1
//	    })).
//	    When("it is doubled", scenario.FuncOf(func(n scenario.Ensure[int]) int {
//	        return n.MustValue() * 2
//	    })).
//	    Then("it is four", scenario.ActionOf(func(n scenario.Ensure[int]) {
//	        if n.MustValue() != 4 {
//	            panic("expected four")
//	        }
//	    }))
//
//	result, err := scenario.PlayResult[int](ctx, r)
//
// The transcript written to the output is:
//
//	✓ SCENARIO for counting steps
//	✓ GIVEN a counter
//	✓ and it is incremented
//	✓ WHEN it is doubled
//	✓ THEN it is four
//
// # Step bodies
//
// Bodies are built with one constructor per accepted shape. Synchronous
// shapes (Action, Func, ActionOf, FuncOf) fail by panicking or through a
// testing helper that stops the goroutine, such as require.Equal. Asynchronous
// shapes (AsyncAction, AsyncFunc, AsyncActionOf, AsyncFuncOf) receive the
// playback context and fail by returning an error. Every body runs on the
// goroutine that called Play, one after the other.
//
// # And
//
// And continues the category of the previous step. As the first step of a
// scenario it behaves as Given. Consecutive steps of the same category render
// with the "and" connective instead of repeating the keyword.
//
// # Helpers
//
// GivenSteps, WhenSteps, ThenSteps and AndSteps hand a StepRunner bound to
// their category to a callback, so a named helper can append one or more
// steps without repeating the category:
//
//	func TheTemperatureIsBelowZero(s *scenario.StepRunner) {
//	    s.ExecuteNamed(scenario.Action(func() {
//	        s.SetContextData("outside", -5)
//	    }))
//	}
//
// # Concurrency
//
// A Runner and its context store belong to one goroutine. Independent
// runners may play concurrently since they share no state.
package scenario
