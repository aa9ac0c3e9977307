// Package scenariotest wires scenario runners into go test.
//
//	func TestWhenTheWeatherIsTooCold(t *testing.T) {
//	    r := scenariotest.New(t)
//	    r.Given("I want to go play outside", scenario.Action(func() {})).
//	        Then("I stay inside", scenario.Action(func() {}))
//	    scenariotest.Play(t, r)
//	}
//
// The transcript goes to the test log, visible with go test -v.
package scenariotest

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/roach88/scenario"
	"github.com/roach88/scenario/internal/narrate"
)

// Output returns an Output that writes transcript lines through t.Log.
func Output(t testing.TB) scenario.Output {
	return logOutput{t: t}
}

type logOutput struct {
	t testing.TB
}

func (o logOutput) WriteLine(message string) {
	o.t.Helper()
	o.t.Log(message)
}

func (o logOutput) WriteLinef(format string, args ...any) {
	o.t.Helper()
	o.t.Logf(format, args...)
}

// Title derives a scenario title from a test name. The "Test" prefix is
// dropped and every subtest segment becomes its own words:
// "TestWeather/too_cold" is titled "Weather too cold".
func Title(testName string) string {
	segments := strings.Split(testName, "/")
	segments[0] = narrate.TrimTestPrefix(segments[0])

	words := make([]string, 0, len(segments))
	for _, seg := range segments {
		if s := narrate.Sentence(seg); s != "" {
			words = append(words, s)
		}
	}
	return strings.Join(words, " ")
}

// New creates a runner titled after t that writes its transcript to the
// test log. It stops the test if the runner cannot be created.
func New(t testing.TB, opts ...scenario.Option) *scenario.Runner {
	t.Helper()
	r, err := scenario.New(Title(t.Name()), Output(t), opts...)
	require.NoError(t, err)
	return r
}

// Play plays r with the test's context and stops the test on failure.
func Play(t testing.TB, r *scenario.Runner) {
	t.Helper()
	require.NoError(t, r.Play(t.Context()))
}

// AssertTranscript compares the recorded transcript against the golden
// file testdata/golden/<name>.golden. Run go test with -update to rewrite
// the golden files.
func AssertTranscript(t *testing.T, name string, rec *scenario.Recorder) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(rec.String()))
}
