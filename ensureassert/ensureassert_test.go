package ensureassert

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/scenario"
)

// recordingT captures failures instead of failing the running test.
type recordingT struct {
	errors []string
}

func (r *recordingT) Errorf(format string, args ...any) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func TestValid(t *testing.T) {
	assert.True(t, Valid(t, scenario.From[int](19)))

	rt := &recordingT{}
	assert.False(t, Valid(rt, scenario.From[int]("19")))
	require.Len(t, rt.errors, 1)
	assert.Contains(t, rt.errors[0], "Expected ensure of int to be valid, but it was not.")
}

func TestInvalid(t *testing.T) {
	assert.True(t, Invalid(t, scenario.From[int]("19")))

	rt := &recordingT{}
	assert.False(t, Invalid(rt, scenario.From[int](19)))
	require.Len(t, rt.errors, 1)
	assert.Contains(t, rt.errors[0], "Expected ensure to be invalid, but found 19.")
}

func TestNil(t *testing.T) {
	assert.True(t, Nil(t, scenario.From[*int](nil)))
	assert.True(t, Nil(t, scenario.From[[]string](nil)))

	rt := &recordingT{}
	assert.False(t, Nil(rt, scenario.From[int](nil)), "int is not nullable")
	n := 3
	assert.False(t, Nil(rt, scenario.From[*int](&n)))
	assert.False(t, Nil(rt, scenario.From[*int]("x")))
	require.Len(t, rt.errors, 3)
	assert.Contains(t, rt.errors[0], "Expected ensure to be <nil>, but found an invalid value.")
}

func TestNotNil(t *testing.T) {
	n := 3
	assert.True(t, NotNil(t, scenario.From[*int](&n)))
	assert.True(t, NotNil(t, scenario.From[int](0)))

	rt := &recordingT{}
	assert.False(t, NotNil(rt, scenario.From[*int](nil)))
	assert.False(t, NotNil(rt, scenario.From[int]("x")))
	require.Len(t, rt.errors, 2)
	assert.Contains(t, rt.errors[0], "Expected ensure not to be <nil>, but found <nil>.")
}

func TestHasValue(t *testing.T) {
	type temperatures struct{ Inside, Outside int }

	assert.True(t, HasValue(t, scenario.From[int](24), 24))
	assert.True(t, HasValue(t, scenario.From[temperatures](temperatures{19, -5}), temperatures{19, -5}))

	rt := &recordingT{}
	assert.False(t, HasValue(rt, scenario.From[int](24), 20))
	assert.False(t, HasValue(rt, scenario.From[int]("24"), 24))
	require.Len(t, rt.errors, 2)
	assert.Contains(t, rt.errors[0], "Expected ensure to have value 20, but found 24.")
	assert.Contains(t, rt.errors[1], "Expected ensure to have value 24, but found an invalid value.")
}

func TestInsideStep(t *testing.T) {
	rec := scenario.NewRecorder()
	r, err := scenario.New("assertions inside a step", rec, scenario.WithSeed(19))
	require.NoError(t, err)

	r.Given("the inside temperature", scenario.ActionOf(func(e scenario.Ensure[int]) {
		Valid(t, e)
		HasValue(t, e, 19)
	}))

	require.NoError(t, r.Play(t.Context()))
}
