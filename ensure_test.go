package scenario

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type celsius float64

func (c celsius) String() string { return fmt.Sprintf("%.1f°C", float64(c)) }

func TestFrom_MatchingValue(t *testing.T) {
	tests := []struct {
		name  string
		check func(t *testing.T)
	}{
		{"int", func(t *testing.T) {
			e := From[int](42)
			require.True(t, e.IsValid())
			v, err := e.Value()
			require.NoError(t, err)
			assert.Equal(t, 42, v)
		}},
		{"string", func(t *testing.T) {
			e := From[string]("sunny")
			require.True(t, e.IsValid())
			assert.Equal(t, "sunny", e.MustValue())
		}},
		{"struct", func(t *testing.T) {
			type weather struct{ Temp int }
			e := From[weather](weather{Temp: 21})
			require.True(t, e.IsValid())
			assert.Equal(t, weather{Temp: 21}, e.MustValue())
		}},
		{"interface", func(t *testing.T) {
			e := From[fmt.Stringer](celsius(-5))
			require.True(t, e.IsValid())
			assert.Equal(t, "-5.0°C", e.MustValue().String())
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, tt.check)
	}
}

func TestFrom_Nil(t *testing.T) {
	assert.False(t, From[int](nil).IsValid(), "int does not admit nil")
	assert.False(t, From[string](nil).IsValid(), "string does not admit nil")
	assert.False(t, From[celsius](nil).IsValid(), "named float does not admit nil")

	assert.True(t, From[*int](nil).IsValid())
	assert.True(t, From[any](nil).IsValid())
	assert.True(t, From[error](nil).IsValid())
	assert.True(t, From[[]string](nil).IsValid())
	assert.True(t, From[map[string]int](nil).IsValid())
	assert.True(t, From[func()](nil).IsValid())
	assert.True(t, From[chan int](nil).IsValid())

	p, err := From[*int](nil).Value()
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestFrom_NilMatchesNullability(t *testing.T) {
	assert.Equal(t, From[*int](nil).IsNullable(), From[*int](nil).IsValid())
	assert.Equal(t, From[int](nil).IsNullable(), From[int](nil).IsValid())
	assert.Equal(t, From[[]byte](nil).IsNullable(), From[[]byte](nil).IsValid())
}

func TestFrom_IncompatibleShape(t *testing.T) {
	tests := map[string]Ensure[int]{
		"string":  From[int]("42"),
		"int64":   From[int](int64(42)),
		"float":   From[int](42.0),
		"pointer": From[int](new(int)),
	}

	for name, e := range tests {
		t.Run(name, func(t *testing.T) {
			assert.False(t, e.IsValid())

			v, err := e.Value()
			require.Error(t, err)
			assert.True(t, IsInvalidState(err))
			assert.Zero(t, v)
		})
	}
}

func TestEnsure_MustValuePanicsWhenInvalid(t *testing.T) {
	assert.PanicsWithError(t, "INVALID_STATE: no valid value of type int", func() {
		From[int]("nope").MustValue()
	})
}

func TestEnsure_IsNullable(t *testing.T) {
	assert.False(t, Ensure[int]{}.IsNullable())
	assert.False(t, Ensure[struct{}]{}.IsNullable())
	assert.True(t, Ensure[*struct{}]{}.IsNullable())
	assert.True(t, Ensure[any]{}.IsNullable())
}

func TestEnsure_ZeroValueIsInvalid(t *testing.T) {
	var e Ensure[string]
	assert.False(t, e.IsValid())
}

func TestEnsure_Equal(t *testing.T) {
	assert.True(t, From[int](1).Equal(From[int](1)))
	assert.False(t, From[int](1).Equal(From[int](2)))
	assert.False(t, From[int](1).Equal(From[int]("1")))
	assert.True(t, From[int]("a").Equal(From[int](nil)), "two invalid carriers")
	assert.True(t, From[[]int]([]int{1, 2}).Equal(From[[]int]([]int{1, 2})))
}

func TestEnsure_String(t *testing.T) {
	assert.Equal(t, "42", From[int](42).String())
	assert.Equal(t, "-5.0°C", From[celsius](celsius(-5)).String())
	assert.Equal(t, "invalid value", From[int]("x").String())
}
