package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContext_SetThenGet(t *testing.T) {
	c := NewContext()
	c.Set("weather", "sunny")

	got, err := c.Get("weather")
	require.NoError(t, err)
	assert.Equal(t, "sunny", got)
}

func TestContext_SetOverwrites(t *testing.T) {
	c := NewContext()
	c.Set("temperature", 10)
	c.Set("temperature", -5)

	got, err := c.Get("temperature")
	require.NoError(t, err)
	assert.Equal(t, -5, got)
}

func TestContext_GetUnknownKey(t *testing.T) {
	c := NewContext()

	_, err := c.Get("missing")
	require.Error(t, err)
	assert.True(t, IsKeyNotFound(err))

	var se *Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "missing", se.Key)
	assert.Equal(t, `KEY_NOT_FOUND: the context data with key "missing" was not found`, err.Error())
}

func TestContextValue(t *testing.T) {
	c := NewContext()
	c.Set("count", 3)
	c.Set("none", nil)

	n, err := ContextValue[int](c, "count")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	p, err := ContextValue[*int](c, "none")
	require.NoError(t, err)
	assert.Nil(t, p)

	_, err = ContextValue[int](c, "absent")
	assert.True(t, IsKeyNotFound(err))
}

func TestContextValue_TypeMismatchPanics(t *testing.T) {
	c := NewContext()
	c.Set("count", "three")

	assert.Panics(t, func() {
		_, _ = ContextValue[int](c, "count")
	})
}
