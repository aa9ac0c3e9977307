// Package ensureassert provides testify-style assertions for
// scenario.Ensure carriers.
//
// Every function reports a failure through t and returns whether the
// assertion held, so they compose with require-style early returns:
//
//	if !ensureassert.Valid(t, temperature) {
//	    return
//	}
package ensureassert

import (
	"fmt"
	"reflect"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/scenario"
)

type tHelper interface {
	Helper()
}

// Valid asserts that e holds a value of its declared type.
func Valid[T any](t assert.TestingT, e scenario.Ensure[T], msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if e.IsValid() {
		return true
	}
	return assert.Fail(t, fmt.Sprintf("Expected ensure of %s to be valid, but it was not.", typeName[T]()), msgAndArgs...)
}

// Invalid asserts that e does not hold a value of its declared type.
func Invalid[T any](t assert.TestingT, e scenario.Ensure[T], msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if !e.IsValid() {
		return true
	}
	return assert.Fail(t, fmt.Sprintf("Expected ensure to be invalid, but found %#v.", e.MustValue()), msgAndArgs...)
}

// Nil asserts that e is a valid carrier of a nullable type holding nil.
func Nil[T any](t assert.TestingT, e scenario.Ensure[T], msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if e.IsNullable() && e.IsValid() && isNil(e.MustValue()) {
		return true
	}
	return assert.Fail(t, "Expected ensure to be <nil>, but found "+describe(e)+".", msgAndArgs...)
}

// NotNil asserts that e is valid and holds a non-nil value.
func NotNil[T any](t assert.TestingT, e scenario.Ensure[T], msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if e.IsValid() && !isNil(e.MustValue()) {
		return true
	}
	return assert.Fail(t, "Expected ensure not to be <nil>, but found "+describe(e)+".", msgAndArgs...)
}

// HasValue asserts that e is valid and holds a value equal to expected,
// using the same equality as assert.Equal.
func HasValue[T any](t assert.TestingT, e scenario.Ensure[T], expected T, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if e.IsValid() && assert.ObjectsAreEqual(expected, e.MustValue()) {
		return true
	}
	return assert.Fail(t, fmt.Sprintf("Expected ensure to have value %#v, but found %s.", expected, describe(e)), msgAndArgs...)
}

func describe[T any](e scenario.Ensure[T]) string {
	if !e.IsValid() {
		return "an invalid value"
	}
	v := e.MustValue()
	if isNil(v) {
		return "<nil>"
	}
	return fmt.Sprintf("%#v", v)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
