package scenario

import (
	"fmt"
	"reflect"
)

// Ensure carries the previous step's result into the next step's body.
//
// An Ensure is valid when the raw result has the declared type T, or when the
// raw result is nil and T admits nil (pointers, interfaces, maps, slices,
// channels and functions). Reading the value of an invalid Ensure fails
// with an ErrCodeInvalidState error.
type Ensure[T any] struct {
	value T
	valid bool
}

// From adapts a raw value to T. It never fails; invalidity is reported by
// IsValid.
func From[T any](raw any) Ensure[T] {
	if raw == nil {
		return Ensure[T]{valid: isNullable[T]()}
	}
	typed, ok := raw.(T)
	if !ok {
		return Ensure[T]{}
	}
	return Ensure[T]{value: typed, valid: true}
}

// IsValid reports whether the carrier holds a value of type T.
func (e Ensure[T]) IsValid() bool {
	return e.valid
}

// IsNullable reports whether T admits nil.
func (e Ensure[T]) IsNullable() bool {
	return isNullable[T]()
}

// Value returns the carried value, or an ErrCodeInvalidState error when the
// carrier is invalid.
func (e Ensure[T]) Value() (T, error) {
	if !e.valid {
		var zero T
		return zero, newInvalidState(fmt.Sprintf("no valid value of type %s", typeName[T]()))
	}
	return e.value, nil
}

// MustValue returns the carried value and panics with an ErrCodeInvalidState
// error when the carrier is invalid. Inside a synchronous step body the panic
// fails the step.
func (e Ensure[T]) MustValue() T {
	v, err := e.Value()
	if err != nil {
		panic(err)
	}
	return v
}

// Equal reports whether both carriers are valid and hold deeply equal
// values, or are both invalid.
func (e Ensure[T]) Equal(other Ensure[T]) bool {
	if !e.valid || !other.valid {
		return e.valid == other.valid
	}
	return reflect.DeepEqual(e.value, other.value)
}

// String formats the carried value, or "invalid value".
func (e Ensure[T]) String() string {
	if !e.valid {
		return "invalid value"
	}
	return fmt.Sprint(e.value)
}

func isNullable[T any]() bool {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
