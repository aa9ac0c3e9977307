package scenario

import (
	"context"

	"github.com/roach88/scenario/internal/narrate"
)

// stepFunc is the canonical signature every body shape is normalized to.
type stepFunc func(ctx context.Context, prior any) (any, error)

// Body is a step body normalized from one of the accepted shapes. Build it
// with Action, Func, ActionOf, FuncOf or their Async counterparts.
type Body struct {
	fn  any
	run stepFunc
}

// name returns the declared name of the function the body was built from.
func (b Body) name() string {
	return narrate.FuncName(b.fn)
}

// Action wraps a body that takes nothing and returns nothing. The previous
// result is ignored and the step produces nil.
func Action(fn func()) Body {
	requireFunc(fn == nil)
	return Body{fn: fn, run: func(context.Context, any) (any, error) {
		fn()
		return nil, nil
	}}
}

// Func wraps a body that takes nothing and produces the next result.
func Func[R any](fn func() R) Body {
	requireFunc(fn == nil)
	return Body{fn: fn, run: func(context.Context, any) (any, error) {
		return fn(), nil
	}}
}

// ActionOf wraps a body that receives the previous result as an Ensure[T].
// The step produces nil.
func ActionOf[T any](fn func(Ensure[T])) Body {
	requireFunc(fn == nil)
	return Body{fn: fn, run: func(_ context.Context, prior any) (any, error) {
		fn(From[T](prior))
		return nil, nil
	}}
}

// FuncOf wraps a body that receives the previous result as an Ensure[T] and
// produces the next result.
func FuncOf[T, R any](fn func(Ensure[T]) R) Body {
	requireFunc(fn == nil)
	return Body{fn: fn, run: func(_ context.Context, prior any) (any, error) {
		return fn(From[T](prior)), nil
	}}
}

// AsyncAction wraps a context-aware body that may fail with an error.
func AsyncAction(fn func(ctx context.Context) error) Body {
	requireFunc(fn == nil)
	return Body{fn: fn, run: func(ctx context.Context, _ any) (any, error) {
		return nil, fn(ctx)
	}}
}

// AsyncFunc wraps a context-aware body that produces the next result.
func AsyncFunc[R any](fn func(ctx context.Context) (R, error)) Body {
	requireFunc(fn == nil)
	return Body{fn: fn, run: func(ctx context.Context, _ any) (any, error) {
		result, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		return result, nil
	}}
}

// AsyncActionOf wraps a context-aware body that receives the previous result.
func AsyncActionOf[T any](fn func(ctx context.Context, in Ensure[T]) error) Body {
	requireFunc(fn == nil)
	return Body{fn: fn, run: func(ctx context.Context, prior any) (any, error) {
		return nil, fn(ctx, From[T](prior))
	}}
}

// AsyncFuncOf wraps a context-aware body that receives the previous result
// and produces the next one.
func AsyncFuncOf[T, R any](fn func(ctx context.Context, in Ensure[T]) (R, error)) Body {
	requireFunc(fn == nil)
	return Body{fn: fn, run: func(ctx context.Context, prior any) (any, error) {
		result, err := fn(ctx, From[T](prior))
		if err != nil {
			return nil, err
		}
		return result, nil
	}}
}

func requireFunc(isNil bool) {
	if isNil {
		panic(newInvalidArgument("step body function is required"))
	}
}
