package apierr

import (
	"context"
	"fmt"
)

// Boundary routes every classified failure through one hook so interactive
// surfaces report them uniformly.
type Boundary struct {
	// OnError is called with each classified failure. Optional.
	OnError func(*Error)
}

// Result carries either the value produced by a unit of work or its
// classified error. Exactly one of Data and Err is meaningful.
type Result[T any] struct {
	OK   bool
	Data T
	Err  *Error
}

// Run executes fn, classifying returned errors and recovered panics. A bad
// call yields a Result instead of crashing the session.
func Run[T any](ctx context.Context, b *Boundary, fn func(context.Context) (T, error)) (res Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			res = failure[T](b, &Error{
				Kind:    KindUnknown,
				Message: fmt.Sprintf("unexpected failure: %v", r),
			})
		}
	}()

	v, err := fn(ctx)
	if err != nil {
		return failure[T](b, Classify(err))
	}
	return Result[T]{OK: true, Data: v}
}

func failure[T any](b *Boundary, e *Error) Result[T] {
	if b != nil && b.OnError != nil {
		b.OnError(e)
	}
	return Result[T]{Err: e}
}
