package try

import (
	"github.com/zeebo/errs"
)

// Map applies function to the value of a Success under the same capture
// rules as Of. A Failure is passed through with its cause.
func Map[T, U any](t Try[T], function func(T) (U, error)) Try[U] {
	var zero U
	if t.IsFailure() {
		return derive(t, zero, t.err)
	}
	if function == nil {
		return derive(t, zero, ErrNilFunc)
	}

	value, err := capture(func() (U, error) {
		return function(t.value)
	})
	return derive(t, value, err)
}

// FlatMap is Map for functions that already return a Try. The returned Try
// is unwrapped once; its cause is kept as-is.
func FlatMap[T, U any](t Try[T], function func(T) Try[U]) Try[U] {
	var zero U
	if t.IsFailure() {
		return derive(t, zero, t.err)
	}
	if function == nil {
		return derive(t, zero, ErrNilFunc)
	}

	value, err := capture(func() (U, error) {
		return unwrap[U](function(t.value))
	})
	return derive(t, value, err)
}

func Flatten[T any](t Try[Try[T]]) Try[T] {
	return FlatMap(t, func(inner Try[T]) Try[T] {
		return inner
	})
}

// Fold reduces t to a plain value through the handler matching its variant.
func Fold[T, U any](t Try[T], onSuccess func(T) U, onFailure func(error) U) U {
	if t.IsFailure() {
		mustFunc(onFailure == nil)
		return onFailure(t.err)
	}
	mustFunc(onSuccess == nil)
	return onSuccess(t.value)
}

// Sequence collects the values of tries. The first Failure is returned.
func Sequence[T any](tries []Try[T]) Try[[]T] {
	values := make([]T, 0, len(tries))
	for _, t := range tries {
		if t.IsFailure() {
			return derive[T, []T](t, nil, t.err)
		}
		values = append(values, t.value)
	}
	return Success(values)
}

// SequenceAll is Sequence that keeps going after a Failure and combines
// every cause into one.
func SequenceAll[T any](tries []Try[T]) Try[[]T] {
	values := make([]T, 0, len(tries))
	var causes []error
	for _, t := range tries {
		if t.IsFailure() {
			causes = append(causes, t.err)
			continue
		}
		values = append(values, t.value)
	}

	if len(causes) > 0 {
		return Failure[[]T](errs.Combine(causes...))
	}
	return Success(values)
}

// Traverse maps function over values and collects the results. It stops at
// the first Failure.
func Traverse[T, U any](values []T, function func(T) (U, error)) Try[[]U] {
	if function == nil {
		return Failure[[]U](ErrNilFunc)
	}

	out := make([]U, 0, len(values))
	for _, v := range values {
		value, err := capture(func() (U, error) {
			return function(v)
		})
		if err != nil {
			return Failure[[]U](err)
		}
		out = append(out, value)
	}
	return Success(out)
}
