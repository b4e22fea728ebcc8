package try

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/tryx/pkg/option"
)

// Try is either a Success holding a value or a Failure holding a non-nil
// cause. It is immutable: every method returns a new Try or a plain value.
//
// The zero value is a Success holding T's zero value.
type Try[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
}

// Of invokes operation and captures its outcome. A returned error or a
// panic becomes the Failure cause; Of itself never panics. A typed nil
// error still fails the operation, with ErrNilCause as the cause.
func Of[T any](operation func() (T, error)) Try[T] {
	value, err := capture(operation)
	return newTry(value, err)
}

// Catch is Of for operations that can only fail by panicking.
func Catch[T any](operation func() T) Try[T] {
	if operation == nil {
		return Failure[T](ErrNilFunc)
	}
	return Of(func() (T, error) {
		return operation(), nil
	})
}

// From lifts an already evaluated (value, error) pair.
func From[T any](value T, err error) Try[T] {
	return newTry(value, err)
}

func Success[T any](value T) Try[T] {
	return Try[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		value:     value,
	}
}

// Failure returns a failed Try. A nil cause, including a typed nil such
// as a nil *MyError, is replaced with ErrNilCause.
func Failure[T any](cause error) Try[T] {
	return Try[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		err:       causeOrNil(cause),
	}
}

func newTry[T any](value T, err error) Try[T] {
	if err != nil {
		return Failure[T](err)
	}
	return Success(value)
}

// derive builds a Try that belongs to the same chain as parent.
func derive[T, U any](parent Try[T], value U, err error) Try[U] {
	if err != nil {
		var zero U
		value = zero
	}
	return Try[U]{
		id:        parent.id,
		createdAt: parent.createdAt,
		value:     value,
		err:       err,
	}
}

func capture[T any](operation func() (T, error)) (value T, err error) {
	if operation == nil {
		return value, ErrNilFunc
	}

	defer func() {
		if r := recover(); r != nil {
			var zero T
			value, err = zero, causeOf(r)
		}
	}()

	value, err = operation()
	if err != nil {
		err = causeOrNil(err)
	}
	return value, err
}

// ID identifies the chain this Try belongs to. It is assigned at
// construction and carried through every combinator.
func (t Try[T]) ID() uuid.UUID {
	return t.id
}

// CreatedAt is the UTC construction time of the chain.
func (t Try[T]) CreatedAt() time.Time {
	return t.createdAt
}

func (t Try[T]) IsSuccess() bool {
	return t.err == nil
}

func (t Try[T]) IsFailure() bool {
	return t.err != nil
}

// Err returns the failure cause, or nil for a Success.
func (t Try[T]) Err() error {
	return t.err
}

// ToOptional returns Some(value) for a Success with a non-nil value and
// None otherwise.
func (t Try[T]) ToOptional() option.Option[T] {
	if t.IsFailure() {
		return option.None[T]()
	}
	return option.OfNullable(t.value)
}

// Get returns the value, or the original cause unchanged.
func (t Try[T]) Get() (T, error) {
	return t.value, t.err
}

// GetUnchecked returns the value. On Failure it panics with the cause
// wrapped in the Unchecked class.
func (t Try[T]) GetUnchecked() T {
	if t.IsFailure() {
		panic(Unchecked.Wrap(t.err))
	}
	return t.value
}

func (t Try[T]) GetOrElse(defaultValue T) T {
	if t.IsFailure() {
		return defaultValue
	}
	return t.value
}

// GetOrElseSupply calls supplier only on Failure.
func (t Try[T]) GetOrElseSupply(supplier func() T) T {
	mustFunc(supplier == nil)
	if t.IsFailure() {
		return supplier()
	}
	return t.value
}

// GetOrElseThrow returns the value, or on Failure the error produced by
// errorSupplier. The original cause is dropped.
func (t Try[T]) GetOrElseThrow(errorSupplier func() error) (T, error) {
	if t.IsSuccess() {
		return t.value, nil
	}
	mustFunc(errorSupplier == nil)

	var zero T
	return zero, causeOrNil(errorSupplier())
}

// OnSuccess runs action with the value of a Success. A panic in action is
// not captured.
func (t Try[T]) OnSuccess(action func(T)) Try[T] {
	if t.IsSuccess() {
		mustFunc(action == nil)
		action(t.value)
	}
	return t
}

// OnFailure runs action with the cause of a Failure. A panic in action is
// not captured.
func (t Try[T]) OnFailure(action func(error)) Try[T] {
	if t.IsFailure() {
		mustFunc(action == nil)
		action(t.err)
	}
	return t
}

// Filter turns a Success whose value does not satisfy predicate into a
// Failure of class NoSuchElement. A Failure is returned unchanged.
func (t Try[T]) Filter(predicate func(T) bool) Try[T] {
	if t.IsFailure() {
		return t
	}
	mustFunc(predicate == nil)
	if predicate(t.value) {
		return t
	}
	return derive[T, T](t, t.value, NoSuchElement.New("value rejected by predicate"))
}

// Recover maps the cause of a Failure to a new outcome. A Success is
// returned unchanged.
func (t Try[T]) Recover(function func(error) (T, error)) Try[T] {
	if t.IsSuccess() {
		return t
	}
	if function == nil {
		return derive[T, T](t, t.value, ErrNilFunc)
	}

	value, err := capture(func() (T, error) {
		return function(t.err)
	})
	return derive(t, value, err)
}

// RecoverWith is Recover for functions that already return a Try.
func (t Try[T]) RecoverWith(function func(error) Try[T]) Try[T] {
	if t.IsSuccess() {
		return t
	}
	if function == nil {
		return derive[T, T](t, t.value, ErrNilFunc)
	}

	value, err := capture(func() (T, error) {
		return unwrap[T](function(t.err))
	})
	return derive(t, value, err)
}

func (t Try[T]) String() string {
	if t.IsFailure() {
		return fmt.Sprintf("Failure[%v]", t.err)
	}
	return fmt.Sprintf("Success[%v]", t.value)
}
