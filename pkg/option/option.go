package option

import "fmt"

type Option[T any] struct {
	value   T
	present bool
}

func Some[T any](value T) Option[T] {
	return Option[T]{value: value, present: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// OfNullable returns None when value is nil, Some otherwise.
func OfNullable[T any](value T) Option[T] {
	if IsNil(value) {
		return None[T]()
	}
	return Some(value)
}

func (o Option[T]) IsPresent() bool {
	return o.present
}

func (o Option[T]) IsEmpty() bool {
	return !o.present
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// MustGet returns the value. It panics if the option is empty.
func (o Option[T]) MustGet() T {
	if !o.present {
		panic("option: value not present")
	}
	return o.value
}

func (o Option[T]) OrElse(defaultValue T) T {
	if o.present {
		return o.value
	}
	return defaultValue
}

func (o Option[T]) String() string {
	if !o.present {
		return "None"
	}
	return fmt.Sprintf("Some[%v]", o.value)
}
