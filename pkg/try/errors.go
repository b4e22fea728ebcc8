package try

import (
	"fmt"

	"github.com/zeebo/errs"

	"github.com/ib-77/tryx/pkg/option"
)

var (
	// NoSuchElement is the class of causes synthesized by Filter when the
	// predicate rejects the value.
	NoSuchElement = errs.Class("no such element")

	// Unchecked wraps the cause raised by GetUnchecked.
	Unchecked = errs.Class("unchecked")

	// Panicked wraps a recovered panic value that is not an error.
	Panicked = errs.Class("panic")

	// Invalid is the class of misuse errors: nil callbacks and nil causes.
	Invalid = errs.Class("try")
)

var (
	ErrNilFunc  = Invalid.New("nil function")
	ErrNilCause = Invalid.New("nil failure cause")
)

// PanicError holds a panic value that did not implement error.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("%v", e.Value)
}

// causeOf turns a recovered panic value into a failure cause. Error values
// are kept as-is so the original identity survives.
func causeOf(recovered any) error {
	if err, ok := recovered.(error); ok {
		return err
	}
	return Panicked.Wrap(&PanicError{Value: recovered})
}

// causeOrNil replaces a nil or typed-nil cause with ErrNilCause.
func causeOrNil(cause error) error {
	if option.IsNil(cause) {
		return ErrNilCause
	}
	return cause
}

func mustFunc(isNil bool) {
	if isNil {
		panic(ErrNilFunc)
	}
}
