package failure

import (
	"errors"
	"fmt"
)

var (
	// ErrAssertionFailed is wrapped by every AssertionError.
	ErrAssertionFailed = errors.New("assertion failed")

	// ErrActualIsNull is wrapped by AssertionErrors raised because the actual
	// value was nil.
	ErrActualIsNull = errors.New("actual is null")

	// ErrIllegalArgument is wrapped by every IllegalArgumentError.
	ErrIllegalArgument = errors.New("illegal argument")
)

// AssertionError is the failure signal of a terminal assertion.
type AssertionError struct {
	Kind        string
	Message     string
	Actual      any
	Expected    any
	HasExpected bool
}

func (e *AssertionError) Error() string {
	return e.Message
}

// Is matches ErrAssertionFailed for every failure and ErrActualIsNull for
// null-actual failures.
func (e *AssertionError) Is(target error) bool {
	switch target {
	case ErrAssertionFailed:
		return true
	case ErrActualIsNull:
		return e.Kind == KindActualIsNull
	}
	return false
}

// IllegalArgumentError reports an invalid parameter passed to an assertion.
type IllegalArgumentError struct {
	Param   string
	Message string
}

func (e *IllegalArgumentError) Error() string {
	return e.Message
}

func (e *IllegalArgumentError) Unwrap() error {
	return ErrIllegalArgument
}

// IllegalArgument returns an IllegalArgumentError for the named parameter.
func IllegalArgument(param, format string, args ...any) *IllegalArgumentError {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	return &IllegalArgumentError{Param: param, Message: msg}
}

// Catch runs fn and returns the failure signal it panicked with, or nil if fn
// returned normally. Panics carrying anything other than an AssertionError or
// IllegalArgumentError are re-raised.
func Catch(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		switch sig := r.(type) {
		case *AssertionError:
			err = sig
		case *IllegalArgumentError:
			err = sig
		default:
			panic(r)
		}
	}()
	fn()
	return nil
}
