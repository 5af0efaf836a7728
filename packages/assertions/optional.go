package assertions

import (
	"github.com/abdul-hamid-achik/affirm/packages/optional"
	"github.com/abdul-hamid-achik/affirm/packages/validators"
)

// OptionalAssert holds assertions on an optional.Optional.
type OptionalAssert[T any] struct {
	*Chain[*OptionalAssert[T], *optional.Optional[T]]
}

func ThatOptional[T any](t TestingT, actual optional.Optional[T]) *OptionalAssert[T] {
	return ThatOptionalPtr(t, &actual)
}

// ThatOptionalPtr starts a chain on an optional that may itself be nil.
func ThatOptionalPtr[T any](t TestingT, actual *optional.Optional[T]) *OptionalAssert[T] {
	a := &OptionalAssert[T]{}
	a.Chain = NewChain(t, actual, a)
	return a
}

func (a *OptionalAssert[T]) IsPresent() *OptionalAssert[T] {
	a.t.Helper()
	return a.Check(validators.AssertIsPresent(a.info, a.actual))
}

// IsNotEmpty is an alias of IsPresent.
func (a *OptionalAssert[T]) IsNotEmpty() *OptionalAssert[T] {
	a.t.Helper()
	return a.IsPresent()
}

func (a *OptionalAssert[T]) IsEmpty() *OptionalAssert[T] {
	a.t.Helper()
	return a.Check(validators.AssertIsEmpty(a.info, a.actual))
}

// IsNotPresent is an alias of IsEmpty.
func (a *OptionalAssert[T]) IsNotPresent() *OptionalAssert[T] {
	a.t.Helper()
	return a.IsEmpty()
}

// Contains checks that a value is present and equal to expected.
func (a *OptionalAssert[T]) Contains(expected T) *OptionalAssert[T] {
	a.t.Helper()
	return a.Check(validators.AssertContainsValue(a.info, a.actual, expected))
}

// DoesNotContain passes for an empty optional or a different value.
func (a *OptionalAssert[T]) DoesNotContain(value T) *OptionalAssert[T] {
	a.t.Helper()
	return a.Check(validators.AssertDoesNotContainValue(a.info, a.actual, value))
}

// HasValueSatisfying checks that a value is present and passes requirements.
func (a *OptionalAssert[T]) HasValueSatisfying(requirements func(T) error) *OptionalAssert[T] {
	a.t.Helper()
	if !a.passed(validators.AssertIsPresent(a.info, a.actual)) {
		return a
	}
	v, _ := a.actual.Get()
	return a.Check(validators.AssertSatisfies(a.info, v, requirements))
}

// Get checks that a value is present and returns a chain on it. The new chain
// starts without the label or fail message of this one.
func (a *OptionalAssert[T]) Get() *ObjectAssert[T] {
	a.t.Helper()
	var v T
	if a.passed(validators.AssertIsPresent(a.info, a.actual)) {
		v, _ = a.actual.Get()
	}
	return subChain(a.Chain, v)
}
