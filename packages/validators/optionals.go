package validators

import (
	"github.com/abdul-hamid-achik/affirm/packages/failure"
	"github.com/abdul-hamid-achik/affirm/packages/optional"
)

func AssertIsPresent[T any](info failure.Info, actual *optional.Optional[T]) error {
	if actual == nil {
		return actualIsNull(info)
	}
	if actual.IsEmpty() {
		return failure.Fail(info, failure.ShouldBePresent())
	}
	return nil
}

func AssertIsEmpty[T any](info failure.Info, actual *optional.Optional[T]) error {
	if actual == nil {
		return actualIsNull(info)
	}
	if v, ok := actual.Get(); ok {
		return failure.Fail(info, failure.ShouldBeEmptyOptional(v))
	}
	return nil
}

// AssertContainsValue checks the held value with the description's
// comparison strategy.
func AssertContainsValue[T any](info failure.Info, actual *optional.Optional[T], expected T) error {
	if actual == nil {
		return actualIsNull(info)
	}
	v, ok := actual.Get()
	if !ok {
		return failure.Fail(info, failure.ShouldContainValueButWasEmpty(expected))
	}
	s := info.Comparison()
	if s.AreEqual(v, expected) {
		return nil
	}
	return failure.Fail(info, failure.ShouldContainValue(*actual, expected, s))
}

// AssertDoesNotContainValue passes for empty optionals.
func AssertDoesNotContainValue[T any](info failure.Info, actual *optional.Optional[T], value T) error {
	if actual == nil {
		return actualIsNull(info)
	}
	v, ok := actual.Get()
	s := info.Comparison()
	if !ok || !s.AreEqual(v, value) {
		return nil
	}
	return failure.Fail(info, failure.ShouldNotContainValue(*actual, value, s))
}
