package validators

import (
	"github.com/abdul-hamid-achik/affirm/packages/failure"
)

// AssertHasValue checks the value loaded from an atomic. load is only called
// when atomic is not nil.
func AssertHasValue[V any](info failure.Info, atomic any, load func() V, expected V) error {
	if isNil(atomic) {
		return actualIsNull(info)
	}
	v := load()
	s := info.Comparison()
	if s.AreEqual(v, expected) {
		return nil
	}
	return failure.Fail(info, failure.ShouldHaveValue(v, expected, s))
}

// AssertDoesNotHaveValue is the negation of AssertHasValue.
func AssertDoesNotHaveValue[V any](info failure.Info, atomic any, load func() V, value V) error {
	if isNil(atomic) {
		return actualIsNull(info)
	}
	v := load()
	s := info.Comparison()
	if !s.AreEqual(v, value) {
		return nil
	}
	return failure.Fail(info, failure.ShouldNotContainValue(v, value, s))
}
