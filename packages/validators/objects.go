// Package validators holds the stateless checks behind every assertion
// family. A validator receives the chain's failure description, the actual
// value and its parameters, and returns nil, a *failure.AssertionError or a
// *failure.IllegalArgumentError.
package validators

import (
	"errors"
	"reflect"
	"strings"

	"github.com/abdul-hamid-achik/affirm/packages/comparison"
	"github.com/abdul-hamid-achik/affirm/packages/failure"
	"github.com/abdul-hamid-achik/affirm/packages/introspection"
	"github.com/abdul-hamid-achik/affirm/packages/representation"
)

func isNil(v any) bool {
	return representation.IsNil(v)
}

func actualIsNull(info failure.Info) error {
	return failure.Fail(info, failure.ActualIsNull())
}

// AssertEqual checks actual against expected with the description's
// comparison strategy.
func AssertEqual(info failure.Info, actual, expected any) error {
	s := info.Comparison()
	if s.AreEqual(actual, expected) {
		return nil
	}
	return failure.Fail(info, equalMessage(info, actual, expected))
}

// equalMessage prints the types when the values look the same, e.g. int 1
// against int64 1.
func equalMessage(info failure.Info, actual, expected any) failure.Message {
	s := info.Comparison()
	if actual != nil && expected != nil && info.Format(actual) == info.Format(expected) {
		at, et := reflect.TypeOf(actual), reflect.TypeOf(expected)
		if at != et {
			return failure.ShouldBeEqualWithTypes(actual, expected, at.String(), et.String(), s)
		}
	}
	return failure.ShouldBeEqual(actual, expected, s)
}

func AssertNotEqual(info failure.Info, actual, other any) error {
	s := info.Comparison()
	if !s.AreEqual(actual, other) {
		return nil
	}
	return failure.Fail(info, failure.ShouldNotBeEqual(actual, other, s))
}

func AssertNil(info failure.Info, actual any) error {
	if isNil(actual) {
		return nil
	}
	return failure.Fail(info, failure.ShouldBeNull(actual))
}

func AssertNotNil(info failure.Info, actual any) error {
	if isNil(actual) {
		return actualIsNull(info)
	}
	return nil
}

// AssertIsIn checks that actual equals one of values.
func AssertIsIn(info failure.Info, actual any, values []any) error {
	if len(values) == 0 {
		return failure.IllegalArgument("values", "The given values should not be empty")
	}
	if contains(info.Comparison(), values, actual) {
		return nil
	}
	return failure.Fail(info, failure.ShouldBeIn(actual, values, info.Comparison()))
}

func AssertIsNotIn(info failure.Info, actual any, values []any) error {
	if len(values) == 0 {
		return failure.IllegalArgument("values", "The given values should not be empty")
	}
	if !contains(info.Comparison(), values, actual) {
		return nil
	}
	return failure.Fail(info, failure.ShouldNotBeIn(actual, values, info.Comparison()))
}

func contains(s comparison.Strategy, values []any, v any) bool {
	for _, candidate := range values {
		if s.AreEqual(v, candidate) {
			return true
		}
	}
	return false
}

// AssertIsExactlyInstanceOf checks that the dynamic type of actual is typ.
func AssertIsExactlyInstanceOf(info failure.Info, actual any, typ reflect.Type) error {
	if typ == nil {
		return failure.IllegalArgument("type", "The given type should not be null")
	}
	if isNil(actual) {
		return actualIsNull(info)
	}
	if at := reflect.TypeOf(actual); at != typ {
		return failure.Fail(info, failure.ShouldBeExactlyInstance(actual, typ.String(), at.String()))
	}
	return nil
}

// AssertIsInstanceOf checks that actual is assignable to typ, which for an
// interface type means actual implements it.
func AssertIsInstanceOf(info failure.Info, actual any, typ reflect.Type) error {
	if typ == nil {
		return failure.IllegalArgument("type", "The given type should not be null")
	}
	if isNil(actual) {
		return actualIsNull(info)
	}
	if at := reflect.TypeOf(actual); !at.AssignableTo(typ) {
		return failure.Fail(info, failure.ShouldBeInstance(actual, typ.String(), at.String()))
	}
	return nil
}

// AssertHasNoNullFieldsOrPropertiesExcept checks that no field or property of
// actual is nil, ignoring the excluded names. The failure lists the null
// names found and, separately, the caller's exclusions.
func AssertHasNoNullFieldsOrPropertiesExcept(info failure.Info, in introspection.Introspector, actual any, excluded ...string) error {
	if isNil(actual) {
		return actualIsNull(info)
	}
	props, err := in.FieldsAndProperties(actual)
	if err != nil {
		return failure.IllegalArgument("actual", "Cannot read fields or properties of %s: %v", info.Format(actual), err)
	}

	var nulls []string
	for _, p := range props {
		if p.Nil && !isExcluded(p.Name, excluded) {
			nulls = append(nulls, p.Name)
		}
	}
	if len(nulls) == 0 {
		return nil
	}
	return failure.Fail(info, failure.ShouldHaveNoNullFieldsExcept(actual, nulls, excluded))
}

func isExcluded(name string, excluded []string) bool {
	for _, e := range excluded {
		if strings.EqualFold(name, e) {
			return true
		}
	}
	return false
}

// AssertHasFieldOrProperty checks that name resolves on actual. Dotted names
// walk nested values.
func AssertHasFieldOrProperty(info failure.Info, in introspection.Introspector, actual any, name string) error {
	_, err := LookupFieldOrProperty(info, in, actual, name)
	return err
}

// LookupFieldOrProperty reads name from actual, failing the way
// AssertHasFieldOrProperty does when it cannot.
func LookupFieldOrProperty(info failure.Info, in introspection.Introspector, actual any, name string) (any, error) {
	if name == "" {
		return nil, failure.IllegalArgument("name", "The name of the property/field to read should not be empty")
	}
	if isNil(actual) {
		return nil, actualIsNull(info)
	}
	value, err := in.Lookup(actual, name)
	if err != nil {
		return nil, lookupFailure(info, actual, name, err)
	}
	return value, nil
}

// AssertHasFieldOrPropertyWithValue checks the value of a field or property
// with the standard comparison; the chain's strategy applies to actual itself.
func AssertHasFieldOrPropertyWithValue(info failure.Info, in introspection.Introspector, actual any, name string, expected any) error {
	value, err := LookupFieldOrProperty(info, in, actual, name)
	if err != nil {
		return err
	}
	if comparison.Standard.AreEqual(value, expected) {
		return nil
	}
	return failure.Fail(info, failure.ShouldHavePropertyOrFieldWithValue(actual, name, expected, value, comparison.Standard))
}

func lookupFailure(info failure.Info, actual any, name string, err error) error {
	if errors.Is(err, introspection.ErrUnsupported) {
		return failure.IllegalArgument("actual", "Cannot read %q of %s: %v", name, info.Format(actual), err)
	}
	return failure.Fail(info, failure.ShouldHavePropertyOrField(actual, name))
}

// AssertMatches checks actual against a predicate. description names the
// predicate in the failure; empty means "given".
func AssertMatches[T any](info failure.Info, actual T, predicate func(T) bool, description string) error {
	if predicate == nil {
		return failure.IllegalArgument("predicate", "The predicate to evaluate should not be null")
	}
	if predicate(actual) {
		return nil
	}
	return failure.Fail(info, failure.ShouldMatch(actual, description))
}

// AssertSatisfies runs requirements against actual and fails with the error
// they return.
func AssertSatisfies[T any](info failure.Info, actual T, requirements func(T) error) error {
	if requirements == nil {
		return failure.IllegalArgument("requirements", "The requirements to satisfy should not be null")
	}
	if err := requirements(actual); err != nil {
		return failure.Fail(info, failure.ShouldSatisfy(actual, err))
	}
	return nil
}
