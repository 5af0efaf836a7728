package assertions

import (
	"reflect"

	"github.com/abdul-hamid-achik/affirm/packages/failure"
	"github.com/abdul-hamid-achik/affirm/packages/snapshot"
	"github.com/abdul-hamid-achik/affirm/packages/validators"
)

// ObjectAssert holds assertions on a value of any type.
type ObjectAssert[T any] struct {
	*Chain[*ObjectAssert[T], T]
}

// That starts an assertion chain on actual.
func That[T any](t TestingT, actual T) *ObjectAssert[T] {
	a := &ObjectAssert[T]{}
	a.Chain = NewChain(t, actual, a)
	return a
}

func newObjectAssert[T any](t TestingT, s *Settings, info failure.Info, actual T) *ObjectAssert[T] {
	a := &ObjectAssert[T]{}
	a.Chain = deriveChain(t, s, info, actual, a)
	return a
}

func (a *ObjectAssert[T]) IsEqualTo(expected any) *ObjectAssert[T] {
	a.t.Helper()
	return a.Check(validators.AssertEqual(a.info, a.actual, expected))
}

func (a *ObjectAssert[T]) IsNotEqualTo(other any) *ObjectAssert[T] {
	a.t.Helper()
	return a.Check(validators.AssertNotEqual(a.info, a.actual, other))
}

func (a *ObjectAssert[T]) IsNil() *ObjectAssert[T] {
	a.t.Helper()
	return a.Check(validators.AssertNil(a.info, a.actual))
}

func (a *ObjectAssert[T]) IsNotNil() *ObjectAssert[T] {
	a.t.Helper()
	return a.Check(validators.AssertNotNil(a.info, a.actual))
}

// IsIn checks that actual equals one of values.
func (a *ObjectAssert[T]) IsIn(values ...any) *ObjectAssert[T] {
	a.t.Helper()
	return a.Check(validators.AssertIsIn(a.info, a.actual, values))
}

func (a *ObjectAssert[T]) IsNotIn(values ...any) *ObjectAssert[T] {
	a.t.Helper()
	return a.Check(validators.AssertIsNotIn(a.info, a.actual, values))
}

// IsExactlyInstanceOf checks the dynamic type of actual, e.g.
// IsExactlyInstanceOf(reflect.TypeOf(&User{})).
func (a *ObjectAssert[T]) IsExactlyInstanceOf(typ reflect.Type) *ObjectAssert[T] {
	a.t.Helper()
	return a.Check(validators.AssertIsExactlyInstanceOf(a.info, a.actual, typ))
}

// IsInstanceOf checks that actual is assignable to typ. Pass an interface
// type as reflect.TypeFor[io.Reader]() to check an implementation.
func (a *ObjectAssert[T]) IsInstanceOf(typ reflect.Type) *ObjectAssert[T] {
	a.t.Helper()
	return a.Check(validators.AssertIsInstanceOf(a.info, a.actual, typ))
}

func (a *ObjectAssert[T]) HasNoNullFieldsOrProperties() *ObjectAssert[T] {
	a.t.Helper()
	return a.HasNoNullFieldsOrPropertiesExcept()
}

// HasNoNullFieldsOrPropertiesExcept checks that every field or property of
// actual is set, except the named ones. Accessors such as Name() or
// GetName() take precedence over the field they expose.
func (a *ObjectAssert[T]) HasNoNullFieldsOrPropertiesExcept(names ...string) *ObjectAssert[T] {
	a.t.Helper()
	return a.Check(validators.AssertHasNoNullFieldsOrPropertiesExcept(a.info, a.settings.introspect(), a.actual, names...))
}

func (a *ObjectAssert[T]) HasFieldOrProperty(name string) *ObjectAssert[T] {
	a.t.Helper()
	return a.Check(validators.AssertHasFieldOrProperty(a.info, a.settings.introspect(), a.actual, name))
}

func (a *ObjectAssert[T]) HasFieldOrPropertyWithValue(name string, expected any) *ObjectAssert[T] {
	a.t.Helper()
	return a.Check(validators.AssertHasFieldOrPropertyWithValue(a.info, a.settings.introspect(), a.actual, name, expected))
}

// Matches checks actual against predicate. The optional description names
// the predicate in the failure message.
func (a *ObjectAssert[T]) Matches(predicate func(T) bool, description ...string) *ObjectAssert[T] {
	a.t.Helper()
	var d string
	if len(description) > 0 {
		d = description[0]
	}
	return a.Check(validators.AssertMatches(a.info, a.actual, predicate, d))
}

// Satisfies runs requirements against actual; a returned error fails the
// assertion with its text.
func (a *ObjectAssert[T]) Satisfies(requirements func(T) error) *ObjectAssert[T] {
	a.t.Helper()
	return a.Check(validators.AssertSatisfies(a.info, a.actual, requirements))
}

func (a *ObjectAssert[T]) IsLessThan(other T) *ObjectAssert[T] {
	a.t.Helper()
	return a.Check(validators.AssertLessThan(a.info, a.actual, other))
}

func (a *ObjectAssert[T]) IsLessThanOrEqualTo(other T) *ObjectAssert[T] {
	a.t.Helper()
	return a.Check(validators.AssertLessThanOrEqual(a.info, a.actual, other))
}

func (a *ObjectAssert[T]) IsGreaterThan(other T) *ObjectAssert[T] {
	a.t.Helper()
	return a.Check(validators.AssertGreaterThan(a.info, a.actual, other))
}

func (a *ObjectAssert[T]) IsGreaterThanOrEqualTo(other T) *ObjectAssert[T] {
	a.t.Helper()
	return a.Check(validators.AssertGreaterThanOrEqual(a.info, a.actual, other))
}

// IsBetween checks start <= actual <= end.
func (a *ObjectAssert[T]) IsBetween(start, end T) *ObjectAssert[T] {
	a.t.Helper()
	return a.Check(validators.AssertIsBetween(a.info, a.actual, start, end, true, true))
}

// IsStrictlyBetween checks start < actual < end.
func (a *ObjectAssert[T]) IsStrictlyBetween(start, end T) *ObjectAssert[T] {
	a.t.Helper()
	return a.Check(validators.AssertIsBetween(a.info, a.actual, start, end, false, false))
}

// Extracting reads the named field or property of actual and returns a chain
// on it. Dotted names walk nested values.
func (a *ObjectAssert[T]) Extracting(name string) *ObjectAssert[any] {
	a.t.Helper()
	value, err := validators.LookupFieldOrProperty(a.info, a.settings.introspect(), a.actual, name)
	if !a.passed(err) {
		value = nil
	}
	return subChain(a.Chain, value)
}

// MatchesSnapshot compares actual, encoded as JSON, with the snapshot stored
// under name for the running test.
func (a *ObjectAssert[T]) MatchesSnapshot(name string) *ObjectAssert[T] {
	a.t.Helper()
	return a.Check(matchSnapshot(a.t, a.settings, a.info, name, a.actual))
}

func matchSnapshot(t TestingT, s *Settings, info failure.Info, name string, actual any) error {
	suite, scope := snapshot.SplitTestName(testName(t))
	key := snapshot.Key(scope, name, actual)
	return validators.AssertMatchesSnapshot(info, s.snapshots, suite, key, actual)
}
