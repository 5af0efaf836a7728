package assertions

import (
	"github.com/abdul-hamid-achik/affirm/packages/validators"
)

// StringAssert holds assertions on text.
type StringAssert struct {
	*Chain[*StringAssert, string]
}

func ThatString(t TestingT, actual string) *StringAssert {
	a := &StringAssert{}
	a.Chain = NewChain(t, actual, a)
	return a
}

func (a *StringAssert) IsEqualTo(expected string) *StringAssert {
	a.t.Helper()
	return a.Check(validators.AssertEqual(a.info, a.actual, expected))
}

func (a *StringAssert) IsNotEqualTo(other string) *StringAssert {
	a.t.Helper()
	return a.Check(validators.AssertNotEqual(a.info, a.actual, other))
}

func (a *StringAssert) IsEqualToIgnoringCase(expected string) *StringAssert {
	a.t.Helper()
	return a.Check(validators.AssertEqualIgnoringCase(a.info, a.actual, expected))
}

// Contains checks that actual contains every one of values.
func (a *StringAssert) Contains(values ...string) *StringAssert {
	a.t.Helper()
	return a.Check(validators.AssertContains(a.info, a.actual, values...))
}

// DoesNotContain checks that actual contains none of values.
func (a *StringAssert) DoesNotContain(values ...string) *StringAssert {
	a.t.Helper()
	return a.Check(validators.AssertDoesNotContain(a.info, a.actual, values...))
}

func (a *StringAssert) StartsWith(prefix string) *StringAssert {
	a.t.Helper()
	return a.Check(validators.AssertStartsWith(a.info, a.actual, prefix))
}

func (a *StringAssert) EndsWith(suffix string) *StringAssert {
	a.t.Helper()
	return a.Check(validators.AssertEndsWith(a.info, a.actual, suffix))
}

// Matches checks actual against a regular expression. Slash delimiters, as
// in /^v\d+$/, are accepted.
func (a *StringAssert) Matches(pattern string) *StringAssert {
	a.t.Helper()
	return a.Check(validators.AssertMatchesRegex(a.info, a.actual, pattern))
}

// HasLength checks the length of actual in runes.
func (a *StringAssert) HasLength(expected int) *StringAssert {
	a.t.Helper()
	return a.Check(validators.AssertHasLength(a.info, a.actual, expected))
}

func (a *StringAssert) IsEmpty() *StringAssert {
	a.t.Helper()
	return a.Check(validators.AssertEmpty(a.info, a.actual))
}

func (a *StringAssert) IsNotEmpty() *StringAssert {
	a.t.Helper()
	return a.Check(validators.AssertNotEmpty(a.info, a.actual))
}

func (a *StringAssert) IsUUID() *StringAssert {
	a.t.Helper()
	return a.Check(validators.AssertIsUUID(a.info, a.actual))
}

func (a *StringAssert) IsIn(values ...string) *StringAssert {
	a.t.Helper()
	return a.Check(validators.AssertIsIn(a.info, a.actual, toAny(values)))
}

func (a *StringAssert) IsNotIn(values ...string) *StringAssert {
	a.t.Helper()
	return a.Check(validators.AssertIsNotIn(a.info, a.actual, toAny(values)))
}

func (a *StringAssert) IsLessThan(other string) *StringAssert {
	a.t.Helper()
	return a.Check(validators.AssertLessThan(a.info, a.actual, other))
}

func (a *StringAssert) IsGreaterThan(other string) *StringAssert {
	a.t.Helper()
	return a.Check(validators.AssertGreaterThan(a.info, a.actual, other))
}

func (a *StringAssert) MatchesSnapshot(name string) *StringAssert {
	a.t.Helper()
	return a.Check(matchSnapshot(a.t, a.settings, a.info, name, a.actual))
}

// AsJSON returns a JSON chain on actual. The label is kept.
func (a *StringAssert) AsJSON() *JSONAssert {
	a.t.Helper()
	return newJSONAssert(a.t, a.settings, a.info, []byte(a.actual))
}

func toAny[T any](values []T) []any {
	if values == nil {
		return nil
	}
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
