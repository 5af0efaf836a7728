package assertions

import (
	"time"

	"github.com/abdul-hamid-achik/affirm/packages/validators"
)

// TimeAssert holds assertions on instants. Instants are compared with
// time.Time.Compare, so the same instant in two zones is equal.
type TimeAssert struct {
	*Chain[*TimeAssert, *time.Time]
}

func ThatTime(t TestingT, actual time.Time) *TimeAssert {
	return ThatTimePtr(t, &actual)
}

// ThatTimePtr starts a chain on an instant that may be nil.
func ThatTimePtr(t TestingT, actual *time.Time) *TimeAssert {
	a := &TimeAssert{}
	a.Chain = NewChain(t, actual, a)
	return a
}

func (a *TimeAssert) check(assert func(actual time.Time) error) *TimeAssert {
	a.t.Helper()
	if err := validators.AssertNotNil(a.info, a.actual); err != nil {
		return a.Check(err)
	}
	return a.Check(assert(*a.actual))
}

// parse reads a bound given as text with the configured layouts, RFC 3339
// and its variants by default.
func (a *TimeAssert) parse(other string) time.Time {
	ts, err := validators.ParseTime(a.settings.timeLayouts, other)
	if err != nil {
		a.Check(err)
	}
	return ts
}

func (a *TimeAssert) IsEqualTo(expected time.Time) *TimeAssert {
	a.t.Helper()
	return a.check(func(actual time.Time) error {
		return validators.AssertEqual(a.info, actual, expected)
	})
}

func (a *TimeAssert) IsBefore(other time.Time) *TimeAssert {
	a.t.Helper()
	return a.check(func(actual time.Time) error {
		return validators.AssertIsBefore(a.info, actual, other)
	})
}

func (a *TimeAssert) IsBeforeOrEqualTo(other time.Time) *TimeAssert {
	a.t.Helper()
	return a.check(func(actual time.Time) error {
		return validators.AssertIsBeforeOrEqualTo(a.info, actual, other)
	})
}

func (a *TimeAssert) IsAfter(other time.Time) *TimeAssert {
	a.t.Helper()
	return a.check(func(actual time.Time) error {
		return validators.AssertIsAfter(a.info, actual, other)
	})
}

func (a *TimeAssert) IsAfterOrEqualTo(other time.Time) *TimeAssert {
	a.t.Helper()
	return a.check(func(actual time.Time) error {
		return validators.AssertIsAfterOrEqualTo(a.info, actual, other)
	})
}

// IsBeforeString is IsBefore with the bound given as text, e.g.
// "2024-01-01T03:00:05Z".
func (a *TimeAssert) IsBeforeString(other string) *TimeAssert {
	a.t.Helper()
	return a.IsBefore(a.parse(other))
}

func (a *TimeAssert) IsBeforeOrEqualToString(other string) *TimeAssert {
	a.t.Helper()
	return a.IsBeforeOrEqualTo(a.parse(other))
}

func (a *TimeAssert) IsAfterString(other string) *TimeAssert {
	a.t.Helper()
	return a.IsAfter(a.parse(other))
}

func (a *TimeAssert) IsAfterOrEqualToString(other string) *TimeAssert {
	a.t.Helper()
	return a.IsAfterOrEqualTo(a.parse(other))
}

func (a *TimeAssert) IsBetween(start, end time.Time) *TimeAssert {
	a.t.Helper()
	return a.check(func(actual time.Time) error {
		return validators.AssertIsBetween(a.info, actual, start, end, true, true)
	})
}

func (a *TimeAssert) IsStrictlyBetween(start, end time.Time) *TimeAssert {
	a.t.Helper()
	return a.check(func(actual time.Time) error {
		return validators.AssertIsBetween(a.info, actual, start, end, false, false)
	})
}

// IsCloseTo checks that actual is within the given duration of other.
func (a *TimeAssert) IsCloseTo(other time.Time, within time.Duration) *TimeAssert {
	a.t.Helper()
	return a.check(func(actual time.Time) error {
		return validators.AssertTimeIsCloseTo(a.info, actual, other, within)
	})
}
