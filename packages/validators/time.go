package validators

import (
	"strings"
	"time"

	"github.com/abdul-hamid-achik/affirm/packages/failure"
)

// DefaultTimeLayouts are tried in order when a time bound is given as text.
var DefaultTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"15:04:05Z07:00",
	"15:04:05",
}

// ParseTime parses a time bound with the first layout that accepts it.
// Empty and unparsable text are illegal arguments.
func ParseTime(layouts []string, s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return time.Time{}, failure.IllegalArgument("other", "The time to compare actual with should not be empty")
	}
	if len(layouts) == 0 {
		layouts = DefaultTimeLayouts
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, failure.IllegalArgument("other",
		"Failed to parse %q with any of the layouts [%s]", s, strings.Join(layouts, ", "))
}

func assertTime(info failure.Info, actual, other time.Time, ok func(int) bool, msg func(failure.Info) failure.Message) error {
	c, err := compare(info, actual, other)
	if err != nil {
		return err
	}
	if ok(c) {
		return nil
	}
	return failure.Fail(info, msg(info))
}

func AssertIsBefore(info failure.Info, actual, other time.Time) error {
	return assertTime(info, actual, other, func(c int) bool { return c < 0 }, func(info failure.Info) failure.Message {
		return failure.ShouldBeBefore(actual, other, info.Comparison())
	})
}

func AssertIsBeforeOrEqualTo(info failure.Info, actual, other time.Time) error {
	return assertTime(info, actual, other, func(c int) bool { return c <= 0 }, func(info failure.Info) failure.Message {
		return failure.ShouldBeBeforeOrEqualTo(actual, other, info.Comparison())
	})
}

func AssertIsAfter(info failure.Info, actual, other time.Time) error {
	return assertTime(info, actual, other, func(c int) bool { return c > 0 }, func(info failure.Info) failure.Message {
		return failure.ShouldBeAfter(actual, other, info.Comparison())
	})
}

func AssertIsAfterOrEqualTo(info failure.Info, actual, other time.Time) error {
	return assertTime(info, actual, other, func(c int) bool { return c >= 0 }, func(info failure.Info) failure.Message {
		return failure.ShouldBeAfterOrEqualTo(actual, other, info.Comparison())
	})
}

// AssertTimeIsCloseTo checks that actual is within the given duration of
// other, bounds included.
func AssertTimeIsCloseTo(info failure.Info, actual, other time.Time, within time.Duration) error {
	if within < 0 {
		return failure.IllegalArgument("within", "An offset value should be greater than or equal to zero")
	}
	diff := actual.Sub(other)
	if diff < 0 {
		diff = -diff
	}
	if diff <= within {
		return nil
	}
	return failure.Fail(info, failure.ShouldBeCloseTo(actual, other, within, diff))
}
