package validators

import (
	"reflect"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/abdul-hamid-achik/affirm/packages/failure"
	"github.com/google/uuid"
)

// AssertContains checks that actual contains every value.
func AssertContains(info failure.Info, actual string, values ...string) error {
	if len(values) == 0 {
		return failure.IllegalArgument("values", "The array of values to look for should not be empty")
	}
	for _, v := range values {
		if !strings.Contains(actual, v) {
			return failure.Fail(info, failure.ShouldContain(actual, v))
		}
	}
	return nil
}

// AssertDoesNotContain checks that actual contains none of values.
func AssertDoesNotContain(info failure.Info, actual string, values ...string) error {
	if len(values) == 0 {
		return failure.IllegalArgument("values", "The array of values to look for should not be empty")
	}
	for _, v := range values {
		if v == "" {
			return failure.IllegalArgument("values", "The values to look for should not contain empty strings")
		}
		if strings.Contains(actual, v) {
			return failure.Fail(info, failure.ShouldNotContain(actual, v))
		}
	}
	return nil
}

func AssertStartsWith(info failure.Info, actual, prefix string) error {
	if strings.HasPrefix(actual, prefix) {
		return nil
	}
	return failure.Fail(info, failure.ShouldStartWith(actual, prefix))
}

func AssertEndsWith(info failure.Info, actual, suffix string) error {
	if strings.HasSuffix(actual, suffix) {
		return nil
	}
	return failure.Fail(info, failure.ShouldEndWith(actual, suffix))
}

// AssertMatchesRegex checks actual against a regular expression. Surrounding
// slashes, as in /^a+$/, are stripped.
func AssertMatchesRegex(info failure.Info, actual, pattern string) error {
	if pattern == "" {
		return failure.IllegalArgument("pattern", "The regular expression pattern to match should not be empty")
	}
	if len(pattern) > 1 && strings.HasPrefix(pattern, "/") && strings.HasSuffix(pattern, "/") {
		pattern = pattern[1 : len(pattern)-1]
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return failure.IllegalArgument("pattern", "invalid regex pattern: %v", err)
	}
	if re.MatchString(actual) {
		return nil
	}
	return failure.Fail(info, failure.ShouldMatchPattern(actual, pattern))
}

// Length returns the length of a string (in runes), slice, array, map or
// channel, or -1 for anything else.
func Length(actual any) int {
	switch v := actual.(type) {
	case string:
		return utf8.RuneCountInString(v)
	case []any:
		return len(v)
	case map[string]any:
		return len(v)
	}
	rv := reflect.ValueOf(actual)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return rv.Len()
	case reflect.String:
		return utf8.RuneCountInString(rv.String())
	}
	return -1
}

func measure(info failure.Info, actual any) (int, error) {
	if isNil(actual) {
		return 0, actualIsNull(info)
	}
	n := Length(actual)
	if n == -1 {
		return 0, failure.IllegalArgument("actual", "Cannot get length of %T", actual)
	}
	return n, nil
}

func AssertHasLength(info failure.Info, actual any, expected int) error {
	if expected < 0 {
		return failure.IllegalArgument("length", "The expected length should not be negative")
	}
	n, err := measure(info, actual)
	if err != nil {
		return err
	}
	if n == expected {
		return nil
	}
	return failure.Fail(info, failure.ShouldHaveLength(actual, expected, n))
}

func AssertEmpty(info failure.Info, actual any) error {
	n, err := measure(info, actual)
	if err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	return failure.Fail(info, failure.ShouldBeEmpty(actual))
}

func AssertNotEmpty(info failure.Info, actual any) error {
	n, err := measure(info, actual)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return failure.Fail(info, failure.ShouldNotBeEmpty())
}

func AssertEqualIgnoringCase(info failure.Info, actual, expected string) error {
	if strings.EqualFold(actual, expected) {
		return nil
	}
	return failure.Fail(info, failure.ShouldBeEqualIgnoringCase(actual, expected))
}

// AssertIsUUID checks that actual parses as a UUID in any of the forms
// accepted by uuid.Parse.
func AssertIsUUID(info failure.Info, actual string) error {
	if _, err := uuid.Parse(actual); err != nil {
		return failure.Fail(info, failure.ShouldBeUUID(actual, err))
	}
	return nil
}
