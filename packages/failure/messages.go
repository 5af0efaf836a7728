package failure

import (
	"strings"

	"github.com/abdul-hamid-achik/affirm/packages/comparison"
)

// Failure kinds.
const (
	KindActualIsNull              = "actualIsNull"
	KindShouldBeEqual             = "shouldBeEqual"
	KindShouldNotBeEqual          = "shouldNotBeEqual"
	KindShouldBeNull              = "shouldBeNull"
	KindShouldBeIn                = "shouldBeIn"
	KindShouldNotBeIn             = "shouldNotBeIn"
	KindShouldBeExactlyInstance   = "shouldBeExactlyInstance"
	KindShouldBeInstance          = "shouldBeInstance"
	KindShouldHaveNoNullFields    = "shouldHaveNoNullFields"
	KindShouldHavePropertyOrField = "shouldHavePropertyOrField"
	KindShouldHaveFieldValue      = "shouldHavePropertyOrFieldWithValue"
	KindShouldMatch               = "shouldMatch"
	KindShouldSatisfy             = "shouldSatisfy"
	KindShouldBeComparable        = "shouldBeComparable"
	KindShouldBeLess              = "shouldBeLess"
	KindShouldBeLessOrEqual       = "shouldBeLessOrEqual"
	KindShouldBeGreater           = "shouldBeGreater"
	KindShouldBeGreaterOrEqual    = "shouldBeGreaterOrEqual"
	KindShouldBeBefore            = "shouldBeBefore"
	KindShouldBeBeforeOrEqualTo   = "shouldBeBeforeOrEqualTo"
	KindShouldBeAfter             = "shouldBeAfter"
	KindShouldBeAfterOrEqualTo    = "shouldBeAfterOrEqualTo"
	KindShouldBeBetween           = "shouldBeBetween"
	KindShouldBeCloseTo           = "shouldBeCloseTo"
	KindShouldContain             = "shouldContain"
	KindShouldNotContain          = "shouldNotContain"
	KindShouldStartWith           = "shouldStartWith"
	KindShouldEndWith             = "shouldEndWith"
	KindShouldMatchPattern        = "shouldMatchPattern"
	KindShouldHaveLength          = "shouldHaveLength"
	KindShouldBeEmpty             = "shouldBeEmpty"
	KindShouldNotBeEmpty          = "shouldNotBeEmpty"
	KindShouldBeEqualIgnoringCase = "shouldBeEqualIgnoringCase"
	KindShouldBeUUID              = "shouldBeUUID"
	KindShouldBePresent           = "shouldBePresent"
	KindShouldBeEmptyOptional     = "shouldBeEmptyOptional"
	KindShouldContainValue        = "shouldContainValue"
	KindShouldNotContainValue     = "shouldNotContainValue"
	KindShouldHaveValue           = "shouldHaveValue"
	KindShouldHaveURLComponent    = "shouldHaveURLComponent"
	KindShouldHaveUserInfo        = "shouldHaveUserInfo"
	KindShouldHaveParameter       = "shouldHaveParameter"
	KindShouldBeValidURL          = "shouldBeValidURL"
	KindShouldBeValidJSON         = "shouldBeValidJSON"
	KindShouldHaveJSONPath        = "shouldHaveJSONPath"
	KindShouldNotHaveJSONPath     = "shouldNotHaveJSONPath"
	KindShouldMatchJSONSchema     = "shouldMatchJSONSchema"
	KindShouldHaveJSONType        = "shouldHaveJSONType"
	KindShouldHaveJSONPathValue   = "shouldHaveJSONPathValue"
	KindShouldNotHaveParameter    = "shouldNotHaveParameter"
	KindShouldMatchSnapshot       = "shouldMatchSnapshot"
)

// ActualIsNullMessage is the fixed text of null-actual failures.
const ActualIsNullMessage = "\nExpecting actual not to be null"

// ActualIsNull is raised when a terminal assertion needs a non-nil actual.
func ActualIsNull() Message {
	return NewMessage(KindActualIsNull, ActualIsNullMessage)
}

// usingStrategy appends the comparison strategy name when it is not the
// standard one.
func usingStrategy(m Message, s comparison.Strategy) Message {
	if comparison.IsStandard(s) {
		return m
	}
	if !strings.HasSuffix(m.Format, "\n") {
		m = m.Append("\n")
	}
	return m.Append("when comparing values using %s", Literal("strategy", s.String()))
}

func ShouldBeEqual(actual, expected any, s comparison.Strategy) Message {
	m := NewMessage(KindShouldBeEqual, "\nexpected: %s\n but was: %s\n",
		Value("expected", expected), Value("actual", actual))
	return usingStrategy(m, s).WithValues(actual, expected)
}

// ShouldBeEqualWithTypes is ShouldBeEqual for values whose representations
// are identical; the types are printed to tell them apart.
func ShouldBeEqualWithTypes(actual, expected any, actualType, expectedType string, s comparison.Strategy) Message {
	m := NewMessage(KindShouldBeEqual, "\nexpected: %s (%s)\n but was: %s (%s)\n",
		Value("expected", expected), Literal("expectedType", expectedType),
		Value("actual", actual), Literal("actualType", actualType))
	return usingStrategy(m, s).WithValues(actual, expected)
}

func ShouldNotBeEqual(actual, other any, s comparison.Strategy) Message {
	m := NewMessage(KindShouldNotBeEqual, "\nExpecting actual:\n  %s\nnot to be equal to:\n  %s\n",
		Value("actual", actual), Value("other", other))
	return usingStrategy(m, s)
}

func ShouldBeNull(actual any) Message {
	return NewMessage(KindShouldBeNull, "\nExpecting actual:\n  %s\nto be null", Value("actual", actual))
}

func ShouldBeIn(actual, values any, s comparison.Strategy) Message {
	m := NewMessage(KindShouldBeIn, "\nExpecting actual:\n  %s\nto be in:\n  %s\n",
		Value("actual", actual), Value("values", values))
	return usingStrategy(m, s)
}

func ShouldNotBeIn(actual, values any, s comparison.Strategy) Message {
	m := NewMessage(KindShouldNotBeIn, "\nExpecting actual:\n  %s\nnot to be in:\n  %s\n",
		Value("actual", actual), Value("values", values))
	return usingStrategy(m, s)
}

func ShouldBeExactlyInstance(actual any, expectedType, actualType string) Message {
	return NewMessage(KindShouldBeExactlyInstance,
		"\nExpecting actual:\n  %s\nto be exactly an instance of:\n  %s\nbut was an instance of:\n  %s",
		Value("actual", actual), Literal("expectedType", expectedType), Literal("actualType", actualType))
}

func ShouldBeInstance(actual any, expectedType, actualType string) Message {
	return NewMessage(KindShouldBeInstance,
		"\nExpecting actual:\n  %s\nto be an instance of:\n  %s\nbut was instance of:\n  %s",
		Value("actual", actual), Literal("expectedType", expectedType), Literal("actualType", actualType))
}

// ShouldHaveNoNullFieldsExcept lists the fields found null and, separately,
// the fields the caller excluded from the check.
func ShouldHaveNoNullFieldsExcept(actual any, nullFields, excluded []string) Message {
	var m Message
	if len(nullFields) == 1 {
		m = NewMessage(KindShouldHaveNoNullFields,
			"\nExpecting\n  %s\nnot to have any null property or field, but %s was null.\n",
			Value("actual", actual), Value("nullField", nullFields[0]))
	} else {
		m = NewMessage(KindShouldHaveNoNullFields,
			"\nExpecting\n  %s\nnot to have any null property or field, but %s were null.\n",
			Value("actual", actual), Value("nullFields", nullFields))
	}
	if len(excluded) > 0 {
		m = m.Append("Check was performed on all fields/properties except: %s.", Value("excluded", excluded))
	} else {
		m = m.Append("Check was performed on all fields/properties.")
	}
	return m
}

func ShouldHavePropertyOrField(actual any, name string) Message {
	return NewMessage(KindShouldHavePropertyOrField,
		"\nExpecting\n  %s\nto have a property or a field named %s",
		Value("actual", actual), Value("name", name))
}

func ShouldHavePropertyOrFieldWithValue(actual any, name string, expected, value any, s comparison.Strategy) Message {
	m := NewMessage(KindShouldHaveFieldValue,
		"\nExpecting\n  %s\nto have a property or a field named %s with value\n  %s\nbut value was:\n  %s\n",
		Value("actual", actual), Value("name", name), Value("expected", expected), Value("value", value))
	return usingStrategy(m, s).WithValues(value, expected)
}

func ShouldMatch(actual any, description string) Message {
	if description == "" {
		description = "given"
	}
	return NewMessage(KindShouldMatch, "\nExpecting actual:\n  %s\nto match %s predicate.",
		Value("actual", actual), Literal("description", description))
}

func ShouldSatisfy(actual any, cause error) Message {
	return NewMessage(KindShouldSatisfy, "\nExpecting actual:\n  %s\nto satisfy the given requirements but:\n  %s",
		Value("actual", actual), Literal("cause", cause.Error()))
}

func ShouldBeComparable(actual, other any, s comparison.Strategy, cause error) Message {
	return NewMessage(KindShouldBeComparable, "\nExpecting actual:\n  %s\nto be comparable with:\n  %s\nusing %s but: %s",
		Value("actual", actual), Value("other", other), Literal("strategy", s.String()), Literal("cause", cause.Error()))
}

func ordering(kind, relation string, actual, other any, s comparison.Strategy) Message {
	m := NewMessage(kind, "\nExpecting actual:\n  %s\nto be "+relation+":\n  %s\n",
		Value("actual", actual), Value("other", other))
	return usingStrategy(m, s)
}

func ShouldBeLess(actual, other any, s comparison.Strategy) Message {
	return ordering(KindShouldBeLess, "less than", actual, other, s)
}

func ShouldBeLessOrEqual(actual, other any, s comparison.Strategy) Message {
	return ordering(KindShouldBeLessOrEqual, "less than or equal to", actual, other, s)
}

func ShouldBeGreater(actual, other any, s comparison.Strategy) Message {
	return ordering(KindShouldBeGreater, "greater than", actual, other, s)
}

func ShouldBeGreaterOrEqual(actual, other any, s comparison.Strategy) Message {
	return ordering(KindShouldBeGreaterOrEqual, "greater than or equal to", actual, other, s)
}

func temporal(kind, relation string, actual, other any, s comparison.Strategy) Message {
	m := NewMessage(kind, "\nExpecting:\n  <%s>\nto be "+relation+":\n  <%s>\n",
		Value("actual", actual), Value("other", other))
	return usingStrategy(m, s)
}

func ShouldBeBefore(actual, other any, s comparison.Strategy) Message {
	return temporal(KindShouldBeBefore, "strictly before", actual, other, s)
}

func ShouldBeBeforeOrEqualTo(actual, other any, s comparison.Strategy) Message {
	return temporal(KindShouldBeBeforeOrEqualTo, "before or equal to", actual, other, s)
}

func ShouldBeAfter(actual, other any, s comparison.Strategy) Message {
	return temporal(KindShouldBeAfter, "strictly after", actual, other, s)
}

func ShouldBeAfterOrEqualTo(actual, other any, s comparison.Strategy) Message {
	return temporal(KindShouldBeAfterOrEqualTo, "after or equal to", actual, other, s)
}

// ShouldBeBetween renders the range as [start, end] when inclusive and
// ]start, end[ when exclusive.
func ShouldBeBetween(actual, start, end any, inclusiveStart, inclusiveEnd bool, s comparison.Strategy) Message {
	open, closing := "]", "["
	if inclusiveStart {
		open = "["
	}
	if inclusiveEnd {
		closing = "]"
	}
	m := NewMessage(KindShouldBeBetween, "\nExpecting actual:\n  %s\nto be in range:\n  %s%s, %s%s\n",
		Value("actual", actual), Literal("open", open), Value("start", start),
		Value("end", end), Literal("close", closing))
	return usingStrategy(m, s)
}

func ShouldBeCloseTo(actual, expected, offset, difference any) Message {
	return NewMessage(KindShouldBeCloseTo,
		"\nExpecting actual:\n  %s\nto be close to:\n  %s\nby less than %s but difference was %s.\n",
		Value("actual", actual), Value("expected", expected), Value("offset", offset), Value("difference", difference))
}

func ShouldContain(actual, sequence any) Message {
	return NewMessage(KindShouldContain, "\nExpecting actual:\n  %s\nto contain:\n  %s\n",
		Value("actual", actual), Value("sequence", sequence))
}

func ShouldNotContain(actual, sequence any) Message {
	return NewMessage(KindShouldNotContain, "\nExpecting actual:\n  %s\nnot to contain:\n  %s\n",
		Value("actual", actual), Value("sequence", sequence))
}

func ShouldStartWith(actual, prefix any) Message {
	return NewMessage(KindShouldStartWith, "\nExpecting actual:\n  %s\nto start with:\n  %s\n",
		Value("actual", actual), Value("prefix", prefix))
}

func ShouldEndWith(actual, suffix any) Message {
	return NewMessage(KindShouldEndWith, "\nExpecting actual:\n  %s\nto end with:\n  %s\n",
		Value("actual", actual), Value("suffix", suffix))
}

func ShouldMatchPattern(actual any, pattern string) Message {
	return NewMessage(KindShouldMatchPattern, "\nExpecting actual:\n  %s\nto match pattern:\n  %s",
		Value("actual", actual), Value("pattern", pattern))
}

func ShouldHaveLength(actual any, expected, length int) Message {
	return NewMessage(KindShouldHaveLength, "\nExpecting length of:\n  %s\nto be:\n  %s\nbut was:\n  %s",
		Value("actual", actual), Value("expected", expected), Value("length", length)).WithValues(length, expected)
}

func ShouldBeEmpty(actual any) Message {
	return NewMessage(KindShouldBeEmpty, "\nExpecting empty but was: %s", Value("actual", actual))
}

func ShouldNotBeEmpty() Message {
	return NewMessage(KindShouldNotBeEmpty, "\nExpecting actual not to be empty")
}

func ShouldBeEqualIgnoringCase(actual, expected any) Message {
	return NewMessage(KindShouldBeEqualIgnoringCase, "\nExpecting actual:\n  %s\nto be equal to:\n  %s\nwhen ignoring case considerations",
		Value("actual", actual), Value("expected", expected)).WithValues(actual, expected)
}

func ShouldBeUUID(actual any, cause error) Message {
	return NewMessage(KindShouldBeUUID, "\nExpecting actual:\n  %s\nto be a valid UUID but: %s",
		Value("actual", actual), Literal("cause", cause.Error()))
}

// ShouldBePresentMessage is the fixed text raised when an empty Optional is
// expected to hold a value.
const ShouldBePresentMessage = "\nExpecting Optional to contain a value but it was empty."

func ShouldBePresent() Message {
	return NewMessage(KindShouldBePresent, ShouldBePresentMessage)
}

func ShouldBeEmptyOptional(value any) Message {
	return NewMessage(KindShouldBeEmptyOptional, "\nExpecting an empty Optional but was containing value:\n  %s",
		Value("value", value))
}

func ShouldContainValue(actual, expected any, s comparison.Strategy) Message {
	m := NewMessage(KindShouldContainValue, "\nExpecting actual:\n  %s\nto contain:\n  %s\nbut did not.\n",
		Value("actual", actual), Value("expected", expected))
	return usingStrategy(m, s).WithValues(actual, expected)
}

func ShouldContainValueButWasEmpty(expected any) Message {
	return NewMessage(KindShouldContainValue, "\nExpecting Optional to contain:\n  %s\nbut was empty.",
		Value("expected", expected))
}

func ShouldNotContainValue(actual, value any, s comparison.Strategy) Message {
	m := NewMessage(KindShouldNotContainValue, "\nExpecting actual:\n  %s\nnot to contain:\n  %s\n",
		Value("actual", actual), Value("value", value))
	return usingStrategy(m, s)
}

func ShouldHaveValue(actual, expected any, s comparison.Strategy) Message {
	m := NewMessage(KindShouldHaveValue, "\nExpecting\n  %s\nto have value:\n  %s\nbut did not.\n",
		Value("actual", actual), Value("expected", expected))
	return usingStrategy(m, s).WithValues(actual, expected)
}

// ShouldHaveURLComponent is the single structural mismatch for URLs. An empty
// component on either side renders as null.
func ShouldHaveURLComponent(kind, component string, url any, expected, actual string) Message {
	return NewMessage(kind, "\nExpecting %s of\n  %s\nto be:\n  %s\nbut was:\n  %s",
		Literal("component", component), Value("url", url),
		Value("expected", emptyAsNull(expected)), Value("actual", emptyAsNull(actual))).
		WithValues(emptyAsNull(actual), emptyAsNull(expected))
}

func ShouldHaveUserInfo(url any, expected, actual string) Message {
	return ShouldHaveURLComponent(KindShouldHaveUserInfo, "user info", url, expected, actual)
}

func ShouldHaveParameter(url any, name string, expected any, values []string) Message {
	return NewMessage(KindShouldHaveParameter,
		"\nExpecting URL:\n  %s\nto have parameter %s with value %s but parameter values were:\n  %s",
		Value("url", url), Value("name", name), Value("expected", expected), Value("values", values))
}

func ShouldHaveParameterNamed(url any, name string) Message {
	return NewMessage(KindShouldHaveParameter, "\nExpecting URL:\n  %s\nto have parameter:\n  %s\nbut was missing",
		Value("url", url), Value("name", name))
}

func ShouldNotHaveParameter(url any, name string, values []string) Message {
	return NewMessage(KindShouldNotHaveParameter,
		"\nExpecting URL:\n  %s\nnot to have parameter:\n  %s\nbut parameter values were:\n  %s",
		Value("url", url), Value("name", name), Value("values", values))
}

func ShouldBeValidURL(raw string, cause error) Message {
	return NewMessage(KindShouldBeValidURL, "\nExpecting actual:\n  %s\nto be a valid URL but: %s",
		Value("actual", raw), Literal("cause", cause.Error()))
}

func ShouldBeValidJSON(actual any, cause error) Message {
	return NewMessage(KindShouldBeValidJSON, "\nExpecting actual:\n  %s\nto be valid JSON but: %s",
		Value("actual", actual), Literal("cause", cause.Error()))
}

func ShouldHaveJSONPath(document any, path string) Message {
	return NewMessage(KindShouldHaveJSONPath, "\nExpecting JSON document:\n  %s\nto have path:\n  %s",
		Value("document", document), Value("path", path))
}

func ShouldNotHaveJSONPath(document any, path string, found any) Message {
	return NewMessage(KindShouldNotHaveJSONPath, "\nExpecting JSON document:\n  %s\nnot to have path:\n  %s\nbut found:\n  %s",
		Value("document", document), Value("path", path), Value("found", found))
}

func ShouldHaveJSONType(document any, path, expected, actual string) Message {
	return NewMessage(KindShouldHaveJSONType, "\nExpecting value at path %s of JSON document:\n  %s\nto be of type:\n  %s\nbut was:\n  %s",
		Value("path", path), Value("document", document), Literal("expected", expected), Literal("actual", actual)).
		WithValues(actual, expected)
}

func ShouldHaveJSONPathValue(document any, path string, actual, expected any, s comparison.Strategy) Message {
	m := NewMessage(KindShouldHaveJSONPathValue, "\nExpecting value at path %s of JSON document:\n  %s\nto be:\n  %s\nbut was:\n  %s",
		Value("path", path), Value("document", document), Value("expected", expected), Value("actual", actual)).
		WithValues(actual, expected)
	return usingStrategy(m, s)
}

func ShouldMatchJSONSchema(document any, violations []string) Message {
	return NewMessage(KindShouldMatchJSONSchema, "\nExpecting JSON document:\n  %s\nto match schema but:\n  - %s",
		Value("document", document), Literal("violations", strings.Join(violations, "\n  - ")))
}

func ShouldMatchSnapshot(actual any, name string, snapshot any) Message {
	return NewMessage(KindShouldMatchSnapshot, "\nExpecting actual:\n  %s\nto match snapshot %s:\n  %s\n",
		Value("actual", actual), Value("name", name), Value("snapshot", snapshot)).WithValues(actual, snapshot)
}

func SnapshotUnavailable(name, reason string) Message {
	return NewMessage(KindShouldMatchSnapshot, "\nExpecting snapshot %s to be comparable but: %s",
		Value("name", name), Literal("reason", reason))
}

func emptyAsNull(s string) any {
	if s == "" {
		return nil
	}
	return s
}
