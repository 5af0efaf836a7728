package assertions

import (
	"fmt"
	"strings"
	"testing"

	"github.com/abdul-hamid-achik/affirm/packages/comparison"
	"github.com/abdul-hamid-achik/affirm/packages/failure"
	"github.com/abdul-hamid-achik/affirm/packages/optional"
	"github.com/abdul-hamid-achik/affirm/packages/representation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSettings(t *testing.T, opts ...Option) *Settings {
	t.Helper()
	s, err := NewSettings(nil, opts...)
	require.NoError(t, err)
	return s
}

// raise returns a TestingT that panics on failure and uses default settings,
// whatever the environment of the test run.
func raise(t *testing.T, opts ...Option) TestingT {
	t.Helper()
	return Configure(Raise, testSettings(t, opts...))
}

func catchFailure(t *testing.T, fn func()) *failure.AssertionError {
	t.Helper()
	err := failure.Catch(fn)
	var ae *failure.AssertionError
	require.ErrorAs(t, err, &ae)
	return ae
}

func catchIllegal(t *testing.T, fn func()) *failure.IllegalArgumentError {
	t.Helper()
	err := failure.Catch(fn)
	var ie *failure.IllegalArgumentError
	require.ErrorAs(t, err, &ie)
	return ie
}

// recorder is a TestingT that records failures without stopping the test.
type recorder struct {
	name     string
	helpers  int
	failures []any
}

func (r *recorder) Helper() { r.helpers++ }

func (r *recorder) Fatal(args ...any) { r.failures = append(r.failures, args...) }

func (r *recorder) Name() string { return r.name }

var upper = representation.Func(func(v any) string {
	return strings.ToUpper(fmt.Sprint(v))
})

var ignoringCase = comparison.Named("case insensitive", comparison.Equivalence(strings.EqualFold))

func TestAs(t *testing.T) {
	err := catchFailure(t, func() {
		That(raise(t), "foo").As("test description").IsEqualTo("bar")
	})
	assert.Equal(t, "[test description] \nexpected: \"bar\"\n but was: \"foo\"\n", err.Message)
	assert.Contains(t, err.Message, "[test description]")

	t.Run("formats arguments", func(t *testing.T) {
		err := catchFailure(t, func() {
			ThatNumber(raise(t), 1).As("check %d of %s", 2, "three").IsEqualTo(2)
		})
		assert.True(t, strings.HasPrefix(err.Message, "[check 2 of three] "))
	})

	t.Run("last label wins", func(t *testing.T) {
		err := catchFailure(t, func() {
			That(raise(t), 1).As("first").DescribedAs("second").IsNil()
		})
		assert.True(t, strings.HasPrefix(err.Message, "[second] "))
		assert.NotContains(t, err.Message, "first")
	})

	t.Run("label on every family", func(t *testing.T) {
		tests := []struct {
			name string
			fn   func(TestingT)
		}{
			{"string", func(tt TestingT) { ThatString(tt, "abc").As("L").StartsWith("x") }},
			{"number", func(tt TestingT) { ThatNumber(tt, 1.5).As("L").IsNegative() }},
			{"optional", func(tt TestingT) { ThatOptional(tt, optional.Of(1)).As("L").IsEmpty() }},
			{"url", func(tt TestingT) { ThatURLString(tt, "https://example.com").As("L").HasScheme("http") }},
			{"json", func(tt TestingT) { ThatJSON(tt, `{"a":1}`).As("L").HasPath("b") }},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				err := catchFailure(t, func() { tt.fn(raise(t)) })
				assert.True(t, strings.HasPrefix(err.Message, "[L] "), err.Message)
			})
		}
	})
}

func TestWithFailMessage(t *testing.T) {
	err := catchFailure(t, func() {
		That(raise(t), "foo").As("label").WithFailMessage("custom %s %d", "message", 1).IsEqualTo("bar")
	})
	assert.Equal(t, "custom message 1", err.Message)
	assert.Equal(t, failure.KindShouldBeEqual, err.Kind)

	t.Run("literal percent", func(t *testing.T) {
		err := catchFailure(t, func() {
			That(raise(t), 1).WithFailMessage("100% wrong").IsEqualTo(2)
		})
		assert.Equal(t, "100% wrong", err.Message)
	})

	t.Run("lazy", func(t *testing.T) {
		calls := 0
		a := That(raise(t), 1).WithFailMessageFunc(func() string {
			calls++
			return "computed"
		})
		a.IsEqualTo(1)
		assert.Zero(t, calls)

		err := catchFailure(t, func() { a.IsEqualTo(2) })
		assert.Equal(t, "computed", err.Message)
		assert.Equal(t, 1, calls)
	})

	t.Run("nil supplier", func(t *testing.T) {
		ie := catchIllegal(t, func() { That(raise(t), 1).WithFailMessageFunc(nil) })
		assert.Equal(t, "The fail message supplier should not be null", ie.Message)
	})
}

func TestWithRepresentation(t *testing.T) {
	err := catchFailure(t, func() {
		That(raise(t), "foo").WithRepresentation(upper).IsEqualTo("bar")
	})
	assert.Equal(t, "\nexpected: BAR\n but was: FOO\n", err.Message)

	once := catchFailure(t, func() {
		That(raise(t), "foo").WithRepresentation(upper).IsEqualTo("bar")
	})
	twice := catchFailure(t, func() {
		That(raise(t), "foo").WithRepresentation(upper).WithRepresentation(upper).IsEqualTo("bar")
	})
	assert.Equal(t, once.Message, twice.Message)

	ie := catchIllegal(t, func() { That(raise(t), 1).WithRepresentation(nil) })
	assert.Equal(t, "representation", ie.Param)
}

func TestUsingComparator(t *testing.T) {
	That(raise(t), "FOO").UsingComparator(ignoringCase).IsEqualTo("foo")

	err := catchFailure(t, func() {
		That(raise(t), "foo").UsingComparator(ignoringCase).IsEqualTo("bar")
	})
	assert.Contains(t, err.Message, "when comparing values using case insensitive")

	t.Run("incompatible comparator fails naturally", func(t *testing.T) {
		err := catchFailure(t, func() {
			That(raise(t), 1).UsingComparator(ignoringCase).IsEqualTo(1)
		})
		assert.Equal(t, failure.KindShouldBeEqual, err.Kind)
	})

	t.Run("restore default", func(t *testing.T) {
		a := That(raise(t), "FOO").UsingComparator(ignoringCase).UsingDefaultComparator()
		assert.True(t, comparison.IsStandard(a.Info().Comparison()))
		catchFailure(t, func() { a.IsEqualTo("foo") })

		j := ThatJSON(raise(t), `{}`).UsingComparator(comparison.AlwaysEqual).UsingDefaultComparator()
		assert.Equal(t, comparison.JSON, j.Info().Comparison())
	})

	ie := catchIllegal(t, func() { That(raise(t), 1).UsingComparator(nil) })
	assert.Equal(t, "The comparator should not be null", ie.Message)
}

func TestUsingMessageFormatter(t *testing.T) {
	braces := func(format string, args ...any) string {
		out := format
		for _, arg := range args {
			out = strings.Replace(out, "{}", fmt.Sprint(arg), 1)
		}
		return out
	}

	a := That(raise(t), 1).UsingMessageFormatter(braces).As("item {} of {}", 3, 5)
	assert.Equal(t, "item 3 of 5", a.Info().Label())

	sub := Extracting(a.Chain, func(n int) int { return n * 2 })
	sub.As("double of {}", 1)
	assert.Equal(t, "double of 1", sub.Info().Label())
}

func TestSubChain(t *testing.T) {
	parent := ThatOptional(raise(t), optional.Of("foo")).
		As("L").
		WithFailMessage("overridden").
		UsingComparator(ignoringCase).
		WithRepresentation(upper)

	sub := parent.Get()
	assert.False(t, sub.Info().HasLabel())
	_, overridden := sub.Info().OverridingMessage()
	assert.False(t, overridden)

	sub.IsEqualTo("FOO")

	err := catchFailure(t, func() { sub.IsEqualTo("bar") })
	assert.NotContains(t, err.Message, "[L]")
	assert.NotEqual(t, "overridden", err.Message)
	assert.Contains(t, err.Message, "expected: BAR")
	assert.Contains(t, err.Message, "when comparing values using case insensitive")

	t.Run("parent keeps its description", func(t *testing.T) {
		err := catchFailure(t, func() { parent.IsEmpty() })
		assert.Equal(t, "overridden", err.Message)
	})
}

func TestExtracting(t *testing.T) {
	u := user{Name: "ada", Address: &address{City: "London"}}

	Extracting(That(raise(t), u).Chain, func(u user) string { return u.Name }).IsEqualTo("ada")

	err := catchFailure(t, func() {
		Extracting(That(raise(t), u).As("user").Chain, func(u user) *address { return u.Address }).IsNil()
	})
	assert.False(t, strings.HasPrefix(err.Message, "[user]"))

	ie := catchIllegal(t, func() { Extracting[*ObjectAssert[user], user, string](That(raise(t), u).Chain, nil) })
	assert.Equal(t, "The extractor should not be null", ie.Message)
}

func TestRaise(t *testing.T) {
	err := failure.Catch(func() { That(Raise, 1).IsEqualTo(2) })
	assert.ErrorIs(t, err, failure.ErrAssertionFailed)

	err = failure.Catch(func() { Raise.Fatal("plain", "text") })
	var ae *failure.AssertionError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "plaintext", ae.Message)

	assert.NoError(t, failure.Catch(func() { That(Raise, 1).IsEqualTo(1) }))
}

func TestNullActual(t *testing.T) {
	var p *user
	err := catchFailure(t, func() { That(raise(t), p).IsNotNil() })
	assert.ErrorIs(t, err, failure.ErrActualIsNull)
	assert.Equal(t, failure.ActualIsNullMessage, err.Message)

	err = catchFailure(t, func() { That(raise(t), p).As("L").HasFieldOrProperty("Name") })
	assert.Equal(t, "[L] "+failure.ActualIsNullMessage, err.Message)
}

func TestReportToTestingT(t *testing.T) {
	r := &recorder{}
	tt := Configure(r, testSettings(t))

	That(tt, 1).IsEqualTo(2).IsEqualTo(1).IsNotEqualTo(1)

	require.Len(t, r.failures, 2)
	assert.NotZero(t, r.helpers)
	var ae *failure.AssertionError
	require.ErrorAs(t, r.failures[0].(error), &ae)
	assert.Equal(t, failure.KindShouldBeEqual, ae.Kind)

	t.Run("illegal arguments panic", func(t *testing.T) {
		r := &recorder{}
		ie := catchIllegal(t, func() { That(Configure(r, testSettings(t)), 1).IsIn() })
		assert.Equal(t, "The given values should not be empty", ie.Message)
		assert.Empty(t, r.failures)
	})

	t.Run("sub-chain after failure", func(t *testing.T) {
		r := &recorder{}
		sub := ThatOptional(Configure(r, testSettings(t)), optional.Empty[int]()).Get()
		require.Len(t, r.failures, 1)
		assert.Equal(t, failure.ShouldBePresentMessage, r.failures[0].(error).Error())
		assert.Zero(t, sub.Actual())
	})
}

func TestColoredReports(t *testing.T) {
	r := &recorder{}
	That(Configure(r, testSettings(t, WithColor(true))), "foo").IsEqualTo("bar")

	require.Len(t, r.failures, 1)
	text, ok := r.failures[0].(string)
	require.True(t, ok)
	assert.Contains(t, text, "\x1b[31m")
	assert.Contains(t, text, "expected: \"bar\"")

	t.Run("raise keeps the typed error", func(t *testing.T) {
		err := catchFailure(t, func() {
			That(raise(t, WithColor(true)), "foo").IsEqualTo("bar")
		})
		assert.NotContains(t, err.Message, "\x1b[")
	})
}

func TestConfigure(t *testing.T) {
	s := testSettings(t, WithDefaultRepresentation(upper))

	tt := Configure(Raise, s)
	err := catchFailure(t, func() { That(tt, "foo").IsEqualTo("bar") })
	assert.Equal(t, "\nexpected: BAR\n but was: FOO\n", err.Message)

	assert.Equal(t, Raise, Configure(Raise, nil))

	other := testSettings(t)
	again := Configure(tt, other)
	assert.Same(t, other, settingsOf(again))
	_, nested := again.(configured).TestingT.(configured)
	assert.False(t, nested)

	r := &recorder{name: "TestSomething/case"}
	assert.Equal(t, "TestSomething/case", testName(Configure(r, s)))
	assert.Equal(t, "", testName(Configure(Raise, s)))
}
