package assertions

import (
	"github.com/abdul-hamid-achik/affirm/packages/comparison"
	"github.com/abdul-hamid-achik/affirm/packages/failure"
	"github.com/abdul-hamid-achik/affirm/packages/representation"
)

// Chain is the state shared by every assertion family: the actual value, the
// failure description and the test it reports to. S is the concrete family
// type returned by continuations, A the type of the actual value.
//
// A family embeds *Chain[*Family, A] and sets self to the family value, so
// As, WithFailMessage and the other continuations return the family type.
type Chain[S any, A any] struct {
	t                 TestingT
	actual            A
	info              failure.Info
	settings          *Settings
	defaultComparison comparison.Strategy
	self              S
}

// NewChain returns the chain of a custom assertion family. The description
// starts from the settings carried by t (see Configure).
func NewChain[S any, A any](t TestingT, actual A, self S) *Chain[S, A] {
	s := settingsOf(t)
	return &Chain[S, A]{
		t:        t,
		actual:   actual,
		info:     s.info(),
		settings: s,
		self:     self,
	}
}

func deriveChain[S any, A any](t TestingT, s *Settings, info failure.Info, actual A, self S) *Chain[S, A] {
	return &Chain[S, A]{
		t:        t,
		actual:   actual,
		info:     info,
		settings: s,
		self:     self,
	}
}

// Actual returns the value under test.
func (c *Chain[S, A]) Actual() A { return c.actual }

// Info returns the current failure description.
func (c *Chain[S, A]) Info() failure.Info { return c.info }

// As sets the label shown as "[label] " in front of failure messages. Calling
// it again replaces the label.
func (c *Chain[S, A]) As(label string, args ...any) S {
	c.info = c.info.WithLabel(label, args...)
	return c.self
}

// DescribedAs is an alias of As.
func (c *Chain[S, A]) DescribedAs(label string, args ...any) S {
	return c.As(label, args...)
}

// WithFailMessage replaces the computed text of every later failure of this
// chain with message.
func (c *Chain[S, A]) WithFailMessage(message string, args ...any) S {
	c.info = c.info.WithOverridingMessage(message, args...)
	return c.self
}

// WithFailMessageFunc is WithFailMessage with the message built only when an
// assertion fails.
func (c *Chain[S, A]) WithFailMessageFunc(fn func() string) S {
	if fn == nil {
		c.illegal(failure.IllegalArgument("fn", "The fail message supplier should not be null"))
	}
	c.info = c.info.WithLazyOverridingMessage(fn)
	return c.self
}

// UsingComparator sets the strategy used by equality and ordering checks.
func (c *Chain[S, A]) UsingComparator(s comparison.Strategy) S {
	if s == nil {
		c.illegal(failure.IllegalArgument("comparator", "The comparator should not be null"))
	}
	c.info = c.info.WithComparison(s)
	return c.self
}

// UsingDefaultComparator restores the family's default strategy.
func (c *Chain[S, A]) UsingDefaultComparator() S {
	if c.defaultComparison != nil {
		c.info = c.info.WithComparison(c.defaultComparison)
	} else {
		c.info = c.info.WithComparison(c.settings.comparison)
	}
	return c.self
}

// WithRepresentation sets the strategy used to print values in failure
// messages.
func (c *Chain[S, A]) WithRepresentation(r representation.Representation) S {
	if r == nil {
		c.illegal(failure.IllegalArgument("representation", "The representation should not be null"))
	}
	c.info = c.info.WithRepresentation(r)
	return c.self
}

// UsingMessageFormatter sets the template engine used by As and
// WithFailMessage. Sub-chains inherit it.
func (c *Chain[S, A]) UsingMessageFormatter(f failure.Formatter) S {
	if f == nil {
		c.illegal(failure.IllegalArgument("formatter", "The message formatter should not be null"))
	}
	c.info = c.info.WithFormatter(f)
	return c.self
}

// Check reports err, as returned by a validator, and returns the chain.
// Custom families call it from their terminal assertions.
func (c *Chain[S, A]) Check(err error) S {
	if err != nil {
		c.t.Helper()
		report(c.t, c.settings, err)
	}
	return c.self
}

// passed is Check reporting whether err was nil. Sub-chain builders use it
// to skip extraction after a failure that did not stop the test.
func (c *Chain[S, A]) passed(err error) bool {
	if err == nil {
		return true
	}
	c.t.Helper()
	report(c.t, c.settings, err)
	return false
}

func (c *Chain[S, A]) illegal(err *failure.IllegalArgumentError) {
	panic(err)
}

func (c *Chain[S, A]) setDefaultComparison(s comparison.Strategy) {
	c.defaultComparison = s
	c.info = c.info.WithComparison(s)
}

// adoptDefaultComparison records s as the family default but keeps a
// non-standard strategy carried over from the source chain.
func (c *Chain[S, A]) adoptDefaultComparison(s comparison.Strategy) {
	c.defaultComparison = s
	if comparison.IsStandard(c.info.Comparison()) {
		c.info = c.info.WithComparison(s)
	}
}

// Extracting applies fn to the actual value and returns an assertion chain on
// the result. The new chain inherits the comparison strategy, representation
// and message formatter, but not the label or overriding message.
func Extracting[S any, A any, V any](c *Chain[S, A], fn func(A) V) *ObjectAssert[V] {
	if fn == nil {
		c.illegal(failure.IllegalArgument("extractor", "The extractor should not be null"))
	}
	return subChain(c, fn(c.actual))
}

func subChain[S any, A any, V any](c *Chain[S, A], v V) *ObjectAssert[V] {
	return newObjectAssert(c.t, c.settings, c.info.Derive(), v)
}
