package failure

import (
	"fmt"

	"github.com/abdul-hamid-achik/affirm/packages/comparison"
	"github.com/abdul-hamid-achik/affirm/packages/representation"
)

// Formatter resolves a message template and its arguments. It is the template
// engine behind As and WithFailMessage; fmt.Sprintf is the default.
type Formatter func(format string, args ...any) string

// DefaultFormatter applies fmt.Sprintf only when arguments are given, so a
// message containing a literal % survives untouched.
func DefaultFormatter(format string, args ...any) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

// Info is the failure description of an assertion chain. It is a value: every
// With method returns an updated copy and leaves the receiver untouched.
type Info struct {
	label          string
	overriding     string
	overridingFunc func() string
	hasOverriding  bool
	representation representation.Representation
	comparison     comparison.Strategy
	formatter      Formatter
}

// NewInfo returns a description with the given strategies and no label or
// overriding message. Nil strategies fall back to the standard ones.
func NewInfo(r representation.Representation, c comparison.Strategy) Info {
	return Info{representation: r, comparison: c}
}

func (i Info) Label() string { return i.label }

func (i Info) HasLabel() bool { return i.label != "" }

// OverridingMessage returns the message replacing computed failure text, and
// whether one is set. Lazy messages are evaluated on every call.
func (i Info) OverridingMessage() (string, bool) {
	if !i.hasOverriding {
		return "", false
	}
	if i.overridingFunc != nil {
		return i.overridingFunc(), true
	}
	return i.overriding, true
}

func (i Info) Representation() representation.Representation {
	if i.representation == nil {
		return representation.StandardRepresentation
	}
	return i.representation
}

func (i Info) Comparison() comparison.Strategy {
	if i.comparison == nil {
		return comparison.Standard
	}
	return i.comparison
}

func (i Info) Formatter() Formatter {
	if i.formatter == nil {
		return DefaultFormatter
	}
	return i.formatter
}

// WithLabel sets the label shown as "[label] " in front of computed messages.
func (i Info) WithLabel(format string, args ...any) Info {
	i.label = i.Formatter()(format, args...)
	return i
}

// WithOverridingMessage replaces computed failure text with message. Template
// arguments are resolved now, not when the failure is built.
func (i Info) WithOverridingMessage(message string, args ...any) Info {
	i.overriding = i.Formatter()(message, args...)
	i.overridingFunc = nil
	i.hasOverriding = true
	return i
}

// WithLazyOverridingMessage is WithOverridingMessage with the message computed
// only when a failure is built.
func (i Info) WithLazyOverridingMessage(fn func() string) Info {
	i.overriding = ""
	i.overridingFunc = fn
	i.hasOverriding = fn != nil
	return i
}

func (i Info) WithRepresentation(r representation.Representation) Info {
	i.representation = r
	return i
}

func (i Info) WithComparison(c comparison.Strategy) Info {
	i.comparison = c
	return i
}

func (i Info) WithFormatter(f Formatter) Info {
	i.formatter = f
	return i
}

// Derive returns the description of a sub-chain: label and overriding message
// are dropped, strategies and formatter are kept.
func (i Info) Derive() Info {
	return Info{
		representation: i.representation,
		comparison:     i.comparison,
		formatter:      i.formatter,
	}
}

// Format renders v through the description's representation.
func (i Info) Format(v any) string {
	return i.Representation().Format(v)
}
