package failure

import (
	"fmt"
	"strings"
)

// Operand is a named value substituted into a message template.
type Operand struct {
	Name    string
	Value   any
	literal bool
}

// Value returns an operand rendered through the active representation.
func Value(name string, v any) Operand {
	return Operand{Name: name, Value: v}
}

// Literal returns an operand inserted verbatim, bypassing the representation.
func Literal(name string, text string) Operand {
	return Operand{Name: name, Value: text, literal: true}
}

// Message is a failure kind: an identifier, a "should ..." template with one
// %s verb per operand, and the ordered operands.
type Message struct {
	Kind     string
	Format   string
	Operands []Operand

	// Actual and Expected are carried onto the AssertionError for tooling
	// that wants the raw values.
	Actual      any
	Expected    any
	HasExpected bool
}

// NewMessage returns a message of the given kind.
func NewMessage(kind, format string, operands ...Operand) Message {
	return Message{Kind: kind, Format: format, Operands: operands}
}

// WithValues records the raw actual and expected values.
func (m Message) WithValues(actual, expected any) Message {
	m.Actual = actual
	m.Expected = expected
	m.HasExpected = true
	return m
}

// Append adds a template suffix with its operands.
func (m Message) Append(format string, operands ...Operand) Message {
	m.Format += format
	m.Operands = append(append([]Operand(nil), m.Operands...), operands...)
	return m
}

// Render substitutes the operands through the description's representation,
// without label or overriding message.
func (m Message) Render(info Info) string {
	args := make([]any, len(m.Operands))
	for idx, op := range m.Operands {
		if op.literal {
			args[idx] = op.Value
			continue
		}
		args[idx] = info.Format(op.Value)
	}
	return fmt.Sprintf(m.Format, args...)
}

// Build renders the final failure text for msg under info. An overriding
// message is returned unchanged; otherwise the template is rendered and the
// label, if any, prefixed as "[label] ".
func Build(info Info, msg Message) string {
	if overriding, ok := info.OverridingMessage(); ok {
		return overriding
	}

	var b strings.Builder
	if info.HasLabel() {
		b.WriteString("[")
		b.WriteString(info.Label())
		b.WriteString("] ")
	}
	b.WriteString(msg.Render(info))
	return b.String()
}

// Fail builds an AssertionError for msg under info.
func Fail(info Info, msg Message) *AssertionError {
	return &AssertionError{
		Kind:        msg.Kind,
		Message:     Build(info, msg),
		Actual:      msg.Actual,
		Expected:    msg.Expected,
		HasExpected: msg.HasExpected,
	}
}
