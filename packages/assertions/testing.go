package assertions

import (
	"errors"
	"fmt"

	"github.com/abdul-hamid-achik/affirm/packages/failure"
	"github.com/fatih/color"
)

// TestingT is the part of *testing.T an assertion chain reports to.
// *testing.T and *testing.B satisfy it.
type TestingT interface {
	Helper()
	Fatal(args ...any)
}

// named is implemented by *testing.T; snapshot assertions use it to find
// the suite file.
type named interface {
	Name() string
}

type raiser struct{}

func (raiser) Helper() {}

// Fatal panics with the failure signal it receives.
func (raiser) Fatal(args ...any) {
	if len(args) == 1 {
		if err, ok := args[0].(*failure.AssertionError); ok {
			panic(err)
		}
	}
	panic(&failure.AssertionError{Kind: "fatal", Message: fmt.Sprint(args...)})
}

// Raise is a TestingT that panics with the *failure.AssertionError of a
// failed assertion instead of stopping a test. Recover it with failure.Catch.
var Raise TestingT = raiser{}

// configured carries Settings along with the TestingT they apply to.
type configured struct {
	TestingT
	settings *Settings
}

func (c configured) Name() string {
	if n, ok := c.TestingT.(named); ok {
		return n.Name()
	}
	return ""
}

// Configure returns a TestingT whose chains use s instead of the defaults.
// A nil s keeps the settings t already carries.
func Configure(t TestingT, s *Settings) TestingT {
	if s == nil {
		return t
	}
	if c, ok := t.(configured); ok {
		t = c.TestingT
	}
	return configured{TestingT: t, settings: s}
}

func settingsOf(t TestingT) *Settings {
	if c, ok := t.(configured); ok {
		return c.settings
	}
	return Default()
}

func isRaiser(t TestingT) bool {
	if c, ok := t.(configured); ok {
		t = c.TestingT
	}
	_, ok := t.(raiser)
	return ok
}

func testName(t TestingT) string {
	if n, ok := t.(named); ok {
		return n.Name()
	}
	return ""
}

// report hands err to t. Illegal arguments are programming errors and panic
// regardless of t.
func report(t TestingT, s *Settings, err error) {
	t.Helper()

	var illegal *failure.IllegalArgumentError
	if errors.As(err, &illegal) {
		panic(illegal)
	}

	if s.color && !isRaiser(t) {
		c := color.New(color.FgRed)
		c.EnableColor()
		t.Fatal(c.Sprint(err.Error()))
		return
	}
	t.Fatal(err)
}
