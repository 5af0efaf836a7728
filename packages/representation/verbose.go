package representation

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// Verbose renders values as go-spew dumps. Map keys are sorted and pointer
// addresses omitted so the output is stable between runs.
type Verbose struct {
	config *spew.ConfigState
}

// NewVerbose returns a Verbose strategy.
func NewVerbose() *Verbose {
	return &Verbose{config: &spew.ConfigState{
		Indent:                  "  ",
		SortKeys:                true,
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		SpewKeys:                true,
	}}
}

// VerboseRepresentation is the shared go-spew strategy.
var VerboseRepresentation Representation = NewVerbose()

func (v *Verbose) Format(value any) (out string) {
	if IsNil(value) {
		return NullString
	}
	defer func() {
		if r := recover(); r != nil {
			out = fmt.Sprintf("%#v", value)
		}
	}()
	return strings.TrimSuffix(v.config.Sdump(value), "\n")
}

// ByName resolves a strategy from its configuration name.
func ByName(name string, maxElements int) (Representation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "standard":
		return NewStandard(maxElements), nil
	case "unicode":
		return NewUnicode(maxElements), nil
	case "verbose", "spew":
		return NewVerbose(), nil
	default:
		return nil, fmt.Errorf("unknown representation %q (expected standard, unicode or verbose)", name)
	}
}
