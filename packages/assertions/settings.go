package assertions

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/abdul-hamid-achik/affirm/packages/comparison"
	"github.com/abdul-hamid-achik/affirm/packages/core/config"
	"github.com/abdul-hamid-achik/affirm/packages/failure"
	"github.com/abdul-hamid-achik/affirm/packages/introspection"
	"github.com/abdul-hamid-achik/affirm/packages/representation"
	"github.com/abdul-hamid-achik/affirm/packages/snapshot"
)

// Settings are the defaults new chains start from. They never change after
// construction; derive variations with With.
type Settings struct {
	representation representation.Representation
	comparison     comparison.Strategy
	formatter      failure.Formatter
	introspector   introspection.Introspector
	timeLayouts    []string
	snapshots      *snapshot.Manager
	color          bool
}

// Option adjusts Settings under construction.
type Option func(*Settings)

// WithDefaultRepresentation sets the representation of new chains.
func WithDefaultRepresentation(r representation.Representation) Option {
	return func(s *Settings) {
		s.representation = r
	}
}

// WithDefaultComparison sets the comparison strategy of new chains.
func WithDefaultComparison(c comparison.Strategy) Option {
	return func(s *Settings) {
		s.comparison = c
	}
}

// WithMessageFormatter sets the template engine of new chains.
func WithMessageFormatter(f failure.Formatter) Option {
	return func(s *Settings) {
		s.formatter = f
	}
}

// WithIntrospector sets how fields and properties are read.
func WithIntrospector(i introspection.Introspector) Option {
	return func(s *Settings) {
		s.introspector = i
	}
}

// WithTimeLayouts sets the layouts tried for time bounds given as text.
func WithTimeLayouts(layouts ...string) Option {
	return func(s *Settings) {
		s.timeLayouts = slices.Clone(layouts)
	}
}

// WithSnapshots sets the snapshot store.
func WithSnapshots(m *snapshot.Manager) Option {
	return func(s *Settings) {
		s.snapshots = m
	}
}

// WithColor enables or disables colored failure reports.
func WithColor(enabled bool) Option {
	return func(s *Settings) {
		s.color = enabled
	}
}

// NewSettings builds Settings from a configuration. A nil cfg means the
// defaults.
func NewSettings(cfg *config.Config, opts ...Option) (*Settings, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	r, err := representation.ByName(cfg.Representation, cfg.GetMaxElements())
	if err != nil {
		return nil, err
	}

	s := &Settings{
		representation: r,
		comparison:     comparison.Standard,
		formatter:      failure.DefaultFormatter,
		introspector:   introspection.Default,
		timeLayouts:    slices.Clone(cfg.TimeLayouts),
		snapshots:      snapshot.NewManager(cfg.SnapshotDir, cfg.GetUpdateSnapshots()),
		color:          cfg.GetColor(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// With returns a copy of s with opts applied.
func (s *Settings) With(opts ...Option) *Settings {
	cp := *s
	cp.timeLayouts = slices.Clone(s.timeLayouts)
	for _, opt := range opts {
		opt(&cp)
	}
	return &cp
}

func (s *Settings) Representation() representation.Representation { return s.representation }

func (s *Settings) Comparison() comparison.Strategy { return s.comparison }

func (s *Settings) Snapshots() *snapshot.Manager { return s.snapshots }

// info is the description a new chain starts with.
func (s *Settings) info() failure.Info {
	return failure.NewInfo(s.representation, s.comparison).WithFormatter(s.formatter)
}

func (s *Settings) introspect() introspection.Introspector {
	if s.introspector == nil {
		return introspection.Default
	}
	return s.introspector
}

var defaultSettings = sync.OnceValue(func() *Settings {
	cfg, err := config.LoadConfig("")
	if err != nil {
		slog.Warn("affirm: ignoring configuration file", "error", err)
		cfg = config.DefaultConfig()
	}
	if withEnv, err := cfg.ApplyEnv(); err != nil {
		slog.Warn("affirm: ignoring environment overrides", "error", err)
	} else {
		cfg = withEnv
	}

	s, err := NewSettings(cfg)
	if err != nil {
		slog.Warn("affirm: using default settings", "error", err)
		s, _ = NewSettings(nil)
	}
	return s
})

// Default returns the process-wide settings, loaded once from the affirm
// configuration file of the working directory and the environment.
func Default() *Settings {
	return defaultSettings()
}
