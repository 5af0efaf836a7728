package config

import (
	"slices"

	"github.com/abdul-hamid-achik/affirm/packages/representation"
	"github.com/abdul-hamid-achik/affirm/packages/snapshot"
)

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Representation:  "standard",
		MaxElements:     representation.DefaultMaxElements,
		TimeLayouts:     nil, // validators.DefaultTimeLayouts
		SnapshotDir:     snapshot.DirName,
		UpdateSnapshots: boolPtr(false),
		Color:           boolPtr(false),
		NoColor:         boolPtr(false),
	}
}

// IsDefault returns true if the config matches defaults
func (c *Config) IsDefault() bool {
	defaults := DefaultConfig()
	return c.Representation == defaults.Representation &&
		c.GetMaxElements() == defaults.MaxElements &&
		slices.Equal(c.TimeLayouts, defaults.TimeLayouts) &&
		c.SnapshotDir == defaults.SnapshotDir &&
		c.GetUpdateSnapshots() == defaults.GetUpdateSnapshots() &&
		getBool(c.Color, false) == getBool(defaults.Color, false) &&
		c.GetNoColor() == defaults.GetNoColor()
}
