package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/abdul-hamid-achik/affirm/packages/representation"
	"gopkg.in/yaml.v3"
)

// Config represents the affirm configuration
type Config struct {
	// Representation names the value printer: standard, unicode or verbose.
	Representation string `json:"representation,omitempty" yaml:"representation,omitempty"`
	MaxElements    int    `json:"maxElementsForPrinting,omitempty" yaml:"maxElementsForPrinting,omitempty"`

	// TimeLayouts parse time bounds given as text.
	TimeLayouts []string `json:"timeLayouts,omitempty" yaml:"timeLayouts,omitempty"`

	SnapshotDir     string `json:"snapshotDir,omitempty" yaml:"snapshotDir,omitempty"`
	UpdateSnapshots *bool  `json:"updateSnapshots,omitempty" yaml:"updateSnapshots,omitempty"`

	// Color enables colored failure reports; NoColor turns off CLI colors.
	Color   *bool `json:"color,omitempty" yaml:"color,omitempty"`
	NoColor *bool `json:"noColor,omitempty" yaml:"noColor,omitempty"`
}

// Environment variables read by ApplyEnv.
const (
	EnvRepresentation  = "AFFIRM_REPRESENTATION"
	EnvUpdateSnapshots = "AFFIRM_UPDATE_SNAPSHOTS"
	EnvSnapshotDir     = "AFFIRM_SNAPSHOT_DIR"
	EnvNoColor         = "NO_COLOR"
)

// boolPtr returns a pointer to a bool value
func boolPtr(b bool) *bool {
	return &b
}

// BoolPtr is exported version of boolPtr for external use
func BoolPtr(b bool) *bool {
	return &b
}

// getBool returns the value of a bool pointer, or the default if nil
func getBool(b *bool, defaultVal bool) bool {
	if b == nil {
		return defaultVal
	}
	return *b
}

// GetUpdateSnapshots returns the update snapshots setting, defaulting to false
func (c *Config) GetUpdateSnapshots() bool {
	return getBool(c.UpdateSnapshots, false)
}

// GetColor returns the colored reports setting, defaulting to false.
// NoColor wins over Color.
func (c *Config) GetColor() bool {
	return getBool(c.Color, false) && !c.GetNoColor()
}

// GetNoColor returns the no color setting, defaulting to false
func (c *Config) GetNoColor() bool {
	return getBool(c.NoColor, false)
}

// GetMaxElements returns the print limit for collections
func (c *Config) GetMaxElements() int {
	if c.MaxElements <= 0 {
		return representation.DefaultMaxElements
	}
	return c.MaxElements
}

// ConfigFilenames contains the possible config file names
var ConfigFilenames = []string{
	".affirm.yaml",
	".affirm.yml",
	"affirm.yaml",
	".affirm.json",
}

// LoadConfig loads configuration from the specified path or searches for config files
func LoadConfig(path string) (*Config, error) {
	if path != "" {
		return loadConfigFromFile(path)
	}

	// Search for config file in current directory
	return FindAndLoadConfig(".")
}

// FindAndLoadConfig searches for a config file in the given directory
func FindAndLoadConfig(dir string) (*Config, error) {
	if path := FindConfigFile(dir); path != "" {
		return loadConfigFromFile(path)
	}

	// Return defaults if no config file found
	return DefaultConfig(), nil
}

// FindConfigFile returns the first config file present in dir, or "".
func FindConfigFile(dir string) string {
	for _, filename := range ConfigFilenames {
		configPath := filepath.Join(dir, filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
	}
	return ""
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// loadConfigFromFile loads configuration from a specific file
func loadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if isJSON(path) {
		err = json.Unmarshal(data, config)
	} else {
		err = yaml.Unmarshal(data, config)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return config, nil
}

// ApplyEnv returns a copy of the config with environment overrides applied.
func (c *Config) ApplyEnv() (*Config, error) {
	return c.applyEnv(os.LookupEnv)
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) (*Config, error) {
	result := *c

	if v, ok := lookup(EnvRepresentation); ok && v != "" {
		result.Representation = v
	}
	if v, ok := lookup(EnvSnapshotDir); ok && v != "" {
		result.SnapshotDir = v
	}
	if v, ok := lookup(EnvUpdateSnapshots); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvUpdateSnapshots, err)
		}
		result.UpdateSnapshots = boolPtr(b)
	}
	// Any value disables color, see https://no-color.org.
	if v, ok := lookup(EnvNoColor); ok && v != "" {
		result.NoColor = boolPtr(true)
	}

	return &result, nil
}

// Validate checks that the config can build assertion settings.
func (c *Config) Validate() error {
	if _, err := representation.ByName(c.Representation, c.MaxElements); err != nil {
		return err
	}
	if c.MaxElements < 0 {
		return fmt.Errorf("maxElementsForPrinting must not be negative, got %d", c.MaxElements)
	}
	for i, layout := range c.TimeLayouts {
		if strings.TrimSpace(layout) == "" {
			return fmt.Errorf("timeLayouts[%d] is empty", i)
		}
	}
	return nil
}

// Merge merges another config into this one, with other taking precedence
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}

	result := *c // Copy

	if other.Representation != "" {
		result.Representation = other.Representation
	}
	if other.MaxElements > 0 {
		result.MaxElements = other.MaxElements
	}
	if other.SnapshotDir != "" {
		result.SnapshotDir = other.SnapshotDir
	}

	// Boolean flags - only override if explicitly set in other config
	if other.UpdateSnapshots != nil {
		result.UpdateSnapshots = other.UpdateSnapshots
	}
	if other.Color != nil {
		result.Color = other.Color
	}
	if other.NoColor != nil {
		result.NoColor = other.NoColor
	}

	if len(other.TimeLayouts) > 0 {
		result.TimeLayouts = other.TimeLayouts
	}

	return &result
}

// SaveConfig saves the configuration to a file, as JSON for .json paths and
// YAML otherwise
func (c *Config) SaveConfig(path string) error {
	data, err := c.Marshal(!isJSON(path))
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Marshal encodes the config as YAML or indented JSON.
func (c *Config) Marshal(asYAML bool) ([]byte, error) {
	if asYAML {
		return yaml.Marshal(c)
	}
	return json.MarshalIndent(c, "", "  ")
}
