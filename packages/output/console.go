package output

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/abdul-hamid-achik/affirm/packages/core/config"
	"github.com/abdul-hamid-achik/affirm/packages/snapshot"
	"github.com/fatih/color"
)

// formatValue formats a stored snapshot value for display, summarizing
// collections and truncating long scalars.
func formatValue(v any, maxLen int) string {
	switch val := v.(type) {
	case []any:
		return fmt.Sprintf("[array with %d items]", len(val))
	case map[string]any:
		return fmt.Sprintf("{object with %d keys}", len(val))
	case nil:
		return "null"
	case string:
		v = fmt.Sprintf("%q", val)
	}
	str := fmt.Sprintf("%v", v)
	if runes := []rune(str); len(runes) > maxLen {
		return string(runes[:maxLen]) + "..."
	}
	return str
}

type ConsoleFormatter struct {
	writer  io.Writer
	verbose bool
	noColor bool
}

type ConsoleOption func(*ConsoleFormatter)

func NewConsoleFormatter(opts ...ConsoleOption) *ConsoleFormatter {
	f := &ConsoleFormatter{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.noColor {
		color.NoColor = true
	}
	return f
}

func WithWriter(w io.Writer) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.writer = w
	}
}

func WithVerbose(v bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.verbose = v
	}
}

func WithNoColor(nc bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.noColor = nc
	}
}

// FormatSnapshots prints one block per snapshot file with its keys. In
// verbose mode each key is followed by a summary of the stored value.
func (f *ConsoleFormatter) FormatSnapshots(dir string, files []snapshot.File) {
	cyan := color.New(color.FgCyan).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	if len(files) == 0 {
		fmt.Fprintf(f.writer, "%s no snapshots in %s\n", yellow("-"), dir)
		return
	}

	keys := 0
	for _, file := range files {
		fmt.Fprintf(f.writer, "\n%s %s\n", bold(file.Suite), cyan(fmt.Sprintf("(%s)", file.ModTime.Format(time.DateTime))))

		var values map[string]any
		if f.verbose {
			loaded, err := snapshot.Load(file.Path)
			if err != nil {
				f.FormatError(err)
			}
			values = loaded
		}

		for _, key := range file.Keys {
			if values != nil {
				fmt.Fprintf(f.writer, "  %s = %s\n", key, formatValue(values[key], 60))
				continue
			}
			fmt.Fprintf(f.writer, "  %s\n", key)
		}
		keys += len(file.Keys)
	}

	fmt.Fprintf(f.writer, "\n")
	fmt.Fprintf(f.writer, "Snapshots: %d in %d files\n", keys, len(files))
	fmt.Fprintf(f.writer, "Dir:       %s\n", dir)
	fmt.Fprintf(f.writer, "\n")
}

// FormatCleaned reports how many snapshot files were removed from dir.
func (f *ConsoleFormatter) FormatCleaned(dir string, removed int) {
	green := color.New(color.FgGreen).SprintFunc()
	fmt.Fprintf(f.writer, "%s removed %d snapshot files from %s\n", green("✓"), removed, dir)
}

// FormatConfig prints the effective settings and where they came from.
// An empty source means no config file was found.
func (f *ConsoleFormatter) FormatConfig(cfg *config.Config, source string) {
	bold := color.New(color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()

	if source == "" {
		source = "defaults"
	}
	fmt.Fprintf(f.writer, "%s %s\n\n", bold("Config:"), cyan(source))

	layouts := "built-in"
	if len(cfg.TimeLayouts) > 0 {
		layouts = fmt.Sprintf("%q", cfg.TimeLayouts)
	}
	rows := []struct {
		name  string
		value any
	}{
		{"representation", cfg.Representation},
		{"maxElementsForPrinting", cfg.GetMaxElements()},
		{"timeLayouts", layouts},
		{"snapshotDir", cfg.SnapshotDir},
		{"updateSnapshots", cfg.GetUpdateSnapshots()},
		{"color", cfg.GetColor()},
		{"noColor", cfg.GetNoColor()},
	}
	for _, row := range rows {
		fmt.Fprintf(f.writer, "  %-24s %v\n", row.name, row.value)
	}
	if f.verbose && !cfg.IsDefault() {
		fmt.Fprintf(f.writer, "\n  %s\n", cyan("(differs from defaults)"))
	}
}

// FormatValid reports a config file that passed validation.
func (f *ConsoleFormatter) FormatValid(path string) {
	green := color.New(color.FgGreen).SprintFunc()
	fmt.Fprintf(f.writer, "%s %s\n", green("✓"), path)
}

func (f *ConsoleFormatter) FormatError(err error) {
	red := color.New(color.FgRed).SprintFunc()
	fmt.Fprintf(f.writer, "%s %v\n", red("Error:"), err)
}

func (f *ConsoleFormatter) FormatHeader(version string) {
	bold := color.New(color.Bold).SprintFunc()
	fmt.Fprintf(f.writer, "%s %s\n", bold("affirm"), version)
}
