package cmd

import (
	"fmt"

	"github.com/abdul-hamid-achik/affirm/packages/core/config"
	"github.com/spf13/cobra"
)

var (
	showJSON bool
	showYAML bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the affirm configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the configuration used by affirm.Default(): the config file
found by --config or in the current directory, with AFFIRM_* and NO_COLOR
environment overrides applied.

Examples:
  affirm config show
  affirm config show --json`,
	Args: cobra.NoArgs,
	RunE: configShowCommand,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate [file...]",
	Short: "Check config files",
	Long: `Check that config files parse and hold valid settings. Without
arguments the config found in the current directory is checked.`,
	RunE: configValidateCommand,
}

func init() {
	configShowCmd.Flags().BoolVar(&showJSON, "json", false, "Print as JSON")
	configShowCmd.Flags().BoolVar(&showYAML, "yaml", false, "Print as YAML")
	configShowCmd.MarkFlagsMutuallyExclusive("json", "yaml")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)
}

func configShowCommand(cmd *cobra.Command, args []string) error {
	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}

	if showJSON || showYAML {
		data, err := cfg.Marshal(showYAML)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	newFormatter(cmd, cfg).FormatConfig(cfg, source)
	return nil
}

func configValidateCommand(cmd *cobra.Command, args []string) error {
	files := args
	if len(files) == 0 {
		path := configFlag
		if path == "" {
			path = config.FindConfigFile(".")
		}
		if path == "" {
			return withExitCode(ExitConfigError, fmt.Errorf("no config file found (looked for %v)", config.ConfigFilenames))
		}
		files = []string{path}
	}

	formatter := newFormatter(cmd, nil)
	invalid := 0
	for _, path := range files {
		cfg, err := config.LoadConfig(path)
		if err == nil {
			err = cfg.Validate()
		}
		if err != nil {
			formatter.FormatError(fmt.Errorf("%s: %w", path, err))
			invalid++
			continue
		}
		formatter.FormatValid(path)
	}

	if invalid > 0 {
		return withExitCode(ExitConfigError, fmt.Errorf("%d of %d config files are invalid", invalid, len(files)))
	}
	return nil
}
