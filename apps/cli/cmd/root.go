package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/abdul-hamid-achik/affirm/packages/core/config"
	"github.com/abdul-hamid-achik/affirm/packages/output"
	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var (
	configFlag  string
	noColorFlag bool
	verboseFlag int
)

var rootCmd = &cobra.Command{
	Use:   "affirm",
	Short: "Fluent assertions for Go tests.",
	Long: `affirm is the companion tool of the affirm assertion library.
It manages the snapshot files written by MatchesSnapshot and the
.affirm.yaml file that configures representation, comparison of time
bounds, snapshot storage and colored failure reports.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// exitError carries the process exit code of a failed command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

func withExitCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &exitError{code: code, err: err}
}

func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return ExitFailure
}

func Execute(v, bt string) {
	version = v
	buildTime = bt
	if err := rootCmd.Execute(); err != nil {
		output.NewConsoleFormatter(output.WithWriter(os.Stderr), output.WithNoColor(noColorFlag)).FormatError(err)
		os.Exit(exitCode(err))
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", getEnvString("AFFIRM_CONFIG", ""), "Path to config file (env: AFFIRM_CONFIG)")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().CountVarP(&verboseFlag, "verbose", "v", "Verbose output")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(snapshotsCmd)
}

func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// loadConfig resolves the --config flag, or the first config file in the
// working directory, and applies environment overrides. The returned source
// is empty when the defaults were used.
func loadConfig() (*config.Config, string, error) {
	source := configFlag
	if source == "" {
		source = config.FindConfigFile(".")
	}

	cfg, err := config.LoadConfig(source)
	if err != nil {
		return nil, "", withExitCode(ExitConfigError, fmt.Errorf("failed to load config: %w", err))
	}
	cfg, err = cfg.ApplyEnv()
	if err != nil {
		return nil, "", withExitCode(ExitConfigError, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", withExitCode(ExitConfigError, fmt.Errorf("invalid configuration: %w", err))
	}
	return cfg, source, nil
}

func newFormatter(cmd *cobra.Command, cfg *config.Config) *output.ConsoleFormatter {
	noColor := noColorFlag
	if cfg != nil && cfg.GetNoColor() {
		noColor = true
	}
	return output.NewConsoleFormatter(
		output.WithWriter(cmd.OutOrStdout()),
		output.WithVerbose(verboseFlag > 0),
		output.WithNoColor(noColor),
	)
}
