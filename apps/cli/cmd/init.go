package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/abdul-hamid-achik/affirm/packages/core/config"
	"github.com/spf13/cobra"
)

var (
	forceInit bool
	jsonInit  bool
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Create an affirm config file",
	Long: `Create an affirm config file holding the default settings.

This creates .affirm.yaml, or .affirm.json with --json, in the given
directory or the current one.

Examples:
  affirm init
  affirm init --json ./service
  affirm init --force`,
	Args: cobra.MaximumNArgs(1),
	RunE: initCommand,
}

func init() {
	initCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "Overwrite an existing config file")
	initCmd.Flags().BoolVar(&jsonInit, "json", false, "Write JSON instead of YAML")
}

func initCommand(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	name := config.ConfigFilenames[0]
	if jsonInit {
		name = ".affirm.json"
	}
	configFile := filepath.Join(dir, name)

	if !forceInit {
		if existing := config.FindConfigFile(dir); existing != "" {
			return withExitCode(ExitUsageError, fmt.Errorf("file already exists: %s (use --force to overwrite)", existing))
		}
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	if err := config.DefaultConfig().SaveConfig(configFile); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created: %s\n", configFile)
	fmt.Fprintf(cmd.OutOrStdout(), "\naffirm initialized!\n")
	fmt.Fprintf(cmd.OutOrStdout(), "Run 'affirm config show' to see the effective settings.\n")

	return nil
}
