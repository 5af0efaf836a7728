package cmd

import (
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

// completionScripts maps each supported shell to its script generator.
var completionScripts = map[string]func(root *cobra.Command, w io.Writer) error{
	"bash":       func(root *cobra.Command, w io.Writer) error { return root.GenBashCompletionV2(w, true) },
	"zsh":        func(root *cobra.Command, w io.Writer) error { return root.GenZshCompletion(w) },
	"fish":       func(root *cobra.Command, w io.Writer) error { return root.GenFishCompletion(w, true) },
	"powershell": func(root *cobra.Command, w io.Writer) error { return root.GenPowerShellCompletionWithDesc(w) },
}

func completionShells() []string {
	shells := make([]string, 0, len(completionScripts))
	for shell := range completionScripts {
		shells = append(shells, shell)
	}
	slices.Sort(shells)
	return shells
}

var completionCmd = &cobra.Command{
	Use:   "completion [" + strings.Join(completionShells(), "|") + "]",
	Short: "Generate shell completion scripts",
	Long: `Print a completion script for affirm to stdout.

  source <(affirm completion bash)
  affirm completion zsh > "${fpath[1]}/_affirm"
  affirm completion fish > ~/.config/fish/completions/affirm.fish
  affirm completion powershell | Out-String | Invoke-Expression`,
	DisableFlagsInUseLine: true,
	ValidArgs:             completionShells(),
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		return completionScripts[args[0]](cmd.Root(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
