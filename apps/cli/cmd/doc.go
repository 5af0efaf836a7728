// Package cmd implements the affirm CLI commands using Cobra.
//
// Available commands:
//   - init: Create an .affirm.yaml holding the default settings
//   - config show: Print the effective configuration
//   - config validate: Check config files
//   - snapshots list: List snapshot files and keys, optionally watching for changes
//   - snapshots clean: Remove snapshot files
//   - completion: Generate shell completion scripts
//   - version: Show affirm version information
//
// Config is read from --config, AFFIRM_CONFIG or the first of
// .affirm.yaml, .affirm.yml, affirm.yaml and .affirm.json in the current
// directory, then overridden by AFFIRM_* and NO_COLOR variables.
package cmd
