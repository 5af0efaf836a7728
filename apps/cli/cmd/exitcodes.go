package cmd

// Exit codes for affirm CLI
const (
	// ExitSuccess indicates the command completed
	ExitSuccess = 0

	// ExitFailure indicates a command failed, e.g. a snapshot file could not be read
	ExitFailure = 1

	// ExitConfigError indicates a missing or invalid configuration
	ExitConfigError = 3

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)
