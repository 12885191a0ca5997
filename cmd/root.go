package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lukas-wegmeth/lkpy/internal/logger"
)

// Reserved process exit codes. Scripts and CI steps branch on these, so the
// assignments are part of the tool's contract.
const (
	exitUsage    = 2 // unrecognized flag or bad invocation
	exitPlatform = 3 // platform token resolves to no known family
	exitExternal = 4 // an external command exited non-zero
)

// debug flag indicates whether debug logging should be enabled.
// It can be toggled via the `--debug` command-line flag.
var debug bool

// rootCmd is the base command for the CLI tool `lkenv`.
// It sets up the root-level CLI structure and provides global flags.
var rootCmd = &cobra.Command{
	Use:   "lkenv",
	Short: "Provision reproducible conda environments for lkpy",

	// PersistentPreRun is a hook that runs before any subcommand.
	// Here, we initialize the logger based on the debug flag.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
	},
}

// Execute initializes flags, registers subcommands, and starts the command
// execution. It's the entry point for the CLI when invoked by the user.
// Argument errors (unknown flags, bad values) terminate with the reserved
// usage exit code before any external command runs.
func Execute() {
	// Register the global --debug flag before any command is executed.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	// Cobra writes help and error text to its output writers; bind both to
	// stderr so stdout stays reserved for machine-readable annotations.
	rootCmd.SetOut(os.Stderr)
	rootCmd.SetErr(os.Stderr)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitUsage)
	}
}
