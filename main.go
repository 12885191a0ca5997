package main

import (
	"github.com/lukas-wegmeth/lkpy/cmd" // Import the cmd package which contains the CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// This design cleanly separates the CLI interface (cmd package) from main,
// allowing easier testing, extension, and reuse of the CLI commands.
//
// The lkenv tool provisions a reproducible conda environment for the lkpy project:
//   - Resolves a user-supplied or auto-detected platform token (e.g. "ubuntu") into a
//     canonical conda platform identifier (e.g. "linux-64")
//   - Installs the lockfile tooling (mamba, conda-lock) into the base conda environment
//   - Generates a platform-keyed dependency lockfile with conda-lock, combining the
//     project manifest (pyproject.toml) with optional spec fragments from build-tools/
//   - Materializes a named environment from the generated lockfile with mamba
//   - Emits the resolved platform identifier on stdout as a stable key=value line so
//     CI jobs can capture it programmatically; all human-readable diagnostics go to
//     stderr to keep stdout clean
//   - Can bootstrap the conda tooling itself from GitHub release archives on hosts
//     that have no conda installation, tracking what it installed in a JSON state
//     file so repeated runs are idempotent
//
// Error handling strategy:
//   - Fail fast, fail loud, fail once: the first error terminates the run with a
//     reserved exit code (2 usage, 3 unsupported platform, 4 external command failure)
//   - No external command is ever invoked after argument or platform validation fails
//
// Integration points:
//   - Shells out to conda, conda-lock, and mamba; each command line is echoed to
//     stderr before running so CI logs show exactly what was executed
//   - Honors GITHUB_OUTPUT for the machine-readable platform annotation when running
//     under GitHub Actions
func main() {
	cmd.Execute()
}
