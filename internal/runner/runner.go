// Package runner executes the fixed three-step provisioning pipeline:
// install lock tooling, generate the lockfile, materialize the environment.
// Each step shells out to an external command and the pipeline aborts on the
// first non-zero exit.
package runner

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/lukas-wegmeth/lkpy/internal/logger"
)

// ExecFunc runs a single external command and blocks until it exits.
// It is a field on Pipeline so tests can substitute a stub.
type ExecFunc func(argv []string) error

// CommandError reports an external command that exited non-zero. It carries
// enough context to name the failing step, the full command line, and the
// exit code in diagnostics.
type CommandError struct {
	Step     string   // pipeline step name, e.g. "lock"
	Argv     []string // full command line that was run
	ExitCode int      // process exit code, or -1 if the command never ran
	Err      error    // underlying error from the exec layer
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("step %s: command %q exited with code %d", e.Step, strings.Join(e.Argv, " "), e.ExitCode)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// systemExec is the production ExecFunc. The child inherits stdin and writes
// both of its output streams to our stderr: stdout is reserved for the
// machine-readable platform annotation and external tools must not pollute it.
// Only the exit status is inspected, never the output content.
func systemExec(argv []string) error {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// run echoes the full command line to stderr, executes it synchronously, and
// wraps any failure in a CommandError naming the step.
func run(execFn ExecFunc, step string, argv []string) error {
	logger.Info("[INFO] [%s] Running: %s\n", step, strings.Join(argv, " "))

	if err := execFn(argv); err != nil {
		code := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.ExitCode()
		}
		cmdErr := &CommandError{Step: step, Argv: argv, ExitCode: code, Err: err}
		logger.Error("[ERROR] %s\n", cmdErr.Error())
		return cmdErr
	}

	logger.Debug("[DEBUG] [%s] Completed successfully\n", step)
	return nil
}
