package runner

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukas-wegmeth/lkpy/internal/config"
	"github.com/lukas-wegmeth/lkpy/internal/provision"
)

// recordingExec returns an ExecFunc that records every command line and fails
// on the failAt-th call (1-based; 0 means never fail).
func recordingExec(calls *[][]string, failAt int) ExecFunc {
	return func(argv []string) error {
		*calls = append(*calls, argv)
		if failAt > 0 && len(*calls) == failAt {
			return errors.New("stubbed failure")
		}
		return nil
	}
}

func TestProvisionRunsStepsInOrder(t *testing.T) {
	var calls [][]string
	p := &Pipeline{Config: config.Default(), Exec: recordingExec(&calls, 0)}

	req := provision.NewRequest()
	req.Name = "myenv"
	req.Extras = []string{"gpu", "test"}
	req.SpecFiles = []string{"python-3.10-spec", "extra1-spec"}

	require.NoError(t, p.Provision(req, "linux-64"))
	require.Len(t, calls, 3)

	// Step 1: lock tooling into the base environment from the channel.
	install := strings.Join(calls[0], " ")
	assert.Equal(t, "conda", calls[0][0])
	assert.Contains(t, install, "-n base")
	assert.Contains(t, install, "-c conda-forge")
	assert.Contains(t, install, "mamba conda-lock")

	// Step 2: conda-lock with platform, extras, manifest, then the spec
	// fragments as -f arguments in command-line order.
	lock := strings.Join(calls[1], " ")
	assert.Equal(t, "conda-lock", calls[1][0])
	assert.Contains(t, lock, "-p linux-64")
	assert.Contains(t, lock, "--extras gpu,test")
	assert.Contains(t, lock, "-f pyproject.toml")
	first := strings.Index(lock, "-f build-tools/python-3.10-spec.yml")
	second := strings.Index(lock, "-f build-tools/extra1-spec.yml")
	require.GreaterOrEqual(t, first, 0)
	require.GreaterOrEqual(t, second, 0)
	assert.Less(t, first, second, "spec fragments must keep command-line order")

	// Step 3: environment update from the platform-keyed lockfile.
	assert.Equal(t,
		[]string{"mamba", "env", "update", "-q", "-n", "myenv", "-f", "conda-linux-64.lock.yml"},
		calls[2])
}

func TestProvisionEmptyExtrasStillPassed(t *testing.T) {
	var calls [][]string
	p := &Pipeline{Config: config.Default(), Exec: recordingExec(&calls, 0)}

	require.NoError(t, p.Provision(provision.NewRequest(), "osx-64"))
	require.Len(t, calls, 3)

	lock := calls[1]
	for i, arg := range lock {
		if arg == "--extras" {
			require.Less(t, i+1, len(lock))
			assert.Equal(t, "", lock[i+1])
			return
		}
	}
	t.Fatal("--extras not passed to conda-lock")
}

func TestProvisionShortCircuitsOnLockFailure(t *testing.T) {
	var calls [][]string
	p := &Pipeline{Config: config.Default(), Exec: recordingExec(&calls, 2)}

	err := p.Provision(provision.NewRequest(), "linux-64")
	require.Error(t, err)

	// The environment update step never ran.
	assert.Len(t, calls, 2)

	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, "lock", cmdErr.Step)
	assert.Equal(t, -1, cmdErr.ExitCode)
}

func TestProvisionShortCircuitsOnToolingFailure(t *testing.T) {
	var calls [][]string
	p := &Pipeline{Config: config.Default(), Exec: recordingExec(&calls, 1)}

	err := p.Provision(provision.NewRequest(), "linux-64")
	require.Error(t, err)
	assert.Len(t, calls, 1)

	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, "install-tooling", cmdErr.Step)
}

func TestCommandErrorMessage(t *testing.T) {
	err := &CommandError{
		Step:     "lock",
		Argv:     []string{"conda-lock", "lock"},
		ExitCode: 3,
		Err:      fmt.Errorf("exit status 3"),
	}
	assert.Contains(t, err.Error(), "lock")
	assert.Contains(t, err.Error(), "conda-lock")
	assert.Contains(t, err.Error(), "3")
}
