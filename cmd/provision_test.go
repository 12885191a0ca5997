package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukas-wegmeth/lkpy/internal/config"
	"github.com/lukas-wegmeth/lkpy/internal/provision"
)

// resetFlags clears the package-level flag storage between tests.
func resetFlags() {
	envName = ""
	platformToken = ""
	extraTags = nil
	specFrags = nil
}

func TestSpecFlagKeepsCommandLineOrder(t *testing.T) {
	resetFlags()
	python := &specFlag{format: provision.PythonSpec}
	named := &specFlag{format: provision.NamedSpec}

	// `-V 3.10 -s extra1` must yield the fragments in exactly that order.
	require.NoError(t, python.Set("3.10"))
	require.NoError(t, named.Set("extra1"))

	assert.Equal(t, []string{"python-3.10-spec", "extra1-spec"}, specFrags)
}

func TestProvisionFlagParsing(t *testing.T) {
	resetFlags()
	err := provisionCmd.ParseFlags([]string{
		"-p", "ubuntu", "-n", "myenv", "-e", "gpu", "-e", "test", "-V", "3.11", "-s", "demo",
	})
	require.NoError(t, err)

	assert.Equal(t, "ubuntu", platformToken)
	assert.Equal(t, "myenv", envName)
	assert.Equal(t, []string{"gpu", "test"}, extraTags)
	assert.Equal(t, []string{"python-3.11-spec", "demo-spec"}, specFrags)
}

func TestProvisionRejectsUnknownFlag(t *testing.T) {
	resetFlags()
	err := provisionCmd.ParseFlags([]string{"--bogus"})
	require.Error(t, err)
}

func TestBuildRequestNamePrecedence(t *testing.T) {
	resetFlags()
	cfg := config.Default()

	// No flag: the config default wins.
	req := buildRequest(cfg)
	assert.Equal(t, "lktest", req.Name)

	// Config override still loses to an explicit -n.
	cfg.Environment = "nightly"
	envName = "myenv"
	req = buildRequest(cfg)
	assert.Equal(t, "myenv", req.Name)

	envName = ""
	req = buildRequest(cfg)
	assert.Equal(t, "nightly", req.Name)
}
