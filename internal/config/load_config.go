package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lukas-wegmeth/lkpy/internal/logger"
)

// DefaultPath is the config file consulted when no -c flag is given.
// A missing file at this path is not an error; built-in defaults apply.
const DefaultPath = "lkenv.yaml"

// Default returns the built-in configuration, matching the values the lkpy
// CI setup hard-codes: lock tooling from conda-forge, pyproject.toml as the
// manifest, spec fragments under build-tools/, and conda-lock's environment
// lockfile naming.
func Default() Config {
	home, _ := os.UserHomeDir()
	return Config{
		Channel:     "conda-forge",
		Tooling:     []string{"mamba", "conda-lock"},
		Manifest:    "pyproject.toml",
		SpecDir:     "build-tools",
		Environment: "lktest",
		Lockfile:    "conda-{platform}.lock.yml",
		BinDir:      filepath.Join(home, "bin"),
		Bootstrap: []Tool{
			{Name: "micromamba", Repo: "mamba-org/micromamba-releases"},
		},
	}
}

// LoadConfig reads the YAML config file at the given path and overlays it on
// the built-in defaults. An empty path means DefaultPath; a missing file at
// DefaultPath silently yields the defaults, since most runs have no config
// file at all. An explicitly requested file that cannot be read or parsed is
// a hard failure.
func LoadConfig(path string) Config {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			logger.Debug("[DEBUG] No config file at %s, using built-in defaults\n", path)
			return cfg
		}
		panic("Failed to read config file " + path + ": " + err.Error())
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		panic("Failed to unmarshal config file " + path + ": " + err.Error())
	}

	logger.Debug("[DEBUG] Loaded config from %s\n", path)
	return cfg
}

// LockfileName derives the deterministic lockfile filename for a resolved
// platform identifier, e.g. "conda-linux-64.lock.yml".
func (c Config) LockfileName(platform string) string {
	return strings.ReplaceAll(c.Lockfile, "{platform}", platform)
}
