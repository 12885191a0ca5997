package config

// Tool represents one piece of conda tooling the bootstrap command can
// install from a GitHub release when the host has no conda available.
// - Name: binary name, e.g. "micromamba".
// - Repo: GitHub repository, e.g. "mamba-org/micromamba-releases".
// - Tag: release tag; empty means the latest release.
// - Version: version string recorded in the state file for idempotence.
type Tool struct {
	Name    string `yaml:"name"`
	Repo    string `yaml:"repo"`
	Tag     string `yaml:"tag"`
	Version string `yaml:"version"`
}

// Config holds the provisioning defaults. Every field has a built-in default
// matching the lkpy CI setup, so a config file is optional.
type Config struct {
	// Channel is the conda channel the lock tooling is installed from.
	Channel string `yaml:"channel"`

	// Tooling lists the packages installed into the base environment before
	// locking (step 1 of the pipeline).
	Tooling []string `yaml:"tooling"`

	// Manifest is the fixed project manifest passed to conda-lock.
	Manifest string `yaml:"manifest"`

	// SpecDir is the directory holding environment spec fragments referenced
	// by -V/-s flags.
	SpecDir string `yaml:"spec_dir"`

	// Environment is the default environment name when no -n flag is given.
	Environment string `yaml:"environment"`

	// Lockfile is the lockfile filename template; "{platform}" is replaced
	// by the resolved platform identifier. Must match what conda-lock writes.
	Lockfile string `yaml:"lockfile"`

	// BinDir is where bootstrapped binaries are installed.
	BinDir string `yaml:"bin_dir"`

	// Bootstrap lists the tooling the bootstrap command manages.
	Bootstrap []Tool `yaml:"bootstrap"`
}
