package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/lukas-wegmeth/lkpy/internal/ci"
	"github.com/lukas-wegmeth/lkpy/internal/config"
	"github.com/lukas-wegmeth/lkpy/internal/logger"
	"github.com/lukas-wegmeth/lkpy/internal/platform"
	"github.com/lukas-wegmeth/lkpy/internal/provision"
	"github.com/lukas-wegmeth/lkpy/internal/runner"
)

// configPath holds the path to an optional configuration YAML file.
// It's passed via the `--config` or `-c` flag; empty means built-in defaults.
var configPath string

// Flag storage for the provision command. envName and platformToken keep the
// last occurrence; extras and spec fragments accumulate in command-line order.
var (
	envName       string
	platformToken string
	extraTags     []string
	specFrags     []string
)

// specFlag is a pflag.Value that appends a formatted spec fragment name for
// each flag occurrence. Both -V and -s share the specFrags slice, so
// fragments keep their relative command-line order across the two flags
// (e.g. `-V 3.10 -s demo` yields [python-3.10-spec, demo-spec]).
type specFlag struct {
	format func(string) string
}

func (f *specFlag) String() string { return "" }
func (f *specFlag) Type() string   { return "string" }
func (f *specFlag) Set(v string) error {
	specFrags = append(specFrags, f.format(v))
	return nil
}

// provisionCmd runs the full pipeline: resolve the platform, install the lock
// tooling, generate the lockfile, and create/update the named environment.
var provisionCmd = &cobra.Command{
	Use:   "provision",
	Short: "Install lock tooling, generate the lockfile, and create the environment",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.LoadConfig(configPath)
		req := buildRequest(cfg)

		id := resolveOrExit(req.Platform)
		ci.Emit(ci.PlatformKey, id)

		pipeline := runner.NewPipeline(cfg)
		if err := pipeline.Provision(req, id); err != nil {
			// The failing step already logged its command line and exit code.
			os.Exit(exitExternal)
		}

		logger.Info("[INFO] Environment %s is ready (platform %s)\n", req.Name, id)
	},
}

// buildRequest assembles the immutable provisioning request from flag values
// and config defaults.
func buildRequest(cfg config.Config) *provision.Request {
	req := provision.NewRequest()
	if cfg.Environment != "" {
		req.Name = cfg.Environment
	}
	if envName != "" {
		req.Name = envName
	}
	req.Platform = platformToken
	req.Extras = extraTags
	req.SpecFiles = specFrags
	return req
}

// resolveOrExit resolves the platform token, logging a human-readable
// confirmation on success. An unsupported token is fatal and terminates the
// process with the reserved platform exit code before any external command
// has been invoked.
func resolveOrExit(token string) string {
	id, err := platform.Resolve(token)
	if err != nil {
		var unsupported *platform.UnsupportedError
		if errors.As(err, &unsupported) {
			logger.Error("[ERROR] %v. Pass -p with a supported value.\n", err)
		} else {
			logger.Error("[ERROR] %v\n", err)
		}
		os.Exit(exitPlatform)
	}
	logger.Info("[INFO] Resolved platform: %s\n", id)
	return id
}

// init sets up CLI flags and registers the provision command.
func init() {
	flags := provisionCmd.Flags()
	flags.StringVarP(&envName, "name", "n", "", "Environment name (default from config, lktest)")
	flags.StringVarP(&platformToken, "platform", "p", "", "Platform token (default: lowercase host OS name)")
	flags.StringArrayVarP(&extraTags, "extra", "e", nil, "Extra dependency group for conda-lock (repeatable)")
	flags.VarP(&specFlag{format: provision.PythonSpec}, "python", "V", "Python version; adds spec fragment python-<version>-spec (repeatable)")
	flags.VarP(&specFlag{format: provision.NamedSpec}, "spec", "s", "Spec fragment name; adds <name>-spec (repeatable)")
	flags.StringVarP(&configPath, "config", "c", "", "Path to configuration file (optional)")

	rootCmd.AddCommand(provisionCmd)
}
