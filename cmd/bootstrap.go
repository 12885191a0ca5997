package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lukas-wegmeth/lkpy/internal/bootstrap"
	"github.com/lukas-wegmeth/lkpy/internal/config"
	"github.com/lukas-wegmeth/lkpy/internal/logger"
	"github.com/lukas-wegmeth/lkpy/internal/state"
)

// statePath is the path to the persistent state file tracking which tooling
// the bootstrap command has installed.
var statePath = "lkenv-state.json"

// bootstrapCmd installs the conda tooling itself (micromamba by default) from
// GitHub releases, for hosts with no conda installation. Tooling already
// recorded in the state file is skipped, so re-runs are cheap.
var bootstrapCmd = &cobra.Command{
	Use:   "bootstrap",
	Short: "Download and install the conda tooling from GitHub releases",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.LoadConfig(configPath)
		st := state.Load(statePath)

		err := bootstrap.Sync(cfg.Bootstrap, st, cfg.BinDir)

		// Tools installed before a failure stay recorded.
		state.Save(statePath, st)

		if err != nil {
			logger.Error("[ERROR] %v\n", err)
			os.Exit(exitExternal)
		}
	},
}

func init() {
	bootstrapCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (optional)")
	bootstrapCmd.Flags().StringVar(&statePath, "state", statePath, "Path to the bootstrap state file")

	rootCmd.AddCommand(bootstrapCmd)
}
