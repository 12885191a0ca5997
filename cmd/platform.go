package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lukas-wegmeth/lkpy/internal/ci"
)

// platformTokenOnly holds the -p value for the platform command. It is kept
// separate from the provision command's flag storage so the two commands
// cannot interfere.
var platformTokenOnly string

// platformCmd resolves and publishes the platform identifier without running
// any external command. CI workflows use it to key caches and artifact names
// before the expensive provisioning step.
var platformCmd = &cobra.Command{
	Use:   "platform",
	Short: "Resolve and print the canonical conda platform identifier",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		id := resolveOrExit(platformTokenOnly)
		ci.Emit(ci.PlatformKey, id)
	},
}

func init() {
	platformCmd.Flags().StringVarP(&platformTokenOnly, "platform", "p", "", "Platform token (default: lowercase host OS name)")

	rootCmd.AddCommand(platformCmd)
}
