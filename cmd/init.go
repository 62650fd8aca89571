package cmd

import (
	"log"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/cmdf-dev/cmdf/core/config"
)

// initCmd writes a default shell profile to the config path.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default shell profile.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		logger := log.New(cmd.ErrOrStderr(), "[init] ", 0)
		return config.Initialize(afero.NewOsFs(), cfgPath, logger)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
