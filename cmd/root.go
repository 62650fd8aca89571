package cmd

import (
	"errors"
	"io/fs"
	"log"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/cmdf-dev/cmdf/core/config"
)

var cfgPath string

func loadProfile() (*config.Profile, error) {
	profile, err := config.Load(afero.NewOsFs(), cfgPath)

	if errors.Is(err, fs.ErrNotExist) {
		log.Println("No profile found, using the built-in defaults. Run init to write one.")
		return config.Default(), nil
	}

	return profile, err
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cmdf",
	Short: "An engine for interactive line-oriented command shells",
	Long: `cmdf builds interactive command shells: quoted-argument parsing,
per-session command tables and nested sub-shell sessions with scoped
help listings.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "profile path")
}
