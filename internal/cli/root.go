// SPDX-License-Identifier: MIT

// Package cli wires the rref command tree: play, config and version.
package cli

import (
	"fmt"
	"os"

	"github.com/katalvlaran/rref/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is overridden at build time with -ldflags "-X ...cli.version=...".
var version = "v0.1.0"

var (
	cfgFile string
	verbose bool
	seed    int64
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "rref",
	Short: "RREF - a row-reduction puzzle game",
	Long: `rref generates augmented matrices and asks you to reduce them to
reduced row echelon form with elementary row operations.

All arithmetic is exact: entries are rational numbers, shown as fractions
with small denominators.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "rref %s\n", version)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.rref/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "puzzle seed (0 = time-based)")

	// Bind flags to viper
	_ = viper.BindPFlag(config.KeySeed, rootCmd.PersistentFlags().Lookup("seed"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	config.SetDefaults(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		dir, err := config.DefaultDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}
		viper.AddConfigPath(dir)
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match RREF_*
	viper.SetEnvPrefix(config.EnvPrefix)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}
