// Command stlander aligns triangulated surface meshes to their
// principal axes: the area-weighted centroid is moved to the origin and
// the axes of greatest surface spread are rotated onto X, Y, Z.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/netisu/stlander/internal/config"
	"github.com/netisu/stlander/internal/logger"
)

var (
	cfg *config.Config

	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

var rootCmd = &cobra.Command{
	Use:   "stlander",
	Short: "Align STL meshes to their principal axes",
	Long: `stlander computes area-weighted surface moments of a triangle mesh,
derives its principal axes, and rigidly transforms the mesh so the
centroid sits at the origin and the axes align with X, Y, Z.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(flagConfig)
		if err != nil {
			return err
		}
		if flagLogLevel != "" {
			cfg.Logging.Level = flagLogLevel
		}
		if flagLogFile != "" {
			cfg.Logging.LogFile = flagLogFile
		}
		return logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "also log to this file (rotated)")
}

func main() {
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
