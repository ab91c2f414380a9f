package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/netisu/stlander"
	"github.com/netisu/stlander/internal/logger"
)

var reportCmd = &cobra.Command{
	Use:   "report [input] [output.png]",
	Short: "Chart the principal surface moments",
	Long: `Align a mesh and write a bar chart of its three principal surface
moments. Near-equal bars indicate the principal directions are poorly
determined (e.g. cubes or sphere-like shells).`,
	Args: cobra.ExactArgs(2),
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVar(&alignPA2Target, "pa2-target", "", "where the 2nd principal axis lands: Y (default) or Z")
}

func runReport(cmd *cobra.Command, args []string) error {
	a, err := loadAndAlign(args[0])
	if err != nil {
		return err
	}
	if err := stlander.SaveSpectrumChart(args[1], a); err != nil {
		return err
	}
	logger.Log.Info("wrote moment spectrum chart", zap.String("path", args[1]))
	return nil
}
