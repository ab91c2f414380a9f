package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/netisu/stlander"
)

var infoEpsilon float64

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Print mesh statistics and surface moments",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.Flags().Float64Var(&infoEpsilon, "epsilon", 0, "degenerate-area tolerance override (0 = auto)")
}

func runInfo(cmd *cobra.Command, args []string) error {
	mesh, err := stlander.LoadMesh(args[0])
	if err != nil {
		return err
	}

	box := mesh.BoundingBox()
	fmt.Printf("File: %s\n\n", args[0])
	fmt.Printf("Triangles:    %d\n", len(mesh.Triangles))
	fmt.Printf("Bounding box: min %v\n", box.Min)
	fmt.Printf("              max %v\n", box.Max)
	fmt.Printf("Dimensions:   %v (diagonal %.6f)\n\n", box.Size(), box.Diagonal())

	moments, err := mesh.SurfaceMoments(infoEpsilon)
	if err != nil {
		return err
	}
	fmt.Printf("Surface area: %.6f\n", moments.Area)
	fmt.Printf("Centroid:     %v  (area-weighted)\n", moments.Centroid)

	_, evals, err := stlander.PrincipalAxes(moments.Second)
	if err != nil {
		return err
	}
	fmt.Printf("Principal moments: %.6g  %.6g  %.6g\n", evals[0], evals[1], evals[2])
	return nil
}
