package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gosurf/pkg/analysis"
	"github.com/philipparndt/gosurf/pkg/mesh"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display general information about an STL file",
	Long:  "Show comprehensive information including dimensions, face and vertex counts, surface area, edge statistics and mesh topology.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	filename := args[0]

	m, err := loadMesh(cmd.Context(), filename)
	if err != nil {
		return err
	}
	table, err := mesh.NewTable(m)
	if err != nil {
		return err
	}
	result := analysis.AnalyzeMesh(table)
	unit := settings.Unit
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "STL File Information")
	fmt.Fprintln(out, "====================")
	fmt.Fprintf(out, "Name: %s\n", result.Name)
	fmt.Fprintf(out, "File: %s\n\n", filename)

	fmt.Fprintln(out, "Mesh Statistics:")
	fmt.Fprintf(out, "  Faces: %d (%d degenerate)\n", result.FaceCount, result.DegenerateFaces)
	fmt.Fprintf(out, "  Vertices: %d (%d distinct)\n", result.VertexCount, result.WeldedVertexCount)
	fmt.Fprintf(out, "  Edges: %d (%d boundary, %d non-manifold)\n", result.EdgeCount, result.BoundaryEdges, result.NonManifoldEdges)
	fmt.Fprintf(out, "  Watertight: %t\n", result.Watertight())
	fmt.Fprintf(out, "  Surface Area: %s²\n\n", analysis.FormatMeasurement(result.SurfaceArea, unit))

	fmt.Fprintln(out, "Bounding Box:")
	fmt.Fprintf(out, "  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
	fmt.Fprintf(out, "  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
	fmt.Fprintf(out, "  Center: %s\n\n", analysis.FormatVector(result.BoundingBox.Center()))

	fmt.Fprintln(out, "Dimensions:")
	fmt.Fprintf(out, "  Width (X): %s\n", analysis.FormatMeasurement(result.Dimensions.X, unit))
	fmt.Fprintf(out, "  Depth (Y): %s\n", analysis.FormatMeasurement(result.Dimensions.Y, unit))
	fmt.Fprintf(out, "  Height (Z): %s\n", analysis.FormatMeasurement(result.Dimensions.Z, unit))
	fmt.Fprintf(out, "  Diagonal: %s\n", analysis.FormatMeasurement(result.BoundingBox.Diagonal(), unit))
	fmt.Fprintf(out, "  Volume: %s³\n\n", analysis.FormatMeasurement(result.Volume, unit))

	fmt.Fprintln(out, "Edge Lengths:")
	fmt.Fprintf(out, "  Minimum: %s\n", analysis.FormatMeasurement(result.MinEdgeLength, unit))
	fmt.Fprintf(out, "  Maximum: %s\n", analysis.FormatMeasurement(result.MaxEdgeLength, unit))
	fmt.Fprintf(out, "  Average: %s\n", analysis.FormatMeasurement(result.AvgEdgeLength, unit))
	return nil
}
