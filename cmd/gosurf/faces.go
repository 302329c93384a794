package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gosurf/pkg/analysis"
	"github.com/philipparndt/gosurf/pkg/mesh"
)

var (
	facesCount    int
	facesLargest  bool
	facesSmallest bool
)

var facesCmd = &cobra.Command{
	Use:   "faces [file]",
	Short: "List the faces of an STL file",
	Long:  "Display face indices with their area, normal and centroid. The index is what analyze and measure expect.",
	Args:  cobra.ExactArgs(1),
	RunE:  runFaces,
}

func init() {
	rootCmd.AddCommand(facesCmd)

	facesCmd.Flags().IntVarP(&facesCount, "count", "n", 10, "Number of faces to display")
	facesCmd.Flags().BoolVarP(&facesLargest, "largest", "l", false, "Show largest faces by area")
	facesCmd.Flags().BoolVarP(&facesSmallest, "smallest", "s", false, "Show smallest faces by area")
	facesCmd.MarkFlagsMutuallyExclusive("largest", "smallest")
}

func runFaces(cmd *cobra.Command, args []string) error {
	if facesCount < 0 {
		return fmt.Errorf("--count must not be negative")
	}
	m, err := loadMesh(cmd.Context(), args[0])
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

	var faces []analysis.FaceInfo
	var title string
	switch {
	case facesLargest:
		faces = analysis.FindLargestFaces(result, facesCount)
		title = fmt.Sprintf("Top %d Largest Faces", len(faces))
	case facesSmallest:
		faces = analysis.FindSmallestFaces(result, facesCount)
		title = fmt.Sprintf("Top %d Smallest Faces", len(faces))
	default:
		faces = result.Faces[:min(facesCount, len(result.Faces))]
		title = fmt.Sprintf("First %d Faces", len(faces))
	}

	fmt.Fprintln(out, title)
	fmt.Fprintln(out, "====================")
	fmt.Fprintf(out, "Total faces: %d\n", result.FaceCount)
	fmt.Fprintf(out, "Total surface area: %s²\n\n", analysis.FormatMeasurement(result.SurfaceArea, unit))

	for _, face := range faces {
		fmt.Fprintf(out, "Face #%d:\n", face.Index)
		fmt.Fprintf(out, "  Area: %s²\n", analysis.FormatMeasurement(face.Area, unit))
		fmt.Fprintf(out, "  Normal: %s\n", analysis.FormatVector(face.Normal))
		fmt.Fprintf(out, "  Centroid: %s\n\n", analysis.FormatVector(face.Centroid))
	}
	return nil
}
