package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gosurf/pkg/analysis"
	"github.com/philipparndt/gosurf/pkg/mesh"
)

var (
	edgesCount     int
	edgesLongest   bool
	edgesShortest  bool
	edgesBoundary  bool
	edgesMinLength float64
	edgesMaxLength float64
)

var edgesCmd = &cobra.Command{
	Use:   "edges [file]",
	Short: "Analyze and measure edges in an STL file",
	Long:  "Find and measure distinct edges, including longest, shortest, boundary edges, or edges within a specific length range.",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdges,
}

func init() {
	rootCmd.AddCommand(edgesCmd)

	edgesCmd.Flags().IntVarP(&edgesCount, "count", "n", 10, "Number of edges to display")
	edgesCmd.Flags().BoolVarP(&edgesLongest, "longest", "l", false, "Show longest edges")
	edgesCmd.Flags().BoolVarP(&edgesShortest, "shortest", "s", false, "Show shortest edges")
	edgesCmd.Flags().BoolVarP(&edgesBoundary, "boundary", "b", false, "Show edges used by a single face")
	edgesCmd.Flags().Float64Var(&edgesMinLength, "min", 0.0, "Minimum edge length filter")
	edgesCmd.Flags().Float64Var(&edgesMaxLength, "max", 0.0, "Maximum edge length filter")
	edgesCmd.MarkFlagsMutuallyExclusive("longest", "shortest", "boundary")
}

func runEdges(cmd *cobra.Command, args []string) error {
	if edgesCount < 0 {
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

	var edges []analysis.EdgeInfo
	var title string

	switch {
	case edgesLongest:
		edges = analysis.FindLongestEdges(result, edgesCount)
		title = fmt.Sprintf("Top %d Longest Edges", len(edges))
	case edgesShortest:
		edges = analysis.FindShortestEdges(result, edgesCount)
		title = fmt.Sprintf("Top %d Shortest Edges", len(edges))
	case edgesBoundary:
		edges = analysis.FindBoundaryEdges(result)
		title = fmt.Sprintf("Boundary Edges (found %d)", len(edges))
	case edgesMaxLength > 0:
		edges = analysis.FindEdgesByLength(result, edgesMinLength, edgesMaxLength)
		title = fmt.Sprintf("Edges between %.6f and %.6f %s (found %d)", edgesMinLength, edgesMaxLength, unit, len(edges))
	default:
		edges = result.Edges
		title = fmt.Sprintf("All Edges (showing first %d of %d)", min(edgesCount, len(edges)), len(edges))
	}
	if len(edges) > edgesCount {
		edges = edges[:edgesCount]
	}

	fmt.Fprintln(out, title)
	fmt.Fprintln(out, "====================")
	fmt.Fprintf(out, "Total edges in mesh: %d\n", result.EdgeCount)
	fmt.Fprintf(out, "Min edge length: %s\n", analysis.FormatMeasurement(result.MinEdgeLength, unit))
	fmt.Fprintf(out, "Max edge length: %s\n", analysis.FormatMeasurement(result.MaxEdgeLength, unit))
	fmt.Fprintf(out, "Avg edge length: %s\n\n", analysis.FormatMeasurement(result.AvgEdgeLength, unit))

	if len(edges) == 0 {
		fmt.Fprintln(out, "No edges found matching the criteria.")
		return nil
	}

	fmt.Fprintf(out, "%-6s %-35s %-35s %-15s %s\n", "Index", "Start", "End", "Length", "Faces")
	fmt.Fprintln(out, "---------------------------------------------------------------------------------------------------------------")
	for i, edge := range edges {
		fmt.Fprintf(out, "%-6d %-35s %-35s %-15.6f %v\n",
			i+1,
			analysis.FormatVector(edge.Start),
			analysis.FormatVector(edge.End),
			edge.Length,
			edge.Faces)
	}
	return nil
}
