package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gosurf/pkg/analysis"
)

var (
	analyzeFace  int
	analyzePoint string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Describe the surface under a picked face",
	Long: `Classify the surface containing the given face as planar, circular,
cylindrical or freeform and report its area, perimeter, centroid and, when a
circle or cylinder fits, its diameter and axis.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().IntVarP(&analyzeFace, "face", "f", 0, "Index of the picked face (see the faces command)")
	analyzeCmd.Flags().StringVarP(&analyzePoint, "point", "p", "", "Picked point as x,y,z (defaults to the face centroid)")
	_ = analyzeCmd.MarkFlagRequired("face")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	m, err := loadMesh(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	pick, err := facePick(m, analyzeFace, analyzePoint)
	if err != nil {
		return err
	}
	analyzer, err := newAnalyzer()
	if err != nil {
		return err
	}

	d, err := analyzer.Analyze(m, pick)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Surface at face #%d\n", analyzeFace)
	fmt.Fprintln(out, "====================")
	fmt.Fprint(out, analysis.FormatDescriptor(d, settings.Unit))
	return nil
}
