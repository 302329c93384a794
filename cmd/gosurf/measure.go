package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gosurf/pkg/analysis"
	"github.com/philipparndt/gosurf/pkg/selection"
)

var (
	measureFace1  int
	measureFace2  int
	measurePoint1 string
	measurePoint2 string
)

var measureCmd = &cobra.Command{
	Use:   "measure [file]",
	Short: "Measure between the surfaces under two picked faces",
	Long: `Analyze the surfaces under two picked faces and measure between them.
The perpendicular distance is taken along the first surface's normal; the
direct distance is between the two picked points.`,
	Args: cobra.ExactArgs(1),
	RunE: runMeasure,
}

func init() {
	rootCmd.AddCommand(measureCmd)

	measureCmd.Flags().IntVar(&measureFace1, "face1", 0, "Index of the first picked face")
	measureCmd.Flags().IntVar(&measureFace2, "face2", 0, "Index of the second picked face")
	measureCmd.Flags().StringVar(&measurePoint1, "point1", "", "First picked point as x,y,z (defaults to the face centroid)")
	measureCmd.Flags().StringVar(&measurePoint2, "point2", "", "Second picked point as x,y,z (defaults to the face centroid)")
	measureCmd.MarkFlagsRequiredTogether("face1", "face2")
	_ = measureCmd.MarkFlagRequired("face1")
}

func runMeasure(cmd *cobra.Command, args []string) error {
	m, err := loadMesh(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	first, err := facePick(m, measureFace1, measurePoint1)
	if err != nil {
		return err
	}
	second, err := facePick(m, measureFace2, measurePoint2)
	if err != nil {
		return err
	}
	analyzer, err := newAnalyzer()
	if err != nil {
		return err
	}

	id := selection.ObjectID(m.Name)
	scene := selection.NewMemoryScene()
	scene.Add(id, selection.Appearance{Opacity: 1})
	session := selection.NewSession(analyzer, selection.NewRegistry(scene),
		selection.WithMode(selection.Distance), selection.WithLogger(logger))
	defer session.Clear()

	if err := session.Pick(id, m, first); err != nil {
		return fmt.Errorf("first pick: %w", err)
	}
	if err := session.Pick(id, m, second); err != nil {
		return fmt.Errorf("second pick: %w", err)
	}
	result, err := session.Measurement()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Measurement between face #%d and face #%d\n", measureFace1, measureFace2)
	fmt.Fprintln(out, "==========================")
	fmt.Fprint(out, analysis.FormatResult(result, settings.Unit))
	return nil
}
