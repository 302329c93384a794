package main

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gosurf/pkg/analysis"
	"github.com/philipparndt/gosurf/pkg/mesh"
	"github.com/philipparndt/gosurf/pkg/watcher"
)

var (
	watchFace     int
	watchPoint    string
	watchDebounce time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Re-analyze a face whenever the model changes",
	Long:  "Analyze the surface under a face, then repeat every time the file is written until interrupted. OpenSCAD sources are re-rendered when they or any file they use or include change.",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().IntVarP(&watchFace, "face", "f", 0, "Index of the picked face")
	watchCmd.Flags().StringVarP(&watchPoint, "point", "p", "", "Picked point as x,y,z (defaults to the face centroid)")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 500*time.Millisecond, "Wait this long after the last change")
	_ = watchCmd.MarkFlagRequired("face")
}

func runWatch(cmd *cobra.Command, args []string) error {
	filename := args[0]
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	analyzer, err := newAnalyzer()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fw, err := watcher.NewFileWatcher(watchDebounce, logger)
	if err != nil {
		return err
	}
	defer fw.Close()

	var mu sync.Mutex
	var current *mesh.Mesh
	var report func()
	follow := func() {
		files, err := sourceFiles(filename)
		if err != nil {
			logger.Warn("dependency scan failed", "file", filename, "error", err)
			files = []string{filename}
		}
		if err := fw.Watch(files, func(string) { report() }); err != nil {
			logger.Warn("watch failed", "error", err)
		}
	}
	report = func() {
		mu.Lock()
		defer mu.Unlock()

		follow()
		m, err := loadMesh(ctx, filename)
		if err != nil {
			logger.Error("reload failed", "file", filename, "error", err)
			return
		}
		if current != nil {
			analyzer.Cache().Forget(current)
		}
		current = m

		pick, err := facePick(m, watchFace, watchPoint)
		if err != nil {
			logger.Error("invalid pick", "error", err)
			return
		}
		d, err := analyzer.Analyze(m, pick)
		if err != nil {
			logger.Error("analysis failed", "error", err)
			return
		}
		fmt.Fprintf(out, "[%s] Surface at face #%d\n", time.Now().Format(time.TimeOnly), watchFace)
		fmt.Fprint(out, analysis.FormatDescriptor(d, settings.Unit))
	}

	if err := fw.Watch([]string{filename}, func(string) { report() }); err != nil {
		return err
	}
	fw.Start()

	report()
	logger.Info("watching for changes", "file", filename)
	<-ctx.Done()
	return nil
}
