package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gosurf/internal/config"
	"github.com/philipparndt/gosurf/version"
)

var (
	configPath string
	logLevel   string
	scale      float64

	// settings and logger are ready once PersistentPreRunE has run
	settings = config.Default()
	logger   = slog.Default()
)

var rootCmd = &cobra.Command{
	Use:   "gosurf",
	Short: "Recognise and measure surfaces on STL meshes",
	Long: `gosurf analyzes the surface under a picked triangle of an STL mesh.
It reports whether the surface is planar, circular, cylindrical or freeform,
together with its area, perimeter, centroid and fitted diameter, and measures
perpendicular and direct distances between two picked surfaces.`,
	Version:           version.GetFullVersion(),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "TOML configuration file")
	flags.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flags.Float64Var(&scale, "scale", 1, "Scale baked into the mesh; reported lengths are divided by it")
}

func setup(cmd *cobra.Command, args []string) error {
	f, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		f.LogLevel = logLevel
	}
	if cmd.Flags().Changed("scale") {
		f.Scale = scale
	}
	if err := f.Validate(); err != nil {
		return err
	}

	level, _ := f.Level()
	logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	settings = f
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
