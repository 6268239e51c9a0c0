package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/wavesim/internal/viz"
)

var (
	dataDir string
	verbose bool
	logger  = slog.Default()

	// scene overrides
	configFile     string
	gridSize       int
	damping        float64
	amplitude      float64
	speed          float64
	obstacleRadius int
	boundary       string
	scheme         string

	runFrames   int
	fps         int
	probeRow    int
	probeCol    int
	runName     string
	noSave      bool
	gifPath     string
	gifEvery    int
	metricsAddr string

	cols           int
	snapshotOut    string
	snapshotFrames int
	exportOut      string
	scriptFrames   int
	series         string

	sweepParam  string
	sweepMin    float64
	sweepMax    float64
	sweepSteps  int
	sweepFrames int

	benchSizes  []int
	benchFrames int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "wavesim",
		Short: "interactive 2D wave simulator",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = newLogger(verbose)
			slog.SetDefault(logger)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return viz.RunInteractive()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".wavesim", "data directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	runCmd := &cobra.Command{
		Use:   "run [preset]",
		Short: "run headless and save metrics",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSimulation,
	}
	addSceneFlags(runCmd)
	runCmd.Flags().IntVar(&runFrames, "frames", 0, "frames to run (default from config)")
	runCmd.Flags().IntVar(&fps, "fps", 0, "pace ticks at this rate (0 = as fast as possible)")
	runCmd.Flags().IntVar(&probeRow, "probe-row", -1, "probe cell row (default centre)")
	runCmd.Flags().IntVar(&probeCol, "probe-col", -1, "probe cell column (default quarter width)")
	runCmd.Flags().StringVar(&runName, "name", "", "run name (default preset name)")
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "do not write the run to the data directory")
	runCmd.Flags().StringVar(&gifPath, "gif", "", "record an animated GIF")
	runCmd.Flags().IntVar(&gifEvery, "gif-every", 4, "record every Nth frame")
	runCmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")

	liveCmd := &cobra.Command{
		Use:   "live [preset]",
		Short: "live terminal view",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addSceneFlags(liveCmd)
	liveCmd.Flags().IntVar(&cols, "cols", viz.DefaultCols, "canvas width in terminal columns")

	guiCmd := &cobra.Command{
		Use:   "gui [preset]",
		Short: "open the window view",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runGUI,
	}
	addSceneFlags(guiCmd)

	snapshotCmd := &cobra.Command{
		Use:   "snapshot [preset]",
		Short: "render the field after N frames to PNG or SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  snapshotScene,
	}
	addSceneFlags(snapshotCmd)
	snapshotCmd.Flags().IntVar(&snapshotFrames, "frames", 120, "frames to run before rendering")
	snapshotCmd.Flags().StringVarP(&snapshotOut, "out", "o", "wave.png", "output file (.png or .svg)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved metric series",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&series, "series", "energy", "series to plot (energy, max, ups, probe)")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "summarise a run and its probe spectrum",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default stdout)")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a run's metrics as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default stdout)")

	scriptCmd := &cobra.Command{
		Use:   "script [file]",
		Short: "play a scripted scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  runScript,
	}
	scriptCmd.Flags().IntVar(&scriptFrames, "frames", 0, "frames to play (default from scenario)")
	scriptCmd.Flags().BoolVar(&noSave, "no-save", false, "do not write the run to the data directory")

	sweepCmd := &cobra.Command{
		Use:   "sweep [preset]",
		Short: "sweep one tunable and compare runs",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSweep,
	}
	addSceneFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&sweepParam, "param", "damping", "tunable to sweep")
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 0.95, "first value")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 0.999, "last value")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 5, "number of runs")
	sweepCmd.Flags().IntVar(&sweepFrames, "frames", 300, "frames per run")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "measure ticks per second across grid sizes",
		RunE:  benchGrid,
	}
	benchCmd.Flags().IntSliceVar(&benchSizes, "sizes", []int{50, 100, 200, 400}, "grid sizes")
	benchCmd.Flags().IntVar(&benchFrames, "frames", 200, "ticks per size")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list scene presets",
		Run: func(cmd *cobra.Command, args []string) {
			listPresets()
		},
	}

	palettesCmd := &cobra.Command{
		Use:   "palettes",
		Short: "show the color schemes",
		Run: func(cmd *cobra.Command, args []string) {
			listPalettes()
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, guiCmd, snapshotCmd, listCmd, plotCmd, analyzeCmd,
		exportJSONCmd, exportCSVCmd, scriptCmd, sweepCmd, benchCmd, presetsCmd, palettesCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func addSceneFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "scene config file (YAML)")
	cmd.Flags().IntVar(&gridSize, "grid", 0, "cells per side")
	cmd.Flags().Float64Var(&damping, "damping", 0, "per-frame damping")
	cmd.Flags().Float64Var(&amplitude, "amplitude", 0, "ripple amplitude")
	cmd.Flags().Float64Var(&speed, "speed", 0, "wave speed")
	cmd.Flags().IntVar(&obstacleRadius, "radius", 0, "obstacle radius in pixels")
	cmd.Flags().StringVar(&boundary, "boundary", "", "edge policy (absorbing, reflecting, periodic)")
	cmd.Flags().StringVar(&scheme, "scheme", "", "color scheme")
}

func outputFile() (*os.File, func(), error) {
	if exportOut == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(exportOut)
	if err != nil {
		return nil, nil, fmt.Errorf("create %s: %w", exportOut, err)
	}
	return f, func() { f.Close() }, nil
}
