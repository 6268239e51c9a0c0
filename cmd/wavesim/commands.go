package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/wavesim/internal/analysis"
	"github.com/san-kum/wavesim/internal/automation"
	"github.com/san-kum/wavesim/internal/colormap"
	"github.com/san-kum/wavesim/internal/config"
	"github.com/san-kum/wavesim/internal/gui"
	"github.com/san-kum/wavesim/internal/render"
	"github.com/san-kum/wavesim/internal/sim"
	"github.com/san-kum/wavesim/internal/storage"
	"github.com/san-kum/wavesim/internal/telemetry"
	"github.com/san-kum/wavesim/internal/viz"
)

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, name, err := loadScene(cmd, args)
	if err != nil {
		return err
	}
	if runName != "" {
		name = runName
	}
	if cmd.Flags().Changed("frames") {
		cfg.Frames = runFrames
	}
	d, err := newDriver(cfg)
	if err != nil {
		return err
	}
	grid := d.Grid()

	row, col := probeRow, probeCol
	if row < 0 {
		row = grid.Size() / 2
	}
	if col < 0 {
		col = grid.Size() / 4
	}
	history := sim.NewHistory().WithProbe(row, col)
	d.AddObserver(history)

	var rec *render.Recorder
	if gifPath != "" {
		rec = render.NewRecorder(int(cfg.Width), int(cfg.Height), gifEvery, 0, "")
		d.AddObserver(rec)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if metricsAddr != "" {
		exp := telemetry.NewExporter()
		d.AddObserver(exp)
		go func() {
			if err := exp.Serve(ctx, metricsAddr, logger); err != nil {
				logger.Error("metrics server failed", "error", err)
			}
		}()
	}

	var interval time.Duration
	if fps > 0 {
		interval = time.Second / time.Duration(fps)
	}

	logger.Info("running", "scene", name, "frames", cfg.Frames, "grid", cfg.GridSize, "boundary", cfg.Boundary)
	start := time.Now()
	n, err := sim.NewLoop(d, logger).Run(ctx, sim.LoopConfig{Frames: cfg.Frames, Interval: interval})
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	elapsed := time.Since(start)

	snap := d.Metrics().Rounded()
	fmt.Printf("frames: %d in %s\n", n, elapsed.Round(time.Millisecond))
	fmt.Printf("max amplitude: %.2f\n", snap.MaxAmplitude)
	fmt.Printf("total energy: %.2f\n", snap.TotalEnergy)
	fmt.Printf("obstacles: %d\n", d.Obstacles().Len())
	if at := d.Collector().Values()["diverged_at"]; at > 0 {
		logger.Warn("field diverged", "frame", int(at), "speed", cfg.Speed, "damping", cfg.Damping)
	}

	if rec != nil {
		if err := writeGIF(gifPath, rec); err != nil {
			return err
		}
		fmt.Printf("wrote %s (%d frames)\n", gifPath, rec.Len())
	}

	if noSave {
		return nil
	}
	store := storage.New(dataDir, logger)
	meta := storage.Describe(name, grid, d.Obstacles(), *d.Params())
	meta.Metrics = d.Collector().Values()
	runID, err := store.Save(meta, history.Samples(), grid.Current())
	if err != nil {
		return err
	}
	fmt.Printf("saved: %s\n", runID)
	return nil
}

func writeGIF(path string, rec *render.Recorder) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return rec.Encode(f, 3)
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, name, err := loadScene(cmd, args)
	if err != nil {
		return err
	}
	d, err := newDriver(cfg)
	if err != nil {
		return err
	}
	return viz.Run(d, cols, name)
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, name, err := loadScene(cmd, args)
	if err != nil {
		return err
	}
	d, err := newDriver(cfg)
	if err != nil {
		return err
	}
	gui.Run(d, name, logger)
	return nil
}

func snapshotScene(cmd *cobra.Command, args []string) error {
	if snapshotFrames < 1 {
		return fmt.Errorf("snapshot needs at least one frame, got %d", snapshotFrames)
	}
	cfg, _, err := loadScene(cmd, args)
	if err != nil {
		return err
	}
	d, err := newDriver(cfg)
	if err != nil {
		return err
	}
	if _, err := sim.NewLoop(d, logger).Run(cmd.Context(), sim.LoopConfig{Frames: snapshotFrames}); err != nil {
		return err
	}

	f, err := os.Create(snapshotOut)
	if err != nil {
		return fmt.Errorf("create %s: %w", snapshotOut, err)
	}
	defer f.Close()

	scheme := d.Params().Scheme
	switch strings.ToLower(filepath.Ext(snapshotOut)) {
	case ".svg":
		sink := render.NewSVGSink(cfg.Width, cfg.Height)
		render.Paint(sink, d.Grid(), d.Obstacles(), scheme)
		_, err = sink.WriteTo(f)
	default:
		sink := render.NewImageSink(int(cfg.Width), int(cfg.Height))
		render.Paint(sink, d.Grid(), d.Obstacles(), scheme)
		err = sink.WritePNG(f)
	}
	if err != nil {
		return err
	}
	fmt.Printf("wrote %s after %d frames\n", snapshotOut, d.Frame())
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir, logger)
	runs, err := store.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tGRID\tBOUNDARY\tFRAMES\tENERGY\tTIMESTAMP")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%d\t%.2f\t%s\n",
			run.ID, run.Name, run.GridSize, run.Boundary, run.Frames,
			run.Metrics["total_energy"], run.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir, logger)
	samples, err := store.LoadSamples(args[0])
	if err != nil {
		return err
	}
	data := seriesOf(samples, series)
	if data == nil {
		return fmt.Errorf("unknown series %q (energy, max, ups, probe)", series)
	}
	if len(data) == 0 {
		return fmt.Errorf("run %s has no samples", args[0])
	}

	fmt.Println(asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s - %s", args[0], series))))
	return nil
}

func seriesOf(samples []sim.Sample, name string) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		switch name {
		case "energy":
			out[i] = s.Metrics.TotalEnergy
		case "max":
			out[i] = s.Metrics.MaxAmplitude
		case "ups":
			out[i] = float64(s.Metrics.UpdatesPerSecond)
		case "probe":
			out[i] = s.Probe
		default:
			return nil
		}
	}
	return out
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir, logger)
	meta, err := store.Load(args[0])
	if err != nil {
		return err
	}
	samples, err := store.LoadSamples(args[0])
	if err != nil {
		return err
	}
	if len(samples) < 2 {
		return fmt.Errorf("run %s has too few samples to analyze", args[0])
	}

	energy := seriesOf(samples, "energy")
	peak := seriesOf(samples, "max")
	probe := seriesOf(samples, "probe")

	fmt.Printf("run %s (%s, %s boundary, damping %.4f)\n\n", meta.ID, meta.Name, meta.Boundary, meta.Damping)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SERIES\tMIN\tMAX\tMEAN\tSTDDEV\tFINAL")
	for _, row := range []struct {
		name string
		data []float64
	}{{"energy", energy}, {"max", peak}, {"probe", probe}} {
		s := analysis.Summarize(row.data)
		fmt.Fprintf(w, "%s\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\n", row.name, s.Min, s.Max, s.Mean, s.StdDev, s.Final)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nenergy decay rate: %.5f per frame\n", analysis.DecayRate(energy))
	spec := analysis.PowerSpectrum(probe)
	if freq, power, ok := spec.Dominant(); ok {
		fmt.Printf("probe dominant frequency: %.4f cycles/frame (period %.1f frames, magnitude %.4f)\n",
			freq, spec.Period(), power)
		fmt.Println()
		fmt.Println(asciigraph.Plot(spec.Power[1:],
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("probe spectrum")))
	} else {
		fmt.Println("probe shows no oscillation")
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	out, closeOut, err := outputFile()
	if err != nil {
		return err
	}
	defer closeOut()
	return storage.New(dataDir, logger).ExportJSON(out, args[0])
}

func exportCSV(cmd *cobra.Command, args []string) error {
	out, closeOut, err := outputFile()
	if err != nil {
		return err
	}
	defer closeOut()
	return storage.New(dataDir, logger).ExportCSV(out, args[0])
}

func runScript(cmd *cobra.Command, args []string) error {
	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}
	d, err := automation.Build(scenario)
	if err != nil {
		return err
	}
	history := sim.NewHistory().WithProbe(d.Grid().Size()/2, d.Grid().Size()/4)
	d.AddObserver(history)

	n := scenario.Frames
	if cmd.Flags().Changed("frames") {
		n = scriptFrames
	}
	if n <= 0 {
		n = config.DefaultFrames
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ticked, err := automation.NewRunner(d, logger).Run(ctx, scenario, n)
	if err != nil {
		return err
	}
	snap := d.Metrics().Rounded()
	fmt.Printf("scenario %s: %d frames, %d ticks, energy %.2f, max %.2f\n",
		scenario.Name, n, ticked, snap.TotalEnergy, snap.MaxAmplitude)

	if noSave {
		return nil
	}
	name := scenario.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
	}
	meta := storage.Describe(name, d.Grid(), d.Obstacles(), *d.Params())
	meta.Metrics = d.Collector().Values()
	runID, err := storage.New(dataDir, logger).Save(meta, history.Samples(), d.Grid().Current())
	if err != nil {
		return err
	}
	fmt.Printf("saved: %s\n", runID)
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, name, err := loadScene(cmd, args)
	if err != nil {
		return err
	}
	sweep := &automation.ParameterSweep{
		Base:      cfg,
		ParamName: sweepParam,
		ParamMin:  sweepMin,
		ParamMax:  sweepMax,
		NumSteps:  sweepSteps,
		Frames:    sweepFrames,
	}
	results, err := automation.RunSweep(cmd.Context(), sweep, logger)
	if err != nil {
		return err
	}

	fmt.Printf("sweep %s over %s (%d frames each)\n\n", sweepParam, name, sweepFrames)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tFINAL ENERGY\tPEAK ENERGY\tMAX AMPLITUDE\tDECAY RATE\n", strings.ToUpper(sweepParam))
	final := make([]float64, len(results))
	for i, r := range results {
		fmt.Fprintf(w, "%.4f\t%.4f\t%.4f\t%.4f\t%.5f\n", r.ParamValue, r.FinalEnergy, r.PeakEnergy, r.MaxAmplitude, r.DecayRate)
		final[i] = r.FinalEnergy
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if len(final) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(final,
			asciigraph.Height(8),
			asciigraph.Caption("final energy by step")))
	}
	return nil
}

func benchGrid(cmd *cobra.Command, args []string) error {
	fmt.Printf("%d ticks per size\n\n", benchFrames)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "GRID\tCELLS\tTIME\tTICKS/SEC\tCELLS/SEC")
	for _, size := range benchSizes {
		cfg := config.GetPreset("pond")
		cfg.GridSize = size
		d, err := newDriver(cfg)
		if err != nil {
			return fmt.Errorf("grid %d: %w", size, err)
		}
		start := time.Now()
		for i := 0; i < benchFrames; i++ {
			d.Step()
		}
		elapsed := time.Since(start)
		rate := float64(benchFrames) / elapsed.Seconds()
		cells := size * size
		fmt.Fprintf(w, "%d\t%d\t%s\t%.0f\t%.2e\n", size, cells, elapsed.Round(time.Microsecond), rate, rate*float64(cells))
	}
	return w.Flush()
}

func listPresets() {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tBOUNDARY\tSCHEME\tDESCRIPTION")
	for _, name := range config.ListPresets() {
		cfg := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, cfg.Boundary, cfg.ColorScheme, config.PresetDescriptions[name])
	}
	w.Flush()
}

// listPalettes prints each scheme as a strip running from trough to crest.
func listPalettes() {
	const steps = 32
	for _, s := range colormap.Schemes() {
		var b strings.Builder
		for i := 0; i < steps; i++ {
			v := -1 + 2*float64(i)/float64(steps-1)
			c := colormap.Map(v, s)
			hex := fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("█"))
		}
		fmt.Printf("%-11s %s\n", s, b.String())
	}
}
