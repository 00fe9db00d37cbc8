package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/morphlab/grayscott/internal/config"
	"github.com/morphlab/grayscott/internal/engine"
	"github.com/morphlab/grayscott/internal/field"
	"github.com/morphlab/grayscott/internal/gui"
	"github.com/morphlab/grayscott/internal/metrics"
	"github.com/morphlab/grayscott/internal/seed"
	"github.com/morphlab/grayscott/internal/telemetry"
	"github.com/morphlab/grayscott/internal/tui"
	"github.com/morphlab/grayscott/internal/viz"
)

var (
	configFile string
	preset     string
	size       int
	iterations int
	feed       float64
	kill       float64
	diffRate   float64
	diffStep   float64
	palette    string

	imagePath string
	sharpen   float64
	maskPath  string
	inoculate bool

	ticks    int
	outDir   string
	snapshot string
	scale    int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "grayscott",
		Short: "Gray-Scott reaction-diffusion lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLive(cmd, args)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "kinetic preset (see 'grayscott presets')")
	rootCmd.PersistentFlags().IntVar(&size, "size", 0, "grid resolution")
	rootCmd.PersistentFlags().IntVar(&iterations, "iters", 0, "stencil iterations per tick")
	rootCmd.PersistentFlags().Float64Var(&feed, "feed", 0, "feed rate")
	rootCmd.PersistentFlags().Float64Var(&kill, "kill", 0, "kill rate")
	rootCmd.PersistentFlags().Float64Var(&diffRate, "diffusion-rate", 0, "diffusion rate")
	rootCmd.PersistentFlags().Float64Var(&diffStep, "diffusion-step", 0, "neighbor sampling distance in cells")
	rootCmd.PersistentFlags().StringVar(&palette, "palette", "", "display palette")
	rootCmd.PersistentFlags().StringVar(&imagePath, "image", "", "seed image (png/jpeg)")
	rootCmd.PersistentFlags().Float64Var(&sharpen, "sharpen", 0.5, "edge enhancement amount for the seed image")
	rootCmd.PersistentFlags().StringVar(&maskPath, "mask-image", "", "feed mask image (png/jpeg)")
	rootCmd.PersistentFlags().BoolVar(&inoculate, "inoculate", true, "drop a catalyst spot at the center")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless and export telemetry",
		RunE:  runHeadless,
	}
	runCmd.Flags().IntVar(&ticks, "ticks", 500, "scheduler ticks to run")
	runCmd.Flags().StringVar(&outDir, "out", "", "run directory for metadata + telemetry csv")
	runCmd.Flags().StringVar(&snapshot, "snapshot", "", "write a png of the final field")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive terminal view",
		RunE:  runLive,
	}

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "windowed viewer",
		RunE:  runGUI,
	}
	guiCmd.Flags().IntVar(&scale, "scale", 2, "window pixels per grid cell")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list kinetic presets",
		RunE:  listPresets,
	}

	rootCmd.AddCommand(runCmd, liveCmd, guiCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// buildConfig layers the config file, preset and explicit flags, in
// that order.
func buildConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if preset != "" {
		if err := cfg.ApplyPreset(preset); err != nil {
			return nil, err
		}
	}
	if size > 0 {
		cfg.Size = size
	}
	if iterations > 0 {
		cfg.Iterations = iterations
	}
	if feed > 0 {
		cfg.Feed = feed
	}
	if kill > 0 {
		cfg.Kill = kill
	}
	if diffRate > 0 {
		cfg.DiffusionRate = diffRate
	}
	if diffStep > 0 {
		cfg.DiffusionStep = diffStep
	}
	if palette != "" {
		cfg.Palette = palette
	}
	return cfg, cfg.Validate()
}

func buildBitmap(cfg *config.Config) (engine.BitmapProc, error) {
	if imagePath != "" {
		vals, err := seed.FieldFromImage(imagePath, cfg.Size, sharpen)
		if err != nil {
			return nil, fmt.Errorf("seed image: %w", err)
		}
		return seed.FromField(vals), nil
	}
	return seed.Uniform(1.0), nil
}

func buildMask(cfg *config.Config) ([]float64, error) {
	if maskPath == "" {
		return nil, nil
	}
	vals, err := seed.FieldFromImage(maskPath, cfg.Size, 0)
	if err != nil {
		return nil, fmt.Errorf("mask image: %w", err)
	}
	return vals, nil
}

type historyObserver struct {
	mass    *metrics.TotalMass
	history []float64
}

func (h *historyObserver) Observe(g *field.Grid, tick uint64) {
	h.mass.Observe(g, tick)
	h.history = append(h.history, h.mass.Value())
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	bitmap, err := buildBitmap(cfg)
	if err != nil {
		return err
	}
	mask, err := buildMask(cfg)
	if err != nil {
		return err
	}

	session, err := engine.NewSession(engine.Config{
		Size:              cfg.Size,
		IterationsPerTick: cfg.Iterations,
		InitialBitmap:     bitmap,
		FeedMask:          mask,
	})
	if err != nil {
		return err
	}
	if inoculate {
		session.Inoculate(cfg.Size/2, cfg.Size/2, float64(cfg.Size)/16, 0.9)
	}

	sched, err := engine.NewScheduler(session, cfg.Source(), nil)
	if err != nil {
		return err
	}

	var rec *telemetry.Recorder
	if outDir != "" {
		rec, err = telemetry.NewRecorder(outDir, telemetry.Meta{
			ID:            fmt.Sprintf("run_%d", time.Now().Unix()),
			Preset:        cfg.Preset,
			Size:          cfg.Size,
			Iterations:    cfg.Iterations,
			DiffusionRate: cfg.DiffusionRate,
			DiffusionStep: cfg.DiffusionStep,
			Feed:          cfg.Feed,
			Kill:          cfg.Kill,
			Started:       time.Now(),
		})
		if err != nil {
			return err
		}
		sched.AddObserver(rec)
	}

	hist := &historyObserver{mass: metrics.NewTotalMass(metrics.ChannelB)}
	contrast := metrics.NewContrast(metrics.ChannelA)
	sched.AddObserver(hist)
	sched.AddObserver(observerFunc(contrast.Observe))

	sched.Start()
	start := time.Now()
	for i := 0; i < ticks; i++ {
		sched.Tick()
	}
	sched.Stop()
	elapsed := time.Since(start)

	if rec != nil {
		if err := rec.Flush(); err != nil {
			return err
		}
	}
	if snapshot != "" {
		fn, err := viz.Palette(cfg.Palette)
		if err != nil {
			return err
		}
		if err := viz.WritePNG(snapshot, session.Field(), fn); err != nil {
			return err
		}
	}

	steps := uint64(ticks) * uint64(cfg.Iterations)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "grid\t%dx%d\n", cfg.Size, cfg.Size)
	fmt.Fprintf(w, "steps\t%d (%d ticks x %d)\n", steps, ticks, cfg.Iterations)
	fmt.Fprintf(w, "feed/kill\t%.4f / %.4f\n", cfg.Feed, cfg.Kill)
	fmt.Fprintf(w, "mass B\t%.5f\n", hist.mass.Value())
	fmt.Fprintf(w, "contrast A\t%.5f\n", contrast.Value())
	fmt.Fprintf(w, "elapsed\t%s (%.0f steps/s)\n", elapsed.Round(time.Millisecond), float64(steps)/elapsed.Seconds())
	w.Flush()

	if len(hist.history) > 2 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(hist.history,
			asciigraph.Height(8),
			asciigraph.Width(60),
			asciigraph.Caption("mass B over ticks")))
	}
	return nil
}

// observerFunc adapts a bare function to the scheduler's Observer
// interface.
type observerFunc func(g *field.Grid, tick uint64)

func (f observerFunc) Observe(g *field.Grid, tick uint64) { f(g, tick) }

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	bitmap, err := buildBitmap(cfg)
	if err != nil {
		return err
	}
	mask, err := buildMask(cfg)
	if err != nil {
		return err
	}
	return tui.Run(cfg, bitmap, mask)
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	bitmap, err := buildBitmap(cfg)
	if err != nil {
		return err
	}
	mask, err := buildMask(cfg)
	if err != nil {
		return err
	}
	return gui.Run(cfg, bitmap, mask, scale)
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tFEED\tKILL\tDIFFUSION\tDESCRIPTION")
	for _, name := range config.PresetNames() {
		p := config.Presets[name]
		fmt.Fprintf(w, "%s\t%.4f\t%.4f\t%.2f\t%s\n", name, p.Feed, p.Kill, p.DiffusionRate, p.Description)
	}
	return w.Flush()
}
