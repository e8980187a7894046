package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/letterdrop/internal/config"
	"github.com/san-kum/letterdrop/internal/engine"
	"github.com/san-kum/letterdrop/internal/export"
	"github.com/san-kum/letterdrop/internal/input"
	"github.com/san-kum/letterdrop/internal/measure"
	"github.com/san-kum/letterdrop/internal/metrics"
	"github.com/san-kum/letterdrop/internal/runner"
	"github.com/san-kum/letterdrop/internal/storage"
	"github.com/san-kum/letterdrop/internal/viz"
)

var (
	dataDir    string
	word       string
	preset     string
	configFile string
	dt         float64
	duration   float64
	seed       int64
	startAfter float64
	outPath    string
	atTime     float64
	plotBody   int
	verbose    bool

	logger *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "letterdrop",
		Short: "letter-drop pendulum animation engine",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initLogger()
		},
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".letterdrop", "data directory")
	rootCmd.PersistentFlags().StringVar(&word, "word", "LETTERDROP", "wordmark to animate")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "breezy", "tuning preset")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "tuning file (yaml), overrides preset")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "interactive terminal demo",
		RunE:  runDemo,
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "headless run with metrics",
		RunE:  runHeadless,
	}
	runCmd.Flags().Float64Var(&dt, "dt", 1.0/120, "timestep")
	runCmd.Flags().Float64Var(&duration, "time", 10.0, "duration")
	runCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = fixed default)")
	runCmd.Flags().Float64Var(&startAfter, "start-after", 0, "delay before the start signal")

	recordCmd := &cobra.Command{
		Use:   "record",
		Short: "headless run saved to the data directory",
		RunE:  runRecord,
	}
	recordCmd.Flags().Float64Var(&dt, "dt", 1.0/120, "timestep")
	recordCmd.Flags().Float64Var(&duration, "time", 10.0, "duration")
	recordCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = fixed default)")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "render one frame to svg",
		RunE:  runExport,
	}
	exportCmd.Flags().Float64Var(&dt, "dt", 1.0/120, "timestep")
	exportCmd.Flags().Float64Var(&atTime, "at", 4.0, "simulated time of the exported frame")
	exportCmd.Flags().StringVarP(&outPath, "out", "o", "frame.svg", "output file")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list tuning presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot <run-id>",
		Short: "plot a recorded run's swing angle",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&plotBody, "body", 0, "body index to plot")

	rootCmd.AddCommand(demoCmd, runCmd, recordCmd, exportCmd, presetsCmd, listCmd, plotCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initLogger() error {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	cfg.OutputPaths = []string{"stderr"}
	var err error
	logger, err = cfg.Build()
	return err
}

func loadConfig() (*config.Config, error) {
	if configFile != "" {
		return config.Load(configFile)
	}
	cfg := config.GetPreset(preset)
	if cfg == nil {
		return nil, fmt.Errorf("unknown preset %q (try: %s)", preset, strings.Join(config.ListPresets(), ", "))
	}
	return cfg, nil
}

func newEngine(cfg *config.Config) (*engine.Engine, *input.Samples) {
	samples := input.NewSamples(1280, 800, input.DeviceDesktop)
	eng := engine.New(cfg, samples)
	eng.Measure(measure.Word(word))
	return eng, samples
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	eng, samples := newEngine(cfg)
	return viz.Run(eng, samples, word)
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.Seed = seed
	eng, _ := newEngine(cfg)

	r := runner.New(eng, false)
	r.AddMetric(metrics.NewSwingAmplitude())
	r.AddMetric(metrics.NewSwingEnergy())
	r.AddMetric(metrics.NewSettleTime(0.05))

	logger.Info("headless run",
		zap.String("preset", preset),
		zap.Float64("dt", dt),
		zap.Float64("duration", duration))

	result, err := r.Run(context.Background(), runner.Config{Dt: dt, Duration: duration, StartAfter: startAfter})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "steps\t%d\n", result.Steps)
	for _, pc := range result.PhaseTrace {
		fmt.Fprintf(w, "phase %s\tt=%.3fs\n", pc.Phase, pc.Time)
	}
	for name, v := range result.Metrics {
		fmt.Fprintf(w, "%s\t%.5f\n", name, v)
	}
	return w.Flush()
}

func runRecord(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.Seed = seed
	eng, _ := newEngine(cfg)

	r := runner.New(eng, true)
	r.AddMetric(metrics.NewSwingAmplitude())
	r.AddMetric(metrics.NewSwingEnergy())

	result, err := r.Run(context.Background(), runner.Config{Dt: dt, Duration: duration})
	if err != nil {
		return err
	}

	store := storage.New(dataDir)
	if err := store.Init(); err != nil {
		return err
	}
	runID, err := store.Save(preset, dt, duration, seed, result)
	if err != nil {
		return err
	}
	logger.Info("run recorded", zap.String("id", runID), zap.Int("frames", len(result.Frames)))
	fmt.Println(runID)
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	eng, _ := newEngine(cfg)

	r := runner.New(eng, false)
	if _, err := r.Run(context.Background(), runner.Config{Dt: dt, Duration: atTime}); err != nil {
		return err
	}

	svg := export.FrameToSVG(eng.Frame(), []rune(word))
	if err := os.WriteFile(outPath, []byte(svg), 0644); err != nil {
		return err
	}
	logger.Info("frame exported", zap.String("path", outPath), zap.Float64("at", atTime))
	return nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	series, err := store.LoadAngles(args[0])
	if err != nil {
		return err
	}
	if plotBody < 0 || plotBody >= len(series) {
		return fmt.Errorf("body %d out of range, run has %d bodies", plotBody, len(series))
	}
	fmt.Println(asciigraph.Plot(series[plotBody],
		asciigraph.Height(12),
		asciigraph.Width(72),
		asciigraph.Caption(fmt.Sprintf("angle, body %d", plotBody))))
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	runs, err := store.List()
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRESET\tBODIES\tDT\tDURATION")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.4f\t%.1f\n", run.ID, run.Preset, run.Bodies, run.Dt, run.Duration)
	}
	return w.Flush()
}
