package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/galton/internal/analysis"
	"github.com/san-kum/galton/internal/board"
	"github.com/san-kum/galton/internal/config"
	"github.com/san-kum/galton/internal/gui"
	"github.com/san-kum/galton/internal/logging"
	"github.com/san-kum/galton/internal/metrics"
	"github.com/san-kum/galton/internal/sim"
	"github.com/san-kum/galton/internal/viz"
)

var (
	configFile string
	preset     string
	rows       int
	balls      int
	seed       int64
	logLevel   string
	logFile    string
	theme      string
	// headless
	maxTicks int
	numRuns  int
)

// main runs the terminal board when no subcommand is given. It exits with
// status 1 on error.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCmd registers every command and its flags.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "galton",
		Short:             "galton board simulation",
		SilenceUsage:      true,
		PersistentPreRunE: setupLogging,
		RunE:              runTUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "start from a preset configuration")
	pf.IntVar(&rows, "rows", board.DefaultRows, "peg rows (5-15)")
	pf.IntVar(&balls, "balls", board.DefaultBalls, "balls per run (50-500)")
	pf.Int64Var(&seed, "seed", config.DefaultSeed, "random seed, 0 picks one from the clock")
	pf.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	pf.StringVar(&logFile, "log-file", "", "write logs here while a full-screen view is open")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run the board in the terminal",
		RunE:  runTUI,
	}

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run the board in a window",
		RunE:  runGUI,
	}

	for _, c := range []*cobra.Command{rootCmd, tuiCmd} {
		c.Flags().StringVar(&theme, "theme", config.DefaultTheme, fmt.Sprintf("color theme %v", viz.ThemeNames()))
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "drop every ball headlessly and compare the bins with the binomial",
		RunE:  runHeadless,
	}
	runCmd.Flags().IntVar(&maxTicks, "max-ticks", sim.DefaultMaxTicks, "tick budget")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "run independent boards in parallel and report throughput",
		RunE:  runBench,
	}
	benchCmd.Flags().IntVar(&numRuns, "runs", 8, "number of boards")
	benchCmd.Flags().IntVar(&maxTicks, "max-ticks", sim.DefaultMaxTicks, "tick budget per board")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets",
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration as yaml",
		RunE:  printConfig,
	}

	rootCmd.AddCommand(tuiCmd, guiCmd, runCmd, benchCmd, presetsCmd, configCmd)
	return rootCmd
}

func setupLogging(cmd *cobra.Command, args []string) error {
	return logging.Setup(logLevel, os.Stderr)
}

// loadConfig builds the effective configuration: preset or defaults, then
// the config file, then any flag set on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("rows") {
		cfg.Rows = rows
	}
	if flags.Changed("balls") {
		cfg.Balls = balls
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("max-ticks") {
		cfg.MaxTicks = maxTicks
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// a level from the config file applies unless the flag was given
	if !flags.Changed("log-level") && cfg.LogLevel != "" {
		if err := logging.Setup(cfg.LogLevel, os.Stderr); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func newEngine(cfg *config.Config, frontend string) *board.Engine {
	e := board.New(cfg.Board(), board.NewSource(cfg.Seed))
	e.SetLogger(log.WithFields(log.Fields{"frontend": frontend, "seed": cfg.Seed}))
	return e
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	closeLog, err := logging.Redirect(logFile)
	if err != nil {
		return err
	}
	defer closeLog()

	e := newEngine(cfg, "tui")
	return viz.Run(e, cfg.Rates.TickRate, viz.GetTheme(cfg.Theme))
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	gui.Run(newEngine(cfg, "gui"), cfg.Rates.TickRate)
	return nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner, err := sim.New(cfg.Run())
	if err != nil {
		return err
	}
	runner.SetLogger(log.WithField("seed", cfg.Seed))
	ms := metrics.Standard()
	for _, m := range ms {
		runner.AddObserver(m)
	}

	result, err := runner.Run(ctx)
	if err != nil {
		return fmt.Errorf("run failed after %d ticks: %w", result.Ticks, err)
	}

	fmt.Printf("galton board: %d rows, %d balls, seed %d\n\n", result.Rows, result.Balls, result.Seed)
	if err := printBins(result.Bins, result.Expected); err != nil {
		return err
	}
	fmt.Println()
	fmt.Println(binChart(result.Bins, result.Expected))
	fmt.Println()
	printFit(result.Fit, result.Distance)
	for _, m := range ms {
		fmt.Printf("%s: %.3f\n", m.Name(), m.Value())
	}
	fmt.Printf("ticks: %d  elapsed: %v\n", result.Ticks, result.Elapsed)
	return nil
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if numRuns < 1 {
		return fmt.Errorf("runs must be at least 1, got %d", numRuns)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ens := sim.NewEnsemble(cfg.Run(), numRuns)
	summary, err := ens.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("benchmarking %d boards, %d rows, %d balls each\n\n", numRuns, cfg.Rows, cfg.Balls)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\tTICKS\tTIME\tTICKS/SEC\tCHI2\tP\tTVD")
	for _, r := range summary.Runs {
		fmt.Fprintf(w, "%d\t%d\t%v\t%.0f\t%.2f\t%.4f\t%.3f\n",
			r.Seed, r.Ticks, r.Elapsed.Round(time.Microsecond), perSecond(r.Ticks, r.Elapsed),
			r.Fit.Statistic, r.Fit.PValue, r.Distance)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\ntotal: %d ticks in %v (%.0f ticks/sec)\n",
		summary.Ticks, summary.Elapsed.Round(time.Millisecond), perSecond(summary.Ticks, summary.Elapsed))
	fmt.Println("pooled:")
	printFit(summary.Fit, summary.Distance)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tROWS\tBALLS\tSPAWN P")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%d\t%.2f\n", name, p.Rows, p.Balls, p.Rates.SpawnProbability)
	}
	return w.Flush()
}

func printConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func printBins(bins []int, expected []float64) error {
	total := 0
	for _, c := range bins {
		total += c
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BIN\tCOUNT\tEXPECTED\tACTUAL %\tTHEORY %")
	for i, c := range bins {
		share, theory := 0.0, 0.0
		if total > 0 {
			share = float64(c) / float64(total) * 100
			theory = expected[i] / float64(total) * 100
		}
		fmt.Fprintf(w, "%d\t%d\t%.1f\t%.1f\t%.1f\n", i, c, expected[i], share, theory)
	}
	return w.Flush()
}

func binChart(bins []int, expected []float64) string {
	observed := make([]float64, len(bins))
	for i, c := range bins {
		observed[i] = float64(c)
	}
	if len(observed) < 2 {
		return ""
	}
	return asciigraph.PlotMany([][]float64{expected, observed},
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.SeriesColors(asciigraph.Cyan, asciigraph.Red),
		asciigraph.SeriesLegends("expected", "observed"),
		asciigraph.Caption("balls per bin"),
	)
}

func printFit(fit analysis.Fit, distance float64) {
	fmt.Printf("chi-square: %.3f  dof: %d  p: %.4f  (classes: %d, n: %d)\n",
		fit.Statistic, fit.DegreesOfFreedom, fit.PValue, fit.Classes, fit.N)
	fmt.Printf("total variation distance: %.4f\n", distance)
}

func perSecond(n int, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(n) / d.Seconds()
}
