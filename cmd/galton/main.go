// Package main provides the entry point for the Galton Mountains CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/galton-mountains/internal/config"
	"github.com/yourusername/galton-mountains/internal/galton"
	"github.com/yourusername/galton-mountains/internal/logger"
	"github.com/yourusername/galton-mountains/internal/metrics"
	"github.com/yourusername/galton-mountains/internal/render"
	"github.com/yourusername/galton-mountains/internal/report"
	"github.com/yourusername/galton-mountains/internal/simulation"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
)

type app struct {
	configFile string
	logLevel   string
	cfg        *config.Config
	logger     *logrus.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "galton",
		Short:   "Draw Galton board mountains",
		Long:    `Computes the expected ball count per bin of a Galton board over a sweep of deflection probabilities and plots the resulting mountains.`,
		Version: fmt.Sprintf("%s (%s)", Version, GitCommit),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadConfig(cmd); err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			return a.run(cmd.Context(), cmd.OutOrStdout())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&a.configFile, "config", "c", config.DefaultPath, "Path to configuration file")
	flags.StringVar(&a.logLevel, "log-level", "", "Override log level (debug, info, warn, error)")
	flags.Int64("seed", 0, "Random seed (0 picks one from the clock)")
	flags.Bool("save", false, "Save the figure as PNG")
	flags.Bool("show", false, "Print the mountains to the terminal")
	flags.String("figures", "", "Directory figures are saved to")
	flags.String("report", "", "Write a report to this path")
	flags.String("format", "", "Report format (json, csv)")
	flags.Bool("randomize", false, "Draw board parameters at random")

	rootCmd.AddCommand(newDistCmd())
	return rootCmd
}

func newDistCmd() *cobra.Command {
	var (
		balls     int
		totalBins int
		p         float64
		showProbs bool
	)

	cmd := &cobra.Command{
		Use:   "dist",
		Short: "Print the bin counts for a single probability",
		Long:  `Prints the bin counts for one board. Reads no configuration.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := galton.ValidateInputs(balls, totalBins, p); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, galton.Distribution(balls, totalBins, p))
			if showProbs {
				fmt.Fprintln(out, galton.BinProbabilities(totalBins, p))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&balls, "balls", 100, "Number of balls")
	cmd.Flags().IntVar(&totalBins, "bins", 10, "Number of bins")
	cmd.Flags().Float64Var(&p, "p", 0.5, "Per-peg probability of deflecting right")
	cmd.Flags().BoolVar(&showProbs, "probabilities", false, "Also print the bin probabilities")
	return cmd
}

func (a *app) loadConfig(cmd *cobra.Command) error {
	cfg, err := config.LoadWithDefaults(a.configFile)
	if err != nil {
		return err
	}
	if err := applyFlagOverrides(cmd, cfg); err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.App.LogLevel = a.logLevel
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger.NewLogger(cfg.App.LogLevel)
	return nil
}

func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	var err error
	if flags.Changed("save") {
		if cfg.Output.Save, err = flags.GetBool("save"); err != nil {
			return err
		}
	}
	if flags.Changed("show") {
		if cfg.Output.Show, err = flags.GetBool("show"); err != nil {
			return err
		}
	}
	if flags.Changed("randomize") {
		if cfg.Simulation.Randomize, err = flags.GetBool("randomize"); err != nil {
			return err
		}
	}
	if flags.Changed("figures") {
		if cfg.Output.FiguresDir, err = flags.GetString("figures"); err != nil {
			return err
		}
	}
	if flags.Changed("report") {
		if cfg.Output.ReportPath, err = flags.GetString("report"); err != nil {
			return err
		}
	}
	if flags.Changed("format") {
		if cfg.Output.ReportFormat, err = flags.GetString("format"); err != nil {
			return err
		}
	}
	if flags.Changed("seed") {
		if cfg.Simulation.Seed, err = flags.GetInt64("seed"); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) run(ctx context.Context, out io.Writer) error {
	seed := a.cfg.Simulation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	params, err := simulation.FromConfig(&a.cfg.Simulation, rng)
	if err != nil {
		return fmt.Errorf("invalid simulation config: %w", err)
	}

	cache := simulation.NewCoefficientCache(a.cfg.CacheTTL(), a.cfg.Cache.MaxSize)
	engine, err := simulation.NewEngine(cache, a.logger)
	if err != nil {
		return err
	}

	result, err := engine.Run(ctx, params, seed)
	if err != nil {
		return err
	}
	runID := result.RunID.String()
	simLogger := logger.NewSimulationLogger(a.logger)

	if a.cfg.Output.Show {
		if err := render.Console(out, result); err != nil {
			return fmt.Errorf("failed to render mountains: %w", err)
		}
	}
	fmt.Fprint(out, report.GenerateConsoleReport(result))

	if a.cfg.Output.Save {
		path := render.FigurePath(a.cfg.Output.FiguresDir, rng)
		if err := render.SavePlot(result, path); err != nil {
			return err
		}
		simLogger.LogArtifactWritten(runID, "figure", path)
	}

	if a.cfg.Output.ReportPath != "" {
		if err := report.Export(result, a.cfg.Output.ReportPath, a.cfg.Output.ReportFormat); err != nil {
			return fmt.Errorf("failed to export report: %w", err)
		}
		simLogger.LogArtifactWritten(runID, "report", a.cfg.Output.ReportPath)
	}

	if a.cfg.Metrics.Enabled {
		if err := metrics.WriteTextfile(a.cfg.Metrics.Textfile); err != nil {
			return err
		}
		simLogger.LogArtifactWritten(runID, "metrics", a.cfg.Metrics.Textfile)
	}

	hits, misses, ratio := cache.Stats()
	a.logger.WithFields(logrus.Fields{
		"cache_hits":      hits,
		"cache_misses":    misses,
		"cache_hit_ratio": ratio,
	}).Debug("Coefficient cache statistics")

	return nil
}
