package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"passrush/internal/chart"
	"passrush/internal/export"
	"passrush/internal/report"
	"passrush/internal/sim"
	"passrush/internal/store"
)

var (
	flagPlays   int
	flagSeed    int64
	flagWorkers int
	flagOutDir  string
)

// runCmd executes the full pipeline: generate, persist, report, chart, export.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Generate plays and produce the full analysis",
	RunE: func(cmd *cobra.Command, args []string) error {
		applySimFlags(cmd)

		fmt.Println("[1/5] Generating plays...")
		plays, err := generatePlays(cmd)
		if err != nil {
			return err
		}

		fmt.Println("[2/5] Persisting run...")
		s, err := store.Open(cfg.Output.DatabasePath)
		if err != nil {
			return err
		}
		defer s.Close()
		runID, err := s.SaveRun(cfg.Simulation.Seed, cfg.Simulation.Params, plays)
		if err != nil {
			return err
		}
		logger.Info("run persisted", zap.String("run_id", runID), zap.Int("plays", len(plays)))

		fmt.Println("[3/5] Rendering report...")
		if err := report.Render(os.Stdout, plays); err != nil {
			return err
		}

		fmt.Println("[4/5] Writing charts...")
		paths, err := chart.RenderAll(cfg.Output.Dir, cfg.Output.ChartPrefix, plays)
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Printf("  wrote %s\n", p)
		}

		fmt.Println("[5/5] Exporting CSV...")
		csvPath := filepath.Join(cfg.Output.Dir, cfg.Output.CSVName)
		if err := export.WriteCSVFile(csvPath, plays); err != nil {
			return err
		}
		fmt.Printf("  wrote %s\n", csvPath)

		fmt.Printf("\nAnalysis complete. Run ID: %s\n", runID)
		return nil
	},
}

// simulateCmd generates plays and persists them without reporting.
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Generate plays and persist them",
	RunE: func(cmd *cobra.Command, args []string) error {
		applySimFlags(cmd)

		plays, err := generatePlays(cmd)
		if err != nil {
			return err
		}

		s, err := store.Open(cfg.Output.DatabasePath)
		if err != nil {
			return err
		}
		defer s.Close()

		runID, err := s.SaveRun(cfg.Simulation.Seed, cfg.Simulation.Params, plays)
		if err != nil {
			return err
		}
		fmt.Printf("Simulated %d plays. Run ID: %s\n", len(plays), runID)
		return nil
	},
}

// applySimFlags copies explicitly-set simulation flags over the config.
func applySimFlags(cmd *cobra.Command) {
	if cmd.Flags().Changed("plays") {
		cfg.Simulation.Plays = flagPlays
	}
	if cmd.Flags().Changed("seed") {
		cfg.Simulation.Seed = flagSeed
	}
	if cmd.Flags().Changed("workers") {
		cfg.Simulation.Workers = flagWorkers
	}
	if cmd.Flags().Changed("out") {
		cfg.Output.Dir = flagOutDir
	}
}

func generatePlays(cmd *cobra.Command) ([]sim.Play, error) {
	gen, err := sim.NewGenerator(cfg.Simulation.Params, cfg.Simulation.Seed)
	if err != nil {
		return nil, fmt.Errorf("invalid simulation params: %w", err)
	}
	logger.Debug("generating plays",
		zap.Int("n", cfg.Simulation.Plays),
		zap.Int64("seed", cfg.Simulation.Seed),
		zap.Int("workers", cfg.Simulation.Workers))
	return gen.GenerateParallel(cmd.Context(), cfg.Simulation.Plays, cfg.Simulation.Workers)
}

func init() {
	for _, c := range []*cobra.Command{runCmd, simulateCmd} {
		c.Flags().IntVar(&flagPlays, "plays", 0, "number of plays to simulate (overrides config)")
		c.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (overrides config)")
		c.Flags().IntVar(&flagWorkers, "workers", 0, "generation workers (overrides config)")
		c.Flags().StringVar(&flagOutDir, "out", "", "output directory (overrides config)")
	}
}
