package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"passrush/internal/chart"
	"passrush/internal/export"
	"passrush/internal/report"
	"passrush/internal/sim"
	"passrush/internal/store"
)

// loadStoredPlays resolves a run (explicit ID or latest) and loads its plays.
func loadStoredPlays(args []string) (store.Run, []sim.Play, error) {
	s, err := store.Open(cfg.Output.DatabasePath)
	if err != nil {
		return store.Run{}, nil, err
	}
	defer s.Close()

	var run store.Run
	if len(args) > 0 {
		run, err = s.LoadRun(args[0])
	} else {
		run, err = s.LatestRun()
	}
	if err != nil {
		return store.Run{}, nil, fmt.Errorf("no stored run available (try 'passrush simulate'): %w", err)
	}

	plays, err := s.LoadPlays(run.ID)
	if err != nil {
		return store.Run{}, nil, err
	}
	return run, plays, nil
}

// reportCmd renders the terminal report for a stored run.
var reportCmd = &cobra.Command{
	Use:   "report [run-id]",
	Short: "Render the analysis report for a stored run (default: latest)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		run, plays, err := loadStoredPlays(args)
		if err != nil {
			return err
		}
		fmt.Printf("Run %s (seed %d, %d plays)\n\n", run.ID, run.Seed, run.Plays)
		return report.Render(os.Stdout, plays)
	},
}

// chartCmd renders the PNG figures for a stored run.
var chartCmd = &cobra.Command{
	Use:   "chart [run-id]",
	Short: "Write PNG charts for a stored run (default: latest)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, plays, err := loadStoredPlays(args)
		if err != nil {
			return err
		}
		paths, err := chart.RenderAll(cfg.Output.Dir, cfg.Output.ChartPrefix, plays)
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Printf("wrote %s\n", p)
		}
		return nil
	},
}

// exportCmd writes the play table of a stored run to CSV.
var exportCmd = &cobra.Command{
	Use:   "export [run-id]",
	Short: "Export a stored run to CSV (default: latest)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, plays, err := loadStoredPlays(args)
		if err != nil {
			return err
		}
		path := filepath.Join(cfg.Output.Dir, cfg.Output.CSVName)
		if err := export.WriteCSVFile(path, plays); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", path)
		return nil
	},
}

// runsCmd lists stored runs.
var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List stored simulation runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.Open(cfg.Output.DatabasePath)
		if err != nil {
			return err
		}
		defer s.Close()

		runs, err := s.ListRuns(20)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Println("no stored runs")
			return nil
		}
		for _, r := range runs {
			fmt.Printf("%s  %s  seed=%d  plays=%d\n",
				r.ID, r.CreatedAt.Format("2006-01-02 15:04:05"), r.Seed, r.Plays)
		}
		return nil
	},
}
