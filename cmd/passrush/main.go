package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"passrush/internal/config"
)

const version = "1.0.0"

var (
	// Global flags
	verbose bool
	cfgPath string

	// Loaded configuration and logger, set up in PersistentPreRunE.
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "passrush",
	Short: "passrush - QB pressure simulation and analytics",
	Long: `passrush simulates NFL pass-play data and analyzes how defensive
pressure affects quarterback performance: completion rates, yardage,
sacks, and interceptions across release-time windows, defensive
alignments, and rush timing.

Runs are persisted to a local SQLite database so reports, charts, and
CSV exports can be re-rendered without regenerating data.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		cfg, err = config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if cfg.Logging.Verbose && !verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			if logger, err = zcfg.Build(); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the passrush version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("passrush %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "passrush.yaml", "config file path")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
