// Package config loads and saves passrush configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"passrush/internal/sim"
)

// Config holds all passrush configuration.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// SimulationConfig controls the play generator.
type SimulationConfig struct {
	Plays   int        `yaml:"plays"`
	Seed    int64      `yaml:"seed"`
	Workers int        `yaml:"workers"`
	Params  sim.Params `yaml:"params"`
}

// OutputConfig controls where artifacts are written.
type OutputConfig struct {
	Dir          string `yaml:"dir"`
	CSVName      string `yaml:"csv_name"`
	ChartPrefix  string `yaml:"chart_prefix"`
	DatabasePath string `yaml:"database_path"`
}

// LoggingConfig controls log verbosity.
type LoggingConfig struct {
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns the reference configuration: 2500 plays, fixed
// seed 42, artifacts under ./out.
func DefaultConfig() *Config {
	return &Config{
		Simulation: SimulationConfig{
			Plays:   2500,
			Seed:    42,
			Workers: 8,
			Params:  sim.DefaultParams(),
		},
		Output: OutputConfig{
			Dir:          "out",
			CSVName:      "qb_pressure_data.csv",
			ChartPrefix:  "qb_pressure",
			DatabasePath: filepath.Join("out", "passrush.db"),
		},
	}
}

// Load reads a config file and applies environment overrides. A missing
// file is not an error; the defaults are returned with overrides applied.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// fall through to defaults
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides lets deployment-level paths win over file values.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("PASSRUSH_DB"); v != "" {
		c.Output.DatabasePath = v
	}
	if v := os.Getenv("PASSRUSH_OUT_DIR"); v != "" {
		c.Output.Dir = v
	}
}

func (c *Config) validate() error {
	if c.Simulation.Plays < 0 {
		return fmt.Errorf("simulation.plays must be non-negative, got %d", c.Simulation.Plays)
	}
	if c.Simulation.Workers < 1 {
		return fmt.Errorf("simulation.workers must be at least 1, got %d", c.Simulation.Workers)
	}
	return nil
}
