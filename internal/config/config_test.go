package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Simulation.Plays != 2500 {
		t.Errorf("expected Plays=2500, got %d", cfg.Simulation.Plays)
	}
	if cfg.Simulation.Seed != 42 {
		t.Errorf("expected Seed=42, got %d", cfg.Simulation.Seed)
	}
	if cfg.Simulation.Params.PressureRate != 0.35 {
		t.Errorf("expected PressureRate=0.35, got %v", cfg.Simulation.Params.PressureRate)
	}
	if cfg.Output.CSVName != "qb_pressure_data.csv" {
		t.Errorf("unexpected CSVName %q", cfg.Output.CSVName)
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	t.Setenv("PASSRUSH_DB", "")
	t.Setenv("PASSRUSH_OUT_DIR", "")

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "passrush.yaml")

	cfg := DefaultConfig()
	cfg.Simulation.Plays = 100
	cfg.Simulation.Seed = 7
	cfg.Output.Dir = "artifacts"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Simulation.Plays != 100 {
		t.Errorf("expected Plays=100, got %d", loaded.Simulation.Plays)
	}
	if loaded.Simulation.Seed != 7 {
		t.Errorf("expected Seed=7, got %d", loaded.Simulation.Seed)
	}
	if loaded.Output.Dir != "artifacts" {
		t.Errorf("expected Dir=artifacts, got %s", loaded.Output.Dir)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("PASSRUSH_DB", "")
	t.Setenv("PASSRUSH_OUT_DIR", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Simulation.Plays != 2500 {
		t.Errorf("expected defaults, got Plays=%d", cfg.Simulation.Plays)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PASSRUSH_DB", "/tmp/override.db")
	t.Setenv("PASSRUSH_OUT_DIR", "/tmp/override-out")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Output.DatabasePath != "/tmp/override.db" {
		t.Errorf("expected env db path, got %s", cfg.Output.DatabasePath)
	}
	if cfg.Output.Dir != "/tmp/override-out" {
		t.Errorf("expected env out dir, got %s", cfg.Output.Dir)
	}
}

func TestLoad_RejectsInvalid(t *testing.T) {
	t.Setenv("PASSRUSH_DB", "")
	t.Setenv("PASSRUSH_OUT_DIR", "")

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("simulation:\n  plays: -5\n  workers: 1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected validation error for negative plays")
	}

	if err := os.WriteFile(path, []byte("simulation: [not a map\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error for malformed yaml")
	}
}
