package config

import (
	"os"
	"path/filepath"
	"testing"
)

func isolateConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("SPENT_DB", "")
	t.Setenv("SPENT_CURRENCY", "")
	return dir
}

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	isolateConfig(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.General.Currency != "$" {
		t.Errorf("currency = %q, want $", cfg.General.Currency)
	}
	if cfg.General.DefaultPeriod != "month" {
		t.Errorf("default period = %q, want month", cfg.General.DefaultPeriod)
	}
	if cfg.General.DatabasePath == "" {
		t.Error("database path empty, want a default")
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	isolateConfig(t)

	cfg := DefaultConfig()
	cfg.General.Currency = "€"
	cfg.General.DatabasePath = "/tmp/spent-test.db"
	cfg.Analytics.TrendTolerance = 0.2
	cfg.Analytics.DominantShare = 0.5

	if err := Save(cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	if !Exists() {
		t.Fatal("config file missing after save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.General.Currency != "€" {
		t.Errorf("currency = %q, want €", got.General.Currency)
	}
	if got.General.DatabasePath != "/tmp/spent-test.db" {
		t.Errorf("db path = %q", got.General.DatabasePath)
	}
	if got.Analytics.TrendTolerance != 0.2 || got.Analytics.DominantShare != 0.5 {
		t.Errorf("analytics = %+v", got.Analytics)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolateConfig(t)

	cfg := DefaultConfig()
	cfg.General.DatabasePath = "/from/file.db"
	if err := Save(cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	t.Setenv("SPENT_DB", "/from/env.db")
	t.Setenv("SPENT_CURRENCY", "£")

	got, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.General.DatabasePath != "/from/env.db" {
		t.Errorf("db path = %q, want env override", got.General.DatabasePath)
	}
	if got.General.Currency != "£" {
		t.Errorf("currency = %q, want £", got.General.Currency)
	}
}

func TestConfigPath_UnderXDG(t *testing.T) {
	dir := isolateConfig(t)
	want := filepath.Join(dir, "spent", "config.toml")
	got := ConfigPath()
	if got != want {
		t.Errorf("config path = %q, want %q", got, want)
	}
	if _, err := os.Stat(got); !os.IsNotExist(err) {
		t.Errorf("config file should not exist yet: %v", err)
	}
}
