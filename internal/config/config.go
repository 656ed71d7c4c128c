// Package config loads and persists user preferences from a TOML file
// in the XDG config directory, with overrides from the environment
// (a .env file is honored when present).
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config holds all spent configuration.
type Config struct {
	General   GeneralConfig   `toml:"general"`
	Analytics AnalyticsConfig `toml:"analytics"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DatabasePath  string `toml:"database_path,omitempty"`
	Currency      string `toml:"currency"`
	DefaultPeriod string `toml:"default_period"`
}

// AnalyticsConfig holds the tunable analytics thresholds. Zero values
// mean "use the engine default".
type AnalyticsConfig struct {
	TrendTolerance     float64 `toml:"trend_tolerance,omitempty"`
	DominantShare      float64 `toml:"dominant_share,omitempty"`
	WeekendShare       float64 `toml:"weekend_share,omitempty"`
	TransactionsPerDay float64 `toml:"transactions_per_day,omitempty"`
	ProjectionMargin   float64 `toml:"projection_margin,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Currency:      "$",
			DefaultPeriod: "month",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "spent")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "spent")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DefaultDatabasePath returns where the expense database lives when
// not overridden by config or environment.
func DefaultDatabasePath() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "spent", "spent.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "spent", "spent.db")
}

// Load reads the config file, returning defaults if it doesn't exist.
// SPENT_DB and SPENT_CURRENCY environment variables override the file;
// a .env in the working directory is loaded first when present.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("reading config: %w", err)
		}
	} else if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	if db := os.Getenv("SPENT_DB"); db != "" {
		cfg.General.DatabasePath = db
	}
	if cur := os.Getenv("SPENT_CURRENCY"); cur != "" {
		cfg.General.Currency = cur
	}

	if cfg.General.DatabasePath == "" {
		cfg.General.DatabasePath = DefaultDatabasePath()
	}
	if cfg.General.Currency == "" {
		cfg.General.Currency = "$"
	}
	if cfg.General.DefaultPeriod == "" {
		cfg.General.DefaultPeriod = "month"
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
