// Package config loads and saves exptrack settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Environment overrides.
const (
	EnvDBPath   = "EXPTRACK_DB"
	EnvLogLevel = "EXPTRACK_LOG_LEVEL"
	EnvTheme    = "EXPTRACK_THEME"
)

// Config holds all exptrack configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Shell      ShellConfig      `toml:"shell"`
	Appearance AppearanceConfig `toml:"appearance"`
	Log        LogConfig        `toml:"log"`
}

// GeneralConfig holds storage and export preferences.
type GeneralConfig struct {
	DBPath         string `toml:"db_path"`
	DefaultExport  string `toml:"default_export"`
	CurrencySymbol string `toml:"currency_symbol"`
}

// ShellConfig holds interactive menu settings.
type ShellConfig struct {
	Forms bool `toml:"forms"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"`
}

// Themes lists the accepted appearance.theme values.
var Themes = []string{"flexoki-dark", "tokyo-night", "terminal"}

// LogLevels lists the accepted log.level values.
var LogLevels = []string{"debug", "info", "warn", "error"}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			DBPath:         "expenses.db",
			DefaultExport:  "expenses.csv",
			CurrencySymbol: "$",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "exptrack")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "exptrack")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist, and
// then applies environment overrides. A .env file in the working directory
// is loaded first; it never replaces variables already set.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), fmt.Errorf("reading .env: %w", err)
	}
	return LoadFile(Path())
}

// LoadFile reads the config at path and applies environment overrides.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	case os.IsNotExist(err):
	default:
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvDBPath); v != "" {
		cfg.General.DBPath = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v := os.Getenv(EnvTheme); v != "" {
		cfg.Appearance.Theme = v
	}
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.General.DBPath) == "" {
		problems = append(problems, "general.db_path must not be empty")
	}
	if !contains(LogLevels, c.Log.Level) {
		problems = append(problems, fmt.Sprintf("unknown log.level %q (want one of %s)",
			c.Log.Level, strings.Join(LogLevels, ", ")))
	}
	if !contains(Themes, c.Appearance.Theme) {
		problems = append(problems, fmt.Sprintf("unknown appearance.theme %q (want one of %s)",
			c.Appearance.Theme, strings.Join(Themes, ", ")))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// Save writes the config to the default location.
func Save(cfg Config) error {
	return SaveFile(Path(), cfg)
}

// SaveFile writes the config to path, creating its directory.
func SaveFile(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
