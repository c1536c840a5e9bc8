// Package config loads and saves tripview's TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jkhomeclaw/tripview/internal/model"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Environment variables that override the config file.
const (
	EnvData  = "TRIPVIEW_DATA"
	EnvAddr  = "TRIPVIEW_ADDR"
	EnvTheme = "TRIPVIEW_THEME"
)

// Config holds all tripview configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Currency   CurrencyConfig   `toml:"currency"`
	Appearance AppearanceConfig `toml:"appearance"`
	Server     ServerConfig     `toml:"server"`
	Package    PackageConfig    `toml:"package"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	Data       string `toml:"data"`
	DefaultDay int    `toml:"default_day"`
}

// CurrencyConfig holds the fallbacks used when a data file omits currencies.
type CurrencyConfig struct {
	Home         string  `toml:"home"`
	Destination  string  `toml:"destination"`
	ExchangeRate float64 `toml:"exchange_rate"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// ServerConfig holds `tripview serve` settings.
type ServerConfig struct {
	Addr              string   `toml:"addr"`
	AllowedOrigins    []string `toml:"allowed_origins,omitempty"`
	ReloadIntervalSec int      `toml:"reload_interval_sec"`
}

// PackageConfig is the metadata written to capacitor.config.json on export.
type PackageConfig struct {
	AppID   string `toml:"app_id"`
	AppName string `toml:"app_name"`
	WebDir  string `toml:"web_dir"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Data:       "data.json",
			DefaultDay: 1,
		},
		Currency: CurrencyConfig{
			Home:         "TWD",
			Destination:  "JPY",
			ExchangeRate: 0.215,
		},
		Appearance: AppearanceConfig{
			Theme: "sakura",
		},
		Server: ServerConfig{
			Addr:              "127.0.0.1:8080",
			ReloadIntervalSec: 5,
		},
		Package: PackageConfig{
			AppID:   "com.jkhomeclaw.tohokutrip",
			AppName: "TohokuTrip",
			WebDir:  "out",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "tripview")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "tripview")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist, then
// applies environment overrides.
func Load() (Config, error) {
	cfg, err := LoadFile(Path())
	if err != nil {
		return cfg, err
	}
	ApplyEnv(&cfg)
	return cfg, nil
}

// LoadFile reads a specific config file without environment overrides.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // config path is user-controlled
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// ApplyEnv loads ./.env if present and applies TRIPVIEW_* overrides.
// Variables already set in the environment win over .env entries.
func ApplyEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := strings.TrimSpace(os.Getenv(EnvData)); v != "" {
		cfg.General.Data = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvAddr)); v != "" {
		cfg.Server.Addr = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvTheme)); v != "" {
		cfg.Appearance.Theme = v
	}
}

// Save writes the config to disk.
func Save(cfg Config) error {
	return SaveFile(Path(), cfg)
}

// SaveFile writes the config to a specific path.
func SaveFile(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600) //nolint:gosec // config path is user-controlled
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// Defaults converts the currency section into normalization defaults.
func (c Config) Defaults() model.Defaults {
	return model.Defaults{
		HomeCurrency:        c.Currency.Home,
		DestinationCurrency: c.Currency.Destination,
		ExchangeRate:        c.Currency.ExchangeRate,
	}
}
