package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Payment  PaymentConfig
	UI       UIConfig
	Demo     DemoConfig
	Log      LogConfig
}

// DatabaseConfig holds sqlite settings for the demo catalog.
type DatabaseConfig struct {
	Path string
}

// PaymentConfig controls the simulated payment round trip.
type PaymentConfig struct {
	DelayMS int `mapstructure:"delay_ms"`
}

// Delay returns the configured processing delay.
func (p PaymentConfig) Delay() time.Duration {
	return time.Duration(p.DelayMS) * time.Millisecond
}

// UIConfig holds presentation settings.
type UIConfig struct {
	CurrencySymbol string `mapstructure:"currency_symbol"`
	DateFormat     string `mapstructure:"date_format"`
}

// DemoConfig seeds the demo identity the prototype signs in as.
type DemoConfig struct {
	Email    string
	Name     string
	Location string
}

// LogConfig holds the log file location.
type LogConfig struct {
	Path string
}

// Load reads configuration from file and env. Env var overrides use prefix SOUK_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "souk", "catalog.db"))
	v.SetDefault("payment.delay_ms", 1500)
	v.SetDefault("ui.currency_symbol", "$")
	v.SetDefault("ui.date_format", "02 Jan 2006")
	v.SetDefault("demo.email", "amina@example.com")
	v.SetDefault("demo.name", "Amina W.")
	v.SetDefault("demo.location", "Kilimani, Nairobi")
	v.SetDefault("log.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "souk", "souk.log"))

	v.SetConfigType("toml")

	cfgPath := os.Getenv("SOUK_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "souk"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SOUK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if
// needed. Used by the TUI settings screen for non-sensitive preferences.
func Save(cfg Config) error {
	path := os.Getenv("SOUK_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "souk", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("payment.delay_ms", cfg.Payment.DelayMS)
	v.Set("ui.currency_symbol", cfg.UI.CurrencySymbol)
	v.Set("ui.date_format", cfg.UI.DateFormat)
	v.Set("demo.email", cfg.Demo.Email)
	v.Set("demo.name", cfg.Demo.Name)
	v.Set("demo.location", cfg.Demo.Location)
	v.Set("log.path", cfg.Log.Path)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
