// Package config loads user-tunable settings from config files and the
// environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config carries all user-tunable settings.
type Config struct {
	// DataDir overrides the resolved application data directory.
	// Empty means the per-OS default.
	DataDir string `yaml:"data_dir" mapstructure:"data_dir"`

	Log   LogConfig   `yaml:"log" mapstructure:"log"`
	Serve ServeConfig `yaml:"serve" mapstructure:"serve"`
	Watch WatchConfig `yaml:"watch" mapstructure:"watch"`
}

type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
}

type ServeConfig struct {
	Addr string `yaml:"addr" mapstructure:"addr"`
}

type WatchConfig struct {
	Debounce string   `yaml:"debounce" mapstructure:"debounce"`
	Ignore   []string `yaml:"ignore" mapstructure:"ignore"`
}

func DefaultConfig() *Config {
	return &Config{
		Log:   LogConfig{Level: "info"},
		Serve: ServeConfig{Addr: "127.0.0.1:8137"},
		Watch: WatchConfig{Debounce: "50ms"},
	}
}

// Load reads config.yaml from the working directory, $XDG_CONFIG_HOME/jot,
// or ~/.config/jot, layered over DefaultConfig. A missing file is not an
// error. Environment variables use the JOT_ prefix.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths
	viper.AddConfigPath(".")
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		viper.AddConfigPath(filepath.Join(xdg, "jot"))
	}
	home, _ := os.UserHomeDir()
	viper.AddConfigPath(filepath.Join(home, ".config", "jot"))

	// Environment variables
	viper.SetEnvPrefix("JOT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error produced
			return nil, err
		}
		// Config file not found; ignore and use defaults
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail deep inside a command.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	if c.Watch.Debounce != "" {
		if _, err := time.ParseDuration(c.Watch.Debounce); err != nil {
			return fmt.Errorf("invalid watch debounce: %w", err)
		}
	}
	return nil
}

// LogLevel maps the configured level onto slog.
func (c *Config) LogLevel() slog.Level {
	switch c.Log.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Debounce returns the parsed watch debounce interval, zero when unset.
func (c *Config) Debounce() time.Duration {
	if c.Watch.Debounce == "" {
		return 0
	}
	d, err := time.ParseDuration(c.Watch.Debounce)
	if err != nil {
		return 0
	}
	return d
}
