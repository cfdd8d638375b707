package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Navigation NavigationConfig
	Logging    LoggingConfig
	Metrics    MetricsConfig
}

// NavigationConfig holds the settings passed to every sync handler.
type NavigationConfig struct {
	Animations         bool
	Debug              bool
	WindowPollInterval time.Duration `mapstructure:"window_poll_interval"`
	MaxWindowWait      time.Duration `mapstructure:"max_window_wait"`
}

// LoggingConfig selects the zerolog level and sink. Output is "stderr",
// "stdout" or a file path.
type LoggingConfig struct {
	Level  string
	Format string
	Output string
}

// MetricsConfig controls the prometheus observer.
type MetricsConfig struct {
	Enabled   bool
	Namespace string
	Addr      string
}

// Load reads configuration from file and env. Env var overrides use prefix NAVSYNC_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("navigation.animations", true)
	v.SetDefault("navigation.debug", false)
	v.SetDefault("navigation.window_poll_interval", 10*time.Millisecond)
	v.SetDefault("navigation.max_window_wait", 4*time.Second)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output", "stderr")
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.namespace", "navsync")
	v.SetDefault("metrics.addr", "127.0.0.1:9464")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("NAVSYNC_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "navsync"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("NAVSYNC")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports settings the handlers can not run with.
func (c Config) Validate() error {
	var errs []error
	if c.Navigation.WindowPollInterval <= 0 {
		errs = append(errs, fmt.Errorf("navigation.window_poll_interval must be positive, got %s", c.Navigation.WindowPollInterval))
	}
	if c.Navigation.MaxWindowWait < c.Navigation.WindowPollInterval {
		errs = append(errs, fmt.Errorf("navigation.max_window_wait %s is shorter than the poll interval", c.Navigation.MaxWindowWait))
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := os.Getenv("NAVSYNC_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "navsync", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("navigation.animations", cfg.Navigation.Animations)
	v.Set("navigation.debug", cfg.Navigation.Debug)
	v.Set("navigation.window_poll_interval", cfg.Navigation.WindowPollInterval.String())
	v.Set("navigation.max_window_wait", cfg.Navigation.MaxWindowWait.String())
	v.Set("logging.level", cfg.Logging.Level)
	v.Set("logging.format", cfg.Logging.Format)
	v.Set("logging.output", cfg.Logging.Output)
	v.Set("metrics.enabled", cfg.Metrics.Enabled)
	v.Set("metrics.namespace", cfg.Metrics.Namespace)
	v.Set("metrics.addr", cfg.Metrics.Addr)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
