// Package config manages daterange defaults using Viper and XDG base directories.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/dslh/daterange/internal/calendar"
	"github.com/spf13/viper"
)

// Config holds the user's formatting defaults. Command-line flags override
// every field.
type Config struct {
	Locale      string `mapstructure:"locale"`       // empty means the ambient locale
	Timezone    string `mapstructure:"timezone"`     // empty means each instant's own zone
	Separator   string `mapstructure:"separator"`
	IncludeTime bool   `mapstructure:"include_time"`
}

// envVars maps config keys to the environment variables that override them.
var envVars = map[string]string{
	"locale":       "DATERANGE_LOCALE",
	"timezone":     "DATERANGE_TIMEZONE",
	"separator":    "DATERANGE_SEPARATOR",
	"include_time": "DATERANGE_INCLUDE_TIME",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("locale", "")
	v.SetDefault("timezone", "")
	v.SetDefault("separator", "-")
	v.SetDefault("include_time", true)
}

// newViper returns a Viper instance pointed at the config file.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir())
	setDefaults(v)
	return v
}

func readInConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("reading config: %w", err)
		}
		// No config file is fine: defaults and env still apply.
	}
	return nil
}

// Load reads the configuration from the config file and environment variables.
// Environment variables take precedence over config file values.
func Load() (*Config, error) {
	v := newViper()
	for key, env := range envVars {
		_ = v.BindEnv(key, env)
	}

	if err := readInConfig(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// loadFile reads the config file alone, without environment overrides, so
// that Set does not persist values that only came from the environment.
func loadFile() (*Config, error) {
	v := newViper()
	if err := readInConfig(v); err != nil {
		return nil, err
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Write persists the given config to the config file.
func Write(cfg *Config) error {
	dir := configDir()
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")

	v.Set("locale", cfg.Locale)
	v.Set("timezone", cfg.Timezone)
	v.Set("separator", cfg.Separator)
	v.Set("include_time", cfg.IncludeTime)

	return v.WriteConfigAs(Path())
}

// Keys returns the settable configuration keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(envVars))
	for key := range envVars {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// EnvVar returns the environment variable that overrides key.
func EnvVar(key string) string {
	return envVars[key]
}

// Set validates value for key and writes it to the config file.
func Set(key, value string) error {
	cfg, err := loadFile()
	if err != nil {
		return err
	}

	switch key {
	case "locale":
		cfg.Locale = value
	case "timezone":
		if _, err := calendar.LoadLocation(value); err != nil {
			return err
		}
		cfg.Timezone = value
	case "separator":
		cfg.Separator = value
	case "include_time":
		include, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("include_time must be true or false, got %q", value)
		}
		cfg.IncludeTime = include
	default:
		return fmt.Errorf("unknown config key %q", key)
	}

	return Write(cfg)
}

// configDir returns the XDG-compliant config directory for daterange.
func configDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "daterange")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "daterange")
}

// Dir returns the config directory path.
func Dir() string {
	return configDir()
}

// Path returns the config file path.
func Path() string {
	return filepath.Join(configDir(), "config.yml")
}
