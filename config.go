package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is read when no --config flag is given
const DefaultConfigPath = "config.yaml"

// Config represents the complete application configuration
type Config struct {
	Target struct {
		ProcessName string `yaml:"process_name"`
	} `yaml:"target"`
	Redirect struct {
		Enabled        bool          `yaml:"enabled"`
		Delay          time.Duration `yaml:"delay"`
		ResolveTimeout time.Duration `yaml:"resolve_timeout"`
	} `yaml:"redirect"`
	Chords struct {
		Enabled bool `yaml:"enabled"`
	} `yaml:"chords"`
	Tray struct {
		Enabled bool `yaml:"enabled"`
	} `yaml:"tray"`
	Notifications struct {
		Enabled    bool `yaml:"enabled"`
		ShowErrors bool `yaml:"show_errors"`
	} `yaml:"notifications"`
	Logging struct {
		Dir   string `yaml:"dir"`
		Debug bool   `yaml:"debug"`
	} `yaml:"logging"`
}

// ConfigOverrides carries command-line values that take precedence over the file.
// Nil fields were not given.
type ConfigOverrides struct {
	TargetProcess *string
	Delay         *time.Duration
	NoRedirect    bool
	NoChords      bool
	NoTray        bool
	Debug         bool
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	config := &Config{}

	config.Target.ProcessName = "firefox"

	config.Redirect.Enabled = true
	config.Redirect.Delay = DefaultRedirectDelay
	config.Redirect.ResolveTimeout = DefaultResolveTimeout

	config.Chords.Enabled = true

	config.Tray.Enabled = true

	config.Notifications.Enabled = true
	config.Notifications.ShowErrors = true

	config.Logging.Dir = "logs"
	config.Logging.Debug = false

	return config
}

// LoadConfig loads configuration from a YAML file over the defaults, applies
// overrides and validates the result. A missing file at the default path is not
// an error; a missing file at an explicit path is.
func LoadConfig(path string, explicit bool, overrides ConfigOverrides) (*Config, error) {
	config := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := loadConfigFromFile(config, path); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	} else if explicit || !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	applyOverrides(config, overrides)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// loadConfigFromFile loads configuration from a YAML file
func loadConfigFromFile(config *Config, filename string) error {
	absPath, err := filepath.Abs(filename)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, config)
}

// applyOverrides applies command-line values over configuration file settings
func applyOverrides(config *Config, overrides ConfigOverrides) {
	if overrides.TargetProcess != nil {
		config.Target.ProcessName = *overrides.TargetProcess
	}
	if overrides.Delay != nil {
		config.Redirect.Delay = *overrides.Delay
	}
	if overrides.NoRedirect {
		config.Redirect.Enabled = false
	}
	if overrides.NoChords {
		config.Chords.Enabled = false
	}
	if overrides.NoTray {
		config.Tray.Enabled = false
	}
	if overrides.Debug {
		config.Logging.Debug = true
	}
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	config.Target.ProcessName = strings.TrimSpace(config.Target.ProcessName)
	if config.Redirect.Enabled && config.Target.ProcessName == "" {
		return errors.New("target process name cannot be empty while redirect is enabled")
	}

	if config.Redirect.Delay < 0 {
		return fmt.Errorf("redirect delay must be non-negative, got: %v", config.Redirect.Delay)
	}

	if config.Redirect.ResolveTimeout <= 0 {
		return fmt.Errorf("resolve timeout must be positive, got: %v", config.Redirect.ResolveTimeout)
	}

	if config.Logging.Dir == "" {
		return errors.New("logging dir cannot be empty")
	}

	return nil
}
