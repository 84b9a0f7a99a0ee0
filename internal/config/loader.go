package config

import (
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"schedule/internal/errors"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config   *Config
	filePath string
}

// NewLoader creates a new configuration loader reading the default config file
func NewLoader() *Loader {
	return NewLoaderWithFile(DefaultConfigFilePath())
}

// NewLoaderWithFile creates a loader that reads the YAML config at path.
// An empty path skips the file.
func NewLoaderWithFile(path string) *Loader {
	return &Loader{
		config:   NewConfig(),
		filePath: path,
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the YAML config file, if present
// 3. Override with environment variables
//
// The result is not validated: command line flags may still replace any value.
func (l *Loader) Load() (*Config, error) {
	if err := l.loadFile(); err != nil {
		return nil, err
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration, applies command line overrides
// and validates the final result
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	config.ApplyOverrides(overrides)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (l *Loader) loadFile() error {
	if l.filePath == "" {
		return nil
	}

	data, err := os.ReadFile(l.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.FromFileError("read config", l.filePath, err)
	}

	if err := yaml.Unmarshal(data, l.config); err != nil {
		return errors.NewConfigError("could not parse config file "+l.filePath, err)
	}
	l.config.Display.Color = strings.ToLower(l.config.Display.Color)
	l.config.Application.LogLevel = strings.ToLower(l.config.Application.LogLevel)
	return nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	WeeksFile *string
	PlanFile  *string
	Color     *string
	LogLevel  *string
	Timeout   *time.Duration
}

// ApplyOverrides applies command line overrides to the configuration
func (c *Config) ApplyOverrides(overrides *ConfigOverrides) {
	if overrides == nil {
		return
	}
	if overrides.WeeksFile != nil {
		c.Files.Weeks = *overrides.WeeksFile
	}
	if overrides.PlanFile != nil {
		c.Files.Plan = *overrides.PlanFile
	}
	if overrides.Color != nil {
		c.Display.Color = strings.ToLower(*overrides.Color)
	}
	if overrides.LogLevel != nil {
		c.Application.LogLevel = strings.ToLower(*overrides.LogLevel)
	}
	if overrides.Timeout != nil {
		c.Application.Timeout = *overrides.Timeout
	}
}

// ParseDurationWithFallback parses a duration string with a fallback value
func ParseDurationWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return fallback
}
