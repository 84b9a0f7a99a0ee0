package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Color modes accepted by DisplayConfig.Color
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds all configuration options for the schedule application
type Config struct {
	Files       FilesConfig       `yaml:"files"`
	Display     DisplayConfig     `yaml:"display"`
	Application ApplicationConfig `yaml:"application"`
}

// FilesConfig locates the weeks and plan files
type FilesConfig struct {
	Dir   string `yaml:"dir" env:"SCHEDULE_DIR"`
	Weeks string `yaml:"weeks" env:"SCHEDULE_WEEKS_FILE"`
	Plan  string `yaml:"plan" env:"SCHEDULE_PLAN_FILE"`
}

// DisplayConfig holds output configuration
type DisplayConfig struct {
	Color string `yaml:"color" env:"SCHEDULE_COLOR"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout  time.Duration `yaml:"timeout" env:"SCHEDULE_TIMEOUT"`
	LogLevel string        `yaml:"log_level" env:"SCHEDULE_LOG_LEVEL"`
}

// NewConfig creates a new configuration with the defaults: ~/.files/weeks and ~/.files/plan
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDir := ""
	if homeDir != "" {
		defaultDir = filepath.Join(homeDir, ".files")
	}

	return &Config{
		Files: FilesConfig{
			Dir:   defaultDir,
			Weeks: "weeks",
			Plan:  "plan",
		},
		Display: DisplayConfig{
			Color: ColorAuto,
		},
		Application: ApplicationConfig{
			Timeout:  10 * time.Second,
			LogLevel: "warn",
		},
	}
}

// DefaultConfigFilePath returns the location of the optional YAML config file
func DefaultConfigFilePath() string {
	if path := os.Getenv("SCHEDULE_CONFIG"); path != "" {
		return expandHome(path)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config", "schedule", "config.yaml")
}

// GetWeeksPath returns the full path to the weeks file
func (c *Config) GetWeeksPath() string {
	return c.resolve(c.Files.Weeks)
}

// GetPlanPath returns the full path to the plan file
func (c *Config) GetPlanPath() string {
	return c.resolve(c.Files.Plan)
}

func (c *Config) resolve(name string) string {
	name = expandHome(name)
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(expandHome(c.Files.Dir), name)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	if dir := os.Getenv("SCHEDULE_DIR"); dir != "" {
		c.Files.Dir = dir
	}
	if weeks := os.Getenv("SCHEDULE_WEEKS_FILE"); weeks != "" {
		c.Files.Weeks = weeks
	}
	if plan := os.Getenv("SCHEDULE_PLAN_FILE"); plan != "" {
		c.Files.Plan = plan
	}

	if color := os.Getenv("SCHEDULE_COLOR"); color != "" {
		c.Display.Color = strings.ToLower(color)
	}

	if timeout := os.Getenv("SCHEDULE_TIMEOUT"); timeout != "" {
		c.Application.Timeout = ParseDurationWithFallback(timeout, c.Application.Timeout)
	}
	if level := os.Getenv("SCHEDULE_LOG_LEVEL"); level != "" {
		c.Application.LogLevel = strings.ToLower(level)
	}
	if os.Getenv("SCHEDULE_DEBUG") != "" {
		c.Application.LogLevel = zerolog.DebugLevel.String()
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Files.Dir == "" && (!filepath.IsAbs(expandHome(c.Files.Weeks)) || !filepath.IsAbs(expandHome(c.Files.Plan))) {
		return &ConfigError{Field: "files.dir", Message: "files directory cannot be empty"}
	}
	if c.Files.Weeks == "" {
		return &ConfigError{Field: "files.weeks", Message: "weeks file cannot be empty"}
	}
	if c.Files.Plan == "" {
		return &ConfigError{Field: "files.plan", Message: "plan file cannot be empty"}
	}

	switch c.Display.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return &ConfigError{Field: "display.color", Message: "color must be one of auto, always, never"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}
	if c.Application.LogLevel == "" {
		return &ConfigError{Field: "application.log_level", Message: "log level cannot be empty"}
	}
	if _, err := zerolog.ParseLevel(c.Application.LogLevel); err != nil {
		return &ConfigError{Field: "application.log_level", Message: "unknown log level " + c.Application.LogLevel}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
}
