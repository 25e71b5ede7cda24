// Package config loads the reporter's settings from a YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	OutputTable = "table"
	OutputJSON  = "json"
)

// Log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Environment overrides.
const (
	EnvSnapshot = "REPORTER_SNAPSHOT"
	EnvLogLevel = "REPORTER_LOG_LEVEL"
)

// RecommendationConfig tunes the event recommender.
type RecommendationConfig struct {
	Top int `yaml:"top"`
}

// Config holds the reporter settings.
type Config struct {
	Snapshot        string               `yaml:"snapshot"`
	LogLevel        string               `yaml:"log_level"`
	LogFormat       string               `yaml:"log_format"`
	MetricsFile     string               `yaml:"metrics_file"`
	Output          string               `yaml:"output"`
	Recommendations RecommendationConfig `yaml:"recommendations"`
}

// Default returns the settings used when no config file exists.
func Default() *Config {
	return &Config{
		Snapshot:  "snapshot.yaml",
		LogLevel:  "info",
		LogFormat: LogFormatText,
		Output:    OutputTable,
		Recommendations: RecommendationConfig{
			Top: 5,
		},
	}
}

// Load reads path over the defaults, then applies environment overrides and
// validates the result. A missing file is not an error; an empty path skips
// the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("config: decode %s: %w", path, err)
			}
		}
	}

	if v := os.Getenv(EnvSnapshot); v != "" {
		cfg.Snapshot = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Snapshot) == "" {
		return fmt.Errorf("snapshot path is required")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if c.LogFormat != LogFormatText && c.LogFormat != LogFormatJSON {
		return fmt.Errorf("log_format must be %q or %q, got %q", LogFormatText, LogFormatJSON, c.LogFormat)
	}
	if c.Output != OutputTable && c.Output != OutputJSON {
		return fmt.Errorf("output must be %q or %q, got %q", OutputTable, OutputJSON, c.Output)
	}
	if c.Recommendations.Top < 1 {
		return fmt.Errorf("recommendations.top must be positive, got %d", c.Recommendations.Top)
	}

	return nil
}

// Logger builds a logrus logger from the log settings.
func (c *Config) Logger() *logrus.Logger {
	logger := logrus.New()
	if level, err := logrus.ParseLevel(c.LogLevel); err == nil {
		logger.SetLevel(level)
	}
	if c.LogFormat == LogFormatJSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}

	return logger
}
