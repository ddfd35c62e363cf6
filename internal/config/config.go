// Package config loads and serves the carboncomply configuration.
//
// Configuration lives in ~/.carboncomply/config.yaml. A process-wide copy is
// loaded once and read through GetGlobalConfig; flag and environment
// overrides are applied by the CLI layer on top of the values returned here.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/rshade/carboncomply/internal/logging"
)

// Config is the top-level configuration document.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging"`
	Output   OutputConfig   `yaml:"output"`
	Analysis AnalysisConfig `yaml:"analysis"`
}

// LoggingConfig configures the zerolog backend.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// OutputConfig holds rendering defaults for CLI commands.
type OutputConfig struct {
	// DefaultFormat is one of "table", "json", or "ndjson".
	DefaultFormat string `yaml:"default_format"`
}

// AnalysisConfig holds default business context for compliance analysis so
// repeat invocations don't need the full flag set.
type AnalysisConfig struct {
	Role          string   `yaml:"role"`
	Location      string   `yaml:"location"`
	TargetMarkets []string `yaml:"target_markets"`
	Category      string   `yaml:"category"`
}

var (
	globalConfig   *Config      //nolint:gochecknoglobals // Process-wide config, loaded once
	globalConfigMu sync.RWMutex //nolint:gochecknoglobals // Guards globalConfig
)

// New returns a Config populated with defaults, overlaid with the contents
// of the global config file when one exists. A missing or unreadable config
// file is not an error; defaults are used.
func New() *Config {
	cfg := defaults()

	path, err := DefaultConfigPath()
	if err != nil {
		return cfg
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		// A malformed config file should not brick the CLI.
		return defaults()
	}
	return cfg
}

func defaults() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Output: OutputConfig{
			DefaultFormat: "table",
		},
	}
}

// LoadFrom reads a Config from an explicit path, returning an error for
// missing or malformed files. Used by `carboncomply config validate`.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field values that have a closed vocabulary.
func (c *Config) Validate() error {
	switch c.Output.DefaultFormat {
	case "", "table", "json", "ndjson":
	default:
		return fmt.Errorf("output.default_format must be table, json, or ndjson, got %q", c.Output.DefaultFormat)
	}
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}

// Save writes the config document to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

// GetGlobalConfig returns the process-wide configuration, loading it on
// first use.
func GetGlobalConfig() *Config {
	globalConfigMu.RLock()
	if globalConfig != nil {
		defer globalConfigMu.RUnlock()
		return globalConfig
	}
	globalConfigMu.RUnlock()

	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	if globalConfig == nil {
		globalConfig = New()
	}
	return globalConfig
}

// SetGlobalConfig replaces the process-wide configuration. Intended for
// tests and for `config init` to make a freshly written file visible.
func SetGlobalConfig(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// DefaultConfigPath returns ~/.carboncomply/config.yaml.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".carboncomply", "config.yaml"), nil
}

// DefaultLogPath returns ~/.carboncomply/logs/carboncomply.log.
func DefaultLogPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".carboncomply", "logs", "carboncomply.log"), nil
}

// EnsureLogDir creates the directory of the configured log file.
func EnsureLogDir() error {
	cfg := GetGlobalConfig()
	if cfg.Logging.File == "" {
		return nil
	}
	return os.MkdirAll(filepath.Dir(cfg.Logging.File), 0700)
}

// GetLoggingConfig returns a copy of the Logging section of the global
// configuration. Flag-level overrides (for example --debug) are applied by
// the caller after retrieving this value.
func GetLoggingConfig() LoggingConfig {
	return GetGlobalConfig().Logging
}

// GetDefaultOutputFormat returns the configured default output format for
// CLI commands, falling back to "table".
func GetDefaultOutputFormat() string {
	format := GetGlobalConfig().Output.DefaultFormat
	if format == "" {
		return "table"
	}
	return format
}

// ToLoggingConfig converts a LoggingConfig into the logging package's
// Config. When File is set the output destination becomes "file".
func (lc LoggingConfig) ToLoggingConfig() logging.Config {
	output := "stderr"
	if lc.File != "" {
		output = "file"
	}
	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}
