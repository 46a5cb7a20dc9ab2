// Package config provides configuration types, defaults, and persistence
// for protokolo.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/akontos/protokolo/internal/log"
	"github.com/akontos/protokolo/internal/tracing"
)

// Config holds all configuration options for protokolo.
type Config struct {
	// DataDir is where the database, logs, and traces live.
	DataDir string `mapstructure:"data_dir"`

	// Language selects display labels: "el" (default) or "en".
	Language string `mapstructure:"language"`

	// Tracing configures the OpenTelemetry subsystem.
	Tracing tracing.Config `mapstructure:"tracing"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		DataDir:  DefaultDataDir(),
		Language: "el",
		Tracing:  tracing.DefaultConfig(),
	}
}

// DefaultDataDir returns ~/.protokolo, or a relative fallback when the home
// directory cannot be resolved.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".protokolo"
	}
	return filepath.Join(home, ".protokolo")
}

// DBPath returns the registry database path under the data directory.
func (c Config) DBPath() string {
	return filepath.Join(c.DataDir, "protokolo.db")
}

// LogPath returns the debug log path under the data directory.
func (c Config) LogPath() string {
	return filepath.Join(c.DataDir, "debug.log")
}

// TracePath returns the default trace output path under the data directory.
func (c Config) TracePath() string {
	return filepath.Join(c.DataDir, "traces", "traces.jsonl")
}

// DefaultConfigTemplate returns the commented YAML written by config:init.
func DefaultConfigTemplate() string {
	return `# protokolo configuration
#
# data_dir holds the registry database, debug log and traces.
# data_dir: ~/.protokolo

# Display language for categories, offices and listing columns.
# Supported: el, en
language: el

# OpenTelemetry tracing (disabled by default).
#
# Example: write spans to a local JSONL file
# tracing:
#   enabled: true
#   exporter: file
#   file_path: ~/.protokolo/traces/traces.jsonl
#
# Example: send traces to a collector via OTLP
# tracing:
#   enabled: true
#   exporter: otlp
#   otlp_endpoint: localhost:4317
#   sample_rate: 0.1
`
}

// WriteDefaultConfig creates a config file at the given path with default
// settings and comments. Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "created default config", "path", configPath)
	return nil
}
