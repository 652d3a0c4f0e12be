// Package config provides configuration management for the listing normalizer.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"erap/internal/normalizer"
	"erap/internal/output"
	"erap/internal/tsv"
)

// DefaultPath is where the CLI looks for a config file when none is given.
const DefaultPath = "configs/erap.yaml"

// Configuration validation errors.
var (
	ErrInvalidHeaderLine   = errors.New("input.header_line must be non-negative")
	ErrMissingCountyPath   = errors.New("counties.path is required")
	ErrNoAcceptedStatuses  = errors.New("rules.accepted_statuses must list at least one status")
	ErrMissingClosedMarker = errors.New("rules.closed_marker is required")
	ErrMissingOutputDir    = errors.New("output.dir is required")
	ErrMissingProgramsFile = errors.New("output.programs_file is required")
	ErrMissingErrorsFile   = errors.New("output.errors_file is required")
	ErrSameOutputFile      = errors.New("output.programs_file and output.errors_file must differ")
	ErrInvalidLogLevel     = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrInvalidLogFormat    = errors.New("logging.format must be 'text' or 'json'")
)

// Config represents the complete normalizer configuration.
type Config struct {
	Input    InputConfig   `yaml:"input"`
	Counties CountyConfig  `yaml:"counties"`
	Rules    RulesConfig   `yaml:"rules"`
	Output   OutputConfig  `yaml:"output"`
	Logging  LoggingConfig `yaml:"logging"`
}

// InputConfig describes the listing snapshot layout.
type InputConfig struct {
	HeaderLine int `yaml:"header_line"`
}

// CountyConfig locates the county lookup table.
type CountyConfig struct {
	Path string `yaml:"path"`
}

// RulesConfig holds the business rules that are expected to change between
// snapshots.
type RulesConfig struct {
	ClosedMarker     string   `yaml:"closed_marker"`
	AcceptedStatuses []string `yaml:"accepted_statuses"`
	SuppressedStates []string `yaml:"suppressed_states"`
}

// OutputConfig defines where artifacts are written.
type OutputConfig struct {
	Dir          string `yaml:"dir"`
	ProgramsFile string `yaml:"programs_file"`
	ErrorsFile   string `yaml:"errors_file"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	rules := normalizer.DefaultRules()

	return &Config{
		Input:    InputConfig{HeaderLine: tsv.DefaultHeaderLine},
		Counties: CountyConfig{Path: "lib/county-map.json"},
		Rules: RulesConfig{
			ClosedMarker:     rules.ClosedMarker,
			AcceptedStatuses: append([]string(nil), normalizer.DefaultStatuses...),
			SuppressedStates: rules.SuppressedStates,
		},
		Output: OutputConfig{
			Dir:          output.DefaultDir,
			ProgramsFile: output.DefaultProgramsFile,
			ErrorsFile:   output.DefaultErrorsFile,
		},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}

// LoadConfig loads configuration from a YAML file. Keys absent from the file
// keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to a YAML file.
func (c *Config) SaveConfig(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Input.HeaderLine < 0 {
		return ErrInvalidHeaderLine
	}

	if c.Counties.Path == "" {
		return ErrMissingCountyPath
	}

	if len(c.Rules.AcceptedStatuses) == 0 {
		return ErrNoAcceptedStatuses
	}

	for i, s := range c.Rules.AcceptedStatuses {
		if s == "" {
			return fmt.Errorf("%w: accepted_statuses[%d] is empty", ErrNoAcceptedStatuses, i)
		}
	}

	if c.Rules.ClosedMarker == "" {
		return ErrMissingClosedMarker
	}

	if c.Output.Dir == "" {
		return ErrMissingOutputDir
	}

	if c.Output.ProgramsFile == "" {
		return ErrMissingProgramsFile
	}

	if c.Output.ErrorsFile == "" {
		return ErrMissingErrorsFile
	}

	if filepath.Clean(c.Output.ProgramsFile) == filepath.Clean(c.Output.ErrorsFile) {
		return ErrSameOutputFile
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		return ErrInvalidLogFormat
	}

	return nil
}

// NormalizerRules converts the rules section for the transformer.
func (c *Config) NormalizerRules() normalizer.Rules {
	return normalizer.Rules{
		ClosedMarker:     c.Rules.ClosedMarker,
		SuppressedStates: c.Rules.SuppressedStates,
	}
}

// Writer returns an artifact writer for the output section.
func (c *Config) Writer() *output.Writer {
	return &output.Writer{
		Dir:          c.Output.Dir,
		ProgramsFile: c.Output.ProgramsFile,
		ErrorsFile:   c.Output.ErrorsFile,
	}
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Counties: %s, Statuses: %d, Suppressed: %v, Output: %s}",
		c.Counties.Path,
		len(c.Rules.AcceptedStatuses),
		c.Rules.SuppressedStates,
		c.Output.Dir,
	)
}
