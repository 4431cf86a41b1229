// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultInput is the tracked run the report reads when no input is given
	DefaultInput = "docs/tracked-runs/asteria_camira_medium_20260202_160411.json"

	// InputEnvVar names the environment variable consulted when neither a
	// flag nor the config file sets the input path
	InputEnvVar = "RUN_ANALYZER_INPUT"

	FormatText = "text"
	FormatJSON = "json"
)

// Config represents the CLI configuration that can be loaded from a JSON or YAML file.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	Input    string `json:"input,omitempty" yaml:"input,omitempty"`                                        // Path to run log JSON file
	Format   string `json:"format,omitempty" yaml:"format,omitempty" validate:"omitempty,oneof=text json"` // Output format
	Out      string `json:"out,omitempty" yaml:"out,omitempty"`                                            // Path to write the JSON summary artifact
	Extended bool   `json:"extended,omitempty" yaml:"extended,omitempty"`                                  // Print monsters-killed and per-level economy sections
	Verbose  bool   `json:"verbose,omitempty" yaml:"verbose,omitempty"`                                    // Log load progress to stderr
}

// Defaults returns the configuration used when nothing else is set
func Defaults() Config {
	return Config{
		Input:  DefaultInput,
		Format: FormatText,
	}
}

// LoadConfig loads configuration from a JSON file, or YAML when the path ends in .yaml or .yml.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.Out != "" && c.Out == c.Input {
		return fmt.Errorf("config error: 'out' must not overwrite the input run log")
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Input == "" {
		result.Input = defaults.Input
	}
	if result.Format == "" {
		result.Format = defaults.Format
	}
	if result.Out == "" {
		result.Out = defaults.Out
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// InputFromEnv returns the input path from RUN_ANALYZER_INPUT, or "" when unset
func InputFromEnv() string {
	return os.Getenv(InputEnvVar)
}
