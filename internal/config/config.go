// Package config loads the webidlparse CLI's default run options from a
// YAML file, so a project can commit its parser preferences (trivia
// capture, nested typedefs, output format) instead of passing flags every
// invocation.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the complete CLI configuration.
type Config struct {
	// Trivia, when true, makes `parse` attach whitespace/comment trivia to
	// the AST by default.
	Trivia bool `yaml:"trivia,omitempty"`
	// AllowNestedTypedefs, when true, permits typedef members inside
	// interface bodies by default.
	AllowNestedTypedefs bool `yaml:"allow_nested_typedefs,omitempty"`
	// OutputFormat is "json" or "text".
	OutputFormat string `yaml:"output_format,omitempty"`
}

// Load reads and parses a YAML configuration file, validating its
// contents and filling in defaults for anything left unset.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	applyDefaults(&cfg)

	return &cfg, nil
}

// Default returns the configuration used when no file is loaded.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func validate(cfg *Config) error {
	switch cfg.OutputFormat {
	case "", "json", "text":
		return nil
	default:
		return fmt.Errorf("output_format must be \"json\" or \"text\", got %q", cfg.OutputFormat)
	}
}

func applyDefaults(cfg *Config) {
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = "json"
	}
}
