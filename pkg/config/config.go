// Package config loads the generator's configuration from defaults, an
// optional YAML file, and environment overrides.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for regexdoc
type Config struct {
	// Content locations
	ExamplesDir  string `yaml:"examples_dir" env:"REGEXDOC_EXAMPLES_DIR"`
	TemplatesDir string `yaml:"templates_dir" env:"REGEXDOC_TEMPLATES_DIR"`
	OutputDir    string `yaml:"output_dir" env:"REGEXDOC_OUTPUT_DIR"`

	// Page settings
	SiteTitle string `yaml:"site_title" env:"REGEXDOC_SITE_TITLE"`

	// Behavior flags
	Quiet bool `yaml:"quiet" env:"REGEXDOC_QUIET"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		ExamplesDir:  "examples",
		TemplatesDir: "templates",
		OutputDir:    "html_output",
		SiteTitle:    "Regular Expression Learning",
	}
}

// Load loads configuration from file and environment
func Load() (*Config, error) {
	cfg := DefaultConfig()

	if path := getConfigPath(); path != "" {
		if err := loadFromFile(cfg, path); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := loadFromEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// getConfigPath returns the config file path. The generator is a
// per-project tool, so the default location is the working directory.
func getConfigPath() string {
	if path := os.Getenv("REGEXDOC_CONFIG"); path != "" {
		return path
	}
	return "regexdoc.yaml"
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(cfg *Config, path string) error {
	// #nosec G304 - The config file path comes from trusted sources (env var or working directory)
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

// loadFromEnv loads configuration from environment variables
func loadFromEnv(cfg *Config) error {
	if dir := os.Getenv("REGEXDOC_EXAMPLES_DIR"); dir != "" {
		cfg.ExamplesDir = dir
	}

	if dir := os.Getenv("REGEXDOC_TEMPLATES_DIR"); dir != "" {
		cfg.TemplatesDir = dir
	}

	if dir := os.Getenv("REGEXDOC_OUTPUT_DIR"); dir != "" {
		cfg.OutputDir = dir
	}

	if title := os.Getenv("REGEXDOC_SITE_TITLE"); title != "" {
		cfg.SiteTitle = title
	}

	if quiet := os.Getenv("REGEXDOC_QUIET"); quiet != "" {
		switch quiet {
		case "true", "1", "yes":
			cfg.Quiet = true
		case "false", "0", "no":
			cfg.Quiet = false
		default:
			return fmt.Errorf("invalid REGEXDOC_QUIET value: %q (use true/false)", quiet)
		}
	}

	return nil
}

// validate validates the configuration
func validate(cfg *Config) error {
	if cfg.ExamplesDir == "" {
		return fmt.Errorf("examples_dir must not be empty")
	}

	if cfg.OutputDir == "" {
		return fmt.Errorf("output_dir must not be empty")
	}

	if cfg.SiteTitle == "" {
		return fmt.Errorf("site_title must not be empty")
	}

	return nil
}
