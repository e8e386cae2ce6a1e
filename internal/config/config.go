// Package config loads tenpin CLI settings from an optional HCL file.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultFile is read when no --config flag is given.
const DefaultFile = "tenpin.hcl"

// Config holds CLI settings
type Config struct {
	LogLevel  string `hcl:"log_level,optional"`
	LogFormat string `hcl:"log_format,optional"`
	NoColor   bool   `hcl:"no_color,optional"`
	Player    string `hcl:"player,optional"`
	Lane      int    `hcl:"lane,optional"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: "console",
		Player:    "anonymous",
	}
}

// Load reads configuration from an HCL file. A missing file yields defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	def := Default()
	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = def.LogFormat
	}
	if cfg.Player == "" {
		cfg.Player = def.Player
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return &cfg, nil
}

// Validate checks settings that have a fixed set of values
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level: %s", c.LogLevel)
	}

	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log_format: %s", c.LogFormat)
	}

	if c.Lane < 0 {
		return fmt.Errorf("invalid lane: %d", c.Lane)
	}
	return nil
}
