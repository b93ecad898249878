package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/matlit/matrix"
)

// Output formats.
const (
	formatText = "text"
	formatYAML = "yaml"
	formatRaw  = "raw"
)

// Config holds defaults read from an optional YAML file. Flags given on the
// command line win over the file.
type Config struct {
	Dims           string `yaml:"dims"`
	Inner          string `yaml:"inner"`
	Format         string `yaml:"format"`
	ValidateNaNInf *bool  `yaml:"validate_nan_inf"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	validate := matrix.DefaultValidateNaNInf

	return &Config{
		Dims:           matrix.MatrixX.String(),
		Inner:          matrix.VectorX.String(),
		Format:         formatText,
		ValidateNaNInf: &validate,
	}
}

// LoadConfig reads path on top of the defaults. An empty path or a missing
// file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the dims strings and the output format.
func (c *Config) Validate() error {
	if _, err := matrix.ParseDims(c.Dims); err != nil {
		return fmt.Errorf("config dims: %w", err)
	}
	if _, err := matrix.ParseDims(c.Inner); err != nil {
		return fmt.Errorf("config inner: %w", err)
	}
	switch c.Format {
	case formatText, formatYAML, formatRaw:
	default:
		return fmt.Errorf("config format %q: want text, yaml or raw", c.Format)
	}

	return nil
}
