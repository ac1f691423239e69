// Package config loads merge options from an optional YAML file and applies
// defaults. Command-line flags override file values; that merge happens in
// the CLI layer.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"binmerge/internal/match"
)

// Default values applied to unset options.
const (
	DefaultFingerprintLength = 20
	DefaultOutput            = "output.bin"
)

// Config holds the user-tunable merge options.
type Config struct {
	// FingerprintLength is the number of tail bytes taken from each file to
	// locate its continuation in the next one.
	FingerprintLength int `yaml:"fingerprint_length"`

	// QualityThreshold is the overlap quality above which an aggressive
	// search stops early.
	QualityThreshold float64 `yaml:"quality_threshold"`

	// Aggressive keeps searching past a poor first match.
	Aggressive bool `yaml:"aggressive"`

	// Output is the merged output path.
	Output string `yaml:"output"`
}

// LoadFile loads and parses a YAML config file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config and applies defaults.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	err := yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns a Config with every option at its default value.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.FingerprintLength == 0 {
		cfg.FingerprintLength = DefaultFingerprintLength
	}
	if cfg.QualityThreshold == 0 {
		cfg.QualityThreshold = match.DefaultThreshold
	}
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}
}

func validate(cfg *Config) error {
	if cfg.FingerprintLength < 1 {
		return fmt.Errorf("fingerprint_length must be positive, got %d", cfg.FingerprintLength)
	}
	if cfg.QualityThreshold < 0 || cfg.QualityThreshold > 1 {
		return fmt.Errorf("quality_threshold must be in [0,1], got %g", cfg.QualityThreshold)
	}
	return nil
}
