// Package config loads the editor settings file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"dynsheet/internal/messages"
)

// DefaultLogPrefix prefixes fault log lines when the file sets none.
const DefaultLogPrefix = "dynsheet: "

// Config represents the root of a settings file.
type Config struct {
	// Registry is the path of a column table; empty selects the embedded one.
	Registry string `yaml:"registry,omitempty"`

	// Language is the BCP 47 tag used for messages.
	Language string `yaml:"language,omitempty"`

	// FoldWidth folds full-width digits before numeric parsing.
	FoldWidth bool `yaml:"fold_width,omitempty"`

	// Seed is the path of the rows file Reset restores; empty selects the
	// built-in dataset.
	Seed string `yaml:"seed,omitempty"`

	// LogPrefix prefixes fault log lines.
	LogPrefix *string `yaml:"log_prefix,omitempty"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	cfg := Config{}
	applyDefaults(&cfg)

	return cfg
}

// LoadFile loads and parses a settings file from the given path.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config.
func Parse(data []byte) (Config, error) {
	var cfg Config

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	if _, err := messages.Parse(cfg.Language); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Config) {
	if cfg.Language == "" {
		cfg.Language = "en"
	}

	if cfg.LogPrefix == nil {
		p := DefaultLogPrefix
		cfg.LogPrefix = &p
	}
}

// Prefix returns the log prefix, which may be empty.
func (c Config) Prefix() string {
	if c.LogPrefix == nil {
		return DefaultLogPrefix
	}

	return *c.LogPrefix
}
