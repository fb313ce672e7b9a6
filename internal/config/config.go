package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cinteza-dev/cinteza/internal/export"
)

// FileName is the optional per-directory configuration file.
const FileName = "cinteza.yaml"

// Config represents the top-level cinteza.yaml configuration.
type Config struct {
	Workspace string       `yaml:"workspace"`
	Export    ExportConfig `yaml:"export"`
}

// ExportConfig holds the export option defaults applied to newly
// created profiles.
type ExportConfig struct {
	NoHeader bool `yaml:"no_header"`
	CRLF     bool `yaml:"crlf"`
	BOM      bool `yaml:"bom"`
}

// Options converts the configured defaults to export options.
func (e ExportConfig) Options() export.Options {
	return export.Options{NoHeader: e.NoHeader, CRLF: e.CRLF, BOM: e.BOM}
}

// Load reads a cinteza.yaml file from disk. A missing file is not an
// error: the defaults apply.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the built-in configuration: profiles.json in the
// working directory and the bank importer's expected CSV shape.
func Default() *Config {
	return &Config{
		Workspace: "profiles.json",
		Export: ExportConfig{
			NoHeader: true,
			CRLF:     true,
			BOM:      true,
		},
	}
}
