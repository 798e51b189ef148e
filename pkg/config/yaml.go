package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config file names probed by Discover, in order.
var configFileNames = []string{".fencelint.yaml", ".fencelint.yml"}

// FromYAML parses a configuration from YAML bytes.
func FromYAML(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return cfg, nil
}

// LoadFile reads and parses a configuration file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := FromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Discover loads configuration for a run rooted at dir.
//
// When explicitPath is non-empty it must exist and parse, otherwise the run
// fails. Without an explicit path, the well-known config file names are
// probed in dir; a missing file is not an error and yields defaults.
func Discover(dir, explicitPath string) (*Config, error) {
	if explicitPath != "" {
		return LoadFile(explicitPath)
	}

	for _, name := range configFileNames {
		path := filepath.Join(dir, name)
		cfg, err := LoadFile(path)
		if err == nil {
			return cfg, nil
		}
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return nil, err
	}

	return Default(), nil
}
