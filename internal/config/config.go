// Package config loads the optional .textscope.yaml settings file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the settings file looked up in the scanned directory.
const FileName = ".textscope.yaml"

// Config holds project-level defaults. Command-line flags take precedence
// over anything set here.
type Config struct {
	// Exclude lists base-name globs to skip while walking, e.g. "*.pb.go".
	Exclude []string `yaml:"exclude"`
	// MinLines is the default duplication threshold; 0 means unset.
	MinLines int `yaml:"min_lines"`
}

// Load reads dir/.textscope.yaml. A missing file yields a zero Config and no
// error; a malformed one is an error so typos do not silently change results.
func Load(dir string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading %s: %w", FileName, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", FileName, err)
	}
	return cfg, nil
}
