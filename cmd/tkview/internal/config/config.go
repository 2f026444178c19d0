// Package config loads optional CLI configuration from tkview.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/go-tkview/tkview/pkg/theme"
)

// FileName is the configuration file looked up in the working directory.
const FileName = "tkview.yaml"

// Config holds CLI settings. Every field is optional; zero values keep the
// built-in behavior.
type Config struct {
	// OutputDir receives rendered previews. Empty writes them next to
	// their sources.
	OutputDir string `yaml:"outputDir,omitempty"`

	// Theme overrides the default preview theme. Only the fields present
	// in the file change.
	Theme theme.Theme `yaml:"theme,omitempty"`
}

// Load reads tkview.yaml from dir if it exists. A missing file is not an
// error and yields the default configuration.
func Load(dir string) (Config, error) {
	cfg := Config{Theme: theme.Default()}

	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	cfg.Theme = cfg.Theme.Merge(theme.Default())
	return cfg, nil
}
