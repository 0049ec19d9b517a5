package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the workspace config file looked up in the working
// directory.
const FileName = ".dircraft.yaml"

// Config holds workspace defaults. Command-line flags override it.
type Config struct {
	Root string   `yaml:"root"`
	Skip []string `yaml:"skip"`
	Yes  bool     `yaml:"yes"`
}

// Load reads the config file from dir. A missing file is not an error
// and yields a zero-value config.
func Load(dir string) (Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("read %s: %w", FileName, err)
	}

	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", FileName, err)
	}
	return c, nil
}
