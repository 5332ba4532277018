// Package config loads the plank.yml configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file name looked up in the working directory.
const DefaultFile = "plank.yml"

// Config represents the top-level plank.yml configuration. The storage
// directory is the only setting the core consumes; it is handed to the
// store at construction.
type Config struct {
	// StorageDir holds the collection documents (users.json, teams.json,
	// tasks.json).
	StorageDir string `yaml:"storage_dir"`
	// OutDir receives board exports.
	OutDir string `yaml:"out_dir"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		StorageDir: ".plank",
		OutDir:     "out",
	}
}

// Load reads the configuration from path. A missing file yields the
// defaults; a present but unparseable file is an error. Fields omitted
// from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if cfg.StorageDir == "" {
		cfg.StorageDir = Default().StorageDir
	}
	if cfg.OutDir == "" {
		cfg.OutDir = Default().OutDir
	}
	return cfg, nil
}
