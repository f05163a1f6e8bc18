package config

// This file implements the optional localtrack.yaml overlay. The file lives
// next to the binary (same directory the repository CLI runs in) and only
// overrides the keys it sets; everything else keeps its default.

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up next to the binary.
const FileName = "localtrack.yaml"

// fileConfig models localtrack.yaml. All keys are optional.
type fileConfig struct {
	LocalDir string `yaml:"local_dir,omitempty"`
	Tool     string `yaml:"tool,omitempty"`
	LogFile  string `yaml:"log_file,omitempty"`
	Color    string `yaml:"color,omitempty"`
}

// LoadFile reads localtrack.yaml from cfg.WorkDir and applies any keys it
// sets onto cfg. A missing file is not an error; a malformed one is.
func LoadFile(cfg *Config) error {
	return loadFileFrom(cfg, filepath.Join(cfg.WorkDir, FileName))
}

func loadFileFrom(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	if fc.LocalDir != "" {
		cfg.LocalDir = NormalizeDirArg(fc.LocalDir)
	}
	if fc.Tool != "" {
		cfg.Tool = fc.Tool
	}
	if fc.LogFile != "" {
		cfg.LogFile = fc.LogFile
	}
	if fc.Color != "" {
		cfg.ColorMode = ColorMode(fc.Color)
	}
	return nil
}
