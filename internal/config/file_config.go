// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileConfig represents the structured YAML configuration. Pointer fields
// distinguish "unset" from zero values.
type FileConfig struct {
	Run     *RunFileConfig     `yaml:"run"`
	Graph   *GraphFileConfig   `yaml:"graph"`
	Logging *LoggingFileConfig `yaml:"logging"`
}

// RunFileConfig is the "run" section: the run identifier.
type RunFileConfig struct {
	ID *string `yaml:"id"`
}

// GraphFileConfig is the "graph" section: fixture size, removed vertex and debug checks.
type GraphFileConfig struct {
	Vertices        *int  `yaml:"vertices"`
	Remove          *int  `yaml:"remove"`
	InvariantChecks *bool `yaml:"invariant_checks"`
}

// LoggingFileConfig is the "logging" section: zap level and encoder format.
type LoggingFileConfig struct {
	Level  *string `yaml:"level"`
	Format *string `yaml:"format"`
}

func loadFileConfig(path string) (*FileConfig, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyFileConfig(cfg *Config, fileCfg *FileConfig) {
	if cfg == nil || fileCfg == nil {
		return
	}
	if run := fileCfg.Run; run != nil && run.ID != nil {
		cfg.RunID = strings.TrimSpace(*run.ID)
	}
	if graph := fileCfg.Graph; graph != nil {
		if graph.Vertices != nil {
			cfg.Vertices = *graph.Vertices
		}
		if graph.Remove != nil {
			cfg.Remove = *graph.Remove
		}
		if graph.InvariantChecks != nil {
			cfg.InvariantChecks = *graph.InvariantChecks
		}
	}
	if logging := fileCfg.Logging; logging != nil {
		if logging.Level != nil {
			cfg.LogLevel = strings.TrimSpace(*logging.Level)
		}
		if logging.Format != nil {
			cfg.LogFormat = strings.TrimSpace(*logging.Format)
		}
	}
}
