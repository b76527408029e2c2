// SPDX-License-Identifier: MIT

// Package config resolves the demo driver's settings.
//
// Resolution order, later sources win:
//
//	defaults → YAML file → environment (UNDIGRAPH_*, optional .env) → explicit flags
package config

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Environment variable names.
const (
	EnvRunID     = "UNDIGRAPH_RUN_ID"
	EnvConfig    = "UNDIGRAPH_CONFIG"
	EnvVertices  = "UNDIGRAPH_VERTICES"
	EnvRemove    = "UNDIGRAPH_REMOVE"
	EnvLogLevel  = "UNDIGRAPH_LOG_LEVEL"
	EnvLogFormat = "UNDIGRAPH_LOG_FORMAT"
	EnvChecks    = "UNDIGRAPH_CHECKS"
)

// Defaults reproduce the classic demo: five vertices per half (ten in total), vertex 1 removed.
const (
	DefaultVertices  = 5
	DefaultRemove    = 1
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config controls the demo driver.
type Config struct {
	RunID           string
	Vertices        int // size of each half of the matched scenario
	Remove          int // vertex removed by the scenario
	LogLevel        string
	LogFormat       string
	InvariantChecks bool
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Vertices:  DefaultVertices,
		Remove:    DefaultRemove,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

// Load applies the YAML file at path (skipped when empty) and then the
// environment over the defaults. envFile names an optional dotenv file whose
// values fill in variables the process environment does not set.
func Load(path, envFile string) (*Config, error) {
	cfg := Default()

	fileCfg, err := loadFileConfig(path)
	if err != nil {
		return nil, errors.Wrapf(err, "load config file %q", path)
	}
	applyFileConfig(cfg, fileCfg)

	env, err := newEnvSource(envFile)
	if err != nil {
		return nil, errors.Wrapf(err, "read env file %q", envFile)
	}
	if err = applyEnv(cfg, env); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects settings the driver cannot run with.
func (c *Config) Validate() error {
	if c.Vertices < 1 {
		return errors.Wrapf(ErrInvalidConfig, "vertices must be ≥ 1, got %d", c.Vertices)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown log level %q", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "console", "json":
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown log format %q", c.LogFormat)
	}

	return nil
}

func applyEnv(cfg *Config, env envSource) error {
	if v := env.get(EnvRunID); v != "" {
		cfg.RunID = v
	}
	if v := env.get(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := env.get(EnvLogFormat); v != "" {
		cfg.LogFormat = v
	}

	var err error
	if cfg.Vertices, err = envInt(env, EnvVertices, cfg.Vertices); err != nil {
		return err
	}
	if cfg.Remove, err = envInt(env, EnvRemove, cfg.Remove); err != nil {
		return err
	}
	if cfg.InvariantChecks, err = envBool(env, EnvChecks, cfg.InvariantChecks); err != nil {
		return err
	}

	return nil
}

func envInt(env envSource, key string, fallback int) (int, error) {
	value := env.get(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidConfig, "%s=%q is not an integer", key, value)
	}

	return parsed, nil
}

func envBool(env envSource, key string, fallback bool) (bool, error) {
	value := env.get(key)
	if value == "" {
		return fallback, nil
	}
	switch strings.ToLower(value) {
	case "1", "true", "yes", "y":
		return true, nil
	case "0", "false", "no", "n":
		return false, nil
	default:
		return false, errors.Wrapf(ErrInvalidConfig, "%s=%q is not a boolean", key, value)
	}
}
