// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// Flag names shared by the CLI and ApplyFlags.
const (
	FlagConfig    = "config"
	FlagEnvFile   = "env-file"
	FlagVertices  = "vertices"
	FlagRemove    = "remove"
	FlagLogLevel  = "log-level"
	FlagLogFormat = "log-format"
	FlagChecks    = "checks"
)

// RegisterFlags declares the driver flags on fs with the built-in defaults.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String(FlagConfig, "", "path to a YAML config file (env "+EnvConfig+")")
	fs.String(FlagEnvFile, "", "optional .env file with UNDIGRAPH_* variables")
	fs.Int(FlagVertices, d.Vertices, "vertices per half of the matched scenario")
	fs.Int(FlagRemove, d.Remove, "vertex removed by the scenario")
	fs.String(FlagLogLevel, d.LogLevel, "log level: debug|info|warn|error")
	fs.String(FlagLogFormat, d.LogFormat, "log format: console|json")
	fs.Bool(FlagChecks, d.InvariantChecks, "validate graph invariants after every mutation")
}

// ApplyFlags copies flags the user set explicitly over cfg.
func (c *Config) ApplyFlags(fs *pflag.FlagSet) error {
	var err error
	if fs.Changed(FlagVertices) {
		if c.Vertices, err = fs.GetInt(FlagVertices); err != nil {
			return errors.Wrap(err, FlagVertices)
		}
	}
	if fs.Changed(FlagRemove) {
		if c.Remove, err = fs.GetInt(FlagRemove); err != nil {
			return errors.Wrap(err, FlagRemove)
		}
	}
	if fs.Changed(FlagLogLevel) {
		if c.LogLevel, err = fs.GetString(FlagLogLevel); err != nil {
			return errors.Wrap(err, FlagLogLevel)
		}
	}
	if fs.Changed(FlagLogFormat) {
		if c.LogFormat, err = fs.GetString(FlagLogFormat); err != nil {
			return errors.Wrap(err, FlagLogFormat)
		}
	}
	if fs.Changed(FlagChecks) {
		if c.InvariantChecks, err = fs.GetBool(FlagChecks); err != nil {
			return errors.Wrap(err, FlagChecks)
		}
	}

	return nil
}

// Sources returns the config file and dotenv paths named on fs. The config
// file falls back to $UNDIGRAPH_CONFIG when the flag is empty.
func Sources(fs *pflag.FlagSet) (path, envFile string) {
	path, _ = fs.GetString(FlagConfig)
	envFile, _ = fs.GetString(FlagEnvFile)
	if strings.TrimSpace(path) == "" {
		path = os.Getenv(EnvConfig)
	}

	return strings.TrimSpace(path), strings.TrimSpace(envFile)
}
