// SPDX-License-Identifier: MIT

// Package logging builds the driver's zap logger from its config.
package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/undigraph/internal/config"
)

// NewLogger builds a zap logger writing to stderr. "console" selects the
// development encoder, anything else JSON; unknown levels fall back to info.
func NewLogger(cfg *config.Config) (*zap.Logger, error) {
	var zapCfg zap.Config
	if strings.EqualFold(cfg.LogFormat, "console") {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	zapCfg.Level = zap.NewAtomicLevelAt(ParseLevel(cfg.LogLevel))

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, err
	}
	if cfg.RunID != "" {
		logger = logger.With(zap.String("run_id", cfg.RunID))
	}

	return logger, nil
}

// ParseLevel maps a config level name to a zap level.
func ParseLevel(name string) zapcore.Level {
	switch strings.ToLower(name) {
	case "debug":
		return zap.DebugLevel
	case "warn":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}
