// ============================================================================
// why - Sprachwerkzeuge
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating component loggers
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	mdwlog "github.com/msto63/why/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Component name, e.g. "checker" or "watcher"
	Component string

	// Log level (trace, debug, info, warn, error)
	Level string

	// Output format: text, json or console (default: text)
	Format string

	// File additionally receives every line (optional)
	File string

	// Output replaces stderr (tests)
	Output io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(component string) LoggerConfig {
	return LoggerConfig{
		Component: component,
		Level:     "warn",
		Format:    "text",
	}
}

// NewLogger creates a foundation logger writing to stderr and, if File is
// set, to that file as well. Unknown levels and formats fall back to info
// and text.
func NewLogger(cfg LoggerConfig) (*mdwlog.Logger, error) {
	level, err := mdwlog.ParseLevel(cfg.Level)
	if err != nil {
		level = mdwlog.LevelInfo
	}
	format, err := mdwlog.ParseFormat(cfg.Format)
	if err != nil {
		format = mdwlog.FormatText
	}

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	if cfg.File != "" {
		fw, err := getOrCreateFileWriter(cfg.File)
		if err != nil {
			return nil, err
		}
		output = io.MultiWriter(output, fw)
	}

	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   cfg.Component,
	}), nil
}

// NewSimpleLogger creates a stderr logger with default configuration
func NewSimpleLogger(component string) *mdwlog.Logger {
	logger, _ := NewLogger(DefaultLoggerConfig(component))
	return logger
}
