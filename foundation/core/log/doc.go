// Package log provides structured logging for the why toolchain.
//
// Package: log
// Title: Structured Logging
// Description: Leveled, structured logging with text, JSON and console
//              output. Loggers are cloned with With* methods to attach a
//              component name, a check run ID or extra fields. Errors from
//              the core error package are logged with their code and
//              severity, and timers log the duration of operations.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial logging package
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelDebug,
//		Format: log.FormatJSON,
//		Output: os.Stderr,
//	}).WithName("checker")
//
//	timer := logger.StartTimer("check")
//	if err := run(); err != nil {
//		timer.StopWithError(err)
//		logger.LogError(err, "check failed")
//	} else {
//		timer.Stop()
//	}
package log
