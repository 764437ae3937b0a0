// File: level.go
// Title: Log Levels
// Description: Defines the log levels used by the why toolchain, their
//              textual forms and the parsing of level names from
//              configuration and command line flags.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial level set

package log

import (
	"fmt"
	"strings"
)

// Level is the severity of a log message
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

var levelNames = [...]string{"trace", "debug", "info", "warn", "error", "fatal"}
var levelShort = [...]string{"TRC", "DBG", "INF", "WRN", "ERR", "FTL"}

// ANSI colors for the console formatter
var levelColors = [...]string{
	"\033[90m", // gray
	"\033[36m", // cyan
	"\033[32m", // green
	"\033[33m", // yellow
	"\033[31m", // red
	"\033[35m", // magenta
}

func (l Level) valid() bool {
	return l >= LevelTrace && l <= LevelFatal
}

// String returns the lower case name of the level
func (l Level) String() string {
	if !l.valid() {
		return "unknown"
	}
	return levelNames[l]
}

// ShortString returns the three letter tag used by the text formatter
func (l Level) ShortString() string {
	if !l.valid() {
		return "UNK"
	}
	return levelShort[l]
}

// Color returns the ANSI color sequence for the level
func (l Level) Color() string {
	if !l.valid() {
		return "\033[0m"
	}
	return levelColors[l]
}

// IsEnabled reports whether a message at l passes a logger set to min
func (l Level) IsEnabled(min Level) bool {
	return l >= min
}

// ParseError reports an unrecognized level or format name
type ParseError struct {
	Input string
	Type  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid log %s: %q", e.Type, e.Input)
}

// ParseLevel parses a level name. Common aliases such as "warning" and
// "err" are accepted.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace", "trc":
		return LevelTrace, nil
	case "debug", "dbg":
		return LevelDebug, nil
	case "info", "inf", "":
		return LevelInfo, nil
	case "warn", "warning", "wrn":
		return LevelWarn, nil
	case "error", "err":
		return LevelError, nil
	case "fatal", "ftl":
		return LevelFatal, nil
	}
	return LevelInfo, &ParseError{Input: s, Type: "level"}
}

// AllLevels returns every level from lowest to highest
func AllLevels() []Level {
	return []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError, LevelFatal}
}

// DefaultLevel is the level used when none is configured
func DefaultLevel() Level {
	return LevelInfo
}
