// File: logger.go
// Title: Structured Logger
// Description: Logger with level filtering, named components, run IDs and
//              structured fields. With* methods return modified copies so
//              a logger can be handed to components safely. Errors from
//              the core error package are logged with their code and
//              severity.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Logger for the why toolchain

package log

import (
	"errors"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"

	mdwerror "github.com/msto63/why/foundation/core/error"
)

// Logger writes structured log entries
type Logger struct {
	level         Level
	formatter     Formatter
	output        io.Writer
	name          string
	runID         string
	contextFields Fields
	enableCaller  bool

	mutex sync.RWMutex
	// writeMu is shared between clones writing to the same output
	writeMu *sync.Mutex
}

// Config configures NewWithConfig
type Config struct {
	Level        Level
	Format       Format
	Output       io.Writer
	Name         string
	EnableCaller bool
}

// DefaultConfig logs text at info level to stderr
func DefaultConfig() Config {
	return Config{
		Level:  DefaultLevel(),
		Format: FormatText,
		Output: os.Stderr,
	}
}

// New creates a logger with DefaultConfig
func New() *Logger {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a logger from config
func NewWithConfig(config Config) *Logger {
	output := config.Output
	if output == nil {
		output = os.Stderr
	}
	return &Logger{
		level:         config.Level,
		formatter:     GetFormatter(config.Format),
		output:        output,
		name:          config.Name,
		contextFields: make(Fields),
		enableCaller:  config.EnableCaller,
		writeMu:       &sync.Mutex{},
	}
}

// Discard returns a logger that drops everything
func Discard() *Logger {
	return NewWithConfig(Config{Level: LevelFatal + 1, Output: io.Discard})
}

// WithLevel returns a copy logging at level and above
func (l *Logger) WithLevel(level Level) *Logger {
	c := l.clone()
	c.level = level
	return c
}

// WithFormat returns a copy using the formatter for format
func (l *Logger) WithFormat(format Format) *Logger {
	c := l.clone()
	c.formatter = GetFormatter(format)
	return c
}

// WithOutput returns a copy writing to w
func (l *Logger) WithOutput(w io.Writer) *Logger {
	c := l.clone()
	c.output = w
	c.writeMu = &sync.Mutex{}
	return c
}

// WithName returns a copy tagged with a component name
func (l *Logger) WithName(name string) *Logger {
	c := l.clone()
	c.name = name
	return c
}

// WithRunID returns a copy tagging every entry with a check run ID
func (l *Logger) WithRunID(runID string) *Logger {
	c := l.clone()
	c.runID = runID
	return c
}

// WithField returns a copy carrying an extra field
func (l *Logger) WithField(key string, value interface{}) *Logger {
	c := l.clone()
	c.contextFields[key] = value
	return c
}

// WithFields returns a copy carrying extra fields
func (l *Logger) WithFields(fields Fields) *Logger {
	c := l.clone()
	for k, v := range fields {
		c.contextFields[k] = v
	}
	return c
}

// WithCaller returns a copy that records the calling file and line
func (l *Logger) WithCaller(enabled bool) *Logger {
	c := l.clone()
	c.enableCaller = enabled
	return c
}

func (l *Logger) Trace(message string, fields ...Fields) {
	l.log(LevelTrace, message, nil, fields...)
}

func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, fields...)
}

func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, fields...)
}

func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, nil, fields...)
}

func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, nil, fields...)
}

// Fatal logs at fatal level and exits the process with status 1
func (l *Logger) Fatal(message string, fields ...Fields) {
	l.log(LevelFatal, message, nil, fields...)
	os.Exit(1)
}

// ErrorWithErr logs message at error level with err attached
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, fields...)
}

// WarnWithErr logs message at warn level with err attached
func (l *Logger) WarnWithErr(message string, err error, fields ...Fields) {
	l.log(LevelWarn, message, err, fields...)
}

// LogError logs err at a level derived from its severity. Code, severity,
// operation and details of a core error become fields.
func (l *Logger) LogError(err error, message string, fields ...Fields) {
	if err == nil {
		return
	}

	var coreErr *mdwerror.Error
	if !errors.As(err, &coreErr) {
		l.log(LevelError, message, err, fields...)
		return
	}

	level := LevelError
	switch coreErr.Severity() {
	case mdwerror.SeverityLow:
		level = LevelInfo
	case mdwerror.SeverityMedium:
		level = LevelWarn
	}

	errFields := Fields{
		"error_code":     coreErr.Code().String(),
		"error_severity": coreErr.Severity().String(),
	}
	if op := coreErr.Operation(); op != "" {
		errFields["error_operation"] = op
	}
	if ctx := coreErr.Context(); ctx != "" {
		errFields["error_context"] = ctx
	}
	for k, v := range coreErr.Details() {
		errFields["error_"+k] = v
	}

	l.log(level, message, err, append([]Fields{errFields}, fields...)...)
}

// StartTimer starts a Timer that logs through l
func (l *Logger) StartTimer(operation string) *Timer {
	return NewTimer(l, operation)
}

// IsLevelEnabled reports whether messages at level would be written
func (l *Logger) IsLevelEnabled(level Level) bool {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return level.IsEnabled(l.level)
}

func (l *Logger) GetLevel() Level {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.level
}

// SetLevel changes the level in place
func (l *Logger) SetLevel(level Level) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.level = level
}

func (l *Logger) log(level Level, message string, err error, fields ...Fields) {
	l.mutex.RLock()
	if !level.IsEnabled(l.level) {
		l.mutex.RUnlock()
		return
	}

	entry := NewEntry(level, message)
	entry.Logger = l.name
	entry.RunID = l.runID
	entry.Error = err
	entry.WithFields(l.contextFields)
	for _, f := range fields {
		entry.WithFields(f)
	}
	if l.enableCaller {
		entry.Caller = caller(3)
	}
	formatter, output, writeMu := l.formatter, l.output, l.writeMu
	l.mutex.RUnlock()

	formatted, ferr := formatter.Format(entry)
	if ferr != nil {
		return
	}
	writeMu.Lock()
	_, _ = output.Write(formatted)
	writeMu.Unlock()
}

// caller skips caller itself, log and the public logging method
func caller(skip int) *CallerInfo {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return nil
	}
	function := "unknown"
	if fn := runtime.FuncForPC(pc); fn != nil {
		function = fn.Name()
		if idx := strings.LastIndex(function, "."); idx != -1 {
			function = function[idx+1:]
		}
	}
	if idx := strings.LastIndex(file, "/"); idx != -1 {
		file = file[idx+1:]
	}
	return &CallerInfo{File: file, Line: line, Function: function}
}

func (l *Logger) clone() *Logger {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return &Logger{
		level:         l.level,
		formatter:     l.formatter,
		output:        l.output,
		name:          l.name,
		runID:         l.runID,
		contextFields: l.contextFields.Clone(),
		enableCaller:  l.enableCaller,
		writeMu:       l.writeMu,
	}
}

var (
	defaultMu     sync.RWMutex
	defaultLogger = New()
)

// GetDefault returns the process wide logger
func GetDefault() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the process wide logger
func SetDefault(logger *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = logger
}

func Debug(message string, fields ...Fields) {
	GetDefault().Debug(message, fields...)
}

func Info(message string, fields ...Fields) {
	GetDefault().Info(message, fields...)
}

func Warn(message string, fields ...Fields) {
	GetDefault().Warn(message, fields...)
}

func Error(message string, fields ...Fields) {
	GetDefault().Error(message, fields...)
}
