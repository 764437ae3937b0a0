// File: entry.go
// Title: Log Entries and Fields
// Description: Defines the Entry handed to formatters and the Fields map
//              used to attach structured context to a message.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial entry and field helpers

package log

import (
	"time"
)

// Fields carries structured key/value context
type Fields map[string]interface{}

// Merge returns a new Fields with the keys of other taking precedence
func (f Fields) Merge(other Fields) Fields {
	out := make(Fields, len(f)+len(other))
	for k, v := range f {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// With returns a copy of f with key set to value
func (f Fields) With(key string, value interface{}) Fields {
	out := f.Clone()
	out[key] = value
	return out
}

// Clone returns a shallow copy of f. A nil receiver yields an empty map.
func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// CallerInfo locates the call site of a log statement
type CallerInfo struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Function string `json:"function"`
}

// Entry is a single log record
type Entry struct {
	Timestamp time.Time
	Level     Level
	Message   string
	Logger    string
	RunID     string
	Fields    Fields
	Error     error
	Duration  time.Duration
	Caller    *CallerInfo
}

// NewEntry creates an entry stamped with the current time
func NewEntry(level Level, message string) *Entry {
	return &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Fields:    make(Fields),
	}
}

// WithFields merges fields into the entry
func (e *Entry) WithFields(fields Fields) *Entry {
	for k, v := range fields {
		e.Fields[k] = v
	}
	return e
}

// WithError attaches err to the entry
func (e *Entry) WithError(err error) *Entry {
	e.Error = err
	return e
}

// WithDuration attaches a measured duration to the entry
func (e *Entry) WithDuration(d time.Duration) *Entry {
	e.Duration = d
	return e
}

// durationMillis renders d the way all formatters report it
func durationMillis(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}
