// File: timer.go
// Title: Operation Timer
// Description: Measures how long an operation such as tokenizing or a
//              check run takes and logs the duration when it ends.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Timer with Stop and StopWithError
// - 2026-10-19 v0.1.0: StopWithErrorAt for expected failures

package log

import (
	"time"
)

// Timer measures a single operation
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	level     Level
	stopped   bool
}

// NewTimer starts a timer. Completion is logged at debug level.
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
		level:     LevelDebug,
	}
}

// WithLevel sets the level of the completion message
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field to the completion message
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the time since the timer started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Stop logs "<operation> completed" and returns the elapsed time. Only
// the first Stop or StopWithError logs; later calls return 0.
func (t *Timer) Stop() time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true
	elapsed := t.Elapsed()

	if t.logger != nil {
		t.logger.log(t.level, t.operation+" completed", nil, t.finalFields(elapsed))
	}
	return elapsed
}

// StopWithError logs "<operation> failed" at error level with err
func (t *Timer) StopWithError(err error) time.Duration {
	return t.StopWithErrorAt(LevelError, err)
}

// StopWithErrorAt logs "<operation> failed" at level with err. Failures
// that are a normal outcome, such as a diagnostic for user input, use a
// low level.
func (t *Timer) StopWithErrorAt(level Level, err error) time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true
	elapsed := t.Elapsed()

	if t.logger != nil {
		fields := t.finalFields(elapsed)
		fields["success"] = false
		t.logger.log(level, t.operation+" failed", err, fields)
	}
	return elapsed
}

// IsRunning reports whether the timer has not been stopped
func (t *Timer) IsRunning() bool {
	return !t.stopped
}

func (t *Timer) finalFields(elapsed time.Duration) Fields {
	return t.fields.Merge(Fields{
		"operation":   t.operation,
		"duration_ms": durationMillis(elapsed),
	})
}
