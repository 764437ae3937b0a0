// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels used to pick log levels and to
//              decide whether a failure aborts a command.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow marks problems in user input, e.g. a syntax error
	SeverityLow Severity = iota

	// SeverityMedium marks recoverable environment problems, e.g. a
	// missing config file
	SeverityMedium

	// SeverityHigh marks degraded infrastructure such as an unusable cache
	SeverityHigh

	// SeverityCritical marks internal faults
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should be surfaced even
// in quiet mode
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines the default severity for a code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeCacheError, CodeWatchError:
		return SeverityHigh
	case CodeLexicalError, CodeSyntaxError, CodeTypeMismatch, CodeInvalidInput, CodeNotFound:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
