// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across the why toolchain for
//              classifying diagnostics, IO, configuration and cache failures.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial code set

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Source diagnostics
	CodeLexicalError Code = "LEXICAL_ERROR"
	CodeSyntaxError  Code = "SYNTAX_ERROR"
	CodeTypeMismatch Code = "TYPE_MISMATCH"

	// Environment
	CodeIOError       Code = "IO_ERROR"
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
	CodeCacheError    Code = "CACHE_ERROR"
	CodeWatchError    Code = "WATCH_ERROR"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeLexicalError, CodeSyntaxError, CodeTypeMismatch,
		CodeIOError, CodeConfigError, CodeInvalidConfig, CodeCacheError, CodeWatchError:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeLexicalError, CodeSyntaxError, CodeTypeMismatch:
		return "diagnostic"
	case CodeConfigError, CodeInvalidConfig, CodeInvalidInput:
		return "configuration"
	case CodeIOError, CodeNotFound:
		return "io"
	case CodeCacheError, CodeWatchError:
		return "infrastructure"
	default:
		return "generic"
	}
}

// IsDiagnostic reports whether the code describes a problem in the
// checked source rather than in the tool itself
func (c Code) IsDiagnostic() bool {
	return c.Category() == "diagnostic"
}

// ExitCode returns the process exit status the CLI uses for this code
func (c Code) ExitCode() int {
	switch c.Category() {
	case "diagnostic":
		return 1
	case "configuration", "io":
		return 2
	default:
		return 3
	}
}
