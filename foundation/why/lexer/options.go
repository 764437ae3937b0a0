// File: options.go
// Title: why Lexer Options
// Description: Configuration knobs for the lexer.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial options

package lexer

// Options configures lexer behavior
type Options struct {
	// Strict reports characters that match no rule instead of skipping them
	Strict bool

	// MaxSourceLength limits the source length in runes (0 means unlimited)
	MaxSourceLength int
}

// DefaultOptions returns the permissive default configuration
func DefaultOptions() Options {
	return Options{}
}
