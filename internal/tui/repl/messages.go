// ============================================================================
// why - Sprachwerkzeuge
// ============================================================================
//
// Package:     repl
// Description: Message types for the REPL
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package repl

import (
	"time"
)

// Mode selects what the REPL prints for an accepted line
type Mode int

const (
	// ModeTree prints the parsed statements as s-expressions
	ModeTree Mode = iota
	// ModeTokens prints the token stream
	ModeTokens
)

// String returns the label shown in the status bar
func (m Mode) String() string {
	switch m {
	case ModeTree:
		return "Baum"
	case ModeTokens:
		return "Tokens"
	default:
		return "?"
	}
}

// Entry is one evaluated line of the transcript
type Entry struct {
	Input    string
	Output   string
	OK       bool
	Mode     Mode
	Duration time.Duration
}

// evalMsg carries the result of evaluating a line
type evalMsg struct {
	entry Entry
}
