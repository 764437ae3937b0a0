// ============================================================================
// why - Sprachwerkzeuge
// ============================================================================
//
// Package:     version
// Description: Central version management for the language and the tool
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package version

import "fmt"

// Version constants
const (
	// Language is the version of the why grammar the parser accepts
	Language = "0.1.0"

	// Tool is the version of the why command line tool
	Tool = "0.1.0"
)

// Build information, set via ldflags
var (
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "language", "lexer", "parser":
		return Language
	default:
		return Tool
	}
}

// String returns the one line version banner
func String() string {
	return fmt.Sprintf("why %s (Sprache %s, Commit %s, gebaut %s)", Tool, Language, GitCommit, BuildDate)
}
