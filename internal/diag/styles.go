// ============================================================================
// why - Sprachwerkzeuge
// ============================================================================
//
// Package:     diag
// Description: Styles for rendered diagnostics
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package diag

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	ColorError  = lipgloss.Color("#EF4444") // Red
	ColorAccent = lipgloss.Color("#F59E0B") // Amber
	ColorMuted  = lipgloss.Color("#6B7280") // Gray
	ColorHint   = lipgloss.Color("#06B6D4") // Cyan
	ColorText   = lipgloss.Color("#F8FAFC") // Slate 50
)

var (
	positionStyle = lipgloss.NewStyle().Bold(true)
	errorStyle    = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	messageStyle  = lipgloss.NewStyle().Foreground(ColorText)
	gutterStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
	caretStyle    = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	hintStyle     = lipgloss.NewStyle().Foreground(ColorHint)
)
