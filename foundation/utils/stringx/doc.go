// Package stringx provides string helpers for the why toolchain.
//
// Package: stringx
// Title: String Utilities
// Description: Blank checks, rune safe truncation and padding for
//              terminal output, and Levenshtein based suggestions used by
//              diagnostics to propose the keyword or type name a user
//              probably meant.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial package
package stringx
