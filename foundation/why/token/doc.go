// File: doc.go
// Title: why Token Package Documentation
// Description: Package documentation for why tokens and locations.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial package documentation

// Package token defines token kinds, source locations and tokens shared by
// the why lexer and parser.
package token
