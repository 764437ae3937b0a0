// ============================================================================
// why - Sprachwerkzeuge
// ============================================================================
//
// Package:     store
// Description: SQLite cache of check results keyed by source hash
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

// Package store persists the outcome of checking a source text so that
// unchanged files are not parsed again.
package store
