// Package error provides structured errors for the why toolchain.
//
// Package: error
// Title: why Error Handling
// Description: Structured errors with codes, severities, details and stack
//              traces. The language core returns its own typed errors, the
//              tool boundary (engine, CLI, cache, watcher) wraps them here so
//              logging and exit handling can classify failures uniformly.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation with codes for the why toolchain
//
// Usage:
//
//	err := mdwerror.Wrap(parseErr, "parse failed").
//		WithCode(mdwerror.CodeSyntaxError).
//		WithDetail("line", 3).
//		WithOperation("why.Parse")
//
//	if mdwerror.HasCode(err, mdwerror.CodeSyntaxError) {
//		// report as a diagnostic
//	}
//
//	var perr *parser.Error
//	errors.As(err, &perr) // the core error stays reachable
package error
