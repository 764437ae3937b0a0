// File: doc.go
// Title: why Lexer Package Documentation
// Description: Package documentation for the why lexer.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial package documentation

/*
Package lexer converts why source text into tokens.

The lexer scans left to right with one character of lookahead and tracks
the 1-based line and column of every token. The result always ends with an
EOF token placed at the final scan position:

	tokens, err := lexer.Tokenize("int x = 69;")

Characters matching no rule are skipped unless Options.Strict is set.
Block comments do not nest, the first closing marker ends them.

All failures are *Error values carrying an ErrorKind and, where one is
known, the location of the offending character.
*/
package lexer
