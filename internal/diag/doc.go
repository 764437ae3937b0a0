// Package diag renders why lexer and parser errors for humans: a
// compiler-style header, the offending source line with a caret under the
// error column, and a hint where one can be derived from the error.
package diag
