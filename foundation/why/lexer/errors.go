// File: errors.go
// Title: why Lexer Errors
// Description: Typed lexical errors with source locations. Every error kind
//              has a sentinel value so callers can match with errors.Is.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial error taxonomy

package lexer

import (
	"fmt"

	"github.com/msto63/why/foundation/why/token"
)

// ErrorKind classifies lexical errors
type ErrorKind int

const (
	EmptySource ErrorKind = iota
	UnterminatedComment
	UnterminatedString
	InvalidNumber
	UnexpectedEnclosure
	InvalidCharacter
	UnexpectedCharacter
	SourceTooLarge
)

// String returns the name of the error kind
func (k ErrorKind) String() string {
	switch k {
	case EmptySource:
		return "EmptySource"
	case UnterminatedComment:
		return "UnterminatedComment"
	case UnterminatedString:
		return "UnterminatedString"
	case InvalidNumber:
		return "InvalidNumber"
	case UnexpectedEnclosure:
		return "UnexpectedEnclosure"
	case InvalidCharacter:
		return "InvalidCharacter"
	case UnexpectedCharacter:
		return "UnexpectedCharacter"
	case SourceTooLarge:
		return "SourceTooLarge"
	default:
		return "Unknown"
	}
}

// Error is a lexical error. Location is the zero value when no position applies.
type Error struct {
	Kind     ErrorKind
	Location token.Location
	Message  string

	// Delimiter is the quote of an unterminated string
	Delimiter rune

	// Char is the offending character where one exists
	Char rune
}

// Sentinels for errors.Is matching
var (
	ErrEmptySource         = &Error{Kind: EmptySource, Message: "there was no text in the source"}
	ErrUnterminatedComment = &Error{Kind: UnterminatedComment, Message: "unterminated comment"}
	ErrUnterminatedString  = &Error{Kind: UnterminatedString, Message: "unterminated string"}
	ErrInvalidNumber       = &Error{Kind: InvalidNumber, Message: "invalid number"}
	ErrUnexpectedEnclosure = &Error{Kind: UnexpectedEnclosure, Message: "unexpected enclosure"}
	ErrInvalidCharacter    = &Error{Kind: InvalidCharacter, Message: "invalid character"}
	ErrUnexpectedCharacter = &Error{Kind: UnexpectedCharacter, Message: "unexpected character"}
	ErrSourceTooLarge      = &Error{Kind: SourceTooLarge, Message: "source too large"}
)

// Error implements the error interface
func (e *Error) Error() string {
	if !e.Location.IsValid() {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Location, e.Message)
}

// Is matches any lexer error of the same kind
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func newError(kind ErrorKind, loc token.Location, format string, args ...interface{}) *Error {
	return &Error{
		Kind:     kind,
		Location: loc,
		Message:  fmt.Sprintf(format, args...),
	}
}

func errUnterminatedString(loc token.Location, delim rune) *Error {
	err := newError(UnterminatedString, loc, "`%c` was never closed", delim)
	err.Delimiter = delim
	return err
}

func errInvalidCharacter(loc token.Location, next rune) *Error {
	if next == eof {
		return newError(InvalidCharacter, loc, "invalid character after '/': unexpected end of input")
	}
	err := newError(InvalidCharacter, loc, "invalid character after '/': '%c'", next)
	err.Char = next
	return err
}

func errUnexpectedEnclosure(loc token.Location, ch rune) *Error {
	err := newError(UnexpectedEnclosure, loc, "got unexpected enclosure: '%c'", ch)
	err.Char = ch
	return err
}

func errUnexpectedCharacter(loc token.Location, ch rune) *Error {
	err := newError(UnexpectedCharacter, loc, "unexpected character: %q", ch)
	err.Char = ch
	return err
}
