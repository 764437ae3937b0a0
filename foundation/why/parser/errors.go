// File: errors.go
// Title: why Parser Errors
// Description: Typed syntax errors with source locations, the offending
//              token and, for declarations, the declared type and the
//              literal form that was found instead.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial error taxonomy
// - 2026-10-19 v0.1.0: Separate declared and expected type for collections

package parser

import (
	"fmt"

	"github.com/msto63/why/foundation/why/token"
)

// ErrorKind classifies parse errors
type ErrorKind int

const (
	UnexpectedToken ErrorKind = iota
	UnexpectedEndOfInput
	TypeMismatch
	BreakOutsideLoop
	UnterminatedBlock
	InvalidLiteral
	NestingTooDeep
)

// String returns the name of the error kind
func (k ErrorKind) String() string {
	switch k {
	case UnexpectedToken:
		return "UnexpectedToken"
	case UnexpectedEndOfInput:
		return "UnexpectedEndOfInput"
	case TypeMismatch:
		return "TypeMismatch"
	case BreakOutsideLoop:
		return "BreakOutsideLoop"
	case UnterminatedBlock:
		return "UnterminatedBlock"
	case InvalidLiteral:
		return "InvalidLiteral"
	case NestingTooDeep:
		return "NestingTooDeep"
	default:
		return "Unknown"
	}
}

// Error is a parse error
type Error struct {
	Kind     ErrorKind
	Location token.Location
	Message  string

	// Expected describes what the grammar required, Found is the token
	// that was there instead
	Expected string
	Found    token.Token

	// DeclaredType, ExpectedType and FoundExpr are set for TypeMismatch.
	// ExpectedType is the type required where FoundExpr sits, which is an
	// element, key or value type inside a collection.
	DeclaredType string
	ExpectedType string
	FoundExpr    string
}

// Sentinels for errors.Is matching
var (
	ErrUnexpectedToken      = &Error{Kind: UnexpectedToken, Message: "unexpected token"}
	ErrUnexpectedEndOfInput = &Error{Kind: UnexpectedEndOfInput, Message: "unexpected end of input"}
	ErrTypeMismatch         = &Error{Kind: TypeMismatch, Message: "type mismatch"}
	ErrBreakOutsideLoop     = &Error{Kind: BreakOutsideLoop, Message: "break outside of a loop"}
	ErrUnterminatedBlock    = &Error{Kind: UnterminatedBlock, Message: "unterminated block"}
	ErrInvalidLiteral       = &Error{Kind: InvalidLiteral, Message: "invalid literal"}
	ErrNestingTooDeep       = &Error{Kind: NestingTooDeep, Message: "nesting too deep"}
)

// Error implements the error interface
func (e *Error) Error() string {
	if !e.Location.IsValid() {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Location, e.Message)
}

// Is matches any parser error of the same kind
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

// errUnexpected reports found where expected was required. Hitting the end
// of input is its own kind.
func errUnexpected(found token.Token, expected string) *Error {
	var err *Error
	if found.Is(token.EOF) {
		err = newError(UnexpectedEndOfInput, found.Location, "unexpected end of input, expected %s", expected)
	} else {
		err = newError(UnexpectedToken, found.Location, "expected %s, found %s", expected, found.Describe())
	}
	err.Expected = expected
	err.Found = found
	return err
}

func errUnterminatedBlock(open token.Location) *Error {
	err := newError(UnterminatedBlock, open, "`{` was never closed")
	err.Expected = "'}'"
	return err
}

func errTypeMismatch(loc token.Location, declared, expected, found, name string) *Error {
	var err *Error
	if declared == expected {
		err = newError(TypeMismatch, loc, "cannot initialize %s '%s' with %s", declared, name, found)
	} else {
		err = newError(TypeMismatch, loc, "cannot initialize %s '%s' with %s where %s is expected",
			declared, name, found, expected)
	}
	err.DeclaredType = declared
	err.ExpectedType = expected
	err.FoundExpr = found
	return err
}
