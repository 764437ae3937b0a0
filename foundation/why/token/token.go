// File: token.go
// Title: why Token Definitions
// Description: Defines token kinds, source locations and the token value
//              produced by the why lexer and consumed by the parser.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial token model

package token

import (
	"fmt"
	"strings"
)

// Kind represents the type of a lexical token
type Kind int

const (
	// Special tokens
	EOF Kind = iota
	Ident

	// Assignment, equality and arrows
	Eq          // =
	EqEq        // ==
	SmallRArrow // ->
	LargeRArrow // =>

	// Arithmetic and compound forms
	Plus       // +
	PlusPlus   // ++
	PlusEq     // +=
	Minus      // -
	MinusMinus // --
	MinusEq    // -=
	Star       // *
	StarStar   // **
	StarEq     // *=
	Slash      // /
	SlashEq    // /=

	// Comparison
	Lt    // <
	Gt    // >
	Lte   // <=
	Gte   // >=
	NotEq // !=

	// Punctuation
	Dot         // .
	Comma       // ,
	Colon       // :
	Semi        // ;
	At          // @
	And         // &
	Dollar      // $
	Exclamation // !
	Caret       // ^
	Question    // ?
	Percent     // %

	// Enclosures
	LParen   // (
	RParen   // )
	LBracket // [
	RBracket // ]
	LBrace   // {
	RBrace   // }

	// Literals
	NumLiteral
	StrLiteral

	keywordBegin
	// Reserved words
	If
	Is
	In
	For
	Let
	Return
	Break
	Else
	Const
	While
	keywordEnd
)

var kindNames = [...]string{
	EOF:   "end of input",
	Ident: "identifier",

	Eq:          "=",
	EqEq:        "==",
	SmallRArrow: "->",
	LargeRArrow: "=>",

	Plus:       "+",
	PlusPlus:   "++",
	PlusEq:     "+=",
	Minus:      "-",
	MinusMinus: "--",
	MinusEq:    "-=",
	Star:       "*",
	StarStar:   "**",
	StarEq:     "*=",
	Slash:      "/",
	SlashEq:    "/=",

	Lt:    "<",
	Gt:    ">",
	Lte:   "<=",
	Gte:   ">=",
	NotEq: "!=",

	Dot:         ".",
	Comma:       ",",
	Colon:       ":",
	Semi:        ";",
	At:          "@",
	And:         "&",
	Dollar:      "$",
	Exclamation: "!",
	Caret:       "^",
	Question:    "?",
	Percent:     "%",

	LParen:   "(",
	RParen:   ")",
	LBracket: "[",
	RBracket: "]",
	LBrace:   "{",
	RBrace:   "}",

	NumLiteral: "number",
	StrLiteral: "string",

	If:     "if",
	Is:     "is",
	In:     "in",
	For:    "for",
	Let:    "let",
	Return: "return",
	Break:  "break",
	Else:   "else",
	Const:  "const",
	While:  "while",
}

// String returns the spelling of fixed tokens and a descriptive name otherwise
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsKeyword reports whether k is a reserved word
func (k Kind) IsKeyword() bool {
	return k > keywordBegin && k < keywordEnd
}

// IsLiteral reports whether k carries a literal value
func (k Kind) IsLiteral() bool {
	return k == NumLiteral || k == StrLiteral
}

var keywords = map[string]Kind{
	"if":     If,
	"is":     Is,
	"in":     In,
	"for":    For,
	"let":    Let,
	"return": Return,
	"break":  Break,
	"else":   Else,
	"const":  Const,
	"while":  While,
}

// LookupIdent returns the keyword kind for text, or Ident if text is not reserved
func LookupIdent(text string) Kind {
	if kind, ok := keywords[text]; ok {
		return kind
	}
	return Ident
}

// Keywords returns the reserved words in declaration order
func Keywords() []string {
	words := make([]string, 0, len(keywords))
	for k := keywordBegin + 1; k < keywordEnd; k++ {
		words = append(words, k.String())
	}
	return words
}

// Location is a 1-based line/column position in the source
type Location struct {
	Line   int
	Column int
}

// Start returns the location of the first character of a source
func Start() Location {
	return Location{Line: 1, Column: 1}
}

// IsValid reports whether both coordinates are set
func (l Location) IsValid() bool {
	return l.Line >= 1 && l.Column >= 1
}

// Before reports whether l comes strictly before other
func (l Location) Before(other Location) bool {
	if l.Line != other.Line {
		return l.Line < other.Line
	}
	return l.Column < other.Column
}

// String renders the location the way diagnostics present it
func (l Location) String() string {
	return fmt.Sprintf("line %d, column %d", l.Line, l.Column)
}

// Token is a classified lexeme with the location it starts at
type Token struct {
	Kind     Kind
	Text     string
	Location Location

	// Fractional is set for numeric literals containing a '.'
	Fractional bool

	// Quote holds the delimiter of a string literal
	Quote rune
}

// New creates a token of the given kind
func New(kind Kind, text string, loc Location) Token {
	return Token{Kind: kind, Text: text, Location: loc}
}

// Is reports whether the token has the given kind
func (t Token) Is(kind Kind) bool {
	return t.Kind == kind
}

// Lexeme returns the token as it was spelled in the source
func (t Token) Lexeme() string {
	if t.Kind == StrLiteral && t.Quote != 0 {
		return string(t.Quote) + t.Text + string(t.Quote)
	}
	return t.Text
}

// Describe returns a short human readable description used in diagnostics
func (t Token) Describe() string {
	switch t.Kind {
	case EOF:
		return "end of input"
	case Ident:
		return fmt.Sprintf("identifier %q", t.Text)
	case NumLiteral:
		return "number " + t.Text
	case StrLiteral:
		return "string " + t.Lexeme()
	}
	if t.Kind.IsKeyword() {
		return fmt.Sprintf("keyword '%s'", t.Kind)
	}
	return fmt.Sprintf("'%s'", t.Kind)
}

// String returns a debug representation of the token
func (t Token) String() string {
	var b strings.Builder
	b.WriteString(t.Location.String())
	b.WriteString(": ")
	switch t.Kind {
	case Ident, NumLiteral, StrLiteral:
		fmt.Fprintf(&b, "%s(%s)", t.Kind, t.Lexeme())
	default:
		b.WriteString(t.Kind.String())
	}
	return b.String()
}

// Listing renders the token as one line of a token dump: the position,
// then the kind, then the lexeme for tokens that carry text
func (t Token) Listing() string {
	pos := fmt.Sprintf("%d:%d", t.Location.Line, t.Location.Column)
	switch t.Kind {
	case Ident, NumLiteral, StrLiteral:
		return fmt.Sprintf("%s %s %s", pos, t.Kind, t.Lexeme())
	}
	return pos + " " + t.Kind.String()
}
