// ============================================================================
// why - Sprachwerkzeuge
// ============================================================================
//
// Package:     diag
// Description: Renders lexer and parser errors with source context
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package diag

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/why/foundation/utils/stringx"
	"github.com/msto63/why/foundation/why"
	"github.com/msto63/why/foundation/why/ast"
	"github.com/msto63/why/foundation/why/lexer"
	"github.com/msto63/why/foundation/why/parser"
	"github.com/msto63/why/foundation/why/token"
)

// maxHintDistance bounds the edit distance for "did you mean" hints
const maxHintDistance = 2

// Diagnostic is a rendered error broken into its parts
type Diagnostic struct {
	Path     string
	Location token.Location
	Message  string
	// Line is the source line the error points into, if known
	Line string
	Hint string
}

// Renderer formats diagnostics. The zero value renders with colors.
type Renderer struct {
	// Plain disables styling
	Plain bool
}

// NewRenderer creates a renderer
func NewRenderer(plain bool) *Renderer {
	return &Renderer{Plain: plain}
}

// Build extracts the diagnostic for err against source
func Build(path, source string, err error) Diagnostic {
	d := Diagnostic{Path: path, Message: why.ErrorMessage(err)}
	if loc, ok := why.ErrorLocation(err); ok {
		d.Location = loc
		d.Line, _ = SourceLine(source, loc.Line)
	}
	d.Hint = Hint(err)
	return d
}

// Render formats err as
//
//	path:line:col: error: message
//	 line | source text
//	      |     ^
//	      = hint: ...
func (r *Renderer) Render(path, source string, err error) string {
	if err == nil {
		return ""
	}
	return r.Format(Build(path, source, err))
}

// Format renders a built diagnostic
func (r *Renderer) Format(d Diagnostic) string {
	var b strings.Builder

	pos := d.Path
	if d.Location.IsValid() {
		pos = fmt.Sprintf("%s:%d:%d", d.Path, d.Location.Line, d.Location.Column)
	}
	b.WriteString(r.style(positionStyle, pos+":"))
	b.WriteString(" ")
	b.WriteString(r.style(errorStyle, "error:"))
	b.WriteString(" ")
	b.WriteString(r.style(messageStyle, d.Message))
	b.WriteString("\n")

	gutterWidth := 0
	if d.Location.IsValid() {
		num := fmt.Sprintf("%d", d.Location.Line)
		gutterWidth = len(num) + 1
		b.WriteString(r.style(gutterStyle, stringx.PadRight(" "+num, gutterWidth, ' ')+" | "))
		b.WriteString(d.Line)
		b.WriteString("\n")
		b.WriteString(r.style(gutterStyle, strings.Repeat(" ", gutterWidth)+" | "))
		b.WriteString(caretPadding(d.Line, d.Location.Column))
		b.WriteString(r.style(caretStyle, "^"))
		b.WriteString("\n")
	}

	if d.Hint != "" {
		b.WriteString(r.style(gutterStyle, strings.Repeat(" ", gutterWidth)+" = "))
		b.WriteString(r.style(hintStyle, "hint: "+d.Hint))
		b.WriteString("\n")
	}
	return b.String()
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if r.Plain {
		return text
	}
	return s.Render(text)
}

// SourceLine returns line n (1-based) of source. Every '\r' and every '\n'
// ends a line, matching how the lexer counts lines.
func SourceLine(source string, n int) (string, bool) {
	if n < 1 {
		return "", false
	}
	line := 1
	start := 0
	for i := 0; i < len(source); i++ {
		if source[i] != '\n' && source[i] != '\r' {
			continue
		}
		if line == n {
			return source[start:i], true
		}
		line++
		start = i + 1
	}
	if line == n {
		return source[start:], true
	}
	return "", false
}

// caretPadding returns the whitespace that puts a caret under column col.
// Tabs are kept so the caret lines up with tabbed source.
func caretPadding(line string, col int) string {
	var b strings.Builder
	i := 1
	for _, r := range line {
		if i >= col {
			break
		}
		if r == '\t' {
			b.WriteRune('\t')
		} else {
			b.WriteRune(' ')
		}
		i++
	}
	if i < col {
		b.WriteString(strings.Repeat(" ", col-i))
	}
	return b.String()
}

// Hint suggests a fix for err, or returns "" when there is nothing useful
// to say
func Hint(err error) string {
	var lexErr *lexer.Error
	if errors.As(err, &lexErr) {
		return lexerHint(lexErr)
	}
	var parseErr *parser.Error
	if errors.As(err, &parseErr) {
		return parserHint(parseErr)
	}
	return ""
}

func lexerHint(e *lexer.Error) string {
	switch e.Kind {
	case lexer.EmptySource:
		return "a program needs at least one statement"
	case lexer.UnterminatedString:
		if e.Delimiter != 0 {
			return fmt.Sprintf("close the string with %c", e.Delimiter)
		}
	case lexer.UnterminatedComment:
		return "close the comment with */"
	case lexer.SourceTooLarge:
		return "raise lexer.max_source_length in the configuration"
	}
	return ""
}

func parserHint(e *parser.Error) string {
	switch e.Kind {
	case parser.TypeMismatch:
		return typeHint(e.ExpectedType)
	case parser.UnexpectedToken:
		if e.Found.Is(token.Ident) {
			if s, ok := stringx.Closest(e.Found.Text, vocabulary(), hintDistance(e.Found.Text)); ok {
				return fmt.Sprintf("did you mean '%s'?", s)
			}
		}
	case parser.UnterminatedBlock:
		return "add the missing '}'"
	case parser.BreakOutsideLoop:
		return "break can only be used inside a loop body"
	case parser.NestingTooDeep:
		return "raise parser.max_depth in the configuration or split the expression"
	}
	return ""
}

// typeHint describes the literal form a declared type expects
func typeHint(declared string) string {
	name, _, _ := strings.Cut(declared, "@")
	var form string
	switch name {
	case ast.TypeInt:
		form = "an integer literal such as 42"
	case ast.TypeFloat:
		form = "a number with a fraction such as 1.5"
	case ast.TypeString:
		form = "a quoted string such as 'text'"
	case ast.TypeArray:
		form = "an array literal such as [1, 2]"
	case ast.TypeMapping:
		form = "a mapping literal such as &{'k' -> 1}"
	default:
		return ""
	}
	return fmt.Sprintf("%s expects %s", declared, form)
}

// hintDistance scales the allowed edit distance with the word length so
// short identifiers do not match every short keyword
func hintDistance(word string) int {
	n := len([]rune(word))
	switch {
	case n >= 4:
		return maxHintDistance
	case n == 3:
		return 1
	}
	return 0
}

func vocabulary() []string {
	return append(ast.TypeNames(), token.Keywords()...)
}
