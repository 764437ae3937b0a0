// File: lexer.go
// Title: why Lexical Analyzer (Tokenizer)
// Description: Converts why source text into a sequence of located tokens.
//              Handles two-character operators with one character of
//              lookahead, line and block comments, quoted strings with
//              escaped delimiters, integer and fractional numbers, and
//              reserved word recognition after identifier scanning.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial lexer implementation

package lexer

import (
	"strings"
	"unicode"

	"github.com/msto63/why/foundation/why/token"
)

const eof rune = -1

// operator describes a character that may start a one or two character operator
type operator struct {
	single token.Kind
	pairs  map[rune]token.Kind
}

var operators = map[rune]operator{
	'=': {token.Eq, map[rune]token.Kind{'>': token.LargeRArrow, '=': token.EqEq}},
	'-': {token.Minus, map[rune]token.Kind{'-': token.MinusMinus, '=': token.MinusEq, '>': token.SmallRArrow}},
	'+': {token.Plus, map[rune]token.Kind{'+': token.PlusPlus, '=': token.PlusEq}},
	'*': {token.Star, map[rune]token.Kind{'*': token.StarStar, '=': token.StarEq}},
	'<': {token.Lt, map[rune]token.Kind{'=': token.Lte}},
	'>': {token.Gt, map[rune]token.Kind{'=': token.Gte}},
	'!': {token.Exclamation, map[rune]token.Kind{'=': token.NotEq}},
}

var punctuation = map[rune]token.Kind{
	'.': token.Dot,
	',': token.Comma,
	':': token.Colon,
	';': token.Semi,
	'@': token.At,
	'&': token.And,
	'$': token.Dollar,
	'^': token.Caret,
	'?': token.Question,
	'%': token.Percent,
}

// Lexer holds the scanning state for a single source text
type Lexer struct {
	src    []rune
	pos    int
	loc    token.Location
	tokens []token.Token
	opts   Options
}

// New creates a lexer for source
func New(source string, opts Options) *Lexer {
	src := []rune(source)
	return &Lexer{
		src:    src,
		loc:    token.Start(),
		tokens: make([]token.Token, 0, len(src)/6+1),
		opts:   opts,
	}
}

// Tokenize scans source with the default options
func Tokenize(source string) ([]token.Token, error) {
	return New(source, DefaultOptions()).Tokenize()
}

// Tokenize scans the whole source. The returned sequence always ends with
// an EOF token located at the final scan position.
func (l *Lexer) Tokenize() ([]token.Token, error) {
	if len(l.src) == 0 {
		return nil, ErrEmptySource
	}
	if l.opts.MaxSourceLength > 0 && len(l.src) > l.opts.MaxSourceLength {
		return nil, newError(SourceTooLarge, token.Location{},
			"source has %d characters, limit is %d", len(l.src), l.opts.MaxSourceLength)
	}

	for l.pos < len(l.src) {
		if err := l.scan(); err != nil {
			return nil, err
		}
	}

	l.emit(token.EOF, "", l.loc)
	return l.tokens, nil
}

// scan consumes one lexical element starting at the current character
func (l *Lexer) scan() error {
	ch := l.current()
	start := l.loc

	if op, ok := operators[ch]; ok {
		l.lexOperator(op, start)
		return nil
	}
	if kind, ok := punctuation[ch]; ok {
		l.emit(kind, string(ch), start)
		l.advance()
		return nil
	}

	switch {
	case isWhitespace(ch):
		l.advance()
	case ch == '/':
		return l.lexSlash(start)
	case ch == '"' || ch == '\'':
		return l.lexString(start)
	case isEnclosure(ch):
		return l.lexEnclosure(start)
	case isDigit(ch):
		return l.lexNumber(start)
	case isIdentStart(ch):
		l.lexIdent(start)
	default:
		if l.opts.Strict && !unicode.IsSpace(ch) {
			return errUnexpectedCharacter(start, ch)
		}
		l.advance()
	}
	return nil
}

// lexOperator emits the two character form when the next character pairs
// with the current one, otherwise the single character form
func (l *Lexer) lexOperator(op operator, start token.Location) {
	first := l.current()
	if kind, ok := op.pairs[l.peek()]; ok {
		second := l.peek()
		l.emit(kind, string([]rune{first, second}), start)
		l.advance()
		l.advance()
		return
	}
	l.emit(op.single, string(first), start)
	l.advance()
}

// lexSlash handles comments and the divide-assign operator
func (l *Lexer) lexSlash(start token.Location) error {
	switch next := l.peek(); next {
	case '/':
		for l.pos < len(l.src) && !isNewline(l.current()) {
			l.advance()
		}
		return nil
	case '*':
		l.advance()
		l.advance()
		for l.pos < len(l.src) {
			if l.current() == '*' && l.peek() == '/' {
				l.advance()
				l.advance()
				return nil
			}
			l.advance()
		}
		return newError(UnterminatedComment, start, "comment was never closed")
	case '=':
		l.emit(token.SlashEq, "/=", start)
		l.advance()
		l.advance()
		return nil
	default:
		return errInvalidCharacter(start, next)
	}
}

// lexString scans a quoted literal. An escaped delimiter is kept verbatim,
// unescaping is left to the consumer.
func (l *Lexer) lexString(start token.Location) error {
	delim := l.current()
	l.advance()

	var b strings.Builder
	for {
		if l.pos >= len(l.src) {
			return errUnterminatedString(start, delim)
		}
		ch := l.current()
		if ch == delim {
			l.advance()
			break
		}
		if ch == '\\' && l.peek() == delim {
			b.WriteRune(ch)
			b.WriteRune(delim)
			l.advance()
			l.advance()
			continue
		}
		b.WriteRune(ch)
		l.advance()
	}

	tok := token.New(token.StrLiteral, b.String(), start)
	tok.Quote = delim
	l.tokens = append(l.tokens, tok)
	return nil
}

// lexNumber scans digits with at most one '.'
func (l *Lexer) lexNumber(start token.Location) error {
	var b strings.Builder
	fractional := false

	for l.pos < len(l.src) {
		ch := l.current()
		if ch == '.' {
			if fractional {
				return newError(InvalidNumber, l.loc, "invalid location for '.'")
			}
			fractional = true
		} else if !isDigit(ch) {
			break
		}
		b.WriteRune(ch)
		l.advance()
	}

	tok := token.New(token.NumLiteral, b.String(), start)
	tok.Fractional = fractional
	l.tokens = append(l.tokens, tok)
	return nil
}

// lexIdent scans an identifier and rewrites reserved words
func (l *Lexer) lexIdent(start token.Location) {
	begin := l.pos
	for l.pos < len(l.src) && isIdentPart(l.current()) {
		l.advance()
	}
	text := string(l.src[begin:l.pos])
	l.emit(token.LookupIdent(text), text, start)
}

func (l *Lexer) lexEnclosure(start token.Location) error {
	ch := l.current()
	var kind token.Kind
	switch ch {
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case '[':
		kind = token.LBracket
	case ']':
		kind = token.RBracket
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	default:
		// scan only dispatches brackets here
		return errUnexpectedEnclosure(start, ch)
	}
	l.emit(kind, string(ch), start)
	l.advance()
	return nil
}

func (l *Lexer) emit(kind token.Kind, text string, loc token.Location) {
	l.tokens = append(l.tokens, token.New(kind, text, loc))
}

func (l *Lexer) current() rune {
	if l.pos < len(l.src) {
		return l.src[l.pos]
	}
	return eof
}

func (l *Lexer) peek() rune {
	if l.pos+1 < len(l.src) {
		return l.src[l.pos+1]
	}
	return eof
}

// advance moves past the current character. A newline or carriage return
// starts a new line, anything else moves one column right.
func (l *Lexer) advance() {
	if l.pos >= len(l.src) {
		return
	}
	if isNewline(l.src[l.pos]) {
		l.loc.Line++
		l.loc.Column = 1
	} else {
		l.loc.Column++
	}
	l.pos++
}

func isNewline(ch rune) bool {
	return ch == '\n' || ch == '\r'
}

func isWhitespace(ch rune) bool {
	return ch == ' ' || isNewline(ch)
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isEnclosure(ch rune) bool {
	return strings.ContainsRune("()[]{}", ch)
}

func isIdentStart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

func isIdentPart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch) || unicode.IsDigit(ch)
}
