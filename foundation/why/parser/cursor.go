// File: cursor.go
// Title: why Parser Token Cursor
// Description: Read cursor over an immutable token slice with one token
//              lookahead, loop nesting and recursion depth tracking.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial cursor

package parser

import (
	"github.com/msto63/why/foundation/why/token"
)

// cursor is the only mutable parse state. Grammar functions receive it
// explicitly.
type cursor struct {
	tokens   []token.Token
	pos      int
	loops    int // enclosing loop bodies
	depth    int // current recursion depth
	maxDepth int
}

func newCursor(tokens []token.Token, maxDepth int) *cursor {
	return &cursor{tokens: tokens, maxDepth: maxDepth}
}

// peek returns the current token without consuming it
func (c *cursor) peek() token.Token {
	return c.peekAt(0)
}

// peekAt looks n tokens ahead. Past the end of the slice it returns a
// synthetic EOF located at the last real token.
func (c *cursor) peekAt(n int) token.Token {
	if i := c.pos + n; i < len(c.tokens) {
		return c.tokens[i]
	}
	loc := token.Start()
	if len(c.tokens) > 0 {
		loc = c.tokens[len(c.tokens)-1].Location
	}
	return token.New(token.EOF, "", loc)
}

// advance consumes and returns the current token
func (c *cursor) advance() token.Token {
	tok := c.peek()
	if c.pos < len(c.tokens) {
		c.pos++
	}
	return tok
}

func (c *cursor) at(kind token.Kind) bool {
	return c.peek().Is(kind)
}

// accept consumes the current token if it has the given kind
func (c *cursor) accept(kind token.Kind) (token.Token, bool) {
	if c.at(kind) {
		return c.advance(), true
	}
	return token.Token{}, false
}

// expect consumes a token of the given kind or fails without consuming
func (c *cursor) expect(kind token.Kind) (token.Token, error) {
	if c.at(kind) {
		return c.advance(), nil
	}
	return token.Token{}, errUnexpected(c.peek(), describeKind(kind))
}

// exhausted reports whether every real token has been consumed
func (c *cursor) exhausted() bool {
	return c.pos >= len(c.tokens)
}

// enter increases the recursion depth, failing once the limit is reached
func (c *cursor) enter() error {
	c.depth++
	if c.maxDepth > 0 && c.depth > c.maxDepth {
		return newError(NestingTooDeep, c.peek().Location, "nesting exceeds %d levels", c.maxDepth)
	}
	return nil
}

func (c *cursor) leave() {
	c.depth--
}

func describeKind(kind token.Kind) string {
	switch kind {
	case token.EOF:
		return "end of input"
	case token.Ident:
		return "identifier"
	}
	return "'" + kind.String() + "'"
}
