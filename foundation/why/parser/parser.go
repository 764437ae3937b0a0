// File: parser.go
// Title: why Parser
// Description: Recursive descent parser that turns a token sequence into a
//              syntax tree. Statements are recognized by their leading
//              tokens, expressions by precedence climbing (see expr.go).
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial parser implementation

package parser

import (
	"errors"

	"github.com/msto63/why/foundation/why/ast"
	"github.com/msto63/why/foundation/why/token"
)

// DefaultMaxDepth is the default limit for nested blocks, expressions and types
const DefaultMaxDepth = 256

// Options configures parser behavior
type Options struct {
	// MaxDepth limits nesting of blocks, expressions and types (0 means unlimited)
	MaxDepth int
}

// DefaultOptions returns the default parser configuration
func DefaultOptions() Options {
	return Options{MaxDepth: DefaultMaxDepth}
}

// Parser turns token sequences into programs. A Parser holds no state
// between calls and is safe for concurrent use.
type Parser struct {
	opts Options
}

// New creates a parser with the given options
func New(opts Options) *Parser {
	return &Parser{opts: opts}
}

// Parse parses tokens with the default options
func Parse(tokens []token.Token) (ast.Stmt, error) {
	return New(DefaultOptions()).Parse(tokens)
}

// Parse consumes the whole token sequence and returns the program as an
// *ast.ExprStmt wrapping the top level *ast.Block. The sequence must end
// with the EOF token.
func (p *Parser) Parse(tokens []token.Token) (ast.Stmt, error) {
	c := newCursor(tokens, p.opts.MaxDepth)

	program := &ast.Block{Loc: c.peek().Location}
	for !c.at(token.EOF) {
		stmt, err := parseStatement(c)
		if err != nil {
			return nil, err
		}
		program.Stmts = append(program.Stmts, stmt)
	}

	if c.exhausted() {
		return nil, errUnexpected(c.peek(), "end of input marker")
	}
	c.advance()
	if !c.exhausted() {
		return nil, errUnexpected(c.peek(), "nothing after end of input")
	}

	return &ast.ExprStmt{Loc: program.Loc, X: program}, nil
}

// Program extracts the top level block from a parse result
func Program(stmt ast.Stmt) (*ast.Block, bool) {
	es, ok := stmt.(*ast.ExprStmt)
	if !ok {
		return nil, false
	}
	block, ok := es.X.(*ast.Block)
	return block, ok
}

// parseStatement dispatches on the leading tokens
func parseStatement(c *cursor) (ast.Stmt, error) {
	tok := c.peek()
	next := c.peekAt(1)

	switch {
	case tok.Is(token.LBrace):
		block, err := parseBlock(c)
		if err != nil {
			return nil, err
		}
		return &ast.ExprStmt{Loc: block.Loc, X: block}, nil

	case tok.Is(token.At) && next.Is(token.Exclamation):
		return parseBreak(c)

	case tok.Is(token.At) && next.Is(token.SmallRArrow):
		return parseWhile(c)

	case startsDeclaration(c):
		return parseVarDecl(c)

	case tok.Is(token.Ident) && next.Is(token.Eq):
		return parseAssign(c)
	}

	return parseExprStatement(c)
}

// startsDeclaration reports whether the cursor is at `type name` or at a
// parameterized collection type such as `array@int`
func startsDeclaration(c *cursor) bool {
	tok := c.peek()
	if !tok.Is(token.Ident) || !ast.IsTypeName(tok.Text) {
		return false
	}
	next := c.peekAt(1)
	if next.Is(token.Ident) {
		return true
	}
	after := c.peekAt(2)
	return next.Is(token.At) && after.Is(token.Ident) && ast.IsTypeName(after.Text)
}

// parseBlock parses `{ stmt* }`. Running out of input before the closing
// brace is reported at the opening brace.
func parseBlock(c *cursor) (*ast.Block, error) {
	open, err := c.expect(token.LBrace)
	if err != nil {
		return nil, err
	}
	if err := c.enter(); err != nil {
		return nil, err
	}
	defer c.leave()

	block := &ast.Block{Loc: open.Location}
	for !c.at(token.RBrace) {
		if c.at(token.EOF) {
			return nil, errUnterminatedBlock(open.Location)
		}
		stmt, err := parseStatement(c)
		if err != nil {
			if errors.Is(err, ErrUnexpectedEndOfInput) {
				return nil, errUnterminatedBlock(open.Location)
			}
			return nil, err
		}
		block.Stmts = append(block.Stmts, stmt)
	}
	c.advance()
	return block, nil
}

// parseLoopBody parses a block with the loop depth raised so that break
// is legal inside it
func parseLoopBody(c *cursor) (*ast.Block, error) {
	c.loops++
	defer func() { c.loops-- }()
	return parseBlock(c)
}

// parseBreak parses `@!;`
func parseBreak(c *cursor) (ast.Stmt, error) {
	at := c.advance()
	c.advance()
	if _, err := c.expect(token.Semi); err != nil {
		return nil, err
	}
	if c.loops == 0 {
		return nil, newError(BreakOutsideLoop, at.Location, "`@!` is only allowed inside a loop body")
	}
	return &ast.Break{Loc: at.Location}, nil
}

// parseWhile parses `@-> cond ! { ... }`
func parseWhile(c *cursor) (ast.Stmt, error) {
	at := c.advance()
	c.advance()

	cond, err := parseExpr(c)
	if err != nil {
		return nil, err
	}
	if _, err := c.expect(token.Exclamation); err != nil {
		return nil, err
	}
	body, err := parseLoopBody(c)
	if err != nil {
		return nil, err
	}
	return &ast.While{Loc: at.Location, Cond: cond, Body: body}, nil
}

// parseVarDecl parses `type name = value;` and checks the literal shape of
// the initializer against the declared type
func parseVarDecl(c *cursor) (ast.Stmt, error) {
	spec, err := parseTypeSpec(c)
	if err != nil {
		return nil, err
	}
	nameTok, err := c.expect(token.Ident)
	if err != nil {
		return nil, err
	}
	if _, err := c.expect(token.Eq); err != nil {
		return nil, err
	}
	value, err := parseExpr(c)
	if err != nil {
		return nil, err
	}
	if _, err := c.expect(token.Semi); err != nil {
		return nil, err
	}

	if bad, want, ok := checkShape(spec, value); !ok {
		return nil, errTypeMismatch(bad.Pos(), spec.String(), want.String(), ast.Describe(bad), nameTok.Text)
	}

	return &ast.VarDecl{
		Loc:   spec.Loc,
		Type:  spec,
		Name:  &ast.Ident{Loc: nameTok.Location, Name: nameTok.Text},
		Value: value,
	}, nil
}

// parseAssign parses `name = value;`
func parseAssign(c *cursor) (ast.Stmt, error) {
	name := c.advance()
	c.advance()

	value, err := parseExpr(c)
	if err != nil {
		return nil, err
	}
	if _, err := c.expect(token.Semi); err != nil {
		return nil, err
	}

	target := &ast.Ident{Loc: name.Location, Name: name.Text}
	return &ast.ExprStmt{
		Loc: name.Location,
		X:   &ast.Assign{Loc: name.Location, Target: target, Value: value},
	}, nil
}

// parseExprStatement handles the forms introduced by an expression: a loop
// qualifier followed by a body, a parenthesized test followed by `?`, or a
// plain expression terminated by `;`
func parseExprStatement(c *cursor) (ast.Stmt, error) {
	x, err := parseExpr(c)
	if err != nil {
		return nil, err
	}

	if atLoopQualifier(c) {
		return parseForEach(c, x)
	}
	if e, ok := x.(*ast.Paren); ok && c.at(token.Question) {
		return parseIf(c, e)
	}

	if _, err := c.expect(token.Semi); err != nil {
		return nil, err
	}
	return &ast.ExprStmt{Loc: x.Pos(), X: x}, nil
}

// parseForEach parses the loop qualifier after source and the body it
// requires
func parseForEach(c *cursor, source ast.Expr) (ast.Stmt, error) {
	q, err := parseLoopQualifier(c, source)
	if err != nil {
		return nil, err
	}
	body, err := parseLoopBody(c)
	if err != nil {
		return nil, err
	}
	return &ast.ForEach{
		Loc:      q.Loc,
		Binding:  q.Binding,
		Iterable: q.Source,
		Paired:   q.Paired,
		Body:     body,
	}, nil
}

// parseIf parses `? { ... }` with an optional `!-> { ... }` after the test
func parseIf(c *cursor, test *ast.Paren) (ast.Stmt, error) {
	c.advance()

	then, err := parseBlock(c)
	if err != nil {
		return nil, err
	}
	stmt := &ast.If{Loc: test.Loc, Cond: test.X, Then: then}

	if c.at(token.Exclamation) && c.peekAt(1).Is(token.SmallRArrow) {
		c.advance()
		c.advance()
		if stmt.Else, err = parseBlock(c); err != nil {
			return nil, err
		}
	}
	return stmt, nil
}
