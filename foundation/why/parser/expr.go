// File: expr.go
// Title: why Expression Parsing
// Description: Precedence climbing over the expression tiers, from loop
//              qualifiers and ranges down to terminals and their postfix
//              forms.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial expression grammar

package parser

import (
	"strconv"

	"github.com/msto63/why/foundation/why/ast"
	"github.com/msto63/why/foundation/why/token"
)

// parseExpr parses an additive expression, optionally turned into a range
// by `->` or `=>`. A following loop qualifier is left to the statement
// level, so in any other position `@->` and `@=>` are unexpected.
func parseExpr(c *cursor) (ast.Expr, error) {
	x, err := parseAdditive(c)
	if err != nil {
		return nil, err
	}

	if op, ok := rangeOps[c.peek().Kind]; ok {
		c.advance()
		right, err := parseAdditive(c)
		if err != nil {
			return nil, err
		}
		x = &ast.Binary{Loc: x.Pos(), Op: op, Left: x, Right: right}
	}
	return x, nil
}

// atLoopQualifier reports whether `@->` or `@=>` follows
func atLoopQualifier(c *cursor) bool {
	if !c.at(token.At) {
		return false
	}
	switch c.peekAt(1).Kind {
	case token.SmallRArrow, token.LargeRArrow:
		return true
	}
	return false
}

// parseLoopQualifier parses `@->name` or `@=>(key, value)` after source
func parseLoopQualifier(c *cursor, source ast.Expr) (*ast.LoopQualifier, error) {
	c.advance()
	arrow := c.advance()

	if arrow.Is(token.SmallRArrow) {
		name, err := c.expect(token.Ident)
		if err != nil {
			return nil, err
		}
		return &ast.LoopQualifier{
			Loc:     source.Pos(),
			Source:  source,
			Binding: &ast.Ident{Loc: name.Location, Name: name.Text},
		}, nil
	}

	open, err := c.expect(token.LParen)
	if err != nil {
		return nil, err
	}
	key, err := c.expect(token.Ident)
	if err != nil {
		return nil, err
	}
	if _, err := c.expect(token.Comma); err != nil {
		return nil, err
	}
	value, err := c.expect(token.Ident)
	if err != nil {
		return nil, err
	}
	if _, err := c.expect(token.RParen); err != nil {
		return nil, err
	}

	return &ast.LoopQualifier{
		Loc:    source.Pos(),
		Source: source,
		Binding: &ast.Pair{
			Loc:   open.Location,
			Key:   &ast.Ident{Loc: key.Location, Name: key.Text},
			Value: &ast.Ident{Loc: value.Location, Name: value.Text},
		},
		Paired: true,
	}, nil
}

// parseAdditive parses left associative `+` and `-`
func parseAdditive(c *cursor) (ast.Expr, error) {
	x, err := parseTerm(c)
	if err != nil {
		return nil, err
	}
	for {
		op, ok := additiveOps[c.peek().Kind]
		if !ok {
			return x, nil
		}
		c.advance()
		right, err := parseTerm(c)
		if err != nil {
			return nil, err
		}
		x = &ast.Binary{Loc: x.Pos(), Op: op, Left: x, Right: right}
	}
}

// parseTerm parses `*` and `/`, postfix `++`/`--` and the compound
// assignments, whose right operand is a whole additive expression
func parseTerm(c *cursor) (ast.Expr, error) {
	x, err := parseFactor(c)
	if err != nil {
		return nil, err
	}
	for {
		kind := c.peek().Kind

		if op, ok := multiplicativeOps[kind]; ok {
			c.advance()
			right, err := parseFactor(c)
			if err != nil {
				return nil, err
			}
			x = &ast.Binary{Loc: x.Pos(), Op: op, Left: x, Right: right}
			continue
		}

		if op, ok := postfixOps[kind]; ok {
			c.advance()
			x = &ast.Unary{Loc: x.Pos(), Op: op, X: x, Postfix: true}
			continue
		}

		if op, ok := compoundOps[kind]; ok {
			c.advance()
			right, err := parseAdditive(c)
			if err != nil {
				return nil, err
			}
			return &ast.Binary{Loc: x.Pos(), Op: op, Left: x, Right: right}, nil
		}

		return x, nil
	}
}

// parseFactor parses the right associative power operator
func parseFactor(c *cursor) (ast.Expr, error) {
	if err := c.enter(); err != nil {
		return nil, err
	}
	defer c.leave()

	x, err := parseTerminal(c)
	if err != nil {
		return nil, err
	}
	if op, ok := powerOps[c.peek().Kind]; ok {
		c.advance()
		right, err := parseFactor(c)
		if err != nil {
			return nil, err
		}
		return &ast.Binary{Loc: x.Pos(), Op: op, Left: x, Right: right}, nil
	}
	return x, nil
}

// parseTerminal parses a primary expression and its postfix forms
func parseTerminal(c *cursor) (ast.Expr, error) {
	x, err := parsePrimary(c)
	if err != nil {
		return nil, err
	}
	return parsePostfix(c, x)
}

func parsePrimary(c *cursor) (ast.Expr, error) {
	tok := c.peek()

	switch tok.Kind {
	case token.NumLiteral:
		c.advance()
		return parseNumber(tok)

	case token.StrLiteral:
		c.advance()
		return &ast.StringLit{Loc: tok.Location, Value: tok.Text, Quote: tok.Quote}, nil

	case token.Ident:
		c.advance()
		return &ast.Ident{Loc: tok.Location, Name: tok.Text}, nil

	case token.Percent:
		c.advance()
		name, err := c.expect(token.Ident)
		if err != nil {
			return nil, err
		}
		return &ast.Ident{Loc: tok.Location, Name: name.Text, Qualified: true}, nil

	case token.Minus:
		c.advance()
		operand, err := parseFactor(c)
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Loc: tok.Location, Op: ast.OpNeg, X: operand}, nil

	case token.LParen:
		return parseParen(c)

	case token.LBracket:
		return parseArray(c)

	case token.And:
		return parseMapping(c)
	}

	return nil, errUnexpected(tok, "expression")
}

func parseNumber(tok token.Token) (ast.Expr, error) {
	if tok.Fractional {
		v, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return nil, newError(InvalidLiteral, tok.Location, "invalid float literal %s", tok.Text)
		}
		return &ast.FloatLit{Loc: tok.Location, Value: v, Text: tok.Text}, nil
	}
	v, err := strconv.ParseInt(tok.Text, 10, 64)
	if err != nil {
		return nil, newError(InvalidLiteral, tok.Location, "integer literal %s is out of range", tok.Text)
	}
	return &ast.IntLit{Loc: tok.Location, Value: v, Text: tok.Text}, nil
}

// parseParen parses `( expr )` or `( expr cmp expr )`
func parseParen(c *cursor) (ast.Expr, error) {
	open := c.advance()

	x, err := parseExpr(c)
	if err != nil {
		return nil, err
	}
	if op, ok := comparisonOps[c.peek().Kind]; ok {
		c.advance()
		right, err := parseExpr(c)
		if err != nil {
			return nil, err
		}
		x = &ast.Condition{Loc: x.Pos(), Op: op, Left: x, Right: right}
	}
	if _, err := c.expect(token.RParen); err != nil {
		return nil, err
	}
	return &ast.Paren{Loc: open.Location, X: x}, nil
}

// parseArray parses `[a, b, ...]`
func parseArray(c *cursor) (ast.Expr, error) {
	open := c.advance()
	elems, err := parseList(c, token.RBracket, parseExpr)
	if err != nil {
		return nil, err
	}
	return &ast.ArrayLit{Loc: open.Location, Elems: elems}, nil
}

// parseMapping parses `&{k -> v, ...}`
func parseMapping(c *cursor) (ast.Expr, error) {
	amp := c.advance()
	if _, err := c.expect(token.LBrace); err != nil {
		return nil, err
	}

	lit := &ast.MappingLit{Loc: amp.Location}
	if _, ok := c.accept(token.RBrace); ok {
		return lit, nil
	}
	for {
		key, err := parseAdditive(c)
		if err != nil {
			return nil, err
		}
		if _, err := c.expect(token.SmallRArrow); err != nil {
			return nil, err
		}
		value, err := parseAdditive(c)
		if err != nil {
			return nil, err
		}
		lit.Entries = append(lit.Entries, ast.MapEntry{Key: key, Value: value})

		if _, ok := c.accept(token.Comma); !ok {
			break
		}
	}
	if _, err := c.expect(token.RBrace); err != nil {
		return nil, err
	}
	return lit, nil
}

// parseList parses comma separated items up to and including the closing token
func parseList(c *cursor, closing token.Kind, item func(*cursor) (ast.Expr, error)) ([]ast.Expr, error) {
	var items []ast.Expr
	if _, ok := c.accept(closing); ok {
		return items, nil
	}
	for {
		x, err := item(c)
		if err != nil {
			return nil, err
		}
		items = append(items, x)
		if _, ok := c.accept(token.Comma); !ok {
			break
		}
	}
	if _, err := c.expect(closing); err != nil {
		return nil, err
	}
	return items, nil
}

// parsePostfix applies calls, indexing and member access to x
func parsePostfix(c *cursor, x ast.Expr) (ast.Expr, error) {
	for {
		switch tok := c.peek(); {
		case tok.Is(token.LParen):
			c.advance()
			args, err := parseList(c, token.RParen, parseExpr)
			if err != nil {
				return nil, err
			}
			x = &ast.Call{Loc: x.Pos(), Callee: x, Args: args}

		case tok.Is(token.LBracket):
			c.advance()
			index, err := parseExpr(c)
			if err != nil {
				return nil, err
			}
			if _, err := c.expect(token.RBracket); err != nil {
				return nil, err
			}
			x = &ast.Index{Loc: x.Pos(), X: x, Index: index}

		case tok.Is(token.Dot):
			c.advance()
			name, err := c.expect(token.Ident)
			if err != nil {
				return nil, err
			}
			x = &ast.Member{Loc: x.Pos(), X: x, Name: &ast.Ident{Loc: name.Location, Name: name.Text}}

		case tok.Is(token.At) && c.peekAt(1).Is(token.Ident):
			c.advance()
			key := c.advance()
			x = &ast.Index{Loc: x.Pos(), X: x, Index: &ast.Ident{Loc: key.Location, Name: key.Text}}

		default:
			return x, nil
		}
	}
}
