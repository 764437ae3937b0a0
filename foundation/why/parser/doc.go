// File: doc.go
// Title: why Parser Package Documentation
// Description: Package documentation for the why parser.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial package documentation

/*
Package parser builds why syntax trees from lexer output.

Statements are recognized by recursive descent on their leading tokens.
Expressions use precedence climbing with one function per tier, lowest
first:

	parseExpr      ranges (-> =>)
	parseAdditive  + -
	parseTerm      * / and postfix ++ --, compound += -= *= /=
	parseFactor    ** (right associative)
	parseTerminal  literals, identifiers, unary -, ( ), [ ], &{ }, calls

Operators are mapped to AST operators through per tier tables. A token
without a mapping ends the tier, only tokens the grammar requires are
enforced.

Every failure is returned as *Error. Parsing never panics and never
returns a partial tree.

	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return err
	}
	program, err := parser.Parse(tokens)
*/
package parser
