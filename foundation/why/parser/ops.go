// File: ops.go
// Title: why Parser Operator Tables
// Description: Maps operator tokens to AST operators, one table per
//              precedence tier. A token missing from a tier's table ends
//              that tier's loop.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial operator tables

package parser

import (
	"github.com/msto63/why/foundation/why/ast"
	"github.com/msto63/why/foundation/why/token"
)

var rangeOps = map[token.Kind]ast.Operator{
	token.SmallRArrow: ast.OpRange,
	token.LargeRArrow: ast.OpRangeInclusive,
}

var additiveOps = map[token.Kind]ast.Operator{
	token.Plus:  ast.OpAdd,
	token.Minus: ast.OpSub,
}

var multiplicativeOps = map[token.Kind]ast.Operator{
	token.Star:  ast.OpMul,
	token.Slash: ast.OpDiv,
}

var postfixOps = map[token.Kind]ast.Operator{
	token.PlusPlus:   ast.OpIncrement,
	token.MinusMinus: ast.OpDecrement,
}

var compoundOps = map[token.Kind]ast.Operator{
	token.PlusEq:  ast.OpAddAssign,
	token.MinusEq: ast.OpSubAssign,
	token.StarEq:  ast.OpMulAssign,
	token.SlashEq: ast.OpDivAssign,
}

var powerOps = map[token.Kind]ast.Operator{
	token.StarStar: ast.OpPow,
}

var comparisonOps = map[token.Kind]ast.Operator{
	token.Lt:    ast.OpLt,
	token.Gt:    ast.OpGt,
	token.Lte:   ast.OpLte,
	token.Gte:   ast.OpGte,
	token.EqEq:  ast.OpEq,
	token.NotEq: ast.OpNotEq,
}
