// File: expr.go
// Title: why AST Expression Nodes
// Description: Defines all expression node types: literals, identifiers,
//              operators, assignments, conditions, blocks, calls, loop
//              qualifiers and collection literals.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial expression nodes

package ast

import (
	"strconv"
	"strings"

	"github.com/msto63/why/foundation/why/token"
)

// IntLit is an integer literal such as 69
type IntLit struct {
	Loc   token.Location
	Value int64
	Text  string // Digits as written
}

// FloatLit is a literal containing a '.' such as 1.5
type FloatLit struct {
	Loc   token.Location
	Value float64
	Text  string
}

// StringLit is a quoted literal. Value is the raw content between the
// delimiters with escaped delimiters kept verbatim.
type StringLit struct {
	Loc   token.Location
	Value string
	Quote rune
}

// Ident references a name. Qualified is set for %name, which asks for the
// builtin even when a user definition shadows it.
type Ident struct {
	Loc       token.Location
	Name      string
	Qualified bool
}

// Unary applies Op to X. Postfix is set for x++ and x--.
type Unary struct {
	Loc     token.Location
	Op      Operator
	X       Expr
	Postfix bool
}

// Binary applies Op to Left and Right
type Binary struct {
	Loc   token.Location
	Op    Operator
	Left  Expr
	Right Expr
}

// Assign rebinds Target to Value
type Assign struct {
	Loc    token.Location
	Target *Ident
	Value  Expr
}

// Condition is a comparison used as a branch test
type Condition struct {
	Loc   token.Location
	Op    Operator
	Left  Expr
	Right Expr
}

// Block is a brace delimited statement sequence. A program is a Block.
type Block struct {
	Loc   token.Location
	Stmts []Stmt
}

// Call invokes Callee with Args
type Call struct {
	Loc    token.Location
	Callee Expr
	Args   []Expr
}

// LoopQualifier is the iteration spec of source@->binding or
// source@=>(key, value). Paired marks the second form, Binding is a *Pair then.
type LoopQualifier struct {
	Loc     token.Location
	Source  Expr
	Binding Expr
	Paired  bool
}

// Paren wraps a parenthesized expression
type Paren struct {
	Loc token.Location
	X   Expr
}

// ArrayLit is [a, b, c]
type ArrayLit struct {
	Loc   token.Location
	Elems []Expr
}

// MapEntry is one key->value pair of a mapping literal
type MapEntry struct {
	Key   Expr
	Value Expr
}

// MappingLit is &{k -> v, ...}
type MappingLit struct {
	Loc     token.Location
	Entries []MapEntry
}

// Index is x[i] or x@key
type Index struct {
	Loc   token.Location
	X     Expr
	Index Expr
}

// Member is x.name
type Member struct {
	Loc  token.Location
	X    Expr
	Name *Ident
}

// Pair is the (key, value) binding of a paired loop
type Pair struct {
	Loc   token.Location
	Key   *Ident
	Value *Ident
}

func (*IntLit) exprNode()        {}
func (*FloatLit) exprNode()      {}
func (*StringLit) exprNode()     {}
func (*Ident) exprNode()         {}
func (*Unary) exprNode()         {}
func (*Binary) exprNode()        {}
func (*Assign) exprNode()        {}
func (*Condition) exprNode()     {}
func (*Block) exprNode()         {}
func (*Call) exprNode()          {}
func (*LoopQualifier) exprNode() {}
func (*Paren) exprNode()         {}
func (*ArrayLit) exprNode()      {}
func (*MappingLit) exprNode()    {}
func (*Index) exprNode()         {}
func (*Member) exprNode()        {}
func (*Pair) exprNode()          {}

func (e *IntLit) Pos() token.Location        { return e.Loc }
func (e *FloatLit) Pos() token.Location      { return e.Loc }
func (e *StringLit) Pos() token.Location     { return e.Loc }
func (e *Ident) Pos() token.Location         { return e.Loc }
func (e *Unary) Pos() token.Location         { return e.Loc }
func (e *Binary) Pos() token.Location        { return e.Loc }
func (e *Assign) Pos() token.Location        { return e.Loc }
func (e *Condition) Pos() token.Location     { return e.Loc }
func (e *Block) Pos() token.Location         { return e.Loc }
func (e *Call) Pos() token.Location          { return e.Loc }
func (e *LoopQualifier) Pos() token.Location { return e.Loc }
func (e *Paren) Pos() token.Location         { return e.Loc }
func (e *ArrayLit) Pos() token.Location      { return e.Loc }
func (e *MappingLit) Pos() token.Location    { return e.Loc }
func (e *Index) Pos() token.Location         { return e.Loc }
func (e *Member) Pos() token.Location        { return e.Loc }
func (e *Pair) Pos() token.Location          { return e.Loc }

func (e *IntLit) Accept(v Visitor) interface{}        { return v.VisitIntLit(e) }
func (e *FloatLit) Accept(v Visitor) interface{}      { return v.VisitFloatLit(e) }
func (e *StringLit) Accept(v Visitor) interface{}     { return v.VisitStringLit(e) }
func (e *Ident) Accept(v Visitor) interface{}         { return v.VisitIdent(e) }
func (e *Unary) Accept(v Visitor) interface{}         { return v.VisitUnary(e) }
func (e *Binary) Accept(v Visitor) interface{}        { return v.VisitBinary(e) }
func (e *Assign) Accept(v Visitor) interface{}        { return v.VisitAssign(e) }
func (e *Condition) Accept(v Visitor) interface{}     { return v.VisitCondition(e) }
func (e *Block) Accept(v Visitor) interface{}         { return v.VisitBlock(e) }
func (e *Call) Accept(v Visitor) interface{}          { return v.VisitCall(e) }
func (e *LoopQualifier) Accept(v Visitor) interface{} { return v.VisitLoopQualifier(e) }
func (e *Paren) Accept(v Visitor) interface{}         { return v.VisitParen(e) }
func (e *ArrayLit) Accept(v Visitor) interface{}      { return v.VisitArrayLit(e) }
func (e *MappingLit) Accept(v Visitor) interface{}    { return v.VisitMappingLit(e) }
func (e *Index) Accept(v Visitor) interface{}         { return v.VisitIndex(e) }
func (e *Member) Accept(v Visitor) interface{}        { return v.VisitMember(e) }
func (e *Pair) Accept(v Visitor) interface{}          { return v.VisitPair(e) }

// String methods render source-like text. Binary and unary forms are
// fully parenthesized so precedence is visible.

func (e *IntLit) String() string {
	if e.Text != "" {
		return e.Text
	}
	return strconv.FormatInt(e.Value, 10)
}

func (e *FloatLit) String() string {
	if e.Text != "" {
		return e.Text
	}
	return strconv.FormatFloat(e.Value, 'g', -1, 64)
}

func (e *StringLit) String() string {
	q := e.Quote
	if q == 0 {
		q = '"'
	}
	return string(q) + e.Value + string(q)
}

func (e *Ident) String() string {
	if e.Qualified {
		return "%" + e.Name
	}
	return e.Name
}

func (e *Unary) String() string {
	if e.Postfix {
		return "(" + exprString(e.X) + e.Op.String() + ")"
	}
	return "(" + e.Op.String() + exprString(e.X) + ")"
}

func (e *Binary) String() string {
	return "(" + exprString(e.Left) + " " + e.Op.String() + " " + exprString(e.Right) + ")"
}

func (e *Assign) String() string {
	return exprString(e.Target) + " = " + exprString(e.Value)
}

func (e *Condition) String() string {
	return exprString(e.Left) + " " + e.Op.String() + " " + exprString(e.Right)
}

func (e *Block) String() string {
	if len(e.Stmts) == 0 {
		return "{ }"
	}
	parts := make([]string, len(e.Stmts))
	for i, s := range e.Stmts {
		parts[i] = s.String()
	}
	return "{ " + strings.Join(parts, " ") + " }"
}

func (e *Call) String() string {
	return exprString(e.Callee) + "(" + joinExprs(e.Args, ", ") + ")"
}

func (e *LoopQualifier) String() string {
	arrow := "->"
	if e.Paired {
		arrow = "=>"
	}
	return exprString(e.Source) + "@" + arrow + exprString(e.Binding)
}

func (e *Paren) String() string {
	return "(" + exprString(e.X) + ")"
}

func (e *ArrayLit) String() string {
	return "[" + joinExprs(e.Elems, ", ") + "]"
}

func (e *MappingLit) String() string {
	parts := make([]string, len(e.Entries))
	for i, entry := range e.Entries {
		parts[i] = exprString(entry.Key) + "->" + exprString(entry.Value)
	}
	return "&{" + strings.Join(parts, ", ") + "}"
}

func (e *Index) String() string {
	return exprString(e.X) + "[" + exprString(e.Index) + "]"
}

func (e *Member) String() string {
	return exprString(e.X) + "." + exprString(e.Name)
}

func (e *Pair) String() string {
	return "(" + exprString(e.Key) + ", " + exprString(e.Value) + ")"
}

// exprString tolerates nil and typed nil operands
func exprString(e Node) string {
	if isNil(e) {
		return "<nil>"
	}
	return e.String()
}

func joinExprs(exprs []Expr, sep string) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = exprString(e)
	}
	return strings.Join(parts, sep)
}

func isNil(n Node) bool {
	if n == nil {
		return true
	}
	switch v := n.(type) {
	case *Ident:
		return v == nil
	case *Block:
		return v == nil
	case *Pair:
		return v == nil
	}
	return false
}
