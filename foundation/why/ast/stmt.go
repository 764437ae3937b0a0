// File: stmt.go
// Title: why AST Statement Nodes
// Description: Defines statement node types: expression statements,
//              declarations, loops, branches and break.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial statement nodes

package ast

import (
	"github.com/msto63/why/foundation/why/token"
)

// ExprStmt evaluates X. The program root is an ExprStmt holding a Block.
type ExprStmt struct {
	Loc token.Location
	X   Expr
}

// VarDecl is `type name = value;`
type VarDecl struct {
	Loc   token.Location
	Type  *TypeSpec
	Name  *Ident
	Value Expr
}

// ForEach iterates Iterable, binding each element (or key/value pair when
// Paired is set) for Body
type ForEach struct {
	Loc      token.Location
	Binding  Expr
	Iterable Expr
	Paired   bool
	Body     *Block
}

// While is `@-> cond ! { ... }`
type While struct {
	Loc  token.Location
	Cond Expr
	Body *Block
}

// If is `(cond) ? { ... } !-> { ... }`. Else is nil without an else branch.
type If struct {
	Loc  token.Location
	Cond Expr
	Then *Block
	Else *Block
}

// Break is `@!;`
type Break struct {
	Loc token.Location
}

func (*ExprStmt) stmtNode() {}
func (*VarDecl) stmtNode()  {}
func (*ForEach) stmtNode()  {}
func (*While) stmtNode()    {}
func (*If) stmtNode()       {}
func (*Break) stmtNode()    {}

func (s *ExprStmt) Pos() token.Location { return s.Loc }
func (s *VarDecl) Pos() token.Location  { return s.Loc }
func (s *ForEach) Pos() token.Location  { return s.Loc }
func (s *While) Pos() token.Location    { return s.Loc }
func (s *If) Pos() token.Location       { return s.Loc }
func (s *Break) Pos() token.Location    { return s.Loc }

func (s *ExprStmt) Accept(v Visitor) interface{} { return v.VisitExprStmt(s) }
func (s *VarDecl) Accept(v Visitor) interface{}  { return v.VisitVarDecl(s) }
func (s *ForEach) Accept(v Visitor) interface{}  { return v.VisitForEach(s) }
func (s *While) Accept(v Visitor) interface{}    { return v.VisitWhile(s) }
func (s *If) Accept(v Visitor) interface{}       { return v.VisitIf(s) }
func (s *Break) Accept(v Visitor) interface{}    { return v.VisitBreak(s) }

func (s *ExprStmt) String() string {
	if b, ok := s.X.(*Block); ok {
		return b.String()
	}
	return exprString(s.X) + ";"
}

func (s *VarDecl) String() string {
	return s.Type.String() + " " + exprString(s.Name) + " = " + exprString(s.Value) + ";"
}

func (s *ForEach) String() string {
	arrow := "->"
	if s.Paired {
		arrow = "=>"
	}
	return exprString(s.Iterable) + "@" + arrow + exprString(s.Binding) + " " + exprString(s.Body)
}

func (s *While) String() string {
	return "@->" + exprString(s.Cond) + "! " + exprString(s.Body)
}

func (s *If) String() string {
	out := "(" + exprString(s.Cond) + ") ? " + exprString(s.Then)
	if s.Else != nil {
		out += " !-> " + s.Else.String()
	}
	return out
}

func (s *Break) String() string {
	return "@!;"
}
