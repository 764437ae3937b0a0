// File: print.go
// Title: why AST Printing and Export
// Description: Renders syntax trees as s-expressions for debugging and
//              converts them into generic map trees for JSON and YAML export.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial printer and exporter

package ast

import (
	"strings"
)

// Sprint renders n as a single line s-expression, e.g.
// (foreach item mylist (block (expr (call print item))))
func Sprint(n Node) string {
	if isNil(n) {
		return "nil"
	}
	s, _ := n.Accept(sexprVisitor{}).(string)
	return s
}

type sexprVisitor struct{}

func list(head string, parts ...Node) string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(head)
	for _, p := range parts {
		b.WriteString(" ")
		b.WriteString(Sprint(p))
	}
	b.WriteString(")")
	return b.String()
}

func exprList(head string, exprs []Expr) string {
	parts := make([]Node, len(exprs))
	for i, e := range exprs {
		parts[i] = e
	}
	return list(head, parts...)
}

func (sexprVisitor) VisitIntLit(e *IntLit) interface{}       { return e.String() }
func (sexprVisitor) VisitFloatLit(e *FloatLit) interface{}   { return e.String() }
func (sexprVisitor) VisitStringLit(e *StringLit) interface{} { return e.String() }
func (sexprVisitor) VisitIdent(e *Ident) interface{}         { return e.String() }

func (sexprVisitor) VisitUnary(e *Unary) interface{} {
	head := e.Op.Name()
	if e.Postfix {
		head = "post_" + head
	}
	return list(head, e.X)
}

func (sexprVisitor) VisitBinary(e *Binary) interface{} {
	return list(e.Op.Name(), e.Left, e.Right)
}

func (sexprVisitor) VisitAssign(e *Assign) interface{} {
	return list("assign", e.Target, e.Value)
}

func (sexprVisitor) VisitCondition(e *Condition) interface{} {
	return list("cond "+e.Op.Name(), e.Left, e.Right)
}

func (sexprVisitor) VisitBlock(e *Block) interface{} {
	parts := make([]Node, len(e.Stmts))
	for i, s := range e.Stmts {
		parts[i] = s
	}
	return list("block", parts...)
}

func (sexprVisitor) VisitCall(e *Call) interface{} {
	return exprList("call "+Sprint(e.Callee), e.Args)
}

func (sexprVisitor) VisitLoopQualifier(e *LoopQualifier) interface{} {
	head := "each"
	if e.Paired {
		head = "each_pair"
	}
	return list(head, e.Source, e.Binding)
}

func (sexprVisitor) VisitParen(e *Paren) interface{}       { return list("paren", e.X) }
func (sexprVisitor) VisitArrayLit(e *ArrayLit) interface{} { return exprList("array", e.Elems) }

func (sexprVisitor) VisitMappingLit(e *MappingLit) interface{} {
	var b strings.Builder
	b.WriteString("(mapping")
	for _, entry := range e.Entries {
		b.WriteString(" ")
		b.WriteString(list("entry", entry.Key, entry.Value))
	}
	b.WriteString(")")
	return b.String()
}

func (sexprVisitor) VisitIndex(e *Index) interface{}   { return list("index", e.X, e.Index) }
func (sexprVisitor) VisitMember(e *Member) interface{} { return list("member", e.X, e.Name) }
func (sexprVisitor) VisitPair(e *Pair) interface{}     { return list("pair", e.Key, e.Value) }

func (sexprVisitor) VisitExprStmt(s *ExprStmt) interface{} { return list("expr", s.X) }

func (sexprVisitor) VisitVarDecl(s *VarDecl) interface{} {
	return list("decl "+s.Type.String(), s.Name, s.Value)
}

func (sexprVisitor) VisitForEach(s *ForEach) interface{} {
	return list("foreach", s.Binding, s.Iterable, s.Body)
}

func (sexprVisitor) VisitWhile(s *While) interface{} { return list("while", s.Cond, s.Body) }

func (sexprVisitor) VisitIf(s *If) interface{} {
	if s.Else == nil {
		return list("if", s.Cond, s.Then)
	}
	return list("if", s.Cond, s.Then, s.Else)
}

func (sexprVisitor) VisitBreak(*Break) interface{} { return "(break)" }

// ToMap converts n into nested maps and slices suitable for encoding/json
// and yaml.v3. Every node map carries "node", "line" and "column" keys.
func ToMap(n Node) map[string]interface{} {
	if isNil(n) {
		return nil
	}
	m, _ := n.Accept(mapVisitor{}).(map[string]interface{})
	return m
}

type mapVisitor struct{}

func nodeMap(kind string, n Node, kv ...interface{}) map[string]interface{} {
	pos := n.Pos()
	m := map[string]interface{}{
		"node":   kind,
		"line":   pos.Line,
		"column": pos.Column,
	}
	for i := 0; i+1 < len(kv); i += 2 {
		key, _ := kv[i].(string)
		m[key] = kv[i+1]
	}
	return m
}

func mapOf(n Node) interface{} {
	if isNil(n) {
		return nil
	}
	return ToMap(n)
}

func mapsOf(exprs []Expr) []interface{} {
	out := make([]interface{}, len(exprs))
	for i, e := range exprs {
		out[i] = mapOf(e)
	}
	return out
}

func (mapVisitor) VisitIntLit(e *IntLit) interface{} {
	return nodeMap("int", e, "value", e.Value)
}

func (mapVisitor) VisitFloatLit(e *FloatLit) interface{} {
	return nodeMap("float", e, "value", e.Value)
}

func (mapVisitor) VisitStringLit(e *StringLit) interface{} {
	return nodeMap("string", e, "value", e.Value, "quote", string(e.Quote))
}

func (mapVisitor) VisitIdent(e *Ident) interface{} {
	if e.Qualified {
		return nodeMap("ident", e, "name", e.Name, "qualified", true)
	}
	return nodeMap("ident", e, "name", e.Name)
}

func (mapVisitor) VisitUnary(e *Unary) interface{} {
	return nodeMap("unary", e, "op", e.Op.Name(), "postfix", e.Postfix, "operand", mapOf(e.X))
}

func (mapVisitor) VisitBinary(e *Binary) interface{} {
	return nodeMap("binary", e, "op", e.Op.Name(), "left", mapOf(e.Left), "right", mapOf(e.Right))
}

func (mapVisitor) VisitAssign(e *Assign) interface{} {
	return nodeMap("assign", e, "target", mapOf(e.Target), "value", mapOf(e.Value))
}

func (mapVisitor) VisitCondition(e *Condition) interface{} {
	return nodeMap("condition", e, "op", e.Op.Name(), "left", mapOf(e.Left), "right", mapOf(e.Right))
}

func (mapVisitor) VisitBlock(e *Block) interface{} {
	stmts := make([]interface{}, len(e.Stmts))
	for i, s := range e.Stmts {
		stmts[i] = mapOf(s)
	}
	return nodeMap("block", e, "statements", stmts)
}

func (mapVisitor) VisitCall(e *Call) interface{} {
	return nodeMap("call", e, "callee", mapOf(e.Callee), "args", mapsOf(e.Args))
}

func (mapVisitor) VisitLoopQualifier(e *LoopQualifier) interface{} {
	return nodeMap("loop_qualifier", e, "source", mapOf(e.Source), "binding", mapOf(e.Binding), "paired", e.Paired)
}

func (mapVisitor) VisitParen(e *Paren) interface{} {
	return nodeMap("paren", e, "expr", mapOf(e.X))
}

func (mapVisitor) VisitArrayLit(e *ArrayLit) interface{} {
	return nodeMap("array", e, "elements", mapsOf(e.Elems))
}

func (mapVisitor) VisitMappingLit(e *MappingLit) interface{} {
	entries := make([]interface{}, len(e.Entries))
	for i, entry := range e.Entries {
		entries[i] = map[string]interface{}{"key": mapOf(entry.Key), "value": mapOf(entry.Value)}
	}
	return nodeMap("mapping", e, "entries", entries)
}

func (mapVisitor) VisitIndex(e *Index) interface{} {
	return nodeMap("index", e, "expr", mapOf(e.X), "index", mapOf(e.Index))
}

func (mapVisitor) VisitMember(e *Member) interface{} {
	return nodeMap("member", e, "expr", mapOf(e.X), "name", mapOf(e.Name))
}

func (mapVisitor) VisitPair(e *Pair) interface{} {
	return nodeMap("pair", e, "key", mapOf(e.Key), "value", mapOf(e.Value))
}

func (mapVisitor) VisitExprStmt(s *ExprStmt) interface{} {
	return nodeMap("expr_stmt", s, "expr", mapOf(s.X))
}

func (mapVisitor) VisitVarDecl(s *VarDecl) interface{} {
	return nodeMap("var_decl", s, "type", s.Type.String(), "name", mapOf(s.Name), "value", mapOf(s.Value))
}

func (mapVisitor) VisitForEach(s *ForEach) interface{} {
	return nodeMap("for_each", s,
		"binding", mapOf(s.Binding),
		"iterable", mapOf(s.Iterable),
		"paired", s.Paired,
		"body", mapOf(s.Body))
}

func (mapVisitor) VisitWhile(s *While) interface{} {
	return nodeMap("while", s, "cond", mapOf(s.Cond), "body", mapOf(s.Body))
}

func (mapVisitor) VisitIf(s *If) interface{} {
	return nodeMap("if", s, "cond", mapOf(s.Cond), "then", mapOf(s.Then), "else", mapOf(s.Else))
}

func (mapVisitor) VisitBreak(s *Break) interface{} {
	return nodeMap("break", s)
}
