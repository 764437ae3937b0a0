// File: visitor.go
// Title: why AST Visitor Pattern
// Description: Visitor interface with one method per node type, child
//              enumeration, pre-order inspection and human readable node
//              descriptions.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial visitor implementation

package ast

// Visitor has one method per node type. Every implementation must handle
// every node, so adding a node type breaks all visitors at compile time.
type Visitor interface {
	// Expressions
	VisitIntLit(e *IntLit) interface{}
	VisitFloatLit(e *FloatLit) interface{}
	VisitStringLit(e *StringLit) interface{}
	VisitIdent(e *Ident) interface{}
	VisitUnary(e *Unary) interface{}
	VisitBinary(e *Binary) interface{}
	VisitAssign(e *Assign) interface{}
	VisitCondition(e *Condition) interface{}
	VisitBlock(e *Block) interface{}
	VisitCall(e *Call) interface{}
	VisitLoopQualifier(e *LoopQualifier) interface{}
	VisitParen(e *Paren) interface{}
	VisitArrayLit(e *ArrayLit) interface{}
	VisitMappingLit(e *MappingLit) interface{}
	VisitIndex(e *Index) interface{}
	VisitMember(e *Member) interface{}
	VisitPair(e *Pair) interface{}

	// Statements
	VisitExprStmt(s *ExprStmt) interface{}
	VisitVarDecl(s *VarDecl) interface{}
	VisitForEach(s *ForEach) interface{}
	VisitWhile(s *While) interface{}
	VisitIf(s *If) interface{}
	VisitBreak(s *Break) interface{}
}

// childVisitor returns the direct children of a node as []Node
type childVisitor struct{}

func nodes(ns ...Node) []Node {
	out := make([]Node, 0, len(ns))
	for _, n := range ns {
		if !isNil(n) {
			out = append(out, n)
		}
	}
	return out
}

func exprNodes(exprs []Expr) []Node {
	out := make([]Node, 0, len(exprs))
	for _, e := range exprs {
		if !isNil(e) {
			out = append(out, e)
		}
	}
	return out
}

func (childVisitor) VisitIntLit(*IntLit) interface{}       { return []Node(nil) }
func (childVisitor) VisitFloatLit(*FloatLit) interface{}   { return []Node(nil) }
func (childVisitor) VisitStringLit(*StringLit) interface{} { return []Node(nil) }
func (childVisitor) VisitIdent(*Ident) interface{}         { return []Node(nil) }
func (childVisitor) VisitBreak(*Break) interface{}         { return []Node(nil) }

func (childVisitor) VisitUnary(e *Unary) interface{}   { return nodes(e.X) }
func (childVisitor) VisitBinary(e *Binary) interface{} { return nodes(e.Left, e.Right) }
func (childVisitor) VisitAssign(e *Assign) interface{} { return nodes(e.Target, e.Value) }
func (childVisitor) VisitCondition(e *Condition) interface{} {
	return nodes(e.Left, e.Right)
}

func (childVisitor) VisitBlock(e *Block) interface{} {
	out := make([]Node, 0, len(e.Stmts))
	for _, s := range e.Stmts {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

func (childVisitor) VisitCall(e *Call) interface{} {
	return append(nodes(e.Callee), exprNodes(e.Args)...)
}

func (childVisitor) VisitLoopQualifier(e *LoopQualifier) interface{} {
	return nodes(e.Source, e.Binding)
}

func (childVisitor) VisitParen(e *Paren) interface{}       { return nodes(e.X) }
func (childVisitor) VisitArrayLit(e *ArrayLit) interface{} { return exprNodes(e.Elems) }

func (childVisitor) VisitMappingLit(e *MappingLit) interface{} {
	out := make([]Node, 0, 2*len(e.Entries))
	for _, entry := range e.Entries {
		out = append(out, nodes(entry.Key, entry.Value)...)
	}
	return out
}

func (childVisitor) VisitIndex(e *Index) interface{}   { return nodes(e.X, e.Index) }
func (childVisitor) VisitMember(e *Member) interface{} { return nodes(e.X, e.Name) }
func (childVisitor) VisitPair(e *Pair) interface{}     { return nodes(e.Key, e.Value) }

func (childVisitor) VisitExprStmt(s *ExprStmt) interface{} { return nodes(s.X) }
func (childVisitor) VisitVarDecl(s *VarDecl) interface{}   { return nodes(s.Name, s.Value) }

func (childVisitor) VisitForEach(s *ForEach) interface{} {
	return nodes(s.Iterable, s.Binding, s.Body)
}

func (childVisitor) VisitWhile(s *While) interface{} { return nodes(s.Cond, s.Body) }
func (childVisitor) VisitIf(s *If) interface{}       { return nodes(s.Cond, s.Then, s.Else) }

// Children returns the direct child nodes of n in source order
func Children(n Node) []Node {
	if isNil(n) {
		return nil
	}
	children, _ := n.Accept(childVisitor{}).([]Node)
	return children
}

// Inspect walks the tree rooted at n in pre-order. If fn returns false the
// children of the current node are skipped.
func Inspect(n Node, fn func(Node) bool) {
	if isNil(n) || !fn(n) {
		return
	}
	for _, c := range Children(n) {
		Inspect(c, fn)
	}
}

// Count returns the number of nodes in the tree rooted at n
func Count(n Node) int {
	total := 0
	Inspect(n, func(Node) bool {
		total++
		return true
	})
	return total
}

// describeVisitor names a node the way diagnostics refer to it
type describeVisitor struct{}

func (describeVisitor) VisitIntLit(*IntLit) interface{}               { return "integer literal" }
func (describeVisitor) VisitFloatLit(*FloatLit) interface{}           { return "float literal" }
func (describeVisitor) VisitStringLit(*StringLit) interface{}         { return "string literal" }
func (describeVisitor) VisitIdent(*Ident) interface{}                 { return "identifier" }
func (describeVisitor) VisitAssign(*Assign) interface{}               { return "assignment" }
func (describeVisitor) VisitCondition(*Condition) interface{}         { return "comparison" }
func (describeVisitor) VisitBlock(*Block) interface{}                 { return "block" }
func (describeVisitor) VisitCall(*Call) interface{}                   { return "call" }
func (describeVisitor) VisitLoopQualifier(*LoopQualifier) interface{} { return "loop qualifier" }
func (describeVisitor) VisitArrayLit(*ArrayLit) interface{}           { return "array literal" }
func (describeVisitor) VisitMappingLit(*MappingLit) interface{}       { return "mapping literal" }
func (describeVisitor) VisitIndex(*Index) interface{}                 { return "index expression" }
func (describeVisitor) VisitMember(*Member) interface{}               { return "member access" }
func (describeVisitor) VisitPair(*Pair) interface{}                   { return "pair" }
func (describeVisitor) VisitExprStmt(*ExprStmt) interface{}           { return "expression statement" }
func (describeVisitor) VisitVarDecl(*VarDecl) interface{}             { return "declaration" }
func (describeVisitor) VisitForEach(*ForEach) interface{}             { return "for-each loop" }
func (describeVisitor) VisitWhile(*While) interface{}                 { return "while loop" }
func (describeVisitor) VisitIf(*If) interface{}                       { return "if statement" }
func (describeVisitor) VisitBreak(*Break) interface{}                 { return "break" }

func (describeVisitor) VisitUnary(e *Unary) interface{} {
	// -5 and -1.5 read as negative literals
	if e.Op == OpNeg && !e.Postfix {
		switch e.X.(type) {
		case *IntLit:
			return "integer literal"
		case *FloatLit:
			return "float literal"
		}
	}
	return "unary expression"
}

func (describeVisitor) VisitBinary(e *Binary) interface{} {
	if e.Op == OpRange || e.Op == OpRangeInclusive {
		return "range"
	}
	return "binary expression"
}

func (describeVisitor) VisitParen(e *Paren) interface{} {
	return "parenthesized expression"
}

// Describe returns a short noun for n such as "float literal"
func Describe(n Node) string {
	if isNil(n) {
		return "nothing"
	}
	s, _ := n.Accept(describeVisitor{}).(string)
	return s
}
