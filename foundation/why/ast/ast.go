// File: ast.go
// Title: why Abstract Syntax Tree Interfaces
// Description: Defines the node interfaces, operators and type specifications
//              shared by all why syntax tree nodes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial AST interfaces

package ast

import (
	"strings"

	"github.com/msto63/why/foundation/why/token"
)

// Node is implemented by every syntax tree node
type Node interface {
	// Pos returns the location of the node's first token
	Pos() token.Location

	// String returns a source-like rendering of the node
	String() string

	// Accept dispatches to the matching Visitor method
	Accept(v Visitor) interface{}
}

// Expr is an expression node
type Expr interface {
	Node
	exprNode()
}

// Stmt is a statement node
type Stmt interface {
	Node
	stmtNode()
}

// Operator identifies unary and binary operations
type Operator int

const (
	OpAdd Operator = iota
	OpSub
	OpMul
	OpDiv
	OpPow
	OpNeg
	OpIncrement
	OpDecrement
	OpAddAssign
	OpSubAssign
	OpMulAssign
	OpDivAssign
	OpRange
	OpRangeInclusive
	OpLt
	OpGt
	OpLte
	OpGte
	OpEq
	OpNotEq
)

var operatorSymbols = [...]string{
	OpAdd:            "+",
	OpSub:            "-",
	OpMul:            "*",
	OpDiv:            "/",
	OpPow:            "**",
	OpNeg:            "-",
	OpIncrement:      "++",
	OpDecrement:      "--",
	OpAddAssign:      "+=",
	OpSubAssign:      "-=",
	OpMulAssign:      "*=",
	OpDivAssign:      "/=",
	OpRange:          "->",
	OpRangeInclusive: "=>",
	OpLt:             "<",
	OpGt:             ">",
	OpLte:            "<=",
	OpGte:            ">=",
	OpEq:             "==",
	OpNotEq:          "!=",
}

var operatorNames = [...]string{
	OpAdd:            "add",
	OpSub:            "sub",
	OpMul:            "mul",
	OpDiv:            "div",
	OpPow:            "pow",
	OpNeg:            "neg",
	OpIncrement:      "increment",
	OpDecrement:      "decrement",
	OpAddAssign:      "add_assign",
	OpSubAssign:      "sub_assign",
	OpMulAssign:      "mul_assign",
	OpDivAssign:      "div_assign",
	OpRange:          "range",
	OpRangeInclusive: "range_inclusive",
	OpLt:             "lt",
	OpGt:             "gt",
	OpLte:            "lte",
	OpGte:            "gte",
	OpEq:             "eq",
	OpNotEq:          "not_eq",
}

// String returns the operator's source spelling
func (o Operator) String() string {
	if o >= 0 && int(o) < len(operatorSymbols) {
		return operatorSymbols[o]
	}
	return "?"
}

// Name returns a stable identifier for the operator, used in exports
func (o Operator) Name() string {
	if o >= 0 && int(o) < len(operatorNames) {
		return operatorNames[o]
	}
	return "unknown"
}

// IsComparison reports whether o compares two values
func (o Operator) IsComparison() bool {
	return o >= OpLt && o <= OpNotEq
}

// Type names accepted in declarations
const (
	TypeInt     = "int"
	TypeFloat   = "float"
	TypeString  = "string"
	TypeArray   = "array"
	TypeMapping = "mapping"
)

// TypeNames lists the declarable type names
func TypeNames() []string {
	return []string{TypeInt, TypeFloat, TypeString, TypeArray, TypeMapping}
}

// IsTypeName reports whether name can start a declaration
func IsTypeName(name string) bool {
	switch name {
	case TypeInt, TypeFloat, TypeString, TypeArray, TypeMapping:
		return true
	}
	return false
}

// TypeSpec is a declared type such as int, array@int or mapping@string->int.
// Elem is only set for arrays, Key and Value only for mappings. Both are
// optional, an unparameterized collection accepts any element shape.
type TypeSpec struct {
	Loc   token.Location
	Name  string
	Elem  *TypeSpec
	Key   *TypeSpec
	Value *TypeSpec
}

// String renders the type the way it is written in source
func (t *TypeSpec) String() string {
	if t == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(t.Name)
	switch {
	case t.Elem != nil:
		b.WriteString("@")
		b.WriteString(t.Elem.String())
	case t.Key != nil:
		b.WriteString("@")
		b.WriteString(t.Key.String())
		b.WriteString("->")
		b.WriteString(t.Value.String())
	}
	return b.String()
}
