// File: doc.go
// Title: why Abstract Syntax Tree Package Documentation
// Description: Package documentation for the why syntax tree.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial package documentation

/*
Package ast defines the syntax tree produced by the why parser.

Expressions implement Expr and statements implement Stmt. A parsed program
is an *ExprStmt whose X is the top level *Block. Trees are built bottom-up
by the parser and are not modified afterwards.

Consumers walk trees through the Visitor interface, which has one method
per node type, or through the helpers built on it:
  - Inspect and Children for traversal
  - Sprint for a compact s-expression dump
  - ToMap for JSON and YAML export
  - Describe for naming a node in diagnostics
*/
package ast
