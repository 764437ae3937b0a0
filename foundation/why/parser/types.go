// File: types.go
// Title: why Declaration Types
// Description: Parses declared types such as int, array@float and
//              mapping@string->int, and checks that literal initializers
//              have the shape the declared type requires.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial type spec parsing and shape checks

package parser

import (
	"github.com/msto63/why/foundation/why/ast"
	"github.com/msto63/why/foundation/why/token"
)

// parseTypeSpec parses `name`, `array@T` or `mapping@K->V`
func parseTypeSpec(c *cursor) (*ast.TypeSpec, error) {
	if err := c.enter(); err != nil {
		return nil, err
	}
	defer c.leave()

	tok := c.peek()
	if !tok.Is(token.Ident) || !ast.IsTypeName(tok.Text) {
		return nil, errUnexpected(tok, "type name")
	}
	c.advance()
	spec := &ast.TypeSpec{Loc: tok.Location, Name: tok.Text}

	if tok.Text != ast.TypeArray && tok.Text != ast.TypeMapping {
		return spec, nil
	}
	if _, ok := c.accept(token.At); !ok {
		return spec, nil
	}

	if tok.Text == ast.TypeArray {
		elem, err := parseTypeSpec(c)
		if err != nil {
			return nil, err
		}
		spec.Elem = elem
		return spec, nil
	}

	key, err := parseTypeSpec(c)
	if err != nil {
		return nil, err
	}
	if _, err := c.expect(token.SmallRArrow); err != nil {
		return nil, err
	}
	value, err := parseTypeSpec(c)
	if err != nil {
		return nil, err
	}
	spec.Key = key
	spec.Value = value
	return spec, nil
}

// checkShape verifies literal initializers against spec. Expressions that
// are not literals (identifiers, calls, arithmetic) are accepted as is.
// On mismatch it returns the offending expression and the type expected
// at its position.
func checkShape(spec *ast.TypeSpec, value ast.Expr) (ast.Expr, *ast.TypeSpec, bool) {
	if spec == nil || !isLiteral(value) {
		return nil, nil, true
	}

	switch spec.Name {
	case ast.TypeInt:
		if lit := unwrapNegative(value); isKind[*ast.IntLit](lit) {
			return nil, nil, true
		}

	case ast.TypeFloat:
		if lit := unwrapNegative(value); isKind[*ast.FloatLit](lit) {
			return nil, nil, true
		}

	case ast.TypeString:
		if isKind[*ast.StringLit](value) {
			return nil, nil, true
		}

	case ast.TypeArray:
		arr, ok := value.(*ast.ArrayLit)
		if !ok {
			break
		}
		for _, elem := range arr.Elems {
			if bad, want, ok := checkShape(spec.Elem, elem); !ok {
				return bad, want, false
			}
		}
		return nil, nil, true

	case ast.TypeMapping:
		m, ok := value.(*ast.MappingLit)
		if !ok {
			break
		}
		for _, entry := range m.Entries {
			if bad, want, ok := checkShape(spec.Key, entry.Key); !ok {
				return bad, want, false
			}
			if bad, want, ok := checkShape(spec.Value, entry.Value); !ok {
				return bad, want, false
			}
		}
		return nil, nil, true
	}

	return value, spec, false
}

// isLiteral reports whether e is written as a literal, counting negated
// numbers as literals
func isLiteral(e ast.Expr) bool {
	switch unwrapNegative(e).(type) {
	case *ast.IntLit, *ast.FloatLit, *ast.StringLit, *ast.ArrayLit, *ast.MappingLit:
		return true
	}
	return false
}

// unwrapNegative strips a prefix minus from a numeric literal
func unwrapNegative(e ast.Expr) ast.Expr {
	u, ok := e.(*ast.Unary)
	if !ok || u.Op != ast.OpNeg || u.Postfix {
		return e
	}
	switch u.X.(type) {
	case *ast.IntLit, *ast.FloatLit:
		return u.X
	}
	return e
}

func isKind[T ast.Expr](e ast.Expr) bool {
	_, ok := e.(T)
	return ok
}
