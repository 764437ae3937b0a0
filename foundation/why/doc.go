// Package why is the entry point to the why language front end.
//
// Package: why
// Title: why Front End
// Description: An Engine tokenizes and parses why source into an AST.
//              The token, lexer, ast and parser subpackages hold the
//              language core; this package adds configuration, timing
//              through the structured logger and core error wrapping for
//              callers such as the command line tool.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial engine
//
// Usage:
//
//	engine := why.NewEngine(why.DefaultOptions())
//	result, err := engine.Parse(`mylist@->item { print(item); }`)
//	if err != nil {
//		if loc, ok := why.ErrorLocation(err); ok {
//			fmt.Printf("%d:%d: %s\n", loc.Line, loc.Column, why.ErrorMessage(err))
//		}
//		return err
//	}
//	fmt.Println(ast.Sprint(result.Program))
package why
