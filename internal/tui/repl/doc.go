// Package repl implements an interactive terminal REPL for why. Every
// accepted line is parsed on its own and answered with either the parsed
// statements or the token stream.
package repl
