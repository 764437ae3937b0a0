// File: why.go
// Title: why Front End Engine
// Description: Ties the lexer and the parser together behind one Engine.
//              Core lexer and parser errors are wrapped into core errors
//              carrying a code, the source location and the operation, and
//              each phase is timed through the logger.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Engine with Tokenize, Parse and Check
// - 2026-10-19 v0.1.0: Source diagnostics logged at debug level

package why

import (
	"errors"
	"io"
	"os"
	"time"
	"unicode/utf8"

	mdwerror "github.com/msto63/why/foundation/core/error"
	mdwlog "github.com/msto63/why/foundation/core/log"
	"github.com/msto63/why/foundation/why/ast"
	"github.com/msto63/why/foundation/why/lexer"
	"github.com/msto63/why/foundation/why/parser"
	"github.com/msto63/why/foundation/why/token"
)

// Options configures an Engine
type Options struct {
	// Logger receives phase timings; nil discards them
	Logger *mdwlog.Logger
	Lexer  lexer.Options
	Parser parser.Options
}

// DefaultOptions returns the default lexer and parser configuration
func DefaultOptions() Options {
	return Options{
		Lexer:  lexer.DefaultOptions(),
		Parser: parser.DefaultOptions(),
	}
}

// Engine runs the front end. It is safe for concurrent use.
type Engine struct {
	opts   Options
	parser *parser.Parser
	logger *mdwlog.Logger
}

// Result is a successfully parsed program
type Result struct {
	Tokens []token.Token
	// Program is the top level block
	Program *ast.Block
	// Statements counts the top level statements
	Statements int
	// Duration covers tokenizing and parsing
	Duration time.Duration
}

// NewEngine creates an engine
func NewEngine(opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = mdwlog.Discard()
	}
	if opts.Parser.MaxDepth == 0 {
		opts.Parser.MaxDepth = parser.DefaultMaxDepth
	}
	return &Engine{
		opts:   opts,
		parser: parser.New(opts.Parser),
		logger: logger.WithName("why"),
	}
}

// Options returns the options the engine was created with
func (e *Engine) Options() Options {
	return e.opts
}

// Tokenize lexes source. Errors carry CodeLexicalError.
func (e *Engine) Tokenize(source string) ([]token.Token, error) {
	timer := e.logger.StartTimer("tokenize").WithField("chars", utf8.RuneCountInString(source))

	tokens, err := lexer.New(source, e.opts.Lexer).Tokenize()
	if err != nil {
		stopFailed(timer, err)
		return nil, wrapCoreError(err, "why.Tokenize")
	}

	timer.WithField("tokens", len(tokens)).Stop()
	return tokens, nil
}

// Parse tokenizes and parses source. Errors carry CodeLexicalError,
// CodeSyntaxError or CodeTypeMismatch.
func (e *Engine) Parse(source string) (*Result, error) {
	start := time.Now()

	tokens, err := e.Tokenize(source)
	if err != nil {
		return nil, err
	}
	return e.parseTokens(tokens, start)
}

// ParseTokens parses an already tokenized program
func (e *Engine) ParseTokens(tokens []token.Token) (*Result, error) {
	return e.parseTokens(tokens, time.Now())
}

func (e *Engine) parseTokens(tokens []token.Token, start time.Time) (*Result, error) {
	timer := e.logger.StartTimer("parse").WithField("tokens", len(tokens))

	stmt, err := e.parser.Parse(tokens)
	if err != nil {
		stopFailed(timer, err)
		return nil, wrapCoreError(err, "why.Parse")
	}

	program, _ := parser.Program(stmt)
	timer.WithField("statements", len(program.Stmts)).Stop()

	return &Result{
		Tokens:     tokens,
		Program:    program,
		Statements: len(program.Stmts),
		Duration:   time.Since(start),
	}, nil
}

// Check reports whether source is a valid program
func (e *Engine) Check(source string) error {
	_, err := e.Parse(source)
	return err
}

// Parse parses source with a default engine
func Parse(source string) (*Result, error) {
	return NewEngine(DefaultOptions()).Parse(source)
}

// stopFailed ends a phase timer. Lexer and parser errors describe the
// checked source and are logged at debug level, anything else is an
// engine failure.
func stopFailed(timer *mdwlog.Timer, err error) {
	var lexErr *lexer.Error
	var parseErr *parser.Error
	if errors.As(err, &lexErr) || errors.As(err, &parseErr) {
		timer.StopWithErrorAt(mdwlog.LevelDebug, err)
		return
	}
	timer.StopWithError(err)
}

// wrapCoreError turns a lexer or parser error into a core error with
// code, location details and operation
func wrapCoreError(err error, operation string) error {
	var (
		code    = mdwerror.CodeInternal
		message = "unexpected failure"
		loc     token.Location
		kind    string
	)

	var lexErr *lexer.Error
	var parseErr *parser.Error
	switch {
	case errors.As(err, &lexErr):
		code, message = mdwerror.CodeLexicalError, "lexical error"
		loc, kind = lexErr.Location, lexErr.Kind.String()
	case errors.As(err, &parseErr):
		code, message = mdwerror.CodeSyntaxError, "syntax error"
		if parseErr.Kind == parser.TypeMismatch {
			code, message = mdwerror.CodeTypeMismatch, "type mismatch"
		}
		loc, kind = parseErr.Location, parseErr.Kind.String()
	}

	wrapped := mdwerror.Wrap(err, message).
		WithCode(code).
		WithOperation(operation)
	if kind != "" {
		wrapped = wrapped.WithDetail("kind", kind)
	}
	if loc.IsValid() {
		wrapped = wrapped.
			WithDetail("line", loc.Line).
			WithDetail("column", loc.Column)
	}
	return wrapped
}

// ErrorLocation returns the source location carried by a lexer or parser
// error anywhere in err's chain
func ErrorLocation(err error) (token.Location, bool) {
	var lexErr *lexer.Error
	if errors.As(err, &lexErr) {
		return lexErr.Location, lexErr.Location.IsValid()
	}
	var parseErr *parser.Error
	if errors.As(err, &parseErr) {
		return parseErr.Location, parseErr.Location.IsValid()
	}
	return token.Location{}, false
}

// ErrorMessage returns the message of the lexer or parser error in err's
// chain without location prefix, or err.Error() for other errors
func ErrorMessage(err error) string {
	var lexErr *lexer.Error
	if errors.As(err, &lexErr) {
		return lexErr.Message
	}
	var parseErr *parser.Error
	if errors.As(err, &parseErr) {
		return parseErr.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

// LoadSource reads a program from path, or from stdin when path is "-"
func LoadSource(path string, stdin io.Reader) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		if stdin == nil {
			stdin = os.Stdin
		}
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		code := mdwerror.CodeIOError
		if errors.Is(err, os.ErrNotExist) {
			code = mdwerror.CodeNotFound
		}
		return "", mdwerror.Wrap(err, "failed to read source").
			WithCode(code).
			WithOperation("why.LoadSource").
			WithContext(path)
	}
	return string(data), nil
}
