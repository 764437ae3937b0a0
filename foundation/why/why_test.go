// File: why_test.go
// Title: Engine Tests
// Description: Tests for the engine, core error wrapping and source
//              loading.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test suite

package why

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	mdwerror "github.com/msto63/why/foundation/core/error"
	mdwlog "github.com/msto63/why/foundation/core/log"
	"github.com/msto63/why/foundation/why/ast"
	"github.com/msto63/why/foundation/why/lexer"
	"github.com/msto63/why/foundation/why/parser"
	"github.com/msto63/why/foundation/why/token"
)

func TestEngineParse(t *testing.T) {
	result, err := Parse("int x = 1;\nmylist@->item { print(item); }\n")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if result.Statements != 2 || len(result.Program.Stmts) != 2 {
		t.Errorf("Statements = %d", result.Statements)
	}
	if last := result.Tokens[len(result.Tokens)-1]; last.Kind != token.EOF {
		t.Errorf("last token = %v, want EOF", last)
	}
	if got := ast.Describe(result.Program.Stmts[1]); got != "for-each loop" {
		t.Errorf("second statement is %s", got)
	}
	if result.Duration <= 0 {
		t.Error("Duration should be positive")
	}
}

func TestEngineErrors(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		code   mdwerror.Code
		kind   string
		line   int
		column int
		core   error
	}{
		{"lexical", "x = 'abc;", mdwerror.CodeLexicalError, "UnterminatedString", 1, 5, lexer.ErrUnterminatedString},
		{"syntax", "x = ;", mdwerror.CodeSyntaxError, "UnexpectedToken", 1, 5, parser.ErrUnexpectedToken},
		{"type mismatch", "int x = 'a';", mdwerror.CodeTypeMismatch, "TypeMismatch", 1, 9, parser.ErrTypeMismatch},
		{"multi line", "x = 1;\ny = (2;", mdwerror.CodeSyntaxError, "UnexpectedToken", 2, 7, parser.ErrUnexpectedToken},
	}

	engine := NewEngine(DefaultOptions())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.Parse(tt.src)
			if err == nil {
				t.Fatal("Parse() expected error")
			}
			if !errors.Is(err, tt.core) {
				t.Errorf("core error not reachable: %v", err)
			}
			if got := mdwerror.GetCode(err); got != tt.code {
				t.Errorf("code = %v, want %v", got, tt.code)
			}
			if mdwerror.GetSeverity(err) != mdwerror.SeverityLow {
				t.Errorf("severity = %v, want low", mdwerror.GetSeverity(err))
			}

			var coreErr *mdwerror.Error
			if !errors.As(err, &coreErr) {
				t.Fatal("not a core error")
			}
			if v, _ := coreErr.Detail("kind"); v != tt.kind {
				t.Errorf("kind = %v, want %s", v, tt.kind)
			}
			if v, _ := coreErr.Detail("line"); v != tt.line {
				t.Errorf("line = %v, want %d", v, tt.line)
			}
			if v, _ := coreErr.Detail("column"); v != tt.column {
				t.Errorf("column = %v, want %d", v, tt.column)
			}

			loc, ok := ErrorLocation(err)
			if !ok || loc.Line != tt.line || loc.Column != tt.column {
				t.Errorf("ErrorLocation() = %v, %v", loc, ok)
			}
			if msg := ErrorMessage(err); strings.HasPrefix(msg, "line ") || msg == "" {
				t.Errorf("ErrorMessage() = %q, want bare message", msg)
			}
		})
	}
}

func TestEngineEmptySource(t *testing.T) {
	err := NewEngine(DefaultOptions()).Check("")
	if !errors.Is(err, lexer.ErrEmptySource) {
		t.Fatalf("Check(\"\") = %v", err)
	}
	if _, ok := ErrorLocation(err); ok {
		t.Error("empty source error should carry no location")
	}
	if !mdwerror.HasCode(err, mdwerror.CodeLexicalError) {
		t.Error("empty source should be a lexical error")
	}
}

func TestEngineOptions(t *testing.T) {
	strict := DefaultOptions()
	strict.Lexer.Strict = true
	if err := NewEngine(strict).Check("x = 1 ` 2;"); !errors.Is(err, lexer.ErrUnexpectedCharacter) {
		t.Errorf("strict Check() = %v", err)
	}
	if err := NewEngine(DefaultOptions()).Check("x = 1 ` 2;"); err == nil || errors.Is(err, lexer.ErrUnexpectedCharacter) {
		t.Errorf("lenient Check() = %v", err)
	}

	shallow := DefaultOptions()
	shallow.Parser.MaxDepth = 4
	if err := NewEngine(shallow).Check("x = ((((((1))))));"); !errors.Is(err, parser.ErrNestingTooDeep) {
		t.Errorf("shallow Check() = %v", err)
	}
}

func TestEngineLogsTimings(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Logger = mdwlog.NewWithConfig(mdwlog.Config{Level: mdwlog.LevelDebug, Output: &buf})

	engine := NewEngine(opts)
	if _, err := engine.Parse("x = 1;"); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "tokenize completed") || !strings.Contains(out, "parse completed") {
		t.Errorf("log output = %q", out)
	}

	buf.Reset()
	_ = engine.Check("x = ;")
	if !strings.Contains(buf.String(), "parse failed") {
		t.Errorf("log output = %q", buf.String())
	}

	buf.Reset()
	_, _ = engine.Tokenize("x = 'é")
	if !strings.Contains(buf.String(), "chars=6") {
		t.Errorf("chars should count characters: %q", buf.String())
	}
}

func TestEngineDiagnosticsStayQuietAtWarn(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Logger = mdwlog.NewWithConfig(mdwlog.Config{Level: mdwlog.LevelWarn, Output: &buf})
	engine := NewEngine(opts)

	for _, src := range []string{"int x = 1.5;", "x = ;", "x = 'abc;"} {
		if err := engine.Check(src); err == nil {
			t.Fatalf("Check(%q) succeeded, want error", src)
		}
	}
	if buf.Len() != 0 {
		t.Errorf("diagnostics logged at warn level: %q", buf.String())
	}
}

func TestParseTokens(t *testing.T) {
	engine := NewEngine(DefaultOptions())
	tokens, err := engine.Tokenize("x = 2 ** 3;")
	if err != nil {
		t.Fatal(err)
	}
	result, err := engine.ParseTokens(tokens)
	if err != nil {
		t.Fatal(err)
	}
	if got := ast.Sprint(result.Program.Stmts[0]); !strings.Contains(got, "(pow 2 3)") {
		t.Errorf("Sprint() = %s", got)
	}
}

func TestLoadSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.why")
	if err := os.WriteFile(path, []byte("x = 1;"), 0644); err != nil {
		t.Fatal(err)
	}

	src, err := LoadSource(path, nil)
	if err != nil || src != "x = 1;" {
		t.Errorf("LoadSource(file) = %q, %v", src, err)
	}

	src, err = LoadSource("-", strings.NewReader("y = 2;"))
	if err != nil || src != "y = 2;" {
		t.Errorf("LoadSource(-) = %q, %v", src, err)
	}

	_, err = LoadSource(filepath.Join(t.TempDir(), "missing.why"), nil)
	if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("missing file error = %v", err)
	}
}
