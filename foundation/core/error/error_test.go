// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity and
//              metadata.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test suite

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

// locatedError stands in for the typed errors of the language core
type locatedError struct {
	line, col int
}

func (e *locatedError) Error() string {
	return fmt.Sprintf("line %d, column %d: boom", e.line, e.col)
}

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
	if len(err.StackTrace()) == 0 {
		t.Error("StackTrace() should not be empty")
	}
	if !strings.Contains(err.StackTrace()[0].Function, "TestNew") {
		t.Errorf("first frame = %s, want the caller of New", err.StackTrace()[0].Function)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
		wantNil bool
		wantMsg string
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:    "wrap standard error",
			err:     errors.New("original error"),
			message: "wrapper message",
			wantMsg: "wrapper message: original error",
		},
		{
			name:    "wrap structured error",
			err:     New("cache unavailable").WithCode(CodeCacheError),
			message: "check failed",
			wantMsg: "check failed: cache unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if got != nil {
					t.Errorf("Wrap() = %v, want nil", got)
				}
				return
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got.Error(), tt.wantMsg)
			}
			if got.Message() != tt.message {
				t.Errorf("Message() = %q, want %q", got.Message(), tt.message)
			}
			if !errors.Is(got, tt.err) {
				t.Error("wrapped error should match its cause with errors.Is")
			}
		})
	}
}

func TestWrapInheritsMetadata(t *testing.T) {
	inner := New("disk full").WithCode(CodeIOError).WithDetail("path", "/tmp/x")
	outer := Wrap(inner, "saving cache")

	if outer.Code() != CodeIOError {
		t.Errorf("Code() = %v, want %v", outer.Code(), CodeIOError)
	}
	if outer.Severity() != inner.Severity() {
		t.Errorf("Severity() = %v, want %v", outer.Severity(), inner.Severity())
	}
	if v, ok := outer.Detail("path"); !ok || v != "/tmp/x" {
		t.Errorf("Detail(path) = %v, %v", v, ok)
	}
}

func TestCoreErrorStaysReachable(t *testing.T) {
	core := &locatedError{line: 3, col: 7}
	err := Wrap(core, "parse failed").WithCode(CodeSyntaxError)

	var target *locatedError
	if !errors.As(err, &target) {
		t.Fatal("errors.As should find the core error")
	}
	if target.line != 3 || target.col != 7 {
		t.Errorf("core error = %+v", target)
	}
	if err.RootCause() != core {
		t.Errorf("RootCause() = %v, want core error", err.RootCause())
	}
}

func TestWithCodeSetsSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeSyntaxError, SeverityLow},
		{CodeLexicalError, SeverityLow},
		{CodeTypeMismatch, SeverityLow},
		{CodeConfigError, SeverityMedium},
		{CodeIOError, SeverityMedium},
		{CodeCacheError, SeverityHigh},
		{CodeWatchError, SeverityHigh},
		{CodeInternal, SeverityCritical},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := New("x").WithCode(tt.code).Severity(); got != tt.want {
				t.Errorf("severity for %s = %v, want %v", tt.code, got, tt.want)
			}
		})
	}

	explicit := New("x").WithSeverity(SeverityCritical).WithCode(CodeSyntaxError)
	if explicit.Severity() != SeverityCritical {
		t.Error("explicit severity should survive WithCode")
	}
}

func TestBuilderMethods(t *testing.T) {
	err := New("failed").
		WithDetail("line", 1).
		WithDetails(map[string]interface{}{"column": 2, "file": "a.why"}).
		WithContext("a.why").
		WithOperation("why.Parse")

	details := err.Details()
	if details["line"] != 1 || details["column"] != 2 || details["file"] != "a.why" {
		t.Errorf("Details() = %v", details)
	}
	details["line"] = 99
	if v, _ := err.Detail("line"); v != 1 {
		t.Error("Details() should return a copy")
	}
	if err.Context() != "a.why" {
		t.Errorf("Context() = %q", err.Context())
	}
	if err.Operation() != "why.Parse" {
		t.Errorf("Operation() = %q", err.Operation())
	}
}

func TestHasCode(t *testing.T) {
	syntax := New("bad").WithCode(CodeSyntaxError)
	wrapped := fmt.Errorf("outer: %w", syntax)
	rewrapped := Wrap(wrapped, "again").WithCode(CodeIOError)

	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"direct", syntax, CodeSyntaxError, true},
		{"through fmt wrap", wrapped, CodeSyntaxError, true},
		{"outer code", rewrapped, CodeIOError, true},
		{"inner code below other code", rewrapped, CodeSyntaxError, true},
		{"absent", syntax, CodeIOError, false},
		{"standard error", errors.New("x"), CodeSyntaxError, false},
		{"nil", nil, CodeSyntaxError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasCode(tt.err, tt.code); got != tt.want {
				t.Errorf("HasCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCodeAndSeverity(t *testing.T) {
	err := fmt.Errorf("ctx: %w", New("bad").WithCode(CodeTypeMismatch))
	if GetCode(err) != CodeTypeMismatch {
		t.Errorf("GetCode() = %v", GetCode(err))
	}
	if GetSeverity(err) != SeverityLow {
		t.Errorf("GetSeverity() = %v", GetSeverity(err))
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode() of a plain error should be unknown")
	}
	if GetSeverity(errors.New("plain")) != SeverityMedium {
		t.Error("GetSeverity() of a plain error should be medium")
	}
}

func TestString(t *testing.T) {
	err := Wrap(errors.New("root"), "outer").
		WithCode(CodeConfigError).
		WithOperation("config.Load").
		WithDetail("b", 2).
		WithDetail("a", 1)

	s := err.String()
	for _, want := range []string{
		"Error: outer",
		"Code: CONFIG_ERROR",
		"Severity: medium",
		"Operation: config.Load",
		"Details: {a=1, b=2}",
		"Cause: root",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q:\n%s", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("root"), "outer").
		WithCode(CodeCacheError).
		WithDetail("path", "cache.db")

	data, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("Marshal() failed: %v", jerr)
	}

	var decoded map[string]interface{}
	if jerr := json.Unmarshal(data, &decoded); jerr != nil {
		t.Fatalf("Unmarshal() failed: %v", jerr)
	}
	if decoded["code"] != "CACHE_ERROR" || decoded["severity"] != "high" || decoded["cause"] != "root" {
		t.Errorf("decoded = %v", decoded)
	}
	if _, ok := decoded["stack_trace"]; !ok {
		t.Error("stack_trace missing")
	}
}

func TestCodes(t *testing.T) {
	tests := []struct {
		code     Code
		category string
		exit     int
	}{
		{CodeLexicalError, "diagnostic", 1},
		{CodeSyntaxError, "diagnostic", 1},
		{CodeTypeMismatch, "diagnostic", 1},
		{CodeConfigError, "configuration", 2},
		{CodeInvalidConfig, "configuration", 2},
		{CodeIOError, "io", 2},
		{CodeNotFound, "io", 2},
		{CodeCacheError, "infrastructure", 3},
		{CodeInternal, "generic", 3},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if !tt.code.IsValid() {
				t.Error("IsValid() = false")
			}
			if got := tt.code.Category(); got != tt.category {
				t.Errorf("Category() = %q, want %q", got, tt.category)
			}
			if got := tt.code.ExitCode(); got != tt.exit {
				t.Errorf("ExitCode() = %d, want %d", got, tt.exit)
			}
		})
	}

	if Code("NOPE").IsValid() {
		t.Error("unknown code reported as valid")
	}
	if !CodeSyntaxError.IsDiagnostic() || CodeIOError.IsDiagnostic() {
		t.Error("IsDiagnostic misclassifies codes")
	}
}

func TestSeverity(t *testing.T) {
	if SeverityLow.String() != "low" || SeverityCritical.String() != "critical" || Severity(9).String() != "unknown" {
		t.Error("unexpected severity names")
	}
	if SeverityMedium.ShouldAlert() || !SeverityHigh.ShouldAlert() {
		t.Error("ShouldAlert threshold should be high")
	}
	if SeverityHigh.Level() != 2 {
		t.Errorf("Level() = %d, want 2", SeverityHigh.Level())
	}
}
