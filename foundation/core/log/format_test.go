// File: format_test.go
// Title: Formatter Tests
// Description: Tests for the text, JSON and console formatters.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test suite

package log

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	mdwerror "github.com/msto63/why/foundation/core/error"
)

func testEntry() *Entry {
	e := NewEntry(LevelWarn, "slow parse")
	e.Timestamp = time.Date(2026, 10, 19, 12, 30, 45, 0, time.UTC)
	e.Logger = "parser"
	e.RunID = "run-1"
	e.Fields = Fields{"tokens": 12, "file": "a.why"}
	return e
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{"console", FormatConsole, false},
		{"", FormatText, false},
		{"logfmt", FormatText, true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, %v", tt.input, got, err)
		}
		if err == nil && got.String() != strings.ToLower(tt.input) && tt.input != "" {
			t.Errorf("String() = %q", got.String())
		}
	}
}

func TestTextFormatter(t *testing.T) {
	out, err := NewTextFormatter().Format(testEntry())
	if err != nil {
		t.Fatal(err)
	}
	want := "12:30:45 [WRN] {parser} (run=run-1) slow parse file=a.why tokens=12\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestTextFormatterErrorAndDuration(t *testing.T) {
	e := testEntry()
	e.Fields = nil
	e.Error = errors.New("boom")
	e.Duration = 1500 * time.Millisecond

	f := NewTextFormatter()
	f.DisableTimestamp = true
	out, _ := f.Format(e)
	want := "[WRN] {parser} (run=run-1) slow parse error=\"boom\" duration=1.5s\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestJSONFormatter(t *testing.T) {
	e := testEntry()
	e.Error = mdwerror.New("bad token").WithCode(mdwerror.CodeLexicalError)
	e.Duration = 2 * time.Millisecond

	out, err := NewJSONFormatter().Format(e)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(string(out), "\n") {
		t.Error("JSON line should end with a newline")
	}

	var data map[string]interface{}
	if err := json.Unmarshal(out, &data); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	checks := map[string]interface{}{
		"level":       "warn",
		"message":     "slow parse",
		"logger":      "parser",
		"run_id":      "run-1",
		"file":        "a.why",
		"tokens":      float64(12),
		"error":       "bad token",
		"duration_ms": float64(2),
		"timestamp":   "2026-10-19T12:30:45Z",
	}
	for k, want := range checks {
		if data[k] != want {
			t.Errorf("%s = %v, want %v", k, data[k], want)
		}
	}
	details, ok := data["error_details"].(map[string]interface{})
	if !ok || details["code"] != "LEXICAL_ERROR" {
		t.Errorf("error_details = %v", data["error_details"])
	}
}

func TestConsoleFormatter(t *testing.T) {
	f := NewConsoleFormatter()
	out, _ := f.Format(testEntry())
	if !strings.HasPrefix(string(out), LevelWarn.Color()) || !strings.HasSuffix(string(out), "\033[0m\n") {
		t.Errorf("Format() = %q, want colored line", out)
	}

	f.DisableColors = true
	plain, _ := f.Format(testEntry())
	text, _ := NewTextFormatter().Format(testEntry())
	if string(plain) != string(text) {
		t.Errorf("uncolored console = %q, want %q", plain, text)
	}
}
