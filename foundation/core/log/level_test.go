// File: level_test.go
// Title: Level Tests
// Description: Tests for level names, ordering and parsing.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test suite

package log

import (
	"errors"
	"testing"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		name  string
		short string
	}{
		{LevelTrace, "trace", "TRC"},
		{LevelDebug, "debug", "DBG"},
		{LevelInfo, "info", "INF"},
		{LevelWarn, "warn", "WRN"},
		{LevelError, "error", "ERR"},
		{LevelFatal, "fatal", "FTL"},
		{Level(42), "unknown", "UNK"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.name {
			t.Errorf("String() = %q, want %q", got, tt.name)
		}
		if got := tt.level.ShortString(); got != tt.short {
			t.Errorf("ShortString() = %q, want %q", got, tt.short)
		}
	}
}

func TestLevelOrdering(t *testing.T) {
	levels := AllLevels()
	for i := 1; i < len(levels); i++ {
		if levels[i] <= levels[i-1] {
			t.Errorf("level %v not above %v", levels[i], levels[i-1])
		}
	}
	if !LevelError.IsEnabled(LevelWarn) || LevelDebug.IsEnabled(LevelInfo) {
		t.Error("IsEnabled misorders levels")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"DEBUG", LevelDebug, false},
		{" info ", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"err", LevelError, false},
		{"fatal", LevelFatal, false},
		{"loud", LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}

	_, err := ParseLevel("loud")
	var perr *ParseError
	if !errors.As(err, &perr) || perr.Type != "level" || perr.Input != "loud" {
		t.Errorf("error = %#v", err)
	}
	if err.Error() != `invalid log level: "loud"` {
		t.Errorf("Error() = %q", err.Error())
	}
}
