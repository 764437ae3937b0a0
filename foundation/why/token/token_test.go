// File: token_test.go
// Title: why Token Tests
// Description: Tests for token kinds, keyword lookup and locations.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial tests

package token

import "testing"

func TestLookupIdent(t *testing.T) {
	tests := []struct {
		text string
		want Kind
	}{
		{"if", If},
		{"is", Is},
		{"in", In},
		{"for", For},
		{"let", Let},
		{"return", Return},
		{"break", Break},
		{"else", Else},
		{"const", Const},
		{"while", While},
		{"int", Ident},
		{"true", Ident},
		{"If", Ident},
		{"iff", Ident},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := LookupIdent(tt.text); got != tt.want {
				t.Errorf("LookupIdent(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestKeywords(t *testing.T) {
	words := Keywords()
	if len(words) != 10 {
		t.Fatalf("Expected 10 keywords, got %d: %v", len(words), words)
	}
	for _, w := range words {
		if !LookupIdent(w).IsKeyword() {
			t.Errorf("Expected %q to be a keyword", w)
		}
	}
	if Ident.IsKeyword() || EOF.IsKeyword() {
		t.Error("Ident and EOF must not be keywords")
	}
}

func TestKindString(t *testing.T) {
	tests := map[Kind]string{
		EOF:         "end of input",
		SmallRArrow: "->",
		LargeRArrow: "=>",
		StarStar:    "**",
		NotEq:       "!=",
		Percent:     "%",
		While:       "while",
		NumLiteral:  "number",
	}
	for kind, want := range tests {
		if got := kind.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(kind), got, want)
		}
	}
	if got := Kind(9999).String(); got != "Kind(9999)" {
		t.Errorf("unknown kind rendered as %q", got)
	}
}

func TestLocation(t *testing.T) {
	start := Start()
	if start != (Location{Line: 1, Column: 1}) {
		t.Fatalf("Start() = %+v", start)
	}
	if !start.IsValid() {
		t.Error("Start() should be valid")
	}
	if (Location{}).IsValid() {
		t.Error("zero location should not be valid")
	}

	a := Location{Line: 1, Column: 9}
	b := Location{Line: 2, Column: 1}
	if !a.Before(b) || b.Before(a) || a.Before(a) {
		t.Error("Before ordering is wrong")
	}
	if got := a.String(); got != "line 1, column 9" {
		t.Errorf("String() = %q", got)
	}
}

func TestTokenLexemeAndDescribe(t *testing.T) {
	str := Token{Kind: StrLiteral, Text: `it\'s`, Quote: '\'', Location: Start()}
	if got := str.Lexeme(); got != `'it\'s'` {
		t.Errorf("Lexeme() = %q", got)
	}

	tests := []struct {
		tok  Token
		want string
	}{
		{New(EOF, "", Start()), "end of input"},
		{New(Ident, "x", Start()), `identifier "x"`},
		{New(NumLiteral, "69", Start()), "number 69"},
		{str, `string 'it\'s'`},
		{New(Semi, ";", Start()), "';'"},
		{New(While, "while", Start()), "keyword 'while'"},
	}
	for _, tt := range tests {
		if got := tt.tok.Describe(); got != tt.want {
			t.Errorf("Describe() = %q, want %q", got, tt.want)
		}
	}
}

func TestTokenListing(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{New(Ident, "x", Location{Line: 1, Column: 5}), "1:5 identifier x"},
		{Token{Kind: StrLiteral, Text: "hi", Quote: '"', Location: Start()}, `1:1 string "hi"`},
		{New(StarStar, "**", Location{Line: 3, Column: 2}), "3:2 **"},
		{New(EOF, "", Location{Line: 2, Column: 1}), "2:1 end of input"},
	}
	for _, tt := range tests {
		if got := tt.tok.Listing(); got != tt.want {
			t.Errorf("Listing() = %q, want %q", got, tt.want)
		}
	}
}
