// File: stringx.go
// Title: String Utilities
// Description: Small string helpers used across the why toolchain:
//              blank checks, rune safe truncation and padding, and edit
//              distance suggestions for "did you mean" hints.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial helpers with Levenshtein suggestions

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// IsBlank reports whether s is empty or only whitespace
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// Truncate shortens s to at most maxLen runes, ending with ellipsis when
// something was cut
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-ellipsisLen]) + ellipsis
}

// PadRight pads s with pad up to width runes
func PadRight(s string, width int, pad rune) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(string(pad), width-n)
}

// Distance returns the Levenshtein distance between a and b, counting a
// substitution as one edit
func Distance(a, b string) int {
	return levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptionsWithSub)
}

// Closest returns the candidate nearest to s, provided its distance is at
// most maxDist. Ties go to the earlier candidate. An exact match is not a
// suggestion, so it yields false.
func Closest(s string, candidates []string, maxDist int) (string, bool) {
	best, bestDist := "", maxDist+1
	for _, c := range candidates {
		if c == s {
			return "", false
		}
		if d := Distance(s, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, best != ""
}
