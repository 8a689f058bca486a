// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package fold normalizes free text for case- and accent-insensitive matching.
//
// # Usage
//
// The in-memory store uses it to emulate the ILIKE / $regex 'i' search of the
// database backends, so "cafe" finds "Café Tour".
package fold

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// chain builds a fresh transformer per call because transformers are stateful.
func chain() transform.Transformer {
	return transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
}

// String returns the folded form of s.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD (decomposes accented chars: é → e + combining acute).
// 2. Removes combining marks (accents) and recomposes.
// 3. Applies Unicode case folding.
// 4. Collapses runs of whitespace into single spaces.
func String(s string) string {
	result, _, err := transform.String(chain(), s)
	if err != nil {
		result = s
	}

	result = cases.Fold().String(result)

	return strings.Join(strings.Fields(result), " ")
}

// Contains reports whether needle occurs in haystack after folding both.
// An empty needle matches everything.
func Contains(haystack, needle string) bool {
	folded := String(needle)
	if folded == "" {
		return true
	}
	return strings.Contains(String(haystack), folded)
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
