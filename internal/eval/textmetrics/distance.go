// Package textmetrics holds the pure string-comparison primitives the
// evaluator is built on. Every function is total: empty and malformed input
// degrade to well-defined scores instead of errors.
package textmetrics

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// ExactMatch reports trimmed string equality.
func ExactMatch(a, b string) bool {
	return strings.TrimSpace(a) == strings.TrimSpace(b)
}

// Distance is the classic Levenshtein distance in runes (unit-cost insert,
// delete, substitute).
func Distance(a, b string) int {
	return levenshtein.ComputeDistance(a, b)
}

// NormalizedDistance divides the edit distance by the longer rune length.
// Both-empty pairs score 0.
func NormalizedDistance(a, b string) float64 {
	if a == "" && b == "" {
		return 0.0
	}
	dist := Distance(a, b)
	denom := max(len([]rune(a)), len([]rune(b)))
	if denom == 0 {
		return float64(dist)
	}
	return float64(dist) / float64(denom)
}

// WordErrorRate is the edit distance over whitespace-normalized text,
// divided by the longer length. Both-empty pairs score 0.
func WordErrorRate(reference, hypothesis string) float64 {
	refStr := strings.Join(strings.Fields(reference), " ")
	hypStr := strings.Join(strings.Fields(hypothesis), " ")
	if refStr == "" && hypStr == "" {
		return 0.0
	}
	dist := Distance(refStr, hypStr)
	denom := max(len([]rune(refStr)), len([]rune(hypStr)), 1)
	return float64(dist) / float64(denom)
}

// CharacterErrorRate is the edit distance over whitespace-stripped character
// sequences, divided by the longer length. Both-empty pairs score 0.
func CharacterErrorRate(reference, hypothesis string) float64 {
	refChars := strings.Join(strings.Fields(reference), "")
	hypChars := strings.Join(strings.Fields(hypothesis), "")
	if refChars == "" && hypChars == "" {
		return 0.0
	}
	dist := Distance(refChars, hypChars)
	denom := max(len([]rune(refChars)), len([]rune(hypChars)), 1)
	return float64(dist) / float64(denom)
}
