package algorithms

import (
	"strings"
	"unicode"
)

// NormalizeLocation lowercases an address and replaces every character that
// is not a letter, digit or whitespace with a space. Idempotent:
// NormalizeLocation(NormalizeLocation(x)) == NormalizeLocation(x).
func NormalizeLocation(address string) string {
	lowered := strings.ToLower(address)
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, lowered)
	return strings.TrimSpace(cleaned)
}

// LocationSimilarity returns the Jaccard index of the whitespace token sets
// of two addresses, after normalization. Symmetric by construction; 0 if
// either side normalizes to an empty string.
func LocationSimilarity(a, b string) float64 {
	na := NormalizeLocation(a)
	nb := NormalizeLocation(b)
	if na == "" || nb == "" {
		return 0
	}

	setA := tokenSet(na)
	setB := tokenSet(nb)

	common := 0
	for token := range setA {
		if _, ok := setB[token]; ok {
			common++
		}
	}

	union := len(setA) + len(setB) - common
	if union == 0 {
		return 0
	}
	return float64(common) / float64(union)
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, token := range strings.Fields(s) {
		set[token] = struct{}{}
	}
	return set
}
