package algorithms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLocation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercases", "Springfield", "springfield"},
		{"strips punctuation", "123 Main St., Springfield!", "123 main st   springfield"},
		{"trims whitespace", "  Springfield  ", "springfield"},
		{"empty input", "", ""},
		{"only punctuation", "!!!", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizeLocation(tc.input))
		})
	}
}

func TestNormalizeLocationIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"123 Main St., Springfield", "  Oak Ave  ", "", "A-B-C"}
	for _, input := range inputs {
		once := NormalizeLocation(input)
		assert.Equal(t, once, NormalizeLocation(once), "normalize should be idempotent for %q", input)
	}
}

func TestLocationSimilarity(t *testing.T) {
	t.Parallel()

	t.Run("shared street and city", func(t *testing.T) {
		// Token sets {123,main,st,springfield} and {456,main,st,springfield}:
		// 3 common tokens out of a union of 5.
		got := LocationSimilarity("123 Main St Springfield", "456 Main St Springfield")
		assert.InDelta(t, 0.6, got, 1e-9)
	})

	t.Run("identical addresses", func(t *testing.T) {
		got := LocationSimilarity("12 Oak Ave", "12 Oak Ave")
		assert.InDelta(t, 1.0, got, 1e-9)
	})

	t.Run("no overlap", func(t *testing.T) {
		assert.Zero(t, LocationSimilarity("Springfield", "Shelbyville"))
	})

	t.Run("empty side returns zero", func(t *testing.T) {
		assert.Zero(t, LocationSimilarity("", "Springfield"))
		assert.Zero(t, LocationSimilarity("Springfield", ""))
		assert.Zero(t, LocationSimilarity("!!!", "Springfield"))
	})
}

func TestLocationSimilaritySymmetric(t *testing.T) {
	t.Parallel()

	pairs := [][2]string{
		{"123 Main St Springfield", "456 Main St Springfield"},
		{"Oak Ave", "Oak Ave, Shelbyville"},
		{"", "Springfield"},
		{"a b c", "c d e"},
	}
	for _, pair := range pairs {
		assert.Equal(t,
			LocationSimilarity(pair[0], pair[1]),
			LocationSimilarity(pair[1], pair[0]),
			"similarity must be symmetric for %q / %q", pair[0], pair[1],
		)
	}
}

func TestLocationSimilaritySelfPositive(t *testing.T) {
	t.Parallel()

	assert.Greater(t, LocationSimilarity("123 Main St", "123 Main St"), 0.0)
}
