package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"boston", "bostno", 2},
		{"gumbo", "gambol", 2},
		{"a", "b", 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Distance(tt.a, tt.b), "Distance(%q, %q)", tt.a, tt.b)
	}
}

func TestMatch_SubstringDominance(t *testing.T) {
	// Containment is a perfect match regardless of length difference.
	assert.Equal(t, 1.0, Match("bos", "boston", DefaultThreshold))
	assert.Equal(t, 1.0, Match("BOS", "Boston MA", DefaultThreshold))
	assert.Equal(t, 1.0, Match("dream", "blue dream 3.5g", DefaultThreshold))
	assert.Equal(t, 1.0, Match("boston", "boston", DefaultThreshold))
	// Even a tiny substring of a long candidate scores 1.0.
	assert.Equal(t, 1.0, Match("a", "aaaaaaaaaaaaaaaaaaaaaaaa", DefaultThreshold))
}

func TestMatch_ThresholdExclusion(t *testing.T) {
	// Below-threshold similarity collapses to exactly 0, never a small positive.
	got := Match("bos", "blue dream 3.5g", DefaultThreshold)
	assert.Equal(t, 0.0, got)

	got = Match("xyz", "boston", DefaultThreshold)
	assert.Equal(t, 0.0, got)
}

func TestMatch_NearMissAboveThreshold(t *testing.T) {
	// "bostno" is not a substring match but is 2 edits from "boston":
	// 1 - 2/6 = 0.666..., above the 0.6 threshold.
	got := Match("bostno", "boston", DefaultThreshold)
	assert.InDelta(t, 1.0-2.0/6.0, got, 1e-9)
	assert.Greater(t, got, 0.0)
	assert.Less(t, got, 1.0)
}

func TestMatch_EmptyInputs(t *testing.T) {
	assert.Equal(t, 0.0, Match("", "boston", DefaultThreshold))
	assert.Equal(t, 0.0, Match("boston", "", DefaultThreshold))
	assert.Equal(t, 0.0, Match("", "", DefaultThreshold))
}

func TestMatch_CaseInsensitive(t *testing.T) {
	assert.Equal(t, Match("bostno", "BOSTON", DefaultThreshold), Match("BOSTNO", "boston", DefaultThreshold))
}
