// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package score

import (
	"strings"
	"testing"
)

// plainText builds a one-sentence document of exactly n words.
func plainText(n int) string {
	return strings.Repeat("filler ", n-1) + "filler."
}

func TestSEOWordCountBands(t *testing.T) {
	tests := []struct {
		words int
		want  int
	}{
		{100, 50},
		{160, 60},
		{310, 65},
		{510, 70},
		{810, 75},
	}
	for _, tt := range tests {
		if got := SEO(plainText(tt.words), nil); got != tt.want {
			t.Errorf("SEO(%d words) = %d, want %d", tt.words, got, tt.want)
		}
	}
}

func TestSEOEmptyText(t *testing.T) {
	if got := SEO("", nil); got != 50 {
		t.Errorf("SEO(empty) = %d, want 50", got)
	}
}

func TestSEOStructureBonuses(t *testing.T) {
	// Two headings (+10) and two paragraph breaks (+3) on a 5-word text.
	text := "# Title\n\n## Section\n\nBody text here."
	if got := SEO(text, nil); got != 63 {
		t.Errorf("SEO = %d, want 63", got)
	}

	oneHeading := "# Title\nBody text here."
	if got := SEO(oneHeading, nil); got != 55 {
		t.Errorf("SEO(one heading) = %d, want 55", got)
	}
}

func TestSEOKeywordDensity(t *testing.T) {
	// 2 occurrences in 100 words: density 2%, in the optimal band.
	dense := strings.Repeat("filler ", 98) + "golang golang."
	if got := SEO(dense, []string{"golang"}); got != 58 {
		t.Errorf("SEO(dense) = %d, want 58", got)
	}

	// 1 occurrence in 201 words: density below 1%, presence bonus only.
	sparse := strings.Repeat("filler ", 200) + "golang."
	if got := SEO(sparse, []string{"golang"}); got != 64 {
		t.Errorf("SEO(sparse) = %d, want 64", got)
	}

	// Absent keyword earns nothing.
	if got := SEO(plainText(100), []string{"golang"}); got != 50 {
		t.Errorf("SEO(absent keyword) = %d, want 50", got)
	}
}

func TestSEOKeywordMatchingIsWholePhrase(t *testing.T) {
	text := strings.Repeat("golanguage ", 99) + "done."
	if got := SEO(text, []string{"golang"}); got != 50 {
		t.Errorf("SEO = %d, substring matched as keyword", got)
	}
}

func TestSEOReadabilityBonus(t *testing.T) {
	// One 20-word sentence: mean in the 15-25 band.
	if got := SEO(plainText(20), nil); got != 55 {
		t.Errorf("SEO(20-word sentence) = %d, want 55", got)
	}
}

func TestUniqueness(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"empty", "", 100},
		{
			"all distinct",
			"The quick brown fox jumps high. A lazy dog sleeps in the sun. Nobody watches the garden today.",
			100,
		},
		{
			"one of three duplicated",
			"The quick brown fox jumps high. The quick brown fox jumps high. A completely different sentence appears here.",
			66.67,
		},
		{
			"all duplicated",
			"The quick brown fox jumps high. The quick brown fox jumps high. The quick brown fox jumps high. The quick brown fox jumps high.",
			25,
		},
		{
			"short sentences never count as distinct",
			"Yes. No. Maybe so.",
			0,
		},
		{
			"punctuation and case ignored",
			"Hello there, general speaker! hello THERE general speaker. Another long sentence sits here quietly.",
			66.67,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Uniqueness(tt.text); got != tt.want {
				t.Errorf("Uniqueness(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
