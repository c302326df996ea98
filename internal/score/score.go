// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package score computes the heuristic quality scores for finished text.
// Both scores are pure functions of the text (plus keywords for SEO);
// equal input always yields equal output.
package score

import (
	"math"
	"regexp"
	"strings"

	"github.com/Jack999Lab/content-api/internal/textutil"
)

// minUniquenessTokens is the normalized-sentence length below which a
// sentence is too short to judge for duplication.
const minUniquenessTokens = 3

// SEO rates text 0–100 with additive banded rules: a base of 50 plus
// bonuses for word count, headings, paragraph breaks, keyword density,
// and readability. Holding other factors fixed the score is
// non-decreasing in word count.
func SEO(text string, keywords []string) int {
	score := 50
	wordCount := textutil.CountWords(text)

	switch {
	case wordCount > 800:
		score += 25
	case wordCount > 500:
		score += 20
	case wordCount > 300:
		score += 15
	case wordCount > 150:
		score += 10
	}

	headings := countHeadingLines(text)
	switch {
	case headings >= 2:
		score += 10
	case headings == 1:
		score += 5
	}

	breaks := strings.Count(text, "\n\n")
	switch {
	case breaks >= 3:
		score += 5
	case breaks >= 1:
		score += 3
	}

	score += keywordBonus(text, keywords, wordCount)

	if mean := meanSentenceLength(text); mean >= 15 && mean <= 25 {
		score += 5
	}

	return clamp(score, 0, 100)
}

// keywordBonus awards each keyword a tiered bonus: the full bonus when its
// density (occurrences per hundred words) sits in the optimal 1–3% band,
// a smaller one for any nonzero presence outside it.
func keywordBonus(text string, keywords []string, wordCount int) int {
	if wordCount == 0 {
		return 0
	}
	bonus := 0
	for _, kw := range keywords {
		occurrences := countOccurrences(text, kw)
		if occurrences == 0 {
			continue
		}
		density := float64(occurrences) / float64(wordCount) * 100
		if density >= 1 && density <= 3 {
			bonus += 8
		} else {
			bonus += 4
		}
	}
	return bonus
}

// Uniqueness returns the percentage of distinct normalized sentences.
// Sentences with three or fewer normalized tokens are too short to judge
// and never enter the distinct set, while still counting toward the
// total. Returns 100 when the text has no sentences.
func Uniqueness(text string) float64 {
	sentences := textutil.Sentences(text)
	if len(sentences) == 0 {
		return 100
	}

	distinct := make(map[string]struct{})
	for _, s := range sentences {
		normalized := textutil.Normalize(s)
		if len(strings.Fields(normalized)) > minUniquenessTokens {
			distinct[normalized] = struct{}{}
		}
	}

	ratio := float64(len(distinct)) / float64(len(sentences)) * 100
	if ratio > 100 {
		ratio = 100
	}
	return math.Round(ratio*100) / 100
}

func countHeadingLines(text string) int {
	count := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			count++
		}
	}
	return count
}

// countOccurrences counts case-insensitive whole-phrase matches of kw.
func countOccurrences(text, kw string) int {
	kw = strings.TrimSpace(kw)
	if kw == "" {
		return 0
	}
	re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(kw) + `\b`)
	if err != nil {
		return 0
	}
	return len(re.FindAllStringIndex(text, -1))
}

func meanSentenceLength(text string) float64 {
	sentences := textutil.Sentences(text)
	if len(sentences) == 0 {
		return 0
	}
	return float64(textutil.CountWords(text)) / float64(len(sentences))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
