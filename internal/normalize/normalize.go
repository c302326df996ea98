// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize trims or pads a draft to a target word count at
// sentence boundaries. The output never ends mid-sentence, so the final
// word count may round down by up to one sentence. Paragraph breaks are
// preserved: only the paragraph where the budget runs out is reflowed.
package normalize

import (
	"math/rand"
	"strings"

	"github.com/Jack999Lab/content-api/internal/textutil"
)

// Adjust returns text trimmed or padded to targetWords. Short drafts are
// padded with filler sentences drawn uniformly at random before the
// sentence-boundary truncation is applied, so the result lands at or just
// below the target.
func Adjust(text string, targetWords int, fillers []string, rng *rand.Rand) string {
	if targetWords <= 0 || len(fillers) == 0 {
		return text
	}
	padded := pad(text, targetWords, fillers, rng)
	return Truncate(padded, targetWords)
}

// pad appends filler sentences as a trailing paragraph until the word
// count reaches the target. Every filler contributes at least one word,
// so the loop runs at most targetWords iterations.
func pad(text string, target int, fillers []string, rng *rand.Rand) string {
	count := textutil.CountWords(text)
	if count >= target {
		return text
	}

	var extra []string
	for count < target {
		f := fillers[rng.Intn(len(fillers))]
		extra = append(extra, f)
		fw := textutil.CountWords(f)
		if fw == 0 {
			fw = 1 // degenerate catalog entry; still guarantee termination
		}
		count += fw
	}
	return strings.TrimRight(text, " \n") + "\n\n" + strings.Join(extra, " ") + "\n"
}

// Truncate keeps whole paragraphs while they fit the budget, reflows
// the paragraph where the budget ends, and rounds that paragraph down to
// its last complete sentence. The pipeline also calls it after styling,
// since transition inserts can push a normalized document a few words
// past its target.
func Truncate(text string, target int) string {
	var kept []string
	remaining := target

	for _, p := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(p) == "" {
			continue
		}
		n := textutil.CountWords(p)
		if n <= remaining {
			kept = append(kept, strings.TrimSpace(p))
			remaining -= n
			if remaining == 0 {
				break
			}
			continue
		}
		if partial := truncateParagraph(p, remaining); partial != "" {
			kept = append(kept, partial)
		}
		break
	}
	return strings.Join(kept, "\n\n") + "\n"
}

// truncateParagraph keeps the first budget words of a paragraph and drops
// a trailing sentence fragment.
func truncateParagraph(p string, budget int) string {
	var tokens []string
	words := 0
	for _, tok := range strings.Fields(p) {
		if textutil.IsWord(tok) {
			if words == budget {
				break
			}
			words++
		}
		tokens = append(tokens, tok)
	}

	sentences := textutil.Sentences(strings.Join(tokens, " "))
	if len(sentences) == 0 {
		return ""
	}
	if !textutil.EndsSentence(sentences[len(sentences)-1]) {
		sentences = sentences[:len(sentences)-1]
	}
	return strings.Join(sentences, " ")
}
