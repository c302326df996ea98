// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textutil provides the word and sentence tokenizers shared by the
// generation stages. Every stage that counts, trims, or splits text goes
// through these helpers so reported word counts stay consistent with
// length normalization.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Words splits text into word tokens. Tokens are whitespace-separated and
// must carry at least one letter or digit, so markdown markers ("#", "**")
// and stray punctuation are not counted as words.
func Words(text string) []string {
	var out []string
	for _, tok := range strings.Fields(text) {
		if IsWord(tok) {
			out = append(out, tok)
		}
	}
	return out
}

// IsWord reports whether a whitespace-separated token counts as a word:
// it must carry at least one letter or digit.
func IsWord(tok string) bool {
	for _, r := range tok {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// CountWords returns the number of word tokens in text.
func CountWords(text string) int {
	return len(Words(text))
}

// Sentences splits text at sentence-terminating punctuation (. ! ?)
// followed by whitespace or end of input. A trailing fragment without a
// terminator is returned as the final element; callers that must not end
// mid-sentence check EndsSentence on it.
func Sentences(text string) []string {
	var out []string
	var b strings.Builder
	runes := []rune(text)
	for i, r := range runes {
		b.WriteRune(r)
		if isTerminator(r) && (i+1 >= len(runes) || unicode.IsSpace(runes[i+1])) {
			if s := strings.TrimSpace(b.String()); s != "" {
				out = append(out, s)
			}
			b.Reset()
		}
	}
	if s := strings.TrimSpace(b.String()); s != "" {
		out = append(out, s)
	}
	return out
}

// FirstSentence returns the first complete sentence of text, or "" when
// text holds none.
func FirstSentence(text string) string {
	ss := Sentences(text)
	if len(ss) == 0 {
		return ""
	}
	return ss[0]
}

// EndsSentence reports whether the last non-space rune of s is a sentence
// terminator.
func EndsSentence(s string) bool {
	trimmed := strings.TrimRightFunc(s, unicode.IsSpace)
	if trimmed == "" {
		return false
	}
	runes := []rune(trimmed)
	return isTerminator(runes[len(runes)-1])
}

// Normalize lowercases s and strips everything but letters, digits, and
// single spaces. Used for duplicate-sentence comparison.
func Normalize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Title returns s with each word title-cased.
func Title(s string) string {
	return titleCaser.String(s)
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}
