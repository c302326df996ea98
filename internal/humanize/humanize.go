// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package humanize applies the phrase-substitution and tone-styling passes
// that loosen templated phrasing, plus random transitional insertions.
package humanize

import (
	"math/rand"
	"regexp"
	"strings"

	"github.com/Jack999Lab/content-api/internal/catalog"
	"github.com/Jack999Lab/content-api/internal/textutil"
	"github.com/Jack999Lab/content-api/pkg/types"
)

// transitionProbability is the per-sentence chance of a transition prepend.
const transitionProbability = 0.3

type compiledRule struct {
	re *regexp.Regexp
	to string
}

// Humanizer holds the substitution tables compiled once at startup.
type Humanizer struct {
	cat   *catalog.Catalog
	base  []compiledRule
	tones map[string][]compiledRule
}

// New compiles the catalog's substitution tables. The catalog is immutable
// so a Humanizer is safe for concurrent use.
func New(cat *catalog.Catalog) *Humanizer {
	h := &Humanizer{
		cat:   cat,
		base:  compileRules(cat.Replacements),
		tones: make(map[string][]compiledRule, len(cat.Tones)),
	}
	for tone, rules := range cat.Tones {
		h.tones[tone] = compileRules(rules)
	}
	return h
}

// Apply runs the three humanization passes in order: the base substitution
// table, the tone table, and the random transition inserts. The base table
// is applied rule by rule in catalog order; later rules may act on text an
// earlier rule already rewrote, and that cascade is intentional.
func (h *Humanizer) Apply(text string, tone types.Tone, rng *rand.Rand) string {
	text = applyRules(text, h.base)
	if rules, ok := h.tones[string(tone.Normalize())]; ok {
		text = applyRules(text, rules)
	}
	return h.insertTransitions(text, rng)
}

// insertTransitions prepends a random transition phrase, with independent
// probability per sentence, to every sentence except the document's first
// and last. Heading lines are left untouched.
func (h *Humanizer) insertTransitions(text string, rng *rand.Rand) string {
	if len(h.cat.Transitions) == 0 {
		return text
	}

	lines := strings.Split(text, "\n")

	total := 0
	for _, line := range lines {
		if !isHeading(line) {
			total += len(textutil.Sentences(line))
		}
	}
	if total < 3 {
		return text
	}

	idx := 0
	for i, line := range lines {
		if isHeading(line) || strings.TrimSpace(line) == "" {
			continue
		}
		sentences := textutil.Sentences(line)
		for j, s := range sentences {
			if idx > 0 && idx < total-1 && rng.Float64() < transitionProbability {
				t := h.cat.Transitions[rng.Intn(len(h.cat.Transitions))]
				sentences[j] = t + " " + s
			}
			idx++
		}
		lines[i] = strings.Join(sentences, " ")
	}
	return strings.Join(lines, "\n")
}

func isHeading(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "#")
}

// compileRules builds case-insensitive whole-phrase matchers. Word
// boundaries are anchored only where the phrase itself starts or ends
// with a word character.
func compileRules(rules []catalog.Rule) []compiledRule {
	out := make([]compiledRule, 0, len(rules))
	for _, r := range rules {
		if r.From == "" {
			continue
		}
		pattern := regexp.QuoteMeta(r.From)
		if startsWordChar(r.From) {
			pattern = `\b` + pattern
		}
		if endsWordChar(r.From) {
			pattern += `\b`
		}
		out = append(out, compiledRule{
			re: regexp.MustCompile(`(?i)` + pattern),
			to: r.To,
		})
	}
	return out
}

func applyRules(text string, rules []compiledRule) string {
	for _, r := range rules {
		text = r.re.ReplaceAllString(text, r.to)
	}
	return text
}

func startsWordChar(s string) bool {
	return len(s) > 0 && isWordChar(rune(s[0]))
}

func endsWordChar(s string) bool {
	return len(s) > 0 && isWordChar(rune(s[len(s)-1]))
}

func isWordChar(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
