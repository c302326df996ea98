// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package compose builds the draft document from topic, keywords, and
// research text using the fixed template catalogs. Building never fails:
// missing keywords or missing research silently omit their optional parts.
package compose

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/Jack999Lab/content-api/internal/catalog"
	"github.com/Jack999Lab/content-api/internal/textutil"
)

const (
	// maxKeyPoints bounds the enumerated keyword list.
	maxKeyPoints = 6

	// researchBodyThreshold is the minimum research length before body
	// sections borrow extra research sentences.
	researchBodyThreshold = 100
)

// Build assembles a draft document: title, introduction, optional key
// points, 2–3 body sections sampled without replacement, and a conclusion.
// Sections are separated by blank lines; the title uses a level-one
// heading and every other section a level-two heading.
func Build(topic string, keywords []string, research string, cat *catalog.Catalog, rng *rand.Rand) string {
	var sections []string

	sections = append(sections, title(topic, cat, rng))
	sections = append(sections, introduction(topic, research, cat, rng))

	if kp := keyPoints(topic, keywords, cat); kp != "" {
		sections = append(sections, kp)
	}

	sections = append(sections, bodySections(topic, research, cat, rng)...)
	sections = append(sections, conclusion(topic, cat))

	return strings.Join(sections, "\n\n") + "\n"
}

func title(topic string, cat *catalog.Catalog, rng *rand.Rand) string {
	return catalog.Expand(cat.Titles[rng.Intn(len(cat.Titles))], topic)
}

// introduction picks a random opener and, when research text exists,
// appends its first sentence.
func introduction(topic, research string, cat *catalog.Catalog, rng *rand.Rand) string {
	intro := catalog.Expand(cat.Intros[rng.Intn(len(cat.Intros))], topic)
	if first := textutil.FirstSentence(research); first != "" {
		intro += " " + first
	}
	return "## Introduction\n" + intro
}

// keyPoints enumerates the first keywords as a numbered list, each
// title-cased and followed by the fixed boilerplate clause. Returns ""
// when there are no keywords.
func keyPoints(topic string, keywords []string, cat *catalog.Catalog) string {
	if len(keywords) == 0 {
		return ""
	}
	if len(keywords) > maxKeyPoints {
		keywords = keywords[:maxKeyPoints]
	}

	var b strings.Builder
	b.WriteString("## Key Points\n")
	clause := catalog.Expand(cat.KeyPoint, strings.ToLower(topic))
	for i, kw := range keywords {
		fmt.Fprintf(&b, "%d. **%s**: %s\n", i+1, textutil.Title(kw), clause)
	}
	return strings.TrimRight(b.String(), "\n")
}

// bodySections samples 2–3 distinct section templates without replacement.
// When research is long enough, each section borrows one follow-up
// research sentence, sliced by index past the one the introduction used.
func bodySections(topic, research string, cat *catalog.Catalog, rng *rand.Rand) []string {
	count := 2 + rng.Intn(2)
	if count > len(cat.Sections) {
		count = len(cat.Sections)
	}

	var researchSentences []string
	if len(research) > researchBodyThreshold {
		researchSentences = textutil.Sentences(research)
	}

	perm := rng.Perm(len(cat.Sections))
	out := make([]string, 0, count)
	for i := 0; i < count; i++ {
		sec := cat.Sections[perm[i]]
		body := catalog.Expand(sec.Template, topic)
		if idx := i + 1; idx < len(researchSentences) {
			body += " " + researchSentences[idx]
		}
		out = append(out, "## "+sec.Heading+"\n"+body)
	}
	return out
}

func conclusion(topic string, cat *catalog.Catalog) string {
	return "## Conclusion\n" + catalog.Expand(cat.Conclusion, topic)
}
