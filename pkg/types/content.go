// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"strconv"
	"strings"
	"time"
)

// Tone selects the stylistic substitution table applied during humanization.
type Tone string

const (
	ToneProfessional Tone = "professional"
	ToneCasual       Tone = "casual"
	ToneAcademic     Tone = "academic"
	ToneCreative     Tone = "creative"
)

// Normalize maps unknown or empty tones to professional, which applies no
// tone table.
func (t Tone) Normalize() Tone {
	switch Tone(strings.ToLower(strings.TrimSpace(string(t)))) {
	case ToneCasual:
		return ToneCasual
	case ToneAcademic:
		return ToneAcademic
	case ToneCreative:
		return ToneCreative
	default:
		return ToneProfessional
	}
}

// GenerationRequest carries the four generation inputs. Keywords is the
// raw comma-separated form; use KeywordList for the parsed terms.
type GenerationRequest struct {
	Topic    string `json:"topic"`
	Keywords string `json:"keywords,omitempty"`
	Tone     Tone   `json:"tone,omitempty"`
	Length   int    `json:"length,omitempty"`
}

// KeywordList returns the ordered, trimmed, non-empty keyword terms.
func (r GenerationRequest) KeywordList() []string {
	return ParseKeywords(r.Keywords)
}

// ParseKeywords splits a comma-separated keyword string into ordered,
// trimmed, non-empty terms.
func ParseKeywords(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if k := strings.TrimSpace(part); k != "" {
			out = append(out, k)
		}
	}
	return out
}

// ParseLength interprets a length field that may arrive as a string
// (query parameter, form value). Unparsable input falls back to def.
func ParseLength(raw string, def int) int {
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return def
	}
	return n
}

// GenerationResult is the finished document with its quality scores and
// the echoed request fields.
type GenerationResult struct {
	Content         string  `json:"content"`
	WordCount       int     `json:"word_count"`
	SEOScore        int     `json:"seo_score"`
	UniquenessScore float64 `json:"uniqueness_score"`
	Topic           string  `json:"topic"`
	Keywords        string  `json:"keywords"`
	Tone            Tone    `json:"tone"`
}

// BatchTopic is one entry of a batch request: either a bare topic string
// or an object overriding keywords/tone/length for that topic.
type BatchTopic struct {
	Topic    string `json:"topic"`
	Keywords string `json:"keywords,omitempty"`
	Tone     Tone   `json:"tone,omitempty"`
	Length   int    `json:"length,omitempty"`
}

// BatchOutcome wraps one per-topic result. A failed item carries
// Success=false and an error message; the batch continues past it.
type BatchOutcome struct {
	Success bool              `json:"success"`
	Error   string            `json:"error,omitempty"`
	Result  *GenerationResult `json:"result,omitempty"`
}

// AnalysisReport summarizes structural counts for existing content.
type AnalysisReport struct {
	WordCount      int    `json:"word_count"`
	SentenceCount  int    `json:"sentence_count"`
	HeadingCount   int    `json:"heading_count"`
	ParagraphCount int    `json:"paragraph_count"`
	LinkCount      int    `json:"link_count"`
	Readability    string `json:"readability"`
}

// HistoryEntry is one persisted generation record.
type HistoryEntry struct {
	ID              string    `json:"id"`
	Topic           string    `json:"topic"`
	Keywords        string    `json:"keywords"`
	Tone            Tone      `json:"tone"`
	WordCount       int       `json:"word_count"`
	SEOScore        int       `json:"seo_score"`
	UniquenessScore float64   `json:"uniqueness_score"`
	CreatedAt       time.Time `json:"created_at"`
}
