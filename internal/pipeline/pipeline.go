// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline orchestrates the content generation stages in fixed
// order: research fetch, structure build, length normalization,
// humanization, formatting, scoring. Nothing is cached or shared across
// requests; every call gets its own random source.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/Jack999Lab/content-api/internal/catalog"
	"github.com/Jack999Lab/content-api/internal/compose"
	"github.com/Jack999Lab/content-api/internal/format"
	"github.com/Jack999Lab/content-api/internal/humanize"
	"github.com/Jack999Lab/content-api/internal/normalize"
	"github.com/Jack999Lab/content-api/internal/research"
	"github.com/Jack999Lab/content-api/internal/score"
	"github.com/Jack999Lab/content-api/internal/textutil"
	"github.com/Jack999Lab/content-api/pkg/types"
)

// MaxBatchTopics bounds a batch request.
const MaxBatchTopics = 10

// InvalidInputError marks request validation failures that map to a
// client error, never a retry.
type InvalidInputError string

func (e InvalidInputError) Error() string { return string(e) }

// IsInvalidInput reports whether err is a request validation failure.
func IsInvalidInput(err error) bool {
	var e InvalidInputError
	return errors.As(err, &e)
}

// Pipeline wires the stages together. Construct once and share freely;
// all stage tables are read-only.
type Pipeline struct {
	fetcher   *research.Fetcher
	humanizer *humanize.Humanizer
	formatter *format.Formatter
	cat       *catalog.Catalog
	cfg       types.GeneratorConfig
	newRand   func() *rand.Rand
}

// New builds a Pipeline around a research fetcher and the loaded catalog.
func New(fetcher *research.Fetcher, cat *catalog.Catalog, cfg types.GeneratorConfig) *Pipeline {
	return &Pipeline{
		fetcher:   fetcher,
		humanizer: humanize.New(cat),
		formatter: format.New(cat.EmphasisTriggers),
		cat:       cat,
		cfg:       cfg,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

// SetRandSource replaces the per-call random source factory. Tests use a
// fixed seed to make template choices deterministic.
func (p *Pipeline) SetRandSource(fn func() *rand.Rand) {
	p.newRand = fn
}

// Generate runs one request through every stage and assembles the result.
// Stage progress and research-tier warnings go to w. The only error
// classes are invalid input and unexpected stage failures; research
// upstream failures degrade internally and never surface.
func (p *Pipeline) Generate(ctx context.Context, req types.GenerationRequest, w io.Writer) (result types.GenerationResult, err error) {
	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		return types.GenerationResult{}, InvalidInputError("topic is required")
	}

	// An unexpected stage panic is reported as a request-scoped error,
	// never a process crash.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("generation failed: %v", r)
		}
	}()

	tone := req.Tone.Normalize()
	length := p.clampLength(req.Length)
	rng := p.newRand()

	researchText := p.fetcher.Fetch(ctx, topic, rng, w)
	draft := compose.Build(topic, req.KeywordList(), researchText, p.cat, rng)
	sized := normalize.Adjust(draft, length, p.cat.Fillers, rng)
	styled := p.humanizer.Apply(sized, tone, rng)
	// Transition inserts may push the text a few words past the target;
	// re-cap at a sentence boundary so the reported count stays <= length.
	if textutil.CountWords(styled) > length {
		styled = normalize.Truncate(styled, length)
	}
	final := p.formatter.Apply(styled)

	return types.GenerationResult{
		Content:         final,
		WordCount:       textutil.CountWords(final),
		SEOScore:        score.SEO(final, req.KeywordList()),
		UniquenessScore: score.Uniqueness(final),
		Topic:           topic,
		Keywords:        req.Keywords,
		Tone:            tone,
	}, nil
}

// GenerateBatch validates the topic list bounds, then runs each topic
// through Generate. One failed item yields a failed outcome for that item
// only; the batch continues. Request-level keywords/tone/length act as
// defaults a per-topic entry may override.
func (p *Pipeline) GenerateBatch(ctx context.Context, topics []types.BatchTopic, defaults types.GenerationRequest, w io.Writer) ([]types.BatchOutcome, error) {
	if len(topics) == 0 || len(topics) > MaxBatchTopics {
		return nil, InvalidInputError(fmt.Sprintf("provide 1-%d topics", MaxBatchTopics))
	}

	outcomes := make([]types.BatchOutcome, 0, len(topics))
	for _, t := range topics {
		req := types.GenerationRequest{
			Topic:    t.Topic,
			Keywords: defaults.Keywords,
			Tone:     defaults.Tone,
			Length:   defaults.Length,
		}
		if t.Keywords != "" {
			req.Keywords = t.Keywords
		}
		if t.Tone != "" {
			req.Tone = t.Tone
		}
		if t.Length != 0 {
			req.Length = t.Length
		}

		result, err := p.Generate(ctx, req, w)
		if err != nil {
			outcomes = append(outcomes, types.BatchOutcome{Success: false, Error: err.Error()})
			continue
		}
		outcomes = append(outcomes, types.BatchOutcome{Success: true, Result: &result})
	}
	return outcomes, nil
}

// clampLength bounds the requested word count, substituting the default
// for a missing value.
func (p *Pipeline) clampLength(length int) int {
	if length == 0 {
		length = p.cfg.DefaultLength
	}
	min, max := p.cfg.MinLength, p.cfg.MaxLength
	if min <= 0 {
		min = 100
	}
	if max <= 0 {
		max = 2000
	}
	if length < min {
		return min
	}
	if length > max {
		return max
	}
	return length
}
