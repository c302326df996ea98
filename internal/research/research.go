// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package research obtains a short external text excerpt for a topic.
// Fetching walks an ordered list of source tiers (Wikipedia extract, web
// search snippets) and degrades to a synthesized paragraph when every
// tier comes up empty, so a fetch never fails and never surfaces an
// upstream error to the caller.
package research

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strings"

	"github.com/Jack999Lab/content-api/internal/catalog"
	"github.com/Jack999Lab/content-api/pkg/types"
)

// defaultUserAgents is the rotation pool used when the config provides none.
var defaultUserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36",
}

// source fetches research text for a topic from one upstream. Each tier
// implements this interface; an error or empty result escalates to the
// next tier.
type source interface {
	name() string
	fetch(ctx context.Context, topic, userAgent string) (string, error)
}

// Fetcher walks the source tiers in order.
type Fetcher struct {
	cfg     types.ResearchConfig
	cat     *catalog.Catalog
	sources []source
}

// New builds a Fetcher with the standard tiers: Wikipedia extract first,
// search-result snippets second. The synthesized paragraph is not a
// source; it is the guaranteed floor applied when the tiers yield nothing.
func New(client *http.Client, cfg types.ResearchConfig, cat *catalog.Catalog) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	return &Fetcher{
		cfg: cfg,
		cat: cat,
		sources: []source{
			&wikipediaSource{client: client, cfg: cfg},
			&snippetSource{client: client, cfg: cfg},
		},
	}
}

// Fetch returns a research snippet for topic. It tries each tier in order,
// logging tier failures to w as warnings, and falls back to a synthesized
// paragraph so the result is always non-empty. Fetch itself never fails.
func (f *Fetcher) Fetch(ctx context.Context, topic string, rng *rand.Rand, w io.Writer) string {
	ua := f.userAgent(rng)
	for _, s := range f.sources {
		text, err := s.fetch(ctx, topic, ua)
		if err != nil {
			fmt.Fprintf(w, "warning: research tier %s failed: %v\n", s.name(), err)
			continue
		}
		if usable(text) {
			return truncate(text, f.extractLimit())
		}
	}
	return f.synthesize(topic, rng)
}

// synthesize produces the tertiary, self-referential research paragraph.
func (f *Fetcher) synthesize(topic string, rng *rand.Rand) string {
	tmpl := f.cat.Synthesized[rng.Intn(len(f.cat.Synthesized))]
	return catalog.Expand(tmpl, topic)
}

func (f *Fetcher) userAgent(rng *rand.Rand) string {
	pool := f.cfg.UserAgents
	if len(pool) == 0 {
		pool = defaultUserAgents
	}
	return pool[rng.Intn(len(pool))]
}

func (f *Fetcher) extractLimit() int {
	if f.cfg.ExtractLimit > 0 {
		return f.cfg.ExtractLimit
	}
	return 800
}

// usable reports whether a tier produced enough text to seed content.
func usable(text string) bool {
	return len(strings.TrimSpace(text)) > 0
}

// truncate cuts text to at most limit bytes without splitting a rune.
func truncate(text string, limit int) string {
	text = strings.TrimSpace(text)
	if len(text) <= limit {
		return text
	}
	cut := text[:limit]
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimSpace(cut)
}
