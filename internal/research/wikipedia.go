// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package research

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Jack999Lab/content-api/internal/httputil"
	"github.com/Jack999Lab/content-api/pkg/types"
)

// wikipediaAPIBase is the Wikipedia extract endpoint. Declared as a var so
// tests can substitute an httptest server.
var wikipediaAPIBase = "https://en.wikipedia.org/w/api.php"

// wikipediaSource queries the Wikipedia API for a plain-text introductory
// extract keyed by the topic title. Primary research tier.
type wikipediaSource struct {
	client *http.Client
	cfg    types.ResearchConfig
}

func (s *wikipediaSource) name() string { return "wikipedia" }

type wikiResponse struct {
	Query struct {
		Pages map[string]wikiPage `json:"pages"`
	} `json:"query"`
}

type wikiPage struct {
	Extract string `json:"extract"`
}

func (s *wikipediaSource) fetch(ctx context.Context, topic, userAgent string) (string, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("titles", topic)
	params.Set("prop", "extracts")
	params.Set("exintro", "true")
	params.Set("explaintext", "true")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, wikipediaAPIBase+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := httputil.DoWithRetry(ctx, s.client, req, s.cfg.MaxRetries, s.cfg.RetryDelay)
	if err != nil {
		return "", fmt.Errorf("wikipedia request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("wikipedia returned HTTP %d", resp.StatusCode)
	}

	var wr wikiResponse
	if err := json.NewDecoder(resp.Body).Decode(&wr); err != nil {
		return "", fmt.Errorf("parsing wikipedia response: %w", err)
	}

	for _, page := range wr.Query.Pages {
		if page.Extract != "" {
			return page.Extract, nil
		}
	}
	return "", nil
}
