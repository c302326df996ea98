// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package research

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/net/html"

	"github.com/Jack999Lab/content-api/internal/httputil"
	"github.com/Jack999Lab/content-api/pkg/types"
)

// searchBase is the HTML search endpoint used by the secondary tier.
// Declared as a var so tests can substitute an httptest server.
var searchBase = "https://html.duckduckgo.com/html/"

// minSnippetLen filters out navigation fragments and other trivia.
const minSnippetLen = 50

// snippetClasses are the markup containers snippet text is pulled from.
var snippetClasses = []string{"result__snippet", "result__body"}

// snippetSource scrapes short text snippets from a search-result page.
// Secondary research tier, used when the Wikipedia extract is empty.
type snippetSource struct {
	client *http.Client
	cfg    types.ResearchConfig
}

func (s *snippetSource) name() string { return "search" }

func (s *snippetSource) fetch(ctx context.Context, topic, userAgent string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		searchBase+"?q="+url.QueryEscape(topic), nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := httputil.DoWithRetry(ctx, s.client, req, s.cfg.MaxRetries, s.cfg.RetryDelay)
	if err != nil {
		return "", fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("search returned HTTP %d", resp.StatusCode)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parsing search page: %w", err)
	}

	max := s.cfg.MaxSnippets
	if max <= 0 {
		max = 3
	}
	snippets := collectSnippets(doc, max)
	return strings.Join(snippets, " "), nil
}

// collectSnippets walks the parsed document and gathers the text of the
// first max non-trivial snippet containers.
func collectSnippets(doc *html.Node, max int) []string {
	var snippets []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if len(snippets) >= max {
			return
		}
		if n.Type == html.ElementNode && hasSnippetClass(n) {
			text := strings.Join(strings.Fields(nodeText(n)), " ")
			if len(text) > minSnippetLen {
				snippets = append(snippets, text)
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return snippets
}

func hasSnippetClass(n *html.Node) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, class := range strings.Fields(attr.Val) {
			for _, want := range snippetClasses {
				if class == want {
					return true
				}
			}
		}
	}
	return false
}

// nodeText concatenates all text nodes under n.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
