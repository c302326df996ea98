// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package score

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"

	"github.com/Jack999Lab/content-api/internal/textutil"
	"github.com/Jack999Lab/content-api/pkg/types"
)

// markdown is the shared parser for content analysis. Parsing only; no
// rendering is ever done.
var markdown = goldmark.New()

// Analyze reports structural counts and a coarse readability label for
// existing content. It is a thin reporting wrapper over the shared
// tokenizer plus a markdown AST walk; no scoring happens here.
func Analyze(content string) types.AnalysisReport {
	report := types.AnalysisReport{
		WordCount:     textutil.CountWords(content),
		SentenceCount: len(textutil.Sentences(content)),
	}

	source := []byte(content)
	doc := markdown.Parser().Parse(gmtext.NewReader(source))
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case ast.KindHeading:
			report.HeadingCount++
		case ast.KindParagraph:
			report.ParagraphCount++
		case ast.KindLink, ast.KindAutoLink:
			report.LinkCount++
		}
		return ast.WalkContinue, nil
	})

	report.Readability = readabilityLabel(meanSentenceLength(content))
	return report
}

// readabilityLabel buckets mean words-per-sentence into a coarse label.
func readabilityLabel(mean float64) string {
	switch {
	case mean == 0:
		return "unknown"
	case mean < 12:
		return "easy"
	case mean <= 20:
		return "standard"
	default:
		return "difficult"
	}
}
