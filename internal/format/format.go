// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package format is the cosmetic last pass: it tidies whitespace and adds
// light emphasis markup.
package format

import (
	"regexp"
	"strings"
)

// Formatter wraps the compiled emphasis-trigger matcher.
type Formatter struct {
	trigger *regexp.Regexp
}

// New builds a Formatter for the given trigger words. With no triggers the
// formatter only normalizes whitespace.
func New(triggers []string) *Formatter {
	f := &Formatter{}
	if len(triggers) > 0 {
		quoted := make([]string, len(triggers))
		for i, t := range triggers {
			quoted[i] = regexp.QuoteMeta(t)
		}
		f.trigger = regexp.MustCompile(`(?i)\b(` + strings.Join(quoted, "|") + `)\b`)
	}
	return f
}

// Apply collapses runs of blank lines to exactly one and, per line, wraps
// the first emphasis-trigger word in bold markup. Lines that already carry
// bold markup and heading lines are left alone.
func (f *Formatter) Apply(text string) string {
	lines := strings.Split(text, "\n")
	var out []string
	blank := false
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			if blank {
				continue
			}
			blank = true
			out = append(out, "")
			continue
		}
		blank = false
		out = append(out, f.emphasize(line))
	}
	return strings.Join(out, "\n")
}

func (f *Formatter) emphasize(line string) string {
	if f.trigger == nil || strings.Contains(line, "**") || strings.HasPrefix(strings.TrimSpace(line), "#") {
		return line
	}
	loc := f.trigger.FindStringIndex(line)
	if loc == nil {
		return line
	}
	return line[:loc[0]] + "**" + line[loc[0]:loc[1]] + "**" + line[loc[1]:]
}
