// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog holds the fixed template, filler, and substitution
// tables the generation stages draw from. A Catalog is loaded once at
// startup and treated as immutable afterwards; every stage receives it by
// reference, so concurrent reads are safe.
//
// Templates use the placeholders {topic}, {keyword}, and {section}, which
// the stages expand with strings.ReplaceAll.
package catalog

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Rule is one ordered phrase substitution. Matching is case-insensitive
// and bounded at word edges.
type Rule struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Section is one body-section template. Heading becomes a level-two
// heading; Template is the section's fixed opening sentence.
type Section struct {
	Heading  string `yaml:"heading"`
	Template string `yaml:"template"`
}

// Catalog groups all fixed tables used by the pipeline stages.
type Catalog struct {
	// Titles are level-one heading templates; one is chosen at random.
	Titles []string `yaml:"titles"`

	// Intros are introduction openers; one is chosen at random.
	Intros []string `yaml:"intros"`

	// KeyPoint is the boilerplate clause appended to each enumerated keyword.
	KeyPoint string `yaml:"key_point"`

	// Sections is the body-section pool, sampled without replacement.
	Sections []Section `yaml:"sections"`

	// Conclusion is the closing paragraph template.
	Conclusion string `yaml:"conclusion"`

	// Fillers are stock sentences appended to pad short documents.
	Fillers []string `yaml:"fillers"`

	// Replacements is the ordered robotic-phrase substitution table.
	// Later rules see text already rewritten by earlier rules; that
	// cascade is part of the contract.
	Replacements []Rule `yaml:"replacements"`

	// Tones maps a tone name to its substitution table. Professional has
	// no entry and applies nothing.
	Tones map[string][]Rule `yaml:"tones"`

	// Transitions are phrases occasionally prepended to mid-document
	// sentences for variety.
	Transitions []string `yaml:"transitions"`

	// EmphasisTriggers are words the formatter bolds on first occurrence
	// per line.
	EmphasisTriggers []string `yaml:"emphasis_triggers"`

	// Synthesized are self-referential research paragraphs used when every
	// external fetch tier comes up empty.
	Synthesized []string `yaml:"synthesized"`
}

// Default returns the compiled-in catalog.
func Default() *Catalog {
	return &Catalog{
		Titles: []string{
			"# {topic}: A Comprehensive Guide",
			"# Understanding {topic}",
			"# The Complete Guide to {topic}",
			"# {topic} Explained",
		},
		Intros: []string{
			"In today's digital landscape, {topic} has become increasingly important.",
			"Few subjects have drawn as much recent attention as {topic}.",
			"Across industries, interest in {topic} keeps growing.",
		},
		KeyPoint: "Important aspect of {topic}.",
		Sections: []Section{
			{Heading: "Benefits", Template: "The benefits of {topic} are significant and varied."},
			{Heading: "Applications", Template: "Practical applications of {topic} appear in many settings."},
			{Heading: "Strategies", Template: "Effective strategies require understanding key principles of {topic}."},
			{Heading: "Challenges", Template: "The challenges around {topic} deserve careful consideration."},
			{Heading: "Future Trends", Template: "Future trends suggest {topic} will keep gaining relevance."},
		},
		Conclusion: "In summary, {topic} represents an important area with growing relevance. " +
			"By understanding {topic}, organizations and individuals can achieve better outcomes. " +
			"The coming years will only broaden its reach.",
		Fillers: []string{
			"This demonstrates practical applications and value.",
			"Many experts recognize these patterns and developments.",
			"Further research continues to expand our understanding.",
			"Real-world implementations show promising results.",
			"Ongoing developments keep reshaping the landscape.",
		},
		Replacements: []Rule{
			{From: "is important", To: "plays a crucial role"},
			{From: "very good", To: "exceptionally beneficial"},
			{From: "many people", To: "numerous individuals"},
			{From: "in order to", To: "to"},
			{From: "due to the fact that", To: "because"},
		},
		Tones: map[string][]Rule{
			"casual": {
				{From: "therefore", To: "so"},
				{From: "however", To: "but"},
				{From: "utilize", To: "use"},
				{From: "individuals", To: "people"},
			},
			"academic": {
				{From: "so", To: "therefore"},
				{From: "but", To: "however"},
				{From: "shows", To: "demonstrates"},
				{From: "big", To: "substantial"},
			},
			"creative": {
				{From: "important", To: "vital"},
				{From: "shows", To: "reveals"},
				{From: "interesting", To: "fascinating"},
				{From: "growing", To: "blossoming"},
			},
		},
		Transitions: []string{
			"Moreover,",
			"Furthermore,",
			"In fact,",
			"Interestingly,",
			"Additionally,",
		},
		EmphasisTriggers: []string{
			"important", "significant", "essential", "crucial", "key", "effective",
		},
		Synthesized: []string{
			"{topic} continues to attract attention across industries and research communities. " +
				"Practitioners exploring {topic} report steady progress alongside open challenges. " +
				"As adoption grows, {topic} is expected to shape how organizations plan ahead.",
			"Interest in {topic} has grown steadily in recent years. " +
				"Discussions of {topic} highlight both practical value and unresolved questions. " +
				"Observers expect {topic} to remain a focus for some time.",
		},
	}
}

// Load reads a YAML catalog file and overlays it on the defaults.
// Any list or table present in the file replaces the default wholesale;
// absent fields keep their defaults.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	var override Catalog
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	c := Default()
	merge(c, &override)
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

func merge(dst, src *Catalog) {
	if len(src.Titles) > 0 {
		dst.Titles = src.Titles
	}
	if len(src.Intros) > 0 {
		dst.Intros = src.Intros
	}
	if src.KeyPoint != "" {
		dst.KeyPoint = src.KeyPoint
	}
	if len(src.Sections) > 0 {
		dst.Sections = src.Sections
	}
	if src.Conclusion != "" {
		dst.Conclusion = src.Conclusion
	}
	if len(src.Fillers) > 0 {
		dst.Fillers = src.Fillers
	}
	if len(src.Replacements) > 0 {
		dst.Replacements = src.Replacements
	}
	if len(src.Tones) > 0 {
		dst.Tones = src.Tones
	}
	if len(src.Transitions) > 0 {
		dst.Transitions = src.Transitions
	}
	if len(src.EmphasisTriggers) > 0 {
		dst.EmphasisTriggers = src.EmphasisTriggers
	}
	if len(src.Synthesized) > 0 {
		dst.Synthesized = src.Synthesized
	}
}

// Validate checks the minimum catalog sizes the builder and normalizer
// depend on.
func (c *Catalog) Validate() error {
	if len(c.Titles) < 3 {
		return fmt.Errorf("need at least 3 title templates, have %d", len(c.Titles))
	}
	if len(c.Intros) == 0 {
		return fmt.Errorf("need at least 1 intro template")
	}
	if len(c.Sections) < 4 {
		return fmt.Errorf("need at least 4 section templates, have %d", len(c.Sections))
	}
	if len(c.Fillers) == 0 {
		return fmt.Errorf("need at least 1 filler sentence")
	}
	for i, f := range c.Fillers {
		if len(f) == 0 {
			return fmt.Errorf("filler %d is empty", i)
		}
	}
	if len(c.Synthesized) == 0 {
		return fmt.Errorf("need at least 1 synthesized research template")
	}
	return nil
}

// Expand substitutes {topic} in a template.
func Expand(template, topic string) string {
	return strings.ReplaceAll(template, "{topic}", topic)
}
